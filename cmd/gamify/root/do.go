package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfehric/gamify/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <quest> <subtask>",
		Short: "Toggle a subtask (complete or revert)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("quest and subtask ids are required (see `gamify quests`)")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()
			svc, cleanup, err := openService(ctx, out)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.Toggle(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			if res.Completed {
				line := fmt.Sprintf("%s +%d XP", ui.IconSparkle, res.XPDelta)
				if res.StreakBonus {
					line += ui.Gold.Render(fmt.Sprintf(" (%.2gx streak bonus!)", res.Multiplier))
				}
				fmt.Fprintln(out, ui.Good.Render(line))
				if res.LevelUp {
					fmt.Fprintf(out, "%s %s Level %d: %s\n", res.Tier.Icon, ui.BadgeLevelUp, res.Tier.Level, res.Tier.Title)
				}
				if identity := svc.IdentityFlash(res.QuestID); identity != "" {
					fmt.Fprintln(out, ui.Muted.Render(ui.IconMirror+" "+identity))
				}
			} else {
				fmt.Fprintf(out, "%s Reverted (%d XP)\n", ui.Warn.Render(ui.IconWarn), res.XPDelta)
			}

			for _, ach := range res.NewlyUnlocked {
				fmt.Fprintf(out, "%s %s %s — %s\n", ui.IconTrophy, ach.Icon, ui.Gold.Render(ach.Name), ach.Description)
			}
			return nil
		},
	}

	return cmd
}
