package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfehric/gamify/internal/ui"
)

func newSlipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slip <habit>",
		Short: "Report a bad-habit slip-up (costs XP and HP)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("habit id is required (see `gamify habits`)")
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

			res, err := svc.Slip(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s %s — lost %d XP and %d HP\n",
				ui.Bad.Render("❌ "+res.Habit.Name), res.Habit.Icon, res.XPLost, res.HPLost)
			if res.Died {
				fmt.Fprintf(out, "%s %s You died! Level lost (now %d). HP restored.\n",
					ui.IconSkull, ui.BadgeDeath, res.Level)
			}
			for _, ach := range res.NewlyUnlocked {
				fmt.Fprintf(out, "%s %s %s — %s\n", ui.IconTrophy, ach.Icon, ui.Gold.Render(ach.Name), ach.Description)
			}
			return nil
		},
	}

	return cmd
}
