package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfehric/gamify/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show player stats, streak, and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()
			svc, cleanup, err := openService(ctx, out)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.State()
			cat := svc.Catalog()
			p := st.Player

			tier := cat.TierForXP(p.TotalXP)
			curXP := cat.CurrentLevelXP(tier.Level)
			nextXP := cat.NextLevelXP(tier.Level)
			span := nextXP - curXP
			if span <= 0 {
				span = 1
			}

			fmt.Fprintln(out, ui.Muted.Render(svc.Greeting()))
			fmt.Fprintln(out, ui.Heading(tier.Icon, fmt.Sprintf("%s — Level %d %s", p.Name, p.Level, tier.Title)))
			fmt.Fprintf(out, "%s %d/%d %s\n", ui.Key.Render("XP:"), p.TotalXP, nextXP, ui.Bar(p.TotalXP-curXP, span, 30))
			fmt.Fprintf(out, "%s %d/%d %s\n", ui.Key.Render("HP:"), p.HP, p.MaxHP, ui.Bar(p.HP, p.MaxHP, 30))
			fmt.Fprintf(out, "%s %d %s (%.2gx multiplier)\n", ui.Key.Render("Streak:"), p.Streak, ui.IconFire, svc.Engine().StreakMultiplier(p.Streak))
			fmt.Fprintf(out, "%s %d/%d subtasks\n", ui.Key.Render("Today:"), len(st.CompletedToday), cat.TotalSubtasks())
			fmt.Fprintf(out, "%s %.2fx (%d dana konzistentnosti)\n", ui.Key.Render("Compound:"), svc.CompoundProgress(), p.Streak)
			fmt.Fprintln(out)

			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Achievements"))
			unlocked := map[string]bool{}
			for _, id := range st.Achievements {
				unlocked[id] = true
			}
			for _, rule := range cat.Rules {
				marker := ui.Muted.Render("locked")
				if unlocked[rule.ID] {
					marker = ui.Good.Render("unlocked")
				}
				fmt.Fprintf(out, "- %s %s — %s (%s)\n", rule.Icon, rule.Name, ui.Muted.Render(rule.Description), marker)
			}
			fmt.Fprintln(out)

			if quote := svc.Quote(); quote != "" {
				fmt.Fprintln(out, ui.Muted.Render("“"+quote+"”"))
			}
			return nil
		},
	}

	return cmd
}
