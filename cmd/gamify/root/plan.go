package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfehric/gamify/internal/schedule"
	"github.com/mfehric/gamify/internal/ui"
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a timeline for today's remaining quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()
			svc, cleanup, err := openService(ctx, out)
			if err != nil {
				return err
			}
			defer cleanup()

			slots := schedule.Generate(svc.Catalog(), svc.State(), svc.Engine().Clock.Now())
			if len(slots) == 0 {
				fmt.Fprintln(out, ui.Good.Render("Sve završeno! Nemaš taskova za planiranje danas."))
				return nil
			}

			fmt.Fprintln(out, ui.Heading("🗓️", "Daily Schedule"))
			for _, slot := range slots {
				name := slot.Name
				if slot.Kind == schedule.KindBreak {
					name = ui.Muted.Render(name)
				}
				fmt.Fprintf(out, "%s  %s %s %s\n",
					ui.Key.Render(slot.Start.Format("15:04")), slot.Icon, name,
					ui.Muted.Render(fmt.Sprintf("(%d min)", slot.Minutes)))
			}
			return nil
		},
	}

	return cmd
}
