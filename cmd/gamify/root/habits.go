package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfehric/gamify/internal/ui"
)

func newHabitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habits",
		Short: "List bad habits and their penalties",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()
			svc, cleanup, err := openService(ctx, out)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, h := range svc.Catalog().BadHabits {
				fmt.Fprintf(out, "%s %s %s\n", h.Icon, ui.H2.Render(h.Name), ui.Muted.Render("("+h.ID+")"))
				fmt.Fprintln(out, "  "+ui.Muted.Render(h.Description))
				fmt.Fprintf(out, "  %s %d XP / %d HP\n", ui.Bad.Render("Penalty:"), h.XPPenalty, h.HPPenalty)
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	return cmd
}
