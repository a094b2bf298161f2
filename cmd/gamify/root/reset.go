package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfehric/gamify/internal/ui"
)

func newResetCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset today's progress (or everything with --all)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()
			svc, cleanup, err := openService(ctx, out)
			if err != nil {
				return err
			}
			defer cleanup()

			if all {
				if err := svc.FullReset(ctx); err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Warn.Render("Full reset done. Fresh start!"))
				return nil
			}
			if err := svc.ResetToday(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Warn.Render("Today's progress cleared."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Wipe all progress, achievements, and custom quests")

	return cmd
}
