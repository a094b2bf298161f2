package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfehric/gamify/internal/ui"
)

func newAddCmd() *cobra.Command {
	var description string
	var subtasks []string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a custom quest (icon/identity inferred from the name)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest name is required")
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

			q, err := svc.CreateQuest(ctx, args[0], description, subtasks)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s %s %s added (%s)\n", ui.IconNew, q.Icon, ui.Good.Render(q.Name), ui.Muted.Render(q.ID))
			fmt.Fprintln(out, "  "+ui.Muted.Render(ui.IconMirror+" "+q.Identity))
			for _, sub := range q.Subtasks {
				fmt.Fprintf(out, "  - %s %s\n", sub.Name, ui.Gold.Render(fmt.Sprintf("+%d XP", sub.XP)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "desc", "d", "", "Quest description")
	cmd.Flags().StringArrayVarP(&subtasks, "sub", "s", nil, "Subtask name (repeatable)")

	return cmd
}
