package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfehric/gamify/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quests",
		Short: "List quests and today's progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()
			svc, cleanup, err := openService(ctx, out)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.State()
			for i := range svc.Catalog().Quests {
				q := &svc.Catalog().Quests[i]
				ts := st.Tasks[q.ID]

				done := 0
				for _, sub := range q.Subtasks {
					if ts.Subtasks[sub.ID] {
						done++
					}
				}
				header := fmt.Sprintf("%s %s (+%d XP)", q.Icon, q.Name, q.TotalXP())
				if done == len(q.Subtasks) {
					header += " " + ui.Good.Render(ui.IconDone)
				}
				fmt.Fprintln(out, ui.H2.Render(header))
				fmt.Fprintln(out, "  "+ui.Muted.Render(q.Description))
				for _, sub := range q.Subtasks {
					fmt.Fprintf(out, "  %s %s %s %s\n",
						ui.Checkbox(ts.Subtasks[sub.ID]), sub.Name,
						ui.Gold.Render(fmt.Sprintf("+%d", sub.XP)),
						ui.Muted.Render(q.ID+" "+sub.ID))
				}
				if done < len(q.Subtasks) && q.TwoMinuteRule != "" {
					fmt.Fprintln(out, "  "+ui.Muted.Render("⏱️ 2-min start: "+q.TwoMinuteRule))
				}
				if q.HabitStack != "" {
					fmt.Fprintln(out, "  "+ui.Muted.Render("🔗 Habit stack: "+q.HabitStack))
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	return cmd
}
