package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfehric/gamify/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "gamify",
	Short:         "Gamify — level up your real life",
	Long:          "Gamify is a local-first habit tracker with RPG mechanics: daily quests grant XP, streaks multiply it, missed critical quests cost HP.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newQuestsCmd(),
		newDoCmd(),
		newHabitsCmd(),
		newSlipCmd(),
		newAddCmd(),
		newPlanCmd(),
		newBoardCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
