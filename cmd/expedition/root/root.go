package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/summitworks/expedition/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "expedition",
	Short:         "Expedition — turn real-world activity into virtual mountain climbs",
	Long:          "Expedition converts daily steps, elevation and workouts into progress along the camps of a virtual mountain, while simulating weather, physiology, equipment wear and acclimatization.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStartCmd(),
		newTickCmd(),
		newStatusCmd(),
		newRestCmd(),
		newHydrateCmd(),
		newDescendCmd(),
		newAbandonCmd(),
		newResetCmd(),
		newMountainsCmd(),
		newHistoryCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
