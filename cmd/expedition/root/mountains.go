package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/summitworks/expedition/internal/ui"
)

func newMountainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mountains [name]",
		Short: "List the mountain catalog, or show one mountain in detail",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				mountain, err := a.catalog.Resolve(strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Heading(ui.IconSummit, fmt.Sprintf("%s — %s", mountain.Name, mountain.Location)))
				fmt.Fprintln(out, ui.LabelValue("Height", fmt.Sprintf("%.0f m", mountain.Height)))
				fmt.Fprintln(out, ui.LabelValue("Difficulty", fmt.Sprintf("%s (×%.1f)", mountain.Difficulty, mountain.DifficultyMultiplier)))
				fmt.Fprintln(out, ui.LabelValue("Estimated", fmt.Sprintf("%d days", mountain.EstimatedDays)))
				fmt.Fprintln(out, ui.Muted.Render(mountain.Description))
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render(ui.IconFlag+" Camps"))
				for _, camp := range mountain.Camps {
					fmt.Fprintf(out, "- %s  %s\n", ui.Key.Render(camp.Name),
						ui.Muted.Render(fmt.Sprintf("%.0f m, %d steps", camp.Altitude, camp.StepsRequired)))
				}
				if len(mountain.EquipmentRequired) > 0 {
					fmt.Fprintln(out, ui.LabelValue("Equipment", strings.Join(mountain.EquipmentRequired, ", ")))
				}
				if len(mountain.Hazards) > 0 {
					fmt.Fprintln(out, ui.LabelValue("Hazards", strings.Join(mountain.Hazards, ", ")))
				}
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconSummit, "Mountains"))
			for _, mountain := range a.catalog.Mountains() {
				fmt.Fprintf(out, "- %s  %s\n", ui.Key.Render(mountain.Name),
					ui.Muted.Render(fmt.Sprintf("%.0f m, %s, ~%d days", mountain.Height, mountain.Difficulty, mountain.EstimatedDays)))
			}
			return nil
		},
	}
}
