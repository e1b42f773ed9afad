package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/summitworks/expedition/internal/sim"
	"github.com/summitworks/expedition/internal/ui"
)

// runAction loads the active engine, applies a mitigation and saves the
// result, returning the updated engine for command-specific output.
func runAction(cmd *cobra.Command, header string, apply func(*sim.Engine) error) (*sim.Engine, error) {
	ctx := context.Background()
	a, cleanup, err := openApp(ctx)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	engine, err := a.loadEngine(ctx)
	if err != nil {
		return nil, err
	}
	if err := apply(engine); err != nil {
		return nil, err
	}
	if err := a.saveEngine(ctx, engine); err != nil {
		return nil, err
	}

	out := cmd.OutOrStdout()
	health := engine.Health()
	fmt.Fprintln(out, header)
	fmt.Fprintf(out, "%s %s  %.0f%%\n", ui.Key.Render("Hydration:"), ui.Meter(health.HydrationLevel), health.HydrationLevel*100)
	fmt.Fprintf(out, "%s   %s  %.0f%%\n", ui.Key.Render("Fatigue:"), ui.Meter(1-health.FatigueLevel), health.FatigueLevel*100)
	fmt.Fprintln(out, ui.LabelValue("Sickness risk", fmt.Sprintf("%.0f%%", engine.Acclimatization().AltitudeSicknessRisk*100)))
	return engine, nil
}

func newRestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rest",
		Short: "Take a rest day to recover fatigue",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runAction(cmd, ui.Heading(ui.IconSparkle, "Rested"), (*sim.Engine).Rest)
			return err
		},
	}
}

func newHydrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hydrate",
		Short: "Drink to restore hydration",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runAction(cmd, ui.Heading(ui.IconDrop, "Hydrated"), (*sim.Engine).Hydrate)
			return err
		},
	}
}

func newDescendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "descend",
		Short: "Descend to the previous camp to recover",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := runAction(cmd, ui.Heading(ui.IconCompass, "Descended"), (*sim.Engine).Descend)
			if err != nil {
				return err
			}
			if camp, ok := engine.CurrentCamp(); ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Now at", fmt.Sprintf("%s (%.0f m)", camp.Name, camp.Altitude)))
			}
			return nil
		},
	}
}
