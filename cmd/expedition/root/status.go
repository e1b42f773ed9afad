package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/summitworks/expedition/internal/ui"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active expedition",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			engine, err := a.loadEngine(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			mountain := engine.Mountain()
			exp, _ := engine.Expedition()
			health := engine.Health()
			acclim := engine.Acclimatization()
			weather := engine.Weather()

			fmt.Fprintln(out, ui.Heading(ui.IconSummit, mountain.Name))
			if camp, ok := engine.CurrentCamp(); ok {
				fmt.Fprintln(out, ui.LabelValue("Camp", fmt.Sprintf("%s (%.0f m)", camp.Name, camp.Altitude)))
			}
			fmt.Fprintln(out, ui.LabelValue("Summit progress", fmt.Sprintf("%.1f%%", engine.SummitProgress()*100)))
			fmt.Fprintln(out, ui.LabelValue("Total steps", exp.TotalSteps))
			fmt.Fprintln(out, ui.LabelValue("Total elevation", fmt.Sprintf("%.0f m", exp.TotalElevation)))
			fmt.Fprintln(out, ui.LabelValue("Started", exp.StartDate.Format("2006-01-02")))
			if exp.IsCompleted && exp.CompletionDate != nil {
				fmt.Fprintln(out, ui.Gold.Render(ui.IconTrophy+" Summited "+exp.CompletionDate.Format("2006-01-02")))
			}

			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render(ui.IconHeart+" Condition"))
			fmt.Fprintf(out, "%s %s  %.0f%%\n", ui.Key.Render("Hydration:"), ui.Meter(health.HydrationLevel), health.HydrationLevel*100)
			fmt.Fprintf(out, "%s %s  %.0f%%\n", ui.Key.Render("Nutrition:"), ui.Meter(health.NutritionLevel), health.NutritionLevel*100)
			fmt.Fprintf(out, "%s   %s  %.0f%%\n", ui.Key.Render("Fatigue:"), ui.Meter(1-health.FatigueLevel), health.FatigueLevel*100)
			if health.AltitudeSicknessSeverity > 0 {
				fmt.Fprintln(out, ui.Warn.Render(fmt.Sprintf("%s Altitude sickness severity %d", ui.IconWarn, health.AltitudeSicknessSeverity)))
			}
			fmt.Fprintln(out, ui.LabelValue("Acclimatized to", fmt.Sprintf("%.0f m (%d days at current altitude, risk %.0f%%)",
				acclim.AcclimatizedAltitude, acclim.DaysAtCurrentAltitude, acclim.AltitudeSicknessRisk*100)))

			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render(ui.IconWeather+" Conditions"))
			fmt.Fprintln(out, ui.LabelValue("Weather", fmt.Sprintf("%s — %s", weather.Name, weather.Description)))
			fmt.Fprintln(out, ui.LabelValue("Zone", engine.CurrentZone().String()))

			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render(ui.IconGear+" Equipment"))
			for _, item := range engine.Equipment() {
				fmt.Fprintf(out, "%s %s  %d%%\n", ui.Key.Render(item.Name+":"), ui.Meter(float64(item.Durability)/100), item.Durability)
			}

			if risks := engine.Risks(); len(risks) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render(ui.IconWarn+" Risks"))
				for _, risk := range risks {
					fmt.Fprintf(out, "- [%s] %s %s\n", risk.Severity, risk.Description, ui.Muted.Render("("+risk.Mitigation+")"))
				}
			}
			if tips := engine.Tips(); len(tips) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render(ui.IconTip+" Tips"))
				for _, tip := range tips {
					fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(tip.Title+":"), tip.Description)
				}
			}
			return nil
		},
	}
}
