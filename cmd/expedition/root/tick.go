package root

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/summitworks/expedition/internal/sim"
	"github.com/summitworks/expedition/internal/storage"
	"github.com/summitworks/expedition/internal/ui"
)

func newTickCmd() *cobra.Command {
	var (
		steps     int
		elevation float64
		intensity float64
		sleep     float64
		heartRate []float64
		workouts  []string
	)

	cmd := &cobra.Command{
		Use:   "tick",
		Short: "Apply a day's activity to the expedition",
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

			parsed, err := parseWorkouts(workouts)
			if err != nil {
				return err
			}

			result, err := engine.Tick(sim.TickInput{
				Steps:            steps,
				Elevation:        elevation,
				Workouts:         parsed,
				HeartRate:        heartRate,
				WorkoutIntensity: intensity,
				SleepQuality:     sleep,
			})
			if err != nil {
				return err
			}

			if result.Completed {
				if err := a.repo.Archive(ctx, engine.Snapshot(), storage.StatusCompleted); err != nil {
					return err
				}
			} else if err := a.saveEngine(ctx, engine); err != nil {
				return err
			}

			slog.Info("tick applied",
				"steps", steps,
				"credited_steps", result.CreditedSteps,
				"multiplier", fmt.Sprintf("%.3f", result.Progress.EffectiveMultiplier()),
				"weather", engine.Weather().Name,
				"risks", len(result.Risks),
			)

			printTickResult(cmd, engine, result)
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 0, "steps for the day")
	cmd.Flags().Float64Var(&elevation, "elevation", 0, "elevation gain in meters")
	cmd.Flags().Float64Var(&intensity, "intensity", 0, "workout intensity 0-1")
	cmd.Flags().Float64Var(&sleep, "sleep", sim.DefaultSleepQuality, "sleep quality 0-1")
	cmd.Flags().Float64SliceVar(&heartRate, "hr", nil, "heart rate samples (bpm)")
	cmd.Flags().StringArrayVar(&workouts, "workout", nil, "workout as type:minutes (e.g. hiking:90)")
	return cmd
}

// parseWorkouts converts type:minutes flags into workout records.
func parseWorkouts(specs []string) ([]sim.WorkoutData, error) {
	var out []sim.WorkoutData
	for _, spec := range specs {
		kind, minutes, found := strings.Cut(spec, ":")
		if !found {
			return nil, fmt.Errorf("invalid workout %q, want type:minutes", spec)
		}
		dur, err := strconv.Atoi(minutes)
		if err != nil {
			return nil, fmt.Errorf("invalid workout duration %q: %w", minutes, err)
		}
		out = append(out, sim.WorkoutData{
			Type:      sim.WorkoutType(strings.ToLower(strings.TrimSpace(kind))),
			Duration:  time.Duration(dur) * time.Minute,
			StartedAt: time.Now(),
		})
	}
	return out, nil
}

func printTickResult(cmd *cobra.Command, engine *sim.Engine, result sim.TickResult) {
	out := cmd.OutOrStdout()
	p := result.Progress

	fmt.Fprintln(out, ui.Heading(ui.IconBoot, "Day applied"))
	fmt.Fprintln(out, ui.LabelValue("Credited steps", result.CreditedSteps))
	fmt.Fprintln(out, ui.LabelValue("Credited elevation", fmt.Sprintf("%.0f m", result.CreditedElevation)))
	fmt.Fprintln(out, ui.LabelValue("Multiplier", fmt.Sprintf("%.3f (weather %.2f × health %.2f × equipment %.2f × acclimatization %.2f)",
		p.EffectiveMultiplier(), p.WeatherImpact, p.HealthImpact, p.EquipmentImpact, p.AcclimatizationImpact)))
	fmt.Fprintln(out, ui.LabelValue("Weather", engine.Weather().Name))

	for _, camp := range result.ReachedCamps {
		fmt.Fprintln(out, ui.Gold.Render(ui.IconFlag+" Reached "+camp.Name)+ui.Muted.Render(fmt.Sprintf(" (%.0f m)", camp.Altitude)))
	}
	if result.ZoneChange != nil {
		fmt.Fprintln(out, ui.Warn.Render(ui.IconCompass+" Entering the "+result.ZoneChange.To.String()+" zone"))
	}
	if result.Completed {
		fmt.Fprintln(out, ui.Gold.Render(ui.IconTrophy+" Summit reached. Expedition complete!"))
	}

	if len(result.Risks) > 0 {
		fmt.Fprintln(out, "")
		fmt.Fprintln(out, ui.H2.Render(ui.IconWarn+" Active risks"))
		for _, risk := range result.Risks {
			fmt.Fprintf(out, "- [%s] %s %s\n", risk.Severity, risk.Description, ui.Muted.Render("("+risk.Mitigation+")"))
		}
	}
}
