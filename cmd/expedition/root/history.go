package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/summitworks/expedition/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show completed expeditions and lifetime totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			records, err := a.repo.ListCompleted(ctx)
			if err != nil {
				return err
			}
			stats, err := a.repo.Stats(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Completed expeditions"))
			if len(records) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No summits yet."))
				return nil
			}
			for _, rec := range records {
				when := "—"
				if rec.CompletedAt != nil {
					when = rec.CompletedAt.Format("2006-01-02")
				}
				fmt.Fprintf(out, "- %s  %s\n", ui.Key.Render(rec.MountainName),
					ui.Muted.Render(fmt.Sprintf("%s, %d steps, %.0f m climbed", when, rec.TotalSteps, rec.TotalElevation)))
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Summits", stats.Completed))
			fmt.Fprintln(out, ui.LabelValue("Lifetime steps", stats.TotalSteps))
			fmt.Fprintln(out, ui.LabelValue("Lifetime elevation", fmt.Sprintf("%.0f m", stats.TotalElevation)))
			return nil
		},
	}
}
