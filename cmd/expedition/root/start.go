package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/summitworks/expedition/internal/sim"
	"github.com/summitworks/expedition/internal/ui"
)

func newStartCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "start <mountain>",
		Short: "Start an expedition on a mountain",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			mountain, err := a.catalog.Resolve(strings.Join(args, " "))
			if err != nil {
				return err
			}

			if seed == 0 {
				seed = a.cfg.Seed
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			if _, ok, err := a.repo.LoadActive(ctx); err != nil {
				return err
			} else if ok {
				return sim.ErrAlreadyActive
			}

			engine := sim.NewEngine(sim.WithSeed(seed))
			if err := engine.Start(mountain); err != nil {
				return err
			}
			if err := a.saveEngine(ctx, engine); err != nil {
				return err
			}

			base := mountain.BaseCamp()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSummit, "Expedition started: "+mountain.Name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Base camp", fmt.Sprintf("%s (%.0f m)", base.Name, base.Altitude)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Summit", fmt.Sprintf("%s (%.0f m, %d steps)", mountain.SummitCamp().Name, mountain.SummitCamp().Altitude, mountain.SummitCamp().StepsRequired)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "weather seed (0 = random)")
	return cmd
}
