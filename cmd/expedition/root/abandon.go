package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/summitworks/expedition/internal/storage"
	"github.com/summitworks/expedition/internal/ui"
)

func newAbandonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abandon",
		Short: "Abandon the active expedition",
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
			name := engine.Mountain().Name
			snap := engine.Snapshot()
			engine.Abandon()
			if err := a.repo.Archive(ctx, snap, storage.StatusAbandoned); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconFlag, "Abandoned expedition on "+name))
			return nil
		},
	}
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restart the active expedition from base camp",
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
			if err := engine.Reset(); err != nil {
				return err
			}
			if err := a.saveEngine(ctx, engine); err != nil {
				return err
			}
			base := engine.Mountain().BaseCamp()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBoot, "Back to "+base.Name))
			return nil
		},
	}
}
