package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/hela-notan/internal/engine"
	"github.com/donaldgifford/hela-notan/internal/store"
)

var refreshSummaryCmd = &cobra.Command{
	Use:   "refresh-summary",
	Short: "Recompute the per-model listing summary once and exit",
	RunE:  runRefreshSummary,
}

func init() {
	rootCmd.AddCommand(refreshSummaryCmd)
}

func runRefreshSummary(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), store.WithPoolSize(cfg.Database.PoolSize))
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	eng := engine.NewEngine(st, engine.WithLogger(log))
	if err := eng.RunSummaryRefresh(ctx); err != nil {
		return fmt.Errorf("refreshing summary: %w", err)
	}

	log.Info("summary refresh complete")
	return nil
}
