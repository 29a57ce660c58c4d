package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/hela-notan/internal/api"
	"github.com/donaldgifford/hela-notan/internal/api/middleware"
	"github.com/donaldgifford/hela-notan/internal/engine"
	"github.com/donaldgifford/hela-notan/internal/modelstore"
	"github.com/donaldgifford/hela-notan/internal/store"
	"github.com/donaldgifford/hela-notan/internal/telemetry"
	"github.com/donaldgifford/hela-notan/pkg/tco"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:       cfg.Telemetry.OTLPEndpoint,
		Insecure:       cfg.Telemetry.Insecure,
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: Version,
		SampleRatio:    cfg.Telemetry.SampleRatio,
	})
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), store.WithPoolSize(cfg.Database.PoolSize))
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	models := modelstore.New(
		store.NewAggregatesSource(st),
		modelstore.WithTTL(cfg.Models.CacheTTL),
		modelstore.WithLogger(log),
	)
	calc := tco.NewCalculator(tco.WithEnergyPrices(tco.EnergyPrices{
		PetrolPerLitre:    cfg.TCO.PetrolPerLitre,
		DieselPerLitre:    cfg.TCO.DieselPerLitre,
		ElectricityPerKWh: cfg.TCO.ElectricityPerKWh,
	}))

	eng := engine.NewEngine(st, engine.WithModels(models), engine.WithLogger(log))
	if err := eng.RunModelWarmup(ctx); err != nil {
		log.Warn("initial model warm-up failed", "error", err)
	}

	sched, err := engine.NewScheduler(eng, cfg.Schedule.SummaryInterval, cfg.Schedule.WarmupInterval, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()

	deps := api.Deps{
		Store:          st,
		Models:         models,
		Calculator:     calc,
		Refresher:      eng,
		Log:            log,
		Version:        Version,
		RequestTimeout: cfg.Server.RequestTimeout,
	}
	if cfg.RateLimit.Enabled {
		deps.RateLimit = &middleware.RateLimitConfig{
			PerSecond: cfg.RateLimit.PerSecond,
			Burst:     cfg.RateLimit.Burst,
		}
	}

	e := api.NewServer(deps)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "version", Version, "otlp", tp.Exporting())

	serveErr := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down server")
	case err := <-serveErr:
		log.Error("server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		log.Warn("scheduler jobs still running at shutdown")
	}

	var errs []error
	if err := e.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("shutting down server: %w", err))
	}
	if err := tp.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("flushing telemetry: %w", err))
	}

	log.Info("server stopped")
	return errors.Join(errs...)
}
