package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"helpscout-metrics/internal/collectors"
	"helpscout-metrics/internal/helpscout"
	internalhttp "helpscout-metrics/internal/http"
	"helpscout-metrics/internal/reporters"
	"helpscout-metrics/internal/shared/configs"
	"helpscout-metrics/internal/shared/loggers"
	"helpscout-metrics/internal/shared/ulid"
	"helpscout-metrics/internal/sinks"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	reporter reporters.Reporter
	sink     sinks.Sink

	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
	loopDone         chan struct{}
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "helpscout-metrics").
		Logger()

	// Initialize the helpdesk client and the fan-out collector
	client := helpscout.NewClient(
		config.Helpscout.BaseURL,
		config.Helpscout.APIKey,
		time.Duration(config.Helpscout.Timeout)*time.Second,
	)
	collector := collectors.NewCollector(client, config.Helpscout.Mailboxes)
	reporter := reporters.NewReporter(collector, config.Helpscout.Mailboxes)

	// Metrics go to the latest-values snapshot (served on /report) and to
	// the structured log.
	snapshot := sinks.NewSnapshot()
	sinkLogger := appLogger.With().Str(loggers.FieldComponent, "sink").Logger()
	sink := sinks.Tee(snapshot, sinks.NewLogSink(sinkLogger))

	// Initialize ops router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(snapshot, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
		reporter:  reporter,
		sink:      sink,
	}, nil
}

// Start starts the report loop and the ops HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting helpscout-metrics reporter on port %d (interval=%ds, mailboxes=%v)",
			app.config.Server.Port,
			app.config.Report.Interval,
			app.config.Helpscout.Mailboxes)

	// start the background reporting loop
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.loopDone = make(chan struct{})
	go app.runReportLoop(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// runReportLoop reports once immediately, then on every interval tick
// until the context is cancelled.
func (app *App) runReportLoop(ctx context.Context) {
	defer close(app.loopDone)

	interval := time.Duration(app.config.Report.Interval) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	app.reportOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			app.reportOnce(ctx)
		}
	}
}

// reportOnce runs a single reporting tick with a run-scoped logger.
func (app *App) reportOnce(ctx context.Context) {
	runLogger := app.appLogger.With().
		Str(loggers.FieldComponent, "reporter").
		Str(loggers.FieldRunID, ulid.NewULID()).
		Logger()

	// A failed tick is logged by the reporter and produces no metrics;
	// the next tick self-corrects.
	_ = app.reporter.Report(runLogger.WithContext(ctx), app.sink)
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Cancel the report loop and wait for it to finish
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		<-app.loopDone
		app.appLogger.Info().Msg("Report loop stopped")
	}

	return nil
}
