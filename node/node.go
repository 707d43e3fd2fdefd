// Package node contains the main executable for the meridian server.
package node

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mitchellh/mapstructure"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/meridian-im/meridian/cmd"
	"github.com/meridian-im/meridian/config"
	"github.com/meridian-im/meridian/datastore"
	"github.com/meridian-im/meridian/devices"
	"github.com/meridian-im/meridian/events"
	"github.com/meridian-im/meridian/federation"
	"github.com/meridian-im/meridian/sql"
)

// Logger names.
const (
	AppLogger        = "app"
	DevicesLogger    = "devices"
	FederationLogger = "federation"
	SQLLogger        = "sql"
)

const shutdownGrace = 30 * time.Second

// GetCommand returns the root command of the server.
func GetCommand() *cobra.Command {
	conf := config.DefaultConfig()
	var configPath *string
	c := &cobra.Command{
		Use:   "meridian",
		Short: "start server",
		RunE: func(c *cobra.Command, args []string) error {
			if err := loadConfig(&conf, *configPath); err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			// apply CLI args on top of the config file
			if err := c.ParseFlags(os.Args[1:]); err != nil {
				return fmt.Errorf("parsing flags: %w", err)
			}
			c.SilenceUsage = true

			// os.Interrupt for all systems, syscall.SIGTERM mainly for docker.
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			app, err := New(&conf)
			if err != nil {
				return err
			}
			return app.Start(ctx)
		},
	}
	configPath = cmd.AddFlags(c.PersistentFlags(), &conf)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Run: func(c *cobra.Command, args []string) {
			fmt.Println(cmd.Version)
		},
	}
	c.AddCommand(versionCmd)

	return c
}

// loadConfig loads the config file (if any) into cfg on top of the defaults.
func loadConfig(cfg *config.Config, path string) error {
	v := viper.New()
	if err := config.LoadConfig(path, v); err != nil {
		return err
	}
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	if err := v.Unmarshal(cfg, viper.DecodeHook(hook)); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}

// App is the meridian server application.
type App struct {
	Config *config.Config

	// base logger carries the debug level so that module loggers can pick
	// any level at or above it.
	base *zap.Logger
	log  *zap.Logger
}

// New creates an App from the given configuration.
func New(conf *config.Config) (*App, error) {
	encoder := zap.NewProductionEncoderConfig()
	encoder.EncodeTime = zapcore.ISO8601TimeEncoder
	logCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.DebugLevel),
		Encoding:         "console",
		EncoderConfig:    encoder,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	base, err := logCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	app := &App{
		Config: conf,
		base:   base,
	}
	app.log = app.moduleLogger(AppLogger, conf.LOGGING.AppLoggerLevel)
	return app, nil
}

// moduleLogger derives a named logger restricted to the configured level.
func (app *App) moduleLogger(name, level string) *zap.Logger {
	logger := app.base.Named(name)
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using debug", zap.String("level", level))
		return logger
	}
	return logger.WithOptions(zap.IncreaseLevel(lvl))
}

// Start wires the subsystems together and serves until the context is
// canceled or a serve loop fails.
func (app *App) Start(ctx context.Context) error {
	conf := app.Config
	app.log.Info("starting meridian",
		zap.String("version", cmd.Version),
		zap.String("server_name", conf.ServerName),
		zap.String("listen", conf.FEDERATION.Listen),
	)

	db, err := sql.Open("file:"+conf.DATABASE.Path,
		sql.WithConnections(conf.DATABASE.Connections),
		sql.WithLogger(app.moduleLogger(SQLLogger, conf.LOGGING.SQLLoggerLevel)),
	)
	if err != nil {
		return fmt.Errorf("open database at %s: %w", conf.DATABASE.Path, err)
	}
	defer db.Close()

	store, err := datastore.New(db, datastore.WithLogger(app.moduleLogger(SQLLogger, conf.LOGGING.SQLLoggerLevel)))
	if err != nil {
		return fmt.Errorf("create datastore: %w", err)
	}

	devicesLog := app.moduleLogger(DevicesLogger, conf.LOGGING.DevicesLoggerLevel)
	federationLog := app.moduleLogger(FederationLogger, conf.LOGGING.FederationLoggerLevel)

	reporter := events.NewReporter(devicesLog)
	fedClient := federation.NewClient(conf.ServerName,
		federation.WithScheme(conf.FEDERATION.Scheme),
		federation.WithRequestTimeout(conf.FEDERATION.RequestTimeout),
		federation.WithClientLogger(federationLog),
	)
	handler := devices.NewHandler(conf.ServerName, store, store, fedClient, reporter, clockwork.NewRealClock(), devicesLog)
	updater := devices.NewUpdater(store, fedClient, handler, devicesLog)
	fedServer := federation.NewServer(updater, updater,
		federation.WithServerLogger(federationLog),
	)

	srv := &http.Server{
		Addr:    conf.FEDERATION.Listen,
		Handler: fedServer.Router(),
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		app.log.Info("federation server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("federation server: %w", err)
		}
		return nil
	})

	var metricsSrv *http.Server
	if conf.CollectMetrics {
		metricsSrv = &http.Server{
			Addr:    fmt.Sprintf(":%d", conf.MetricsPort),
			Handler: promhttp.Handler(),
		}
		eg.Go(func() error {
			app.log.Info("metrics server listening", zap.Int("port", conf.MetricsPort))
			if err := metricsSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
	}

	eg.Go(func() error {
		<-ctx.Done()
		app.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		if metricsSrv != nil {
			err = errors.Join(err, metricsSrv.Shutdown(shutdownCtx))
		}
		return err
	})

	return eg.Wait()
}
