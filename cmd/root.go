// Package cmd is the base package for executables built from meridian.
package cmd

import (
	"github.com/spf13/pflag"

	"github.com/meridian-im/meridian/config"
)

var (
	// Version is the app's semantic version. Designed to be overwritten by make.
	Version string

	// Branch is the git branch used to build the App. Designed to be overwritten by make.
	Branch string

	// Commit is the git commit used to build the app. Designed to be overwritten by make.
	Commit string
)

// AddFlags registers the server flags on fs and returns a pointer to the
// config file path, which is only known after flags are parsed.
func AddFlags(fs *pflag.FlagSet, cfg *config.Config) *string {
	path := fs.StringP("config", "c", "", "load configuration from file")

	fs.StringVar(&cfg.ServerName, "server-name",
		cfg.ServerName, "domain this server is authoritative for")
	fs.BoolVar(&cfg.CollectMetrics, "metrics",
		cfg.CollectMetrics, "collect server metrics")
	fs.IntVar(&cfg.MetricsPort, "metrics-port",
		cfg.MetricsPort, "metric server port")

	fs.StringVar(&cfg.DATABASE.Path, "db-path",
		cfg.DATABASE.Path, "path to the sqlite database")
	fs.IntVar(&cfg.DATABASE.Connections, "db-connections",
		cfg.DATABASE.Connections, "number of pooled database connections")

	fs.StringVar(&cfg.FEDERATION.Listen, "listen",
		cfg.FEDERATION.Listen, "address the federation server binds to")
	fs.StringVar(&cfg.FEDERATION.Scheme, "federation-scheme",
		cfg.FEDERATION.Scheme, "scheme for outbound federation requests")
	fs.DurationVar(&cfg.FEDERATION.RequestTimeout, "federation-request-timeout",
		cfg.FEDERATION.RequestTimeout, "timeout for outbound federation requests")

	fs.StringVar(&cfg.LOGGING.AppLoggerLevel, "log-app",
		cfg.LOGGING.AppLoggerLevel, "app log level")
	fs.StringVar(&cfg.LOGGING.DevicesLoggerLevel, "log-devices",
		cfg.LOGGING.DevicesLoggerLevel, "devices log level")
	fs.StringVar(&cfg.LOGGING.FederationLoggerLevel, "log-federation",
		cfg.LOGGING.FederationLoggerLevel, "federation log level")
	fs.StringVar(&cfg.LOGGING.SQLLoggerLevel, "log-sql",
		cfg.LOGGING.SQLLoggerLevel, "sql log level")

	return path
}
