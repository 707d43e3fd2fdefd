// Package config contains meridian server configuration definitions.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultConfigFileName = "./config.toml"

// Config defines the top level configuration for a meridian server.
type Config struct {
	BaseConfig `mapstructure:"main"`
	DATABASE   DatabaseConfig   `mapstructure:"database"`
	FEDERATION FederationConfig `mapstructure:"federation"`
	LOGGING    LoggerConfig     `mapstructure:"logging"`
}

// BaseConfig defines the default configuration options for the server.
type BaseConfig struct {
	// ServerName is the domain this server is authoritative for. User ids
	// ending in it are local.
	ServerName string `mapstructure:"server-name"`

	ConfigFile string `mapstructure:"config"`

	CollectMetrics bool `mapstructure:"metrics"`
	MetricsPort    int  `mapstructure:"metrics-port"`
}

// DatabaseConfig holds the sqlite settings.
type DatabaseConfig struct {
	Path        string `mapstructure:"path"`
	Connections int    `mapstructure:"connections"`
}

// FederationConfig holds the federation transport settings.
type FederationConfig struct {
	// Listen is the address the federation server binds to.
	Listen string `mapstructure:"listen"`
	// Scheme used for outbound federation requests, https unless testing.
	Scheme string `mapstructure:"scheme"`
	// RequestTimeout bounds each outbound federation request.
	RequestTimeout time.Duration `mapstructure:"request-timeout"`
}

// LoggerConfig holds the logging level for each module.
type LoggerConfig struct {
	AppLoggerLevel        string `mapstructure:"app"`
	DevicesLoggerLevel    string `mapstructure:"devices"`
	FederationLoggerLevel string `mapstructure:"federation"`
	SQLLoggerLevel        string `mapstructure:"sql"`
}

// DefaultConfig returns the default configuration for a meridian server.
func DefaultConfig() Config {
	return Config{
		BaseConfig: BaseConfig{
			ServerName:     "localhost",
			ConfigFile:     defaultConfigFileName,
			CollectMetrics: false,
			MetricsPort:    1010,
		},
		DATABASE: DatabaseConfig{
			Path:        "./meridian.sql",
			Connections: 16,
		},
		FEDERATION: FederationConfig{
			Listen:         "0.0.0.0:8448",
			Scheme:         "https",
			RequestTimeout: 10 * time.Second,
		},
		LOGGING: LoggerConfig{
			AppLoggerLevel:        "info",
			DevicesLoggerLevel:    "info",
			FederationLoggerLevel: "info",
			SQLLoggerLevel:        "warn",
		},
	}
}

// LoadConfig reads the config file into vip. An explicitly given location
// must exist; the default location is optional.
func LoadConfig(fileLocation string, vip *viper.Viper) error {
	explicit := fileLocation != ""
	if !explicit {
		fileLocation = defaultConfigFileName
	}
	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		if explicit {
			return fmt.Errorf("failed to read config file %s: %w", fileLocation, err)
		}
	}
	return nil
}
