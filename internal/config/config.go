package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

var (
	ErrMissingHubURL   = fmt.Errorf("no hub url configured, set HUBMAN_HUB_URL or hub.url")
	ErrMissingHubToken = fmt.Errorf("no hub api token configured, set HUBMAN_HUB_TOKEN or hub.token")
)

// DefaultConfig returns a config populated with defaults only. Used by
// tests and by callers that inject hub settings directly.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		logrus.Fatalf("error unmarshaling default config: %v", err)
	}

	return &config
}

// Load loads the configuration from .env, an optional config file and the
// environment, in increasing order of precedence.
func Load(configFile string) (*Config, error) {
	loadEnvFile()

	v := viper.New()

	setupViperConfig(v, configFile)
	bindEnvironmentVariables(v)

	config, err := readAndUnmarshalConfig(v)
	if err != nil {
		return nil, err
	}

	if err := setupLogging(config); err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile loads the .env file if it exists
func loadEnvFile() {
	if err := gotenv.Load(); err != nil {
		// .env file not found, that's okay - continue with other sources
		if !os.IsNotExist(err) {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}
}

// setupViperConfig configures viper with file paths and defaults
func setupViperConfig(v *viper.Viper, configFile string) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/hubman")

	if home := os.Getenv("HOME"); len(home) > 0 {
		v.AddConfigPath(home + "/.config/hubman")
	}

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)
	}

	setDefaults(v)

	v.SetEnvPrefix("HUBMAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
}

// bindEnvironmentVariables binds all environment variables to viper
func bindEnvironmentVariables(v *viper.Viper) {
	// Hub environment variables. The JUPYTERHUB_* names match what the hub
	// itself injects into managed services, so a token arrives for free
	// when running as a hub-managed service.
	v.BindEnv("hub.url", "HUBMAN_HUB_URL", "JUPYTERHUB_URL")
	v.BindEnv("hub.token", "HUBMAN_HUB_TOKEN", "JUPYTERHUB_API_TOKEN")
	v.BindEnv("hub.verify_ssl", "HUBMAN_HUB_VERIFY_SSL")
	v.BindEnv("hub.timeout", "HUBMAN_HUB_TIMEOUT")

	// Local service environment variables
	v.BindEnv("server.host", "HUBMAN_SERVER_HOST")
	v.BindEnv("server.port", "HUBMAN_SERVER_PORT")

	bindLoggingEnvVars(v)
}

// bindLoggingEnvVars binds logging configuration environment variables
func bindLoggingEnvVars(v *viper.Viper) {
	v.BindEnv("logging.level", "HUBMAN_LOGGING_LEVEL")
	v.BindEnv("logging.format", "HUBMAN_LOGGING_FORMAT")
}

// readAndUnmarshalConfig reads the configuration file and unmarshals it
func readAndUnmarshalConfig(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed with defaults and environment variables
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setupLogging configures the logging system based on the config
func setupLogging(config *Config) error {
	logrusLevel, err := logrus.ParseLevel(config.Logging.Level)
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}

	logrus.SetLevel(logrusLevel)

	switch strings.ToLower(config.Logging.Format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	default:
		logrus.WithFields(logrus.Fields{
			"format": config.Logging.Format,
		}).Warn("Unknown log format")
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {

	// Hub defaults. URL and token have no default; Validate rejects their
	// absence.
	v.SetDefault("hub.verify_ssl", true)
	v.SetDefault("hub.timeout", "30s")

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)

	// Health defaults
	v.SetDefault("server.health.enabled", true)
	v.SetDefault("server.health.path", "/health")

	// Limit defaults
	v.SetDefault("server.limits.read_timeout", "30s")
	v.SetDefault("server.limits.write_timeout", "60s")
	v.SetDefault("server.limits.idle_timeout", "120s")

	// Security defaults
	v.SetDefault("server.cors.allowed_origins", []string{"*"})
	v.SetDefault("server.cors.allowed_methods", []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("server.cors.allowed_headers", []string{"Authorization", "Content-Type", "X-Requested-With"})

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
