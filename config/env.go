package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	AppPort   string `envconfig:"APP_PORT" default:"8080"`
	APIURL    string `envconfig:"ORDERS_API_URL" default:"http://localhost:8000"`
	APIPrefix string `envconfig:"ORDERS_API_PREFIX" default:"/api/orders"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("could not load .env")
	}

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	return &c, nil
}

// SetupLogging applies the log level and format to the standard logrus logger.
func (c *Config) SetupLogging() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "log level %q", c.LogLevel)
	}
	log.SetLevel(level)

	switch c.LogFormat {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return errors.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}
