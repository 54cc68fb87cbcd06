package mainboilerplate

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// LogConfig configures handling of application log events.
type LogConfig struct {
	Level  string `long:"level" env:"LEVEL" default:"info" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" choice:"fatal" description:"Logging level"`
	Format string `long:"format" env:"FORMAT" default:"text" choice:"json" choice:"text" choice:"color" description:"Logging output format"`
}

// Validate returns an error if the LogConfig is not well-formed.
func (cfg LogConfig) Validate() error {
	if _, err := log.ParseLevel(cfg.Level); err != nil {
		return err
	}
	switch cfg.Format {
	case "json", "text", "color":
		return nil
	}
	return errors.Errorf("unrecognized log format %q", cfg.Format)
}

// InitLog configures the logger.
func InitLog(cfg LogConfig) {
	if err := cfg.Validate(); err != nil {
		log.WithField("err", err).Fatal("invalid log configuration")
	}

	switch cfg.Format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text":
		log.SetFormatter(&log.TextFormatter{})
	case "color":
		log.SetFormatter(&log.TextFormatter{ForceColors: true})
	}

	var lvl, _ = log.ParseLevel(cfg.Level)
	log.SetLevel(lvl)
}
