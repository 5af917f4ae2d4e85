package logger_test

import (
	"errors"

	"github.com/wonny/threes/pkg/config"
	"github.com/wonny/threes/pkg/logger"
)

// Example_withFields demonstrates structured logging the way the pipeline does it
func Example_withFields() {
	cfg := &config.Config{
		Env:       "development",
		LogLevel:  "info",
		LogFormat: "console",
	}

	log := logger.New(cfg).Module("builder")

	log.WithFields(map[string]interface{}{
		"season": "2023-24",
		"rows":   30,
	}).Info("Season fetched")

	log.WithError(errors.New("unexpected status code: 503")).Error("Build aborted")
}
