package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/lvlpath/internal/config"
	"github.com/katalvlaran/lvlpath/internal/logging"
)

// App encapsulates the driver's configuration, logger and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	closer io.Closer
	config *config.Config
}

// NewApp validates cfg and builds the App's own logger. Log records go to
// outW unless cfg.Logging.Logfile is set. Close must be called when done.
func NewApp(outW io.Writer, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(cfg.Logging, outW)
	if err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}
	logger.Debug("Logger configured successfully.", "level", cfg.Logging.Level, "format", cfg.Logging.Format)

	return &App{
		outW:   outW,
		logger: logger,
		closer: closer,
		config: cfg,
	}, nil
}

// Close releases the log file, if any.
func (a *App) Close() error {
	return a.closer.Close()
}
