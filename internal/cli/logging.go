package cli

import (
	"io"
	"os"

	"github.com/rileyhilliard/allocview/internal/config"
	"github.com/rileyhilliard/allocview/internal/errors"
	"github.com/rileyhilliard/allocview/internal/logger"
)

// openLogger creates the process logger. The dashboard owns the terminal, so
// logs go to cfg.LogFile or nowhere. The returned close func is never nil.
func openLogger(cfg *config.Config) (logger.Logger, func(), error) {
	var out io.Writer
	closeFn := func() {}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, errors.WrapWithCode(err, errors.ErrConfig,
				"Can't open log file "+cfg.LogFile,
				"Check the directory exists and is writable, or drop --log-file.")
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	log, err := logger.NewLogrus(logger.Options{
		Output:    out,
		Level:     cfg.LogLevel,
		Component: "allocview",
	})
	if err != nil {
		closeFn()
		return nil, func() {}, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid log level", "Use one of: debug, info, warn, error.")
	}

	logger.SetDefault(log)
	return log, closeFn, nil
}
