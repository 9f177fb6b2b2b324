package cli

import (
	"context"
	"os"

	"github.com/rileyhilliard/allocview/internal/config"
	"github.com/rileyhilliard/allocview/internal/dashboard"
	"github.com/rileyhilliard/allocview/internal/errors"
	"github.com/rileyhilliard/allocview/internal/metrics"
)

// dashboardCommand resolves the metrics for cfg.Source and runs the live
// chart on out (stdout when nil) until the user quits.
func dashboardCommand(ctx context.Context, cfg *config.Config, out *os.File) error {
	log, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	src, err := metrics.NewSource(cfg.Source)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrResolution,
			"Can't open metric source '"+cfg.Source+"'",
			"Use --source runtime or --source process.")
	}

	names := metrics.DefaultNames(cfg.Source)
	handles, err := metrics.New(src, names)
	if err != nil {
		log.Error("resolve failed: %v", err)
		return err
	}

	// openLogger installed log as the default, which the controller picks up.
	ctrl, err := dashboard.NewController(handles, cfg.Capacity, nil)
	if err != nil {
		log.Error("controller setup failed: %v", err)
		return err
	}

	log.Info("starting dashboard: source=%s metrics=%v capacity=%d frame-rate=%d",
		cfg.Source, names, cfg.Capacity, cfg.FrameRate)

	err = dashboard.Run(ctx, ctrl, dashboard.Options{
		FrameRate: cfg.FrameRate,
		Step:      cfg.StressStep,
		Source:    cfg.Source,
		Output:    out,
	})
	if err != nil {
		log.Error("dashboard stopped: %v", err)
		return err
	}

	log.Info("dashboard closed")
	return nil
}
