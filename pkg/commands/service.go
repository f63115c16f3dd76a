package commands

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/northstar/pkg/app"
	"tableflip.dev/northstar/pkg/logging"
	"tableflip.dev/northstar/pkg/store"
)

// loadService opens the journal and brings legacy data across before any
// command reads it. A failed migration is logged and the command carries on
// with what is already stored. A non-nil on pins the clock to that day.
func loadService(ctx context.Context, on *time.Time) (*app.Service, error) {
	logger, err := logging.New(ro.Verbose)
	if err != nil {
		return nil, err
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg, logger)
	if err != nil {
		logger.Error("opening journal", zap.String("path", cfg.BasePath()), zap.Error(err))
		return nil, err
	}
	l, err := store.LoadLocal(cfg)
	if err != nil {
		return nil, err
	}

	svc := &app.Service{
		Persistence: p,
		Local:       l,
		Logger:      logger,
	}
	if on != nil {
		day := *on
		svc.Now = func() time.Time { return day }
	}

	res, err := svc.Migrate(ctx)
	if err != nil {
		logger.Warn("legacy migration failed", zap.Error(err))
	} else if res.Migrated > 0 {
		logger.Info("legacy entries migrated", zap.Int("count", res.Migrated))
	}
	return svc, nil
}
