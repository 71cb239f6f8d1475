package repo

import (
	"context"
	"log/slog"

	"github.com/Skotchmaster/qa_api/internal/models"
)

// SeedStatuses fills the statuses table in one transaction when it is empty.
func (r *GormRepo) SeedStatuses(ctx context.Context, l *slog.Logger) error {
	var seeded bool
	err := r.WithTx(ctx, func(uow *UnitOfWork) error {
		var err error
		seeded, err = uow.Statuses().SeedIfEmpty(models.StatusNames)
		return err
	})
	if err != nil {
		l.Error("seed_statuses_failed", "error", err)
		return err
	}
	if seeded {
		l.Info("statuses seeded", "count", len(models.StatusNames))
	} else {
		l.Debug("statuses already populated")
	}
	return nil
}
