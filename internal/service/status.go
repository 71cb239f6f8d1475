package service

import (
	"context"

	"github.com/Skotchmaster/qa_api/internal/models"
	"github.com/Skotchmaster/qa_api/internal/repo"
)

type StatusService struct {
	Repo *repo.GormRepo
}

func (s *StatusService) List(ctx context.Context) ([]models.Status, error) {
	return s.Repo.Session(ctx).Statuses().List()
}

func (s *StatusService) Get(ctx context.Context, id uint) (*models.Status, error) {
	status, err := s.Repo.Session(ctx).Statuses().Get(id)
	return status, translate(err, ErrStatusNotFound)
}
