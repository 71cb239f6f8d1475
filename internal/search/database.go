package search

import (
	"context"
	"strings"

	"github.com/Skotchmaster/qa_api/internal/models"
	"github.com/Skotchmaster/qa_api/internal/repo"
)

// DBSearch answers searches straight from the products table.
type DBSearch struct {
	Repo *repo.GormRepo
}

func (s DBSearch) Search(ctx context.Context, q string) ([]models.Product, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []models.Product{}, nil
	}
	return s.Repo.Session(ctx).Products().Search(q)
}
