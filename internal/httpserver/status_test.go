package httpserver

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/qa_api/internal/models"
	"github.com/Skotchmaster/qa_api/internal/repo"
)

func TestStatuses_SeededOnceAcrossRestarts(t *testing.T) {
	env := newTestEnv(t)
	r := &repo.GormRepo{DB: env.DB}
	for i := 0; i < 3; i++ {
		require.NoError(t, r.SeedStatuses(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil))))
	}

	rec := env.do(t, http.MethodGet, "/statuses", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	statuses := decode[[]models.Status](t, rec)
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"pending", "approved", "rejected", "canceled", "concluded"}, names)

	rec = env.do(t, http.MethodGet, "/statuses/5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "concluded", decode[models.Status](t, rec).Name)

	rec = env.do(t, http.MethodGet, "/statuses/6", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Status not found", errorBody(t, rec))
}
