package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/qa_api/internal/models"
)

func TestCreateUser(t *testing.T) {
	env := newTestEnv(t)

	u := env.createUser(t, map[string]any{"name": "alice", "email": "alice@example.com"})
	assert.NotZero(t, u.ID)
	require.NotNil(t, u.Email)
	assert.Equal(t, "alice@example.com", *u.Email)

	noEmail := env.createUser(t, map[string]any{"name": "bob"})
	assert.Nil(t, noEmail.Email)

	rec := env.do(t, http.MethodPost, "/user", map[string]any{"email": "x@example.com"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields (name)", errorBody(t, rec))

	rec = env.do(t, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.User](t, rec), 2)
}

func TestGetUser_ByAlternateKeys(t *testing.T) {
	env := newTestEnv(t)
	first := env.createUser(t, map[string]any{"name": "bob", "email": "bob@example.com"})
	env.createUser(t, map[string]any{"name": "bob", "email": "other@example.com"})

	for _, path := range []string{"/user/1", "/user/bob", "/user/bob@example.com"} {
		rec := env.do(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, first.ID, decode[models.User](t, rec).ID, path)
	}

	rec := env.do(t, http.MethodGet, "/user/nobody", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", errorBody(t, rec))
}

func TestUpdateUser(t *testing.T) {
	env := newTestEnv(t)
	u := env.createUser(t, map[string]any{"name": "bob", "email": "bob@example.com"})

	rec := env.do(t, http.MethodPut, "/user/1", map[string]any{"name": "robert"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[models.User](t, rec)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "robert", got.Name)
	assert.Nil(t, got.Email)

	rec = env.do(t, http.MethodPut, "/user/1", map[string]any{"email": "a@b.c"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, "/user/77", map[string]any{"name": "ghost"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUser_Twice(t *testing.T) {
	env := newTestEnv(t)
	u := env.createUser(t, map[string]any{"name": "carol"})

	rec := env.do(t, http.MethodDelete, "/user/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, u.ID, decode[models.User](t, rec).ID)

	rec = env.do(t, http.MethodDelete, "/user/1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", errorBody(t, rec))
}

func TestDeleteUser_WithTransactionsIsConflict(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, map[string]any{"name": "carol"})
	env.createProduct(t, "Mouse", 10, 5)

	rec := env.do(t, http.MethodPost, "/transaction", map[string]any{
		"user_id": 1, "product_id": 1, "quantity": 1, "status": "pending",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodDelete, "/user/carol", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Conflict", errorBody(t, rec))

	rec = env.do(t, http.MethodGet, "/user/carol", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
