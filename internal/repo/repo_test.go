package repo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/qa_api/internal/dbtest"
	"github.com/Skotchmaster/qa_api/internal/models"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newRepo(t *testing.T) *GormRepo {
	t.Helper()
	r := &GormRepo{DB: dbtest.New(t)}
	require.NoError(t, r.SeedStatuses(context.Background(), discard))
	return r
}

func strPtr(s string) *string { return &s }

func TestSeedStatuses_OnlyWhenEmpty(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, r.SeedStatuses(ctx, discard))
	}

	var statuses []models.Status
	require.NoError(t, r.WithTx(ctx, func(uow *UnitOfWork) error {
		var err error
		statuses, err = uow.Statuses().List()
		return err
	}))

	require.Len(t, statuses, len(models.StatusNames))
	for i, s := range statuses {
		assert.Equal(t, models.StatusNames[i], s.Name)
	}
}

func TestSeedIfEmpty_SkipsPartiallyFilledTable(t *testing.T) {
	r := &GormRepo{DB: dbtest.New(t)}
	ctx := context.Background()

	require.NoError(t, r.DB.Create(&models.Status{Name: models.StatusPending}).Error)

	require.NoError(t, r.WithTx(ctx, func(uow *UnitOfWork) error {
		seeded, err := uow.Statuses().SeedIfEmpty(models.StatusNames)
		assert.False(t, seeded)
		return err
	}))

	var count int64
	require.NoError(t, r.DB.Model(&models.Status{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestStatusFindByName_CaseSensitive(t *testing.T) {
	r := newRepo(t)

	require.NoError(t, r.WithTx(context.Background(), func(uow *UnitOfWork) error {
		s, err := uow.Statuses().FindByName("approved")
		require.NoError(t, err)
		assert.Equal(t, "approved", s.Name)

		_, err = uow.Statuses().FindByName("Approved")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		return nil
	}))
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := r.WithTx(ctx, func(uow *UnitOfWork) error {
		require.NoError(t, uow.Users().Create(&models.User{Name: "ghost"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	require.NoError(t, r.WithTx(ctx, func(uow *UnitOfWork) error {
		users, err := uow.Users().List()
		assert.Empty(t, users)
		return err
	}))
}

func TestUserAlternateKeys_FirstMatch(t *testing.T) {
	r := newRepo(t)

	require.NoError(t, r.WithTx(context.Background(), func(uow *UnitOfWork) error {
		users := uow.Users()
		first := &models.User{Name: "ana", Email: strPtr("ana@qa.io")}
		second := &models.User{Name: "ana", Email: strPtr("ana@qa.io")}
		require.NoError(t, users.Create(first))
		require.NoError(t, users.Create(second))

		byName, err := users.FindByName("ana")
		require.NoError(t, err)
		assert.Equal(t, first.ID, byName.ID)

		byEmail, err := users.FindByEmail("ana@qa.io")
		require.NoError(t, err)
		assert.Equal(t, first.ID, byEmail.ID)

		_, err = users.FindByEmail("nobody@qa.io")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		return nil
	}))
}

func TestProductRepo_PriceStockAndFields(t *testing.T) {
	r := newRepo(t)

	require.NoError(t, r.WithTx(context.Background(), func(uow *UnitOfWork) error {
		products := uow.Products()
		p := &models.Product{Name: "Mouse", Price: 10.0, Stock: 5, Description: strPtr("USB mouse")}
		require.NoError(t, products.Create(p))

		price, err := products.Price(p.ID)
		require.NoError(t, err)
		assert.Equal(t, 10.0, price)

		_, err = products.Price(p.ID + 100)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		ok, err := products.CheckStock(p.ID, 5)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = products.DecrementStock(p.ID, 6)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = products.DecrementStock(p.ID, 2)
		require.NoError(t, err)
		assert.True(t, ok)

		updated, err := products.UpdateField(p.ID, "price", 12.5)
		require.NoError(t, err)
		assert.Equal(t, 12.5, updated.Price)
		assert.Equal(t, 3, updated.Stock)

		_, err = products.UpdateField(p.ID+100, "stock", 1)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		found, err := products.Search("usb")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, p.ID, found[0].ID)
		return nil
	}))
}

func TestTransactionRepo_CreateLoadsStatus(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	var created models.Transaction
	require.NoError(t, r.WithTx(ctx, func(uow *UnitOfWork) error {
		u := &models.User{Name: "bob"}
		require.NoError(t, uow.Users().Create(u))
		p := &models.Product{Name: "Cable", Price: 2, Stock: 1}
		require.NoError(t, uow.Products().Create(p))
		st, err := uow.Statuses().FindByName(models.StatusApproved)
		require.NoError(t, err)

		created = models.Transaction{
			UserID: u.ID, ProductID: p.ID, Quantity: 2, Total: 4,
			TransactionDate: time.Now().UTC(), StatusID: st.ID,
		}
		return uow.Transactions().Create(&created)
	}))
	assert.Equal(t, models.StatusApproved, created.Status.Name)

	require.NoError(t, r.WithTx(ctx, func(uow *UnitOfWork) error {
		byUser, err := uow.Transactions().ListByUser(created.UserID)
		require.NoError(t, err)
		require.Len(t, byUser, 1)
		assert.Equal(t, models.StatusApproved, byUser[0].Status.Name)

		n, err := uow.Transactions().CountByUser(created.UserID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
		n, err = uow.Transactions().CountByProduct(created.ProductID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
		n, err = uow.Transactions().CountByProduct(created.ProductID + 1)
		require.NoError(t, err)
		assert.Zero(t, n)

		require.NoError(t, uow.Transactions().Delete(&byUser[0]))
		err = uow.Transactions().Delete(&byUser[0])
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		return nil
	}))
}
