package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Skotchmaster/qa_api/internal/events"
	"github.com/Skotchmaster/qa_api/internal/models"
	"github.com/Skotchmaster/qa_api/internal/repo"
	"github.com/Skotchmaster/qa_api/internal/transport"
)

type TransactionService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
	// EnforceStock rejects purchases beyond the product's stock and takes the
	// quantity off it.
	EnforceStock bool
	Now          func() time.Time
}

func (s *TransactionService) List(ctx context.Context) ([]models.Transaction, error) {
	return s.Repo.Session(ctx).Transactions().List()
}

func (s *TransactionService) Get(ctx context.Context, id uint) (*models.Transaction, error) {
	tx, err := s.Repo.Session(ctx).Transactions().Get(id)
	return tx, translate(err, ErrTransactionNotFound)
}

// ListByUser fails with ErrTransactionNotFound when the user has none.
func (s *TransactionService) ListByUser(ctx context.Context, userID uint) ([]models.Transaction, error) {
	txs, err := s.Repo.Session(ctx).Transactions().ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, fmt.Errorf("%w: user %d has no transactions", ErrTransactionNotFound, userID)
	}
	return txs, nil
}

func (s *TransactionService) Create(ctx context.Context, req transport.CreateTransactionRequest) (*models.Transaction, error) {
	var missing []string
	if req.UserID == nil {
		missing = append(missing, "user_id")
	}
	if req.ProductID == nil {
		missing = append(missing, "product_id")
	}
	if req.Quantity == nil {
		missing = append(missing, "quantity")
	}
	if req.Status == nil && req.StatusID == nil {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		return nil, missingFields(missing...)
	}
	if *req.Quantity <= 0 {
		return nil, invalid("Quantity must be greater than zero")
	}

	var tx *models.Transaction
	err := s.Repo.WithTx(ctx, func(uow *repo.UnitOfWork) error {
		statusID, err := resolveStatus(uow.Statuses(), req.Status, req.StatusID)
		if err != nil {
			return err
		}
		if err := requireUser(uow.Users(), *req.UserID); err != nil {
			return err
		}
		price, err := uow.Products().Price(*req.ProductID)
		if err != nil {
			return translate(err, ErrProductNotFound)
		}
		if s.EnforceStock {
			if err := takeStock(uow.Products(), *req.ProductID, *req.Quantity); err != nil {
				return err
			}
		}

		tx = &models.Transaction{
			UserID:          *req.UserID,
			ProductID:       *req.ProductID,
			Quantity:        *req.Quantity,
			Total:           lineTotal(price, *req.Quantity),
			TransactionDate: s.now(),
			StatusID:        statusID,
		}
		return uow.Transactions().Create(tx)
	})
	if err != nil {
		return nil, translate(err, ErrTransactionNotFound)
	}

	events.Notify(ctx, s.Events, events.New("transaction_created", "transaction", tx.ID, transport.NewTransactionView(*tx)))
	return tx, nil
}

// Update overwrites user, product and quantity and recomputes the total from
// the product's current price. Status and date are kept.
func (s *TransactionService) Update(ctx context.Context, req transport.UpdateTransactionRequest) (*models.Transaction, error) {
	var missing []string
	if req.TransactionID == nil {
		missing = append(missing, "transaction_id")
	}
	if req.UserID == nil {
		missing = append(missing, "user_id")
	}
	if req.ProductID == nil {
		missing = append(missing, "product_id")
	}
	if req.Quantity == nil {
		missing = append(missing, "quantity")
	}
	if len(missing) > 0 {
		return nil, missingFields(missing...)
	}
	if *req.Quantity <= 0 {
		return nil, invalid("Quantity must be greater than zero")
	}

	var tx *models.Transaction
	err := s.Repo.WithTx(ctx, func(uow *repo.UnitOfWork) error {
		var err error
		tx, err = uow.Transactions().Get(*req.TransactionID)
		if err != nil {
			return translate(err, ErrTransactionNotFound)
		}
		if err := requireUser(uow.Users(), *req.UserID); err != nil {
			return err
		}
		price, err := uow.Products().Price(*req.ProductID)
		if err != nil {
			return translate(err, ErrProductNotFound)
		}

		tx.UserID = *req.UserID
		tx.ProductID = *req.ProductID
		tx.Quantity = *req.Quantity
		tx.Total = lineTotal(price, *req.Quantity)
		return uow.Transactions().Save(tx)
	})
	if err != nil {
		return nil, translate(err, ErrTransactionNotFound)
	}

	events.Notify(ctx, s.Events, events.New("transaction_updated", "transaction", tx.ID, transport.NewTransactionView(*tx)))
	return tx, nil
}

func (s *TransactionService) UpdateStatus(ctx context.Context, req transport.TransactionStatusRequest) (*models.Transaction, error) {
	var missing []string
	if req.TransactionID == nil {
		missing = append(missing, "transaction_id")
	}
	if req.Status == nil {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		return nil, missingFields(missing...)
	}

	var tx *models.Transaction
	err := s.Repo.WithTx(ctx, func(uow *repo.UnitOfWork) error {
		statusID, err := resolveStatus(uow.Statuses(), req.Status, nil)
		if err != nil {
			return err
		}
		tx, err = uow.Transactions().Get(*req.TransactionID)
		if err != nil {
			return err
		}
		tx.StatusID = statusID
		return uow.Transactions().Save(tx)
	})
	if err != nil {
		return nil, translate(err, ErrTransactionNotFound)
	}

	events.Notify(ctx, s.Events, events.New("transaction_status_changed", "transaction", tx.ID, transport.NewTransactionView(*tx)))
	return tx, nil
}

// Delete removes the transaction and returns the deleted row.
func (s *TransactionService) Delete(ctx context.Context, id uint) (*models.Transaction, error) {
	var tx *models.Transaction
	err := s.Repo.WithTx(ctx, func(uow *repo.UnitOfWork) error {
		var err error
		tx, err = uow.Transactions().Get(id)
		if err != nil {
			return err
		}
		return uow.Transactions().Delete(tx)
	})
	if err != nil {
		return nil, translate(err, ErrTransactionNotFound)
	}

	events.Notify(ctx, s.Events, events.New("transaction_deleted", "transaction", tx.ID, nil))
	return tx, nil
}

func (s *TransactionService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// resolveStatus turns a status name (exact, case-sensitive) or id into a
// status id. A name takes precedence over an id.
func resolveStatus(statuses repo.StatusRepo, name *string, id *uint) (uint, error) {
	var (
		status *models.Status
		err    error
	)
	switch {
	case name != nil:
		status, err = statuses.FindByName(*name)
	case id != nil:
		status, err = statuses.Get(*id)
	default:
		return 0, ErrInvalidStatus
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: %w", ErrInvalidStatus, err)
	}
	if err != nil {
		return 0, err
	}
	return status.ID, nil
}

func requireUser(users repo.UserRepo, id uint) error {
	ok, err := users.Exists(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: id %d", ErrUserNotFound, id)
	}
	return nil
}

func takeStock(products repo.ProductRepo, id uint, quantity int) error {
	ok, err := products.CheckStock(id, quantity)
	if err != nil {
		return translate(err, ErrProductNotFound)
	}
	if ok {
		ok, err = products.DecrementStock(id, quantity)
		if err != nil {
			return err
		}
	}
	if !ok {
		return fmt.Errorf("%w: product %d", ErrInsufficientStock, id)
	}
	return nil
}

// lineTotal is price * quantity computed in decimal and stored as float64.
func lineTotal(price float64, quantity int) float64 {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity))).InexactFloat64()
}
