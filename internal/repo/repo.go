package repo

import (
	"context"

	"gorm.io/gorm"
)

type GormRepo struct {
	DB *gorm.DB
}

// UnitOfWork is a single database transaction. Repositories obtained from it
// read and write through that transaction only; it commits when the WithTx
// callback returns nil and rolls back otherwise.
type UnitOfWork struct {
	tx *gorm.DB
}

func (r *GormRepo) WithTx(ctx context.Context, fn func(uow *UnitOfWork) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UnitOfWork{tx: tx})
	})
}

func (u *UnitOfWork) Users() UserRepo               { return UserRepo{db: u.tx} }
func (u *UnitOfWork) Products() ProductRepo         { return ProductRepo{db: u.tx} }
func (u *UnitOfWork) Statuses() StatusRepo          { return StatusRepo{db: u.tx} }
func (u *UnitOfWork) Transactions() TransactionRepo { return TransactionRepo{db: u.tx} }

// Session returns repositories bound to ctx outside any explicit transaction.
func (r *GormRepo) Session(ctx context.Context) *UnitOfWork {
	return &UnitOfWork{tx: r.DB.WithContext(ctx)}
}
