package transport

import (
	"time"

	"github.com/Skotchmaster/qa_api/internal/models"
)

// Request bodies use pointers so that an absent field can be told apart from
// a zero value.

type UserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type ProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Description *string  `json:"description"`
}

type StockRequest struct {
	Stock *int `json:"stock"`
}

type PriceRequest struct {
	Price *float64 `json:"price"`
}

type DescriptionRequest struct {
	Description *string `json:"description"`
}

type NameRequest struct {
	Name *string `json:"name"`
}

type CreateTransactionRequest struct {
	UserID    *uint   `json:"user_id"`
	ProductID *uint   `json:"product_id"`
	Quantity  *int    `json:"quantity"`
	Status    *string `json:"status"`
	StatusID  *uint   `json:"status_id"`
}

type UpdateTransactionRequest struct {
	TransactionID *uint `json:"transaction_id"`
	UserID        *uint `json:"user_id"`
	ProductID     *uint `json:"product_id"`
	Quantity      *int  `json:"quantity"`
}

type TransactionStatusRequest struct {
	TransactionID *uint   `json:"transaction_id"`
	Status        *string `json:"status"`
}

type TransactionView struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	ProductID       uint      `json:"product_id"`
	Quantity        int       `json:"quantity"`
	Total           float64   `json:"total"`
	TransactionDate time.Time `json:"transaction_date"`
	StatusID        uint      `json:"status_id"`
	Status          string    `json:"status"`
}

func NewTransactionView(t models.Transaction) TransactionView {
	return TransactionView{
		ID:              t.ID,
		UserID:          t.UserID,
		ProductID:       t.ProductID,
		Quantity:        t.Quantity,
		Total:           t.Total,
		TransactionDate: t.TransactionDate,
		StatusID:        t.StatusID,
		Status:          t.Status.Name,
	}
}

func NewTransactionViews(txs []models.Transaction) []TransactionView {
	views := make([]TransactionView, len(txs))
	for i, t := range txs {
		views[i] = NewTransactionView(t)
	}
	return views
}
