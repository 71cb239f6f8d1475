package models

import "time"

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCanceled  = "canceled"
	StatusConcluded = "concluded"
)

// StatusNames is the fixed seed of the statuses table, in id order.
var StatusNames = []string{StatusPending, StatusApproved, StatusRejected, StatusCanceled, StatusConcluded}

type User struct {
	ID    uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string  `gorm:"size:100;not null"        json:"name"`
	Email *string `gorm:"size:100;index"           json:"email"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"size:100;not null;index"  json:"name"`
	Price       float64 `gorm:"not null"                 json:"price"`
	Stock       int     `gorm:"not null"                 json:"stock"`
	Description *string `gorm:"size:255"                 json:"description"`
}

type Status struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"   json:"id"`
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

type Transaction struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	UserID          uint      `gorm:"index;not null"            json:"user_id"`
	User            User      `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	ProductID       uint      `gorm:"index;not null"            json:"product_id"`
	Product         Product   `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Quantity        int       `gorm:"not null;check:quantity>0" json:"quantity"`
	Total           float64   `gorm:"not null"                  json:"total"`
	TransactionDate time.Time `gorm:"not null"                  json:"transaction_date"`
	StatusID        uint      `gorm:"not null"                  json:"status_id"`
	Status          Status    `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

func (User) TableName() string        { return "users" }
func (Product) TableName() string     { return "products" }
func (Status) TableName() string      { return "statuses" }
func (Transaction) TableName() string { return "transactions" }

// All lists every entity in migration order.
func All() []any {
	return []any{&User{}, &Product{}, &Status{}, &Transaction{}}
}
