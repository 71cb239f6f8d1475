package httpserver

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/qa_api/internal/events"
	"github.com/Skotchmaster/qa_api/internal/repo"
	"github.com/Skotchmaster/qa_api/internal/search"
	"github.com/Skotchmaster/qa_api/internal/service"
)

type Deps struct {
	Default      *DefaultHTTP
	Users        *UserHTTP
	Products     *ProductHTTP
	Statuses     *StatusHTTP
	Transactions *TransactionHTTP
}

type Options struct {
	Events events.Publisher
	// Index is nil when no search cluster is configured.
	Index        search.Index
	EnforceStock bool
}

func NewDeps(gdb *gorm.DB, opts Options) *Deps {
	r := &repo.GormRepo{DB: gdb}
	return &Deps{
		Default: &DefaultHTTP{DB: gdb},
		Users:   &UserHTTP{Svc: &service.UserService{Repo: r, Events: opts.Events}},
		Products: &ProductHTTP{Svc: &service.ProductService{
			Repo:   r,
			Events: opts.Events,
			Index:  opts.Index,
		}},
		Statuses: &StatusHTTP{Svc: &service.StatusService{Repo: r}},
		Transactions: &TransactionHTTP{Svc: &service.TransactionService{
			Repo:         r,
			Events:       opts.Events,
			EnforceStock: opts.EnforceStock,
		}},
	}
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = ErrorHandler

	e.GET("/", d.Default.Index)
	e.GET("/health/live", d.Default.Live)
	e.GET("/health/ready", d.Default.Ready)

	e.GET("/users", d.Users.List)
	e.POST("/user", d.Users.Create)
	e.GET("/user/:ref", d.Users.Get)
	e.PUT("/user/:id", d.Users.Update)
	e.DELETE("/user/:ref", d.Users.Delete)

	products := e.Group("/products")
	products.GET("", d.Products.List)
	products.POST("", d.Products.Create)
	products.GET("/search", d.Products.Search)
	products.GET("/:ref", d.Products.Get)
	products.PUT("/:id", d.Products.Update)
	products.PUT("/:id/stock", d.Products.UpdateStock)
	products.PUT("/:id/price", d.Products.UpdatePrice)
	products.PUT("/:id/description", d.Products.UpdateDescription)
	products.PUT("/:id/name", d.Products.UpdateName)
	products.DELETE("/:ref", d.Products.Delete)

	e.GET("/statuses", d.Statuses.List)
	e.GET("/statuses/:id", d.Statuses.Get)

	e.GET("/transactions", d.Transactions.List)
	e.GET("/transactions/:id", d.Transactions.Get)
	e.GET("/transactions/user/:id", d.Transactions.ListByUser)
	e.POST("/transaction", d.Transactions.Create)
	e.PUT("/transaction", d.Transactions.Update)
	e.PUT("/transaction/status", d.Transactions.UpdateStatus)
	e.DELETE("/transactions/:id", d.Transactions.Delete)
}
