package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/qa_api/internal/events"
	"github.com/Skotchmaster/qa_api/internal/logging"
	"github.com/Skotchmaster/qa_api/internal/models"
	"github.com/Skotchmaster/qa_api/internal/repo"
	"github.com/Skotchmaster/qa_api/internal/search"
	"github.com/Skotchmaster/qa_api/internal/transport"
)

type ProductService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
	// Index mirrors product writes; nil means search goes to the database.
	Index search.Index
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.Repo.Session(ctx).Products().List()
}

// Get resolves ref as an id when numeric and as a name otherwise.
func (s *ProductService) Get(ctx context.Context, ref string) (*models.Product, error) {
	product, err := findProduct(s.Repo.Session(ctx).Products(), ref)
	return product, translate(err, ErrProductNotFound)
}

func (s *ProductService) Create(ctx context.Context, req transport.ProductRequest) (*models.Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        *req.Name,
		Price:       *req.Price,
		Stock:       *req.Stock,
		Description: req.Description,
	}
	err := s.Repo.WithTx(ctx, func(uow *repo.UnitOfWork) error {
		return uow.Products().Create(product)
	})
	if err != nil {
		return nil, translate(err, ErrProductNotFound)
	}

	s.written(ctx, "product_created", product)
	return product, nil
}

// Update overwrites every field of the product.
func (s *ProductService) Update(ctx context.Context, id uint, req transport.ProductRequest) (*models.Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	var product *models.Product
	err := s.Repo.WithTx(ctx, func(uow *repo.UnitOfWork) error {
		var err error
		product, err = uow.Products().Get(id)
		if err != nil {
			return err
		}
		product.Name = *req.Name
		product.Price = *req.Price
		product.Stock = *req.Stock
		product.Description = req.Description
		return uow.Products().Save(product)
	})
	if err != nil {
		return nil, translate(err, ErrProductNotFound)
	}

	s.written(ctx, "product_updated", product)
	return product, nil
}

func (s *ProductService) UpdateStock(ctx context.Context, id uint, req transport.StockRequest) (*models.Product, error) {
	if req.Stock == nil {
		return nil, missingFields("stock")
	}
	return s.updateField(ctx, id, "stock", *req.Stock)
}

func (s *ProductService) UpdatePrice(ctx context.Context, id uint, req transport.PriceRequest) (*models.Product, error) {
	if req.Price == nil {
		return nil, missingFields("price")
	}
	return s.updateField(ctx, id, "price", *req.Price)
}

func (s *ProductService) UpdateDescription(ctx context.Context, id uint, req transport.DescriptionRequest) (*models.Product, error) {
	if isBlank(req.Description) {
		return nil, missingFields("description")
	}
	return s.updateField(ctx, id, "description", *req.Description)
}

func (s *ProductService) UpdateName(ctx context.Context, id uint, req transport.NameRequest) (*models.Product, error) {
	if isBlank(req.Name) {
		return nil, missingFields("name")
	}
	return s.updateField(ctx, id, "name", *req.Name)
}

func (s *ProductService) updateField(ctx context.Context, id uint, column string, value any) (*models.Product, error) {
	var product *models.Product
	err := s.Repo.WithTx(ctx, func(uow *repo.UnitOfWork) error {
		var err error
		product, err = uow.Products().UpdateField(id, column, value)
		return err
	})
	if err != nil {
		return nil, translate(err, ErrProductNotFound)
	}

	s.written(ctx, "product_updated", product)
	return product, nil
}

// Delete removes the product ref resolves to and returns the deleted row.
func (s *ProductService) Delete(ctx context.Context, ref string) (*models.Product, error) {
	var product *models.Product
	err := s.Repo.WithTx(ctx, func(uow *repo.UnitOfWork) error {
		var err error
		product, err = findProduct(uow.Products(), ref)
		if err != nil {
			return err
		}
		refs, err := uow.Transactions().CountByProduct(product.ID)
		if err != nil {
			return err
		}
		if refs > 0 {
			return fmt.Errorf("%w: product %d has %d transactions", ErrConflict, product.ID, refs)
		}
		return uow.Products().Delete(product)
	})
	if err != nil {
		return nil, translate(err, ErrProductNotFound)
	}

	if s.Index != nil {
		if err := s.Index.Remove(ctx, product.ID); err != nil {
			logging.FromContext(ctx).Error("search_remove_failed", "id", product.ID, "error", err)
		}
	}
	events.Notify(ctx, s.Events, events.New("product_deleted", "product", product.ID, nil))
	return product, nil
}

// Search asks the index first and falls back to the database when the index
// is unset or fails.
func (s *ProductService) Search(ctx context.Context, q string) ([]models.Product, error) {
	db := search.DBSearch{Repo: s.Repo}
	if s.Index == nil {
		return db.Search(ctx, q)
	}

	products, err := s.Index.Search(ctx, q)
	if err != nil {
		logging.FromContext(ctx).Warn("search_index_failed", "reason", "falling back to database", "error", err)
		return db.Search(ctx, q)
	}
	return products, nil
}

func (s *ProductService) written(ctx context.Context, typ string, product *models.Product) {
	if s.Index != nil {
		if err := s.Index.Put(ctx, *product); err != nil {
			logging.FromContext(ctx).Error("search_put_failed", "id", product.ID, "error", err)
		}
	}
	events.Notify(ctx, s.Events, events.New(typ, "product", product.ID, product))
}

func validateProduct(req transport.ProductRequest) error {
	var missing []string
	if isBlank(req.Name) {
		missing = append(missing, "name")
	}
	if req.Price == nil {
		missing = append(missing, "price")
	}
	if req.Stock == nil {
		missing = append(missing, "stock")
	}
	if isBlank(req.Description) {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return missingFields(missing...)
	}
	return nil
}

func findProduct(products repo.ProductRepo, ref string) (*models.Product, error) {
	if id, ok := parseID(ref); ok {
		return products.Get(id)
	}
	return products.FindByName(ref)
}
