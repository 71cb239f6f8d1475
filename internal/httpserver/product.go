package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/qa_api/internal/logging"
	"github.com/Skotchmaster/qa_api/internal/models"
	"github.com/Skotchmaster/qa_api/internal/service"
	"github.com/Skotchmaster/qa_api/internal/transport"
)

const searchRef = "search"

type ProductHTTP struct {
	Svc *service.ProductService
}

func (h *ProductHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	products, err := h.Svc.List(ctx)
	if err != nil {
		return fail(l, "list_products", err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	product, err := h.Svc.Get(ctx, c.Param("ref"))
	if err != nil {
		return fail(l, "get_product", err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	// Without ?q the path is a plain lookup of the product named "search".
	if !c.QueryParams().Has("q") {
		product, err := h.Svc.Get(ctx, searchRef)
		if err != nil {
			return fail(l, "get_product", err)
		}
		return c.JSON(http.StatusOK, product)
	}

	q := c.QueryParam("q")
	if q == "" {
		l.Warn("search_products_failed", "status", http.StatusBadRequest, "reason", "empty query")
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields (q)")
	}

	products, err := h.Svc.Search(ctx, q)
	if err != nil {
		return fail(l, "search_products", err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.ProductRequest
	if err := bind(c, l, "create_product", &req); err != nil {
		return err
	}

	product, err := h.Svc.Create(ctx, req)
	if err != nil {
		return fail(l, "create_product", err)
	}

	l.Info("create_product_success", "id", product.ID)
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHTTP) Update(c echo.Context) error {
	var req transport.ProductRequest
	return h.update(c, "update_product", &req, func(id uint) (*models.Product, error) {
		return h.Svc.Update(c.Request().Context(), id, req)
	})
}

func (h *ProductHTTP) UpdateStock(c echo.Context) error {
	var req transport.StockRequest
	return h.update(c, "update_product_stock", &req, func(id uint) (*models.Product, error) {
		return h.Svc.UpdateStock(c.Request().Context(), id, req)
	})
}

func (h *ProductHTTP) UpdatePrice(c echo.Context) error {
	var req transport.PriceRequest
	return h.update(c, "update_product_price", &req, func(id uint) (*models.Product, error) {
		return h.Svc.UpdatePrice(c.Request().Context(), id, req)
	})
}

func (h *ProductHTTP) UpdateDescription(c echo.Context) error {
	var req transport.DescriptionRequest
	return h.update(c, "update_product_description", &req, func(id uint) (*models.Product, error) {
		return h.Svc.UpdateDescription(c.Request().Context(), id, req)
	})
}

func (h *ProductHTTP) UpdateName(c echo.Context) error {
	var req transport.NameRequest
	return h.update(c, "update_product_name", &req, func(id uint) (*models.Product, error) {
		return h.Svc.UpdateName(c.Request().Context(), id, req)
	})
}

// update binds req, then runs apply for the product in the :id path param.
func (h *ProductHTTP) update(c echo.Context, op string, req any, apply func(id uint) (*models.Product, error)) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "product."+op)

	id, err := idParam(c, l, op, "id")
	if err != nil {
		return err
	}
	if err := bind(c, l, op, req); err != nil {
		return err
	}

	product, err := apply(id)
	if err != nil {
		return fail(l, op, err)
	}

	l.Info(op+"_success", "id", product.ID)
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	product, err := h.Svc.Delete(ctx, c.Param("ref"))
	if err != nil {
		return fail(l, "delete_product", err)
	}

	l.Info("delete_product_success", "id", product.ID)
	return c.JSON(http.StatusOK, product)
}
