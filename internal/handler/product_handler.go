package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"productapi/internal/domain/model"
	"productapi/internal/usecase"
	"productapi/internal/validator"

	"github.com/labstack/echo/v4"
)

const (
	MsgProductsRetrieved = "Products retrieved successfully"
	MsgProductRetrieved  = "Product retrieved successfully"
	MsgProductCreated    = "Product created successfully"
	MsgProductUpdated    = "Product updated successfully"
	MsgProductDeleted    = "Product deleted successfully"
)

// 商品API
type ProductHandler struct {
	uc     *usecase.ProductUsecase
	logger *slog.Logger
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: logger}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/get-all-products", h.list)
	e.GET("/get-product-by-id", h.getByID)
	e.POST("/create-products", h.store)
	e.PUT("/update-product-by-id", h.update)
	e.POST("/delete-product-by-id", h.destroy)
}

// パラメータを集めてルール表で検査する
func (h *ProductHandler) bind(c echo.Context, rules validator.RuleSet) (validator.Values, error) {
	in, err := requestValues(c)
	if err != nil {
		return nil, err
	}
	return rules.Validate(in)
}

func (h *ProductHandler) list(c echo.Context) error {
	items, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return success(c, http.StatusOK, MsgProductsRetrieved, items)
}

func (h *ProductHandler) getByID(c echo.Context) error {
	v, err := h.bind(c, validator.GetProductRules)
	if err != nil {
		return h.bindError(c, err)
	}
	id, _ := v.Int("id")

	p, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return success(c, http.StatusOK, MsgProductRetrieved, p)
}

func (h *ProductHandler) store(c echo.Context) error {
	v, err := h.bind(c, validator.CreateProductRules)
	if err != nil {
		return h.bindError(c, err)
	}

	name, _ := v.String("name")
	price, _ := v.Decimal("price")
	description, _ := v.String("description")

	p, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:        name,
		Price:       price,
		Description: description,
		Stock:       v.IntPtr("stock"),
	})
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return success(c, http.StatusCreated, MsgProductCreated, p)
}

func (h *ProductHandler) update(c echo.Context) error {
	v, err := h.bind(c, validator.UpdateProductRules)
	if err != nil {
		return h.bindError(c, err)
	}
	id, _ := v.Int("id")

	p, err := h.uc.UpdateProduct(c.Request().Context(), id, model.ProductPatch{
		Name:        v.StringPtr("name"),
		Price:       v.DecimalPtr("price"),
		Description: v.StringPtr("description"),
		Stock:       v.IntPtr("stock"),
	})
	if err != nil {
		return writeError(c, h.logger, err)
	}
	return success(c, http.StatusOK, MsgProductUpdated, p)
}

// 論理削除。存在しないidでも200
func (h *ProductHandler) destroy(c echo.Context) error {
	v, err := h.bind(c, validator.DeleteProductRules)
	if err != nil {
		return h.bindError(c, err)
	}
	id, _ := v.Int("id")

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return writeError(c, h.logger, err)
	}
	return success(c, http.StatusOK, MsgProductDeleted, nil)
}

func (h *ProductHandler) bindError(c echo.Context, err error) error {
	if errors.Is(err, errMalformedBody) {
		return malformedBody(c)
	}
	return writeError(c, h.logger, err)
}
