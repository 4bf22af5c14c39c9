package usecase

import (
	"context"
	"errors"
	"net/http"

	"productapi/internal/domain/model"
	repo "productapi/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	MsgProductNotFound = "Product not found"
	MsgInternalError   = "Internal server error"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// 全件（statusで絞り込まない）
func (u *ProductUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	items, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, WrapHTTPError(http.StatusInternalServerError, MsgInternalError, err)
	}
	if items == nil {
		items = []model.Product{}
	}
	return items, nil
}

// 無効（status=0）の商品も返す
func (u *ProductUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, MsgProductNotFound)
	}
	if err != nil {
		return model.Product{}, WrapHTTPError(http.StatusInternalServerError, MsgInternalError, err)
	}
	return p, nil
}

type CreateProductInput struct {
	Name        string
	Price       decimal.Decimal
	Description string
	Stock       *int64 // 未指定なら0
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	p := model.Product{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Status:      model.ProductStatusActive,
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}

	created, err := u.productRepo.Create(ctx, p)
	if err != nil {
		return model.Product{}, WrapHTTPError(http.StatusInternalServerError, MsgInternalError, err)
	}
	return created, nil
}

// 送られた項目だけ更新
func (u *ProductUsecase) UpdateProduct(ctx context.Context, productID int64, patch model.ProductPatch) (model.Product, error) {
	p, err := u.productRepo.Update(ctx, productID, patch)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, MsgProductNotFound)
	}
	if err != nil {
		return model.Product{}, WrapHTTPError(http.StatusInternalServerError, MsgInternalError, err)
	}
	return p, nil
}

// 論理削除（status=0）。対象が無くても成功
func (u *ProductUsecase) DeleteProduct(ctx context.Context, productID int64) error {
	if err := u.productRepo.UpdateStatusByID(ctx, productID, model.ProductStatusInactive); err != nil {
		return WrapHTTPError(http.StatusInternalServerError, MsgInternalError, err)
	}
	return nil
}
