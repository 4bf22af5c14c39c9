package repository

import (
	"context"
	"errors"

	"productapi/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	// statusに関係なく全件
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	// 無ければErrNotFound
	Update(ctx context.Context, id int64, patch model.ProductPatch) (model.Product, error)
	// 該当行が無くてもエラーにしない
	UpdateStatusByID(ctx context.Context, id int64, status int) error
}
