package repository

import (
	"context"
	"errors"
	"fmt"

	"productapi/internal/domain/model"
	repo "productapi/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 全件（削除済み=status 0も含む）
func (r *ProductGormRepository) List(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	if err := r.db.WithContext(ctx).Order("id asc").Find(&products).Error; err != nil {
		return []model.Product{}, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("find product %d: %w", id, err)
	}
	return p, nil
}

// 商品の作成。statusは常に有効で作る
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	p.ID = 0
	p.Status = model.ProductStatusActive
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

// 送られた項目だけ更新して、更新後の行を返す
func (r *ProductGormRepository) Update(ctx context.Context, id int64, patch model.ProductPatch) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		p.Apply(patch)

		return tx.Save(&p).Error
	})
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("update product %d: %w", id, err)
	}
	return p, nil
}

// statusだけ書き換える。対象が無くても成功扱い
func (r *ProductGormRepository) UpdateStatusByID(ctx context.Context, id int64, status int) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update product %d status: %w", id, res.Error)
	}
	return nil
}
