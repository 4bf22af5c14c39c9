package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// priceはJSONでは数値で返す（"299.99"ではなく299.99）
	decimal.MarshalJSONWithoutQuotes = true
}

// 商品の状態（0:無効 / 1:有効）
const (
	ProductStatusInactive = 0
	ProductStatusActive   = 1
)

// 削除は行を消さずにstatus=0にするだけ。
// gorm.DeletedAtは持たない（読み取りが絞り込まれてしまうため）。
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Stock       int64           `gorm:"not null;default:0" json:"stock"`
	Status      int             `gorm:"not null;default:1" json:"status"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// 部分更新の入力。nilの項目は既存の値を残す。
type ProductPatch struct {
	Name        *string
	Price       *decimal.Decimal
	Description *string
	Stock       *int64
}

// patchの値がある項目だけを上書きする
func (p *Product) Apply(patch ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
}

func (p Product) IsActive() bool {
	return p.Status == ProductStatusActive
}
