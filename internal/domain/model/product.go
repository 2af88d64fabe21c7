package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Slug       string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	CategoryID int64  `gorm:"not null;index" json:"category_id"`
	BrandID    int64  `gorm:"not null;index" json:"brand_id"`

	// 価格は固定小数点、1000の倍数
	PriceCore decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"price_core"`
	Price     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"price"`

	SortNo int `gorm:"not null;default:0" json:"sort_no"`
	Home   int `gorm:"not null;default:0" json:"home"`
	New    int `gorm:"column:new;not null;default:0" json:"new"`

	Introduction         string `gorm:"type:text" json:"introduction"`
	AdditionalIncentives string `gorm:"type:text" json:"additional_incentives"`
	Description          string `gorm:"type:text" json:"description"`
	Specification        string `gorm:"type:text" json:"specification"`

	Category *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"category,omitempty"`
	Brand    *Brand    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"brand,omitempty"`

	// Imagesは挿入順。表示順と次のファイル名連番を決める。
	Images []ProductImage `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"images,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

var ProductSortColumns = []string{"id", "name", "price_core", "price", "sort_no", "home", "new", "created_at"}

func (Product) TableName() string { return "products" }

// Directory はこの商品の画像を置くストレージディレクトリ。
func (p Product) Directory() string { return fmt.Sprintf("products/%d", p.ID) }
