package model

import "time"

// ProductImage は商品の保存画像1枚。行は商品の子で、商品と一緒に消える。
type ProductImage struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64     `gorm:"not null;index" json:"product_id"`
	Path      string    `gorm:"type:varchar(255);not null" json:"path"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (ProductImage) TableName() string { return "image_products" }
