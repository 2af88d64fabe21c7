package model

import (
	"fmt"
	"time"
)

type Brand struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Slug      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Image     string    `gorm:"type:varchar(255)" json:"image"`
	SortNo    int       `gorm:"not null;default:0" json:"sort_no"`
	Home      int       `gorm:"not null;default:0" json:"home"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

var BrandSortColumns = []string{"id", "name", "sort_no", "home", "image", "created_at"}

func (Brand) TableName() string { return "brands" }

// Directory はこのブランドの画像を置くストレージディレクトリ。
func (b Brand) Directory() string { return fmt.Sprintf("brands/%d", b.ID) }
