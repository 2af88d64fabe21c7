package model

import (
	"fmt"
	"time"
)

type Category struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Slug      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Image     string    `gorm:"type:varchar(255)" json:"image"`
	SortNo    int       `gorm:"not null;default:0" json:"sort_no"`
	Home      int       `gorm:"not null;default:0" json:"home"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// CategorySortColumns はソート可能列の一覧。indexの並びは一覧APIの契約。
var CategorySortColumns = []string{"id", "name", "sort_no", "home", "image", "created_at"}

func (Category) TableName() string { return "categories" }

// Directory はこのカテゴリの画像を置くストレージディレクトリ。
func (c Category) Directory() string { return fmt.Sprintf("categories/%d", c.ID) }
