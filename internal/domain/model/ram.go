package model

import "time"

// Ram はメモリ容量オプション(GB)。例: 4, 8, 16。
type Ram struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      int       `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

var RamSortColumns = []string{"id", "name", "created_at"}

func (Ram) TableName() string { return "rams" }
