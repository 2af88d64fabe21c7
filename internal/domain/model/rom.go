package model

import "time"

// Rom はストレージ容量オプション(GB)。例: 64, 128, 256。
type Rom struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      int       `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

var RomSortColumns = []string{"id", "name", "created_at"}

func (Rom) TableName() string { return "roms" }
