package model

import "time"

type Color struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Code      string    `gorm:"type:varchar(7);uniqueIndex;not null" json:"code"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

var ColorSortColumns = []string{"id", "name", "code", "created_at"}

func (Color) TableName() string { return "colors" }
