package model

import (
	"crypto/md5"
	"fmt"
	"net/url"
	"strings"
	"time"
)

type Role int

const (
	RoleGuest Role = 0
	RoleAdmin Role = 1
)

type Sex int

const (
	SexMale   Sex = 0
	SexFemale Sex = 1
	SexOther  Sex = 2
)

type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password;not null" json:"-"`
	Phone        string `gorm:"type:varchar(20)" json:"phone"`
	Sex          Sex    `gorm:"not null;default:0" json:"sex"`
	Birthday     *time.Time `json:"birthday"`
	Address      string     `gorm:"type:varchar(255)" json:"address"`
	Avatar       string     `gorm:"type:varchar(255)" json:"avatar"`
	Role         Role       `gorm:"not null;default:0" json:"role"`
	TokenVersion int        `gorm:"not null;default:0" json:"-"`

	ResetToken     string     `gorm:"type:varchar(64);index" json:"-"`
	ResetExpiresAt *time.Time `json:"-"`

	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	CreatedAt       time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Directory はこのユーザーのavatarを置くストレージディレクトリ。
func (u User) Directory() string { return fmt.Sprintf("users/%d", u.ID) }

// GravatarURL はemailから導くデフォルトavatar。
// 未登録なら名前のイニシャル画像にフォールバック。
func GravatarURL(email, name string) string {
	fallback := "mp"
	if name != "" {
		fallback = url.QueryEscape("https://ui-avatars.com/api/" + name)
	}
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x.jpg?s=200&d=%s", sum, fallback)
}
