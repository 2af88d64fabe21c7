package repository

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

// ListCondition は検証済みの一覧条件（検索・期間・ソート・ページ）。
// OrderBy はここに届く前にホワイトリスト検証済み。
type ListCondition struct {
	Search  string
	From    time.Time
	To      time.Time
	OrderBy string
	Desc    bool
	Page    int
	PerPage int
}

// Page はオフセットページネーションの結果envelope。
type Page[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
}
