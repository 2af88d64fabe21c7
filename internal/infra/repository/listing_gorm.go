package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	repo "github.com/VasBayern/mobile-project/internal/repository"
)

// listWithCondition は共通の条件付き一覧。name検索、created_at期間、
// 検証済みソート列、オフセットページネーション。全エンティティの一覧が
// ここを通るのでフィルタの意味はテーブル間で揃う。
func listWithCondition[T any](ctx context.Context, db *gorm.DB, cond repo.ListCondition) (repo.Page[T], error) {
	var items []T
	var total int64

	tx := db.WithContext(ctx).Model(new(T))

	if s := strings.TrimSpace(cond.Search); s != "" {
		// rams/romsのnameは整数カラムなのでTEXTにキャストしてから比較する
		tx = tx.Where("LOWER(CAST(name AS TEXT)) LIKE ?", "%"+strings.ToLower(s)+"%")
	}

	tx = tx.Where("created_at BETWEEN ? AND ?", cond.From, cond.To)

	if err := tx.Count(&total).Error; err != nil {
		return repo.Page[T]{}, err
	}

	// cond.OrderBy は上流でホワイトリスト検証済み。生のクライアント入力ではない。
	dir := "asc"
	if cond.Desc {
		dir = "desc"
	}
	tx = tx.Order(cond.OrderBy + " " + dir)
	if cond.OrderBy != "id" {
		// ソート列が同値のときは第2キーでページを安定させる
		tx = tx.Order("id " + dir)
	}

	// PerPageが0以下ならページネーションなし（エクスポート用）
	if cond.PerPage > 0 {
		tx = tx.Offset((cond.Page - 1) * cond.PerPage).Limit(cond.PerPage)
	}
	if err := tx.Find(&items).Error; err != nil {
		return repo.Page[T]{}, err
	}

	return repo.Page[T]{
		Items:   items,
		Total:   total,
		Page:    cond.Page,
		PerPage: cond.PerPage,
	}, nil
}
