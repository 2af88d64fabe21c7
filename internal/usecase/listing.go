package usecase

import (
	"net/http"
	"time"

	"github.com/VasBayern/mobile-project/internal/config"
	"github.com/VasBayern/mobile-project/internal/repository"
)

// ConditionInput は一覧リクエストの生の条件。クライアントが送ったままの形。
type ConditionInput struct {
	Search    string
	StartDate string
	EndDate   string
	Sort      int
	Order     int
	PerPage   int
	Page      int
}

// parseCondition は生の条件をソート列ホワイトリストで検証して
// repository.ListCondition に解決する。
//
// Sort はsortColumnsへのindex必須、範囲外はエラー（黙ってフォールバックしない）。
// Order は1で降順、それ以外は昇順。per_pageバケットは設定経由で解決し、
// 未知なら最大値へ。日付はdd/mm/yyyy、デフォルトは01/01/2000〜今日で両端含む。
func parseCondition(in ConditionInput, sortColumns []string, cfg config.Config, now time.Time) (repository.ListCondition, error) {
	if in.Sort < 0 || in.Sort >= len(sortColumns) {
		return repository.ListCondition{}, NewHTTPError(http.StatusBadRequest, "column not found")
	}

	layout := cfg.DateFormat.Input

	start := cfg.DateFormat.DefaultStart
	if in.StartDate != "" {
		start = in.StartDate
	}
	from, err := time.Parse(layout, start)
	if err != nil {
		return repository.ListCondition{}, NewHTTPError(http.StatusBadRequest, "invalid start_date")
	}

	to := now
	if in.EndDate != "" {
		to, err = time.Parse(layout, in.EndDate)
		if err != nil {
			return repository.ListCondition{}, NewHTTPError(http.StatusBadRequest, "invalid end_date")
		}
	}
	// 上限は終了日の丸一日を含める
	to = time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, to.Location())

	page := in.Page
	if page < 1 {
		page = 1
	}

	return repository.ListCondition{
		Search:  in.Search,
		From:    from,
		To:      to,
		OrderBy: sortColumns[in.Sort],
		Desc:    in.Order == 1,
		Page:    page,
		PerPage: cfg.Pagination.PageSize(in.PerPage),
	}, nil
}
