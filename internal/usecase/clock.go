package usecase

import "time"

// Clock は「今」を供給する。期間デフォルトやトークン期限をテスト可能にするため。
type Clock interface {
	Now() time.Time
}
