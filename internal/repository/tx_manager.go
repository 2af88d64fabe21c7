package repository

import "context"

// TxRepos は開いているトランザクションに紐付いたリポジトリ群。
type TxRepos interface {
	Categories() CategoryRepository
	Brands() BrandRepository
	Colors() ColorRepository
	Rams() RamRepository
	Roms() RomRepository
	Products() ProductRepository
	ProductImages() ProductImageRepository
	Users() UserRepository
}

// TransactionManager はbegin/commit/rollbackをusecaseから隠す。
// fnがerrorを返すと全体がロールバックされる。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
