// Package storage はエンティティ画像のblobストアを抽象化し、
// ライフサイクルを通じて保存ファイルと名前の同期を保つ。
package storage

import "io"

// Storage はblobストアの最小契約。パスはスラッシュ区切りでルート相対。
// URL は保存パスを公開URLに変換する。
type Storage interface {
	Exists(path string) bool
	Put(path string, r io.Reader) (string, error)
	Move(oldPath, newPath string) error
	Delete(path string) error
	DeleteDirectory(path string) error
	URL(path string) string
}

// File はHTTP層から切り離したアップロードファイル。
type File struct {
	Name   string
	Reader io.Reader
}
