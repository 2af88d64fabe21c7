package storage

import (
	"fmt"
	"path"
	"strings"

	"github.com/VasBayern/mobile-project/internal/slug"
)

// ImageLifecycle はエンティティ画像をエンティティごとのディレクトリに
// slugファイル名で保存し、改名時もファイル名を追随させる。
type ImageLifecycle struct {
	store Storage
}

func NewImageLifecycle(store Storage) *ImageLifecycle {
	return &ImageLifecycle{store: store}
}

// Upload はディレクトリの中身をこのファイルで置き換える。
// 保存名は <slug(name)><ext>。単一画像エンティティ用。
func (l *ImageLifecycle) Upload(dir, name string, file File) (string, error) {
	if err := l.RemoveDirectory(dir); err != nil {
		return "", err
	}
	return l.UploadKeep(dir, name, file)
}

// UploadKeep はディレクトリの他のファイルに触らず保存する。
// 複数画像の商品用。
func (l *ImageLifecycle) UploadKeep(dir, name string, file File) (string, error) {
	ext := strings.ToLower(path.Ext(file.Name))
	stored, err := l.store.Put(dir+"/"+slug.Make(name)+ext, file.Reader)
	if err != nil {
		return "", err
	}
	return l.store.URL(stored), nil
}

// Rename は保存ファイルを新しい名前に追随させる。パス最終セグメント内の
// 旧slugを新slugに置き換える。計算後のパスが同じならmoveしない。
func (l *ImageLifecycle) Rename(dir, oldName, oldPath, newName string) (string, error) {
	oldFile := dir + "/" + path.Base(oldPath)
	newFile := replaceLast(oldFile, slug.Make(oldName), slug.Make(newName))

	if newFile != oldFile {
		if err := l.store.Move(oldFile, newFile); err != nil {
			return "", err
		}
	}

	return l.store.URL(newFile), nil
}

// Remove は保存パスまたはURLで指定されたファイルを1つ削除する。
func (l *ImageLifecycle) Remove(dir, storedPath string) error {
	return l.store.Delete(dir + "/" + path.Base(storedPath))
}

// RemoveDirectory は画像ディレクトリごと削除する。存在しなくてもエラーにしない。
func (l *ImageLifecycle) RemoveDirectory(dir string) error {
	if !l.store.Exists(dir) {
		return nil
	}
	return l.store.DeleteDirectory(dir)
}

// NextIndex は直近の保存パスから次の商品画像の連番を導く。
// "iphone-12.png" なら1から、"iphone-12-3.png" なら4から続ける。
func NextIndex(lastPath, name string) int {
	base := strings.TrimSuffix(path.Base(lastPath), path.Ext(lastPath))
	rest := strings.TrimPrefix(base, slug.Make(name))
	if rest == "" {
		return 1
	}
	var n int
	if _, err := fmt.Sscanf(rest, "-%d", &n); err != nil {
		return 1
	}
	return n + 1
}

func replaceLast(s, old, new string) string {
	i := strings.LastIndex(s, old)
	if i < 0 || old == "" {
		return s
	}
	return s[:i] + new + s[i+len(old):]
}
