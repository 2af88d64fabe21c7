package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VasBayern/mobile-project/internal/storage"
	"github.com/VasBayern/mobile-project/internal/storage/localfs"
)

func newLifecycle(t *testing.T) (*storage.ImageLifecycle, string) {
	t.Helper()
	dir := t.TempDir()
	return storage.NewImageLifecycle(localfs.New(dir, "/storage")), dir
}

func file(name, content string) storage.File {
	return storage.File{Name: name, Reader: strings.NewReader(content)}
}

func TestUpload_ReplacesDirectory(t *testing.T) {
	lc, root := newLifecycle(t)

	url, err := lc.Upload("categories/1", "Điện thoại", file("photo.PNG", "a"))
	require.NoError(t, err)
	assert.Equal(t, "/storage/categories/1/dien-thoai.png", url)

	// 2回目のUploadは前のファイルを消す
	url, err = lc.Upload("categories/1", "Tablet", file("new.jpg", "b"))
	require.NoError(t, err)
	assert.Equal(t, "/storage/categories/1/tablet.jpg", url)

	entries, err := os.ReadDir(filepath.Join(root, "categories", "1"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tablet.jpg", entries[0].Name())
}

func TestUploadKeep_Appends(t *testing.T) {
	lc, root := newLifecycle(t)

	_, err := lc.UploadKeep("products/3", "iphone 12", file("a.png", "a"))
	require.NoError(t, err)
	_, err = lc.UploadKeep("products/3", "iphone 12-1", file("b.png", "b"))
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(root, "products", "3"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRename(t *testing.T) {
	lc, root := newLifecycle(t)

	url, err := lc.Upload("brands/2", "Samsung", file("logo.png", "x"))
	require.NoError(t, err)

	renamed, err := lc.Rename("brands/2", "Samsung", url, "Samsung VN")
	require.NoError(t, err)
	assert.Equal(t, "/storage/brands/2/samsung-vn.png", renamed)

	_, err = os.Stat(filepath.Join(root, "brands", "2", "samsung-vn.png"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "brands", "2", "samsung.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestRename_SameSlugIsNoop(t *testing.T) {
	lc, _ := newLifecycle(t)

	url, err := lc.Upload("brands/2", "Samsung", file("logo.png", "x"))
	require.NoError(t, err)

	renamed, err := lc.Rename("brands/2", "Samsung", url, "SAMSUNG")
	require.NoError(t, err)
	assert.Equal(t, url, renamed)
}

func TestRename_KeepsPositionalSuffix(t *testing.T) {
	lc, root := newLifecycle(t)

	url, err := lc.UploadKeep("products/5", "iphone-2", file("b.png", "b"))
	require.NoError(t, err)

	renamed, err := lc.Rename("products/5", "iphone", url, "iphone 12")
	require.NoError(t, err)
	assert.Equal(t, "/storage/products/5/iphone-12-2.png", renamed)

	_, err = os.Stat(filepath.Join(root, "products", "5", "iphone-12-2.png"))
	assert.NoError(t, err)
}

func TestRemove(t *testing.T) {
	lc, root := newLifecycle(t)

	url, err := lc.UploadKeep("products/4", "pixel", file("a.png", "a"))
	require.NoError(t, err)

	require.NoError(t, lc.Remove("products/4", url))
	_, err = os.Stat(filepath.Join(root, "products", "4", "pixel.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveDirectory_MissingIsNoop(t *testing.T) {
	lc, _ := newLifecycle(t)
	assert.NoError(t, lc.RemoveDirectory("categories/999"))
}

func TestNextIndex(t *testing.T) {
	cases := []struct {
		lastPath string
		name     string
		want     int
	}{
		{"/storage/products/1/iphone-12.png", "iPhone 12", 1},
		{"/storage/products/1/iphone-12-1.png", "iPhone 12", 2},
		{"/storage/products/1/iphone-12-7.jpg", "iPhone 12", 8},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, storage.NextIndex(tc.lastPath, tc.name), "path %s", tc.lastPath)
	}
}
