package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tidyup/internal/errors"
)

func writeFile(t *testing.T, dir, name string, size int) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0644))
}

func TestScanDirectoryIsNotRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.png", 10)
	writeFile(t, dir, "b.txt", 5)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	writeFile(t, filepath.Join(dir, "sub"), "deep.png", 1)

	files, err := ScanDirectory(dir)
	require.NoError(t, err)
	require.Len(t, files, 3)

	// os.ReadDir 按名称排序
	assert.Equal(t, "a.png", files[0].Name)
	assert.Equal(t, "png", files[0].Extension)
	assert.True(t, files[0].IsRegular)
	assert.Equal(t, int64(10), files[0].Size)
	assert.Equal(t, filepath.Join(dir, "a.png"), files[0].Path)

	assert.Equal(t, "sub", files[2].Name)
	assert.True(t, files[2].IsDir)
	assert.False(t, files[2].IsRegular)

	for _, f := range files {
		assert.NotEqual(t, "deep.png", f.Name)
	}
}

func TestOpenMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := Open(missing)
	require.Error(t, err)
	assert.True(t, errors.IsIOError(err))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, missing, errors.PathOf(err))
}

func TestListingEachStopsOnCallbackError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.png", 1)
	writeFile(t, dir, "b.png", 1)
	writeFile(t, dir, "c.png", 1)

	listing, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, listing.Len())
	assert.Equal(t, dir, listing.Dir())

	stop := errors.NewIOError("rename", "b.png", fs.ErrPermission)
	var seen []string
	err = listing.Each(func(f FileInfo) error {
		seen = append(seen, f.Name)
		if f.Name == "b.png" {
			return stop
		}
		return nil
	})
	assert.Same(t, stop, err)
	assert.Equal(t, []string{"a.png", "b.png"}, seen)
}

func TestSymlinkIsNotRegular(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "real.png", 1)
	if err := os.Symlink(filepath.Join(dir, "real.png"), filepath.Join(dir, "link.png")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	files, err := ScanDirectory(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "link.png", files[0].Name)
	assert.False(t, files[0].IsRegular)
	assert.True(t, files[1].IsRegular)
}

func TestGetStatistics(t *testing.T) {
	files := []FileInfo{
		{Name: "a.png", Extension: "png", Size: 100, IsRegular: true},
		{Name: "b.PNG", Extension: "png", Size: 50, IsRegular: true},
		{Name: "c.txt", Extension: "txt", Size: 7, IsRegular: true},
		{Name: "noext", Extension: "", Size: 3, IsRegular: true},
		{Name: "dir", IsDir: true},
		{Name: "link", Extension: "", IsRegular: false},
	}

	stats := GetStatistics(files)
	assert.Equal(t, 4, stats.TotalFiles)
	assert.Equal(t, 1, stats.TotalDirs)
	assert.Equal(t, 1, stats.TotalOther)
	assert.Equal(t, int64(160), stats.TotalSize)
	assert.Equal(t, 2, stats.Routable())

	sorted := stats.Sorted()
	require.Len(t, sorted, 3)
	assert.Equal(t, "png", sorted[0].Extension)
	assert.Equal(t, "images", sorted[0].Category)
	assert.Equal(t, 2, sorted[0].Count)
	assert.Equal(t, int64(150), sorted[0].Size)
	assert.Equal(t, NoExtensionLabel, sorted[1].Extension)
	assert.Equal(t, "txt", sorted[2].Extension)
	assert.Equal(t, "", sorted[2].Category)
}
