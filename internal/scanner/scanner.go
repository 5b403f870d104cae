// Package scanner 文件扫描模块
// 列出目标目录的第一层条目（不递归），并提供扩展名统计
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/tidyup

package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"tidyup/internal/classifier"
	"tidyup/internal/errors"
)

// ==================== 类型定义 ====================

// FileInfo 文件信息结构体
// 每个目录条目读取一次，分类后要么移动，要么原样保留
type FileInfo struct {
	Path         string    // 文件完整路径
	Name         string    // 文件名（保留原始大小写）
	Extension    string    // 扩展名（小写，不带点号，可能为空）
	Size         int64     // 文件大小（字节）
	ModifiedTime time.Time // 最后修改时间
	IsDir        bool      // 是否为目录
	IsRegular    bool      // 是否为普通文件（符号链接、设备等均为 false）
}

// Listing 一次目录列举的结果
// 条目名在 Open 时读取，元数据在 Each 遍历时逐个读取
type Listing struct {
	dir     string
	entries []os.DirEntry
}

// ==================== 核心扫描函数 ====================

// Open 列出目录的第一层条目
// 目录不存在或不可读时返回 IOError
func Open(dir string) (*Listing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewIOError("readdir", dir, err)
	}
	return &Listing{dir: dir, entries: entries}, nil
}

// Len 条目数量（包含目录和其他非普通文件）
func (l *Listing) Len() int {
	return len(l.entries)
}

// Dir 被列举的目录
func (l *Listing) Dir() string {
	return l.dir
}

// Each 按名称顺序逐个读取条目元数据并回调
// 元数据读取失败返回 IOError；回调返回错误时立即停止
func (l *Listing) Each(fn func(FileInfo) error) error {
	for _, entry := range l.entries {
		path := filepath.Join(l.dir, entry.Name())

		// Info 不跟随符号链接
		info, err := entry.Info()
		if err != nil {
			return errors.NewIOError("lstat", path, err)
		}

		if err := fn(newFileInfo(path, info)); err != nil {
			return err
		}
	}
	return nil
}

// ScanDirectory 扫描目录，返回第一层全部条目
func ScanDirectory(dir string) ([]FileInfo, error) {
	listing, err := Open(dir)
	if err != nil {
		return nil, err
	}

	files := make([]FileInfo, 0, listing.Len())
	err = listing.Each(func(f FileInfo) error {
		files = append(files, f)
		return nil
	})
	return files, err
}

// newFileInfo 由 os.FileInfo 构造 FileInfo
func newFileInfo(path string, info os.FileInfo) FileInfo {
	name := info.Name()
	return FileInfo{
		Path:         path,
		Name:         name,
		Extension:    classifier.Extension(name),
		Size:         info.Size(),
		ModifiedTime: info.ModTime(),
		IsDir:        info.IsDir(),
		IsRegular:    info.Mode().IsRegular(),
	}
}

// ==================== 统计相关类型 ====================

// Statistics 文件统计信息
type Statistics struct {
	TotalFiles int                // 普通文件总数
	TotalDirs  int                // 目录总数
	TotalOther int                // 符号链接等其他条目
	TotalSize  int64              // 普通文件总大小（字节）
	ExtStats   map[string]ExtStat // 按扩展名统计
}

// ExtStat 单个扩展名的统计
type ExtStat struct {
	Extension string // 扩展名，空扩展名记为 NoExtensionLabel
	Category  string // 路由表中的分类，未映射为空
	Count     int    // 文件数量
	Size      int64  // 总大小
}

// NoExtensionLabel 无扩展名文件在统计中的标签
const NoExtensionLabel = "(无扩展名)"

// ==================== 统计函数 ====================

// GetStatistics 统计文件列表
func GetStatistics(files []FileInfo) Statistics {
	stats := Statistics{
		ExtStats: make(map[string]ExtStat),
	}

	for _, f := range files {
		switch {
		case f.IsDir:
			stats.TotalDirs++
			continue
		case !f.IsRegular:
			stats.TotalOther++
			continue
		}

		stats.TotalFiles++
		stats.TotalSize += f.Size

		ext := f.Extension
		if ext == "" {
			ext = NoExtensionLabel
		}

		es := stats.ExtStats[ext]
		es.Extension = ext
		es.Category, _ = classifier.Lookup(f.Extension)
		es.Count++
		es.Size += f.Size
		stats.ExtStats[ext] = es
	}

	return stats
}

// Sorted 按数量降序返回扩展名统计，数量相同时按扩展名排序
func (s Statistics) Sorted() []ExtStat {
	out := make([]ExtStat, 0, len(s.ExtStats))
	for _, es := range s.ExtStats {
		out = append(out, es)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Extension < out[j].Extension
	})
	return out
}

// Routable 路由表能处理的文件数
func (s Statistics) Routable() int {
	n := 0
	for _, es := range s.ExtStats {
		if es.Category != "" {
			n += es.Count
		}
	}
	return n
}
