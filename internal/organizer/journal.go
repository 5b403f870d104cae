// Package organizer 文件整理模块
// journal.go - 把整理过程写入 SQLite 日志
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/tidyup

package organizer

import (
	"path/filepath"

	"tidyup/internal/storage"
)

// Journal 基于 storage.Database 的 Recorder 实现
type Journal struct {
	db *storage.Database
}

// OpenJournal 打开日志数据库
func OpenJournal(path string) (*Journal, error) {
	db, err := storage.NewDatabase(path)
	if err != nil {
		return nil, err
	}
	return &Journal{db: db}, nil
}

// Close 关闭日志数据库
func (j *Journal) Close() error {
	return j.db.Close()
}

// Begin 写入运行记录
func (j *Journal) Begin(r *Report, opts Options) error {
	dir := opts.Directory
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return j.db.StartRun(storage.Run{
		ID:        r.RunID,
		Directory: dir,
		Include:   opts.Include.String(),
		Exclude:   opts.Exclude.String(),
		DryRun:    opts.DryRun,
		StartedAt: r.Started,
	})
}

// Record 写入一条移动记录
func (j *Journal) Record(runID string, m Move) error {
	return j.db.AddMove(storage.MoveRecord{
		RunID:      runID,
		SourcePath: m.Source,
		DestPath:   m.Destination,
		Filename:   m.Name,
		Category:   m.Category,
		Overwrote:  m.Overwrote,
	})
}

// End 更新运行结果
func (j *Journal) End(r *Report, runErr error) error {
	return j.db.FinishRun(r.RunID, r.Scanned, r.Moved, r.Finished, runErr)
}
