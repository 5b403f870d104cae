// Package storage 数据存储模块
// 提供 SQLite 数据库的封装，用于记录整理日志（每次运行及其移动的文件）
// 日志是可选功能，默认关闭；关闭时不会创建任何数据库文件
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/tidyup

package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	// 使用纯 Go 实现的 SQLite 驱动，无需 CGO
	_ "modernc.org/sqlite"
)

// 运行状态
const (
	StatusRunning = "running" // 进行中
	StatusSuccess = "success" // 成功完成
	StatusFailed  = "failed"  // 因致命错误终止
)

// timeLayout 数据库中时间字段的格式
const timeLayout = "2006-01-02 15:04:05"

// Database 数据库管理器
// 封装 SQLite 数据库连接，提供整理日志的读写接口
type Database struct {
	db *sql.DB // SQLite 数据库连接实例
}

// Run 一次整理运行的记录
type Run struct {
	ID         string    // 运行 ID（uuid）
	Directory  string    // 目标目录
	Include    string    // 包含的扩展名（逗号分隔）
	Exclude    string    // 排除的扩展名（逗号分隔）
	DryRun     bool      // 是否为预览模式
	Status     string    // running / success / failed
	Scanned    int       // 处理的文件数
	Moved      int       // 移动的文件数
	Error      string    // 失败原因
	StartedAt  time.Time // 开始时间
	FinishedAt time.Time // 结束时间（未结束为零值）
}

// MoveRecord 一条文件移动记录
type MoveRecord struct {
	ID         int64     // 记录 ID
	RunID      string    // 所属运行
	SourcePath string    // 原路径
	DestPath   string    // 新路径
	Filename   string    // 文件名
	Category   string    // 分类
	Overwrote  bool      // 是否覆盖了已存在的文件
	CreatedAt  time.Time // 记录时间
}

// NewDatabase 打开（必要时创建）数据库并初始化表结构
// 启用 WAL 模式和 NORMAL 同步模式
func NewDatabase(path string) (*Database, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}

	// WAL 模式减少锁竞争；失败不影响正确性
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA synchronous=NORMAL")

	d := &Database{db: db}
	if err := d.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init journal %s: %w", path, err)
	}
	return d, nil
}

// init 初始化数据库表结构和索引
func (d *Database) init() error {
	schemas := []string{
		// ========== 运行表 ==========
		// 每次整理一行，记录目录、过滤器和结果
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			directory TEXT NOT NULL,
			include_exts TEXT DEFAULT '',
			exclude_exts TEXT DEFAULT '',
			dry_run INTEGER DEFAULT 0,
			status TEXT DEFAULT 'running',
			scanned INTEGER DEFAULT 0,
			moved INTEGER DEFAULT 0,
			error TEXT DEFAULT '',
			started_at TIMESTAMP NOT NULL,
			finished_at TIMESTAMP
		)`,

		// ========== 移动记录表 ==========
		`CREATE TABLE IF NOT EXISTS moves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			source_path TEXT NOT NULL,
			dest_path TEXT NOT NULL,
			filename TEXT NOT NULL,
			category TEXT NOT NULL,
			overwrote INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_moves_run ON moves(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at)`,
	}

	for _, schema := range schemas {
		if _, err := d.db.Exec(schema); err != nil {
			return err
		}
	}
	return nil
}

// Close 关闭数据库连接
func (d *Database) Close() error {
	return d.db.Close()
}

// ==================== 运行记录 ====================

// StartRun 插入一条运行记录，状态为 running
func (d *Database) StartRun(r Run) error {
	_, err := d.db.Exec(`
		INSERT INTO runs (id, directory, include_exts, exclude_exts, dry_run, status, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.Directory, r.Include, r.Exclude, r.DryRun, StatusRunning, r.StartedAt.UTC().Format(timeLayout))
	return err
}

// FinishRun 更新运行结果
// runErr 为 nil 表示成功
func (d *Database) FinishRun(id string, scanned, moved int, finishedAt time.Time, runErr error) error {
	status, msg := StatusSuccess, ""
	if runErr != nil {
		status, msg = StatusFailed, runErr.Error()
	}
	_, err := d.db.Exec(`
		UPDATE runs
		SET status = ?, scanned = ?, moved = ?, error = ?, finished_at = ?
		WHERE id = ?
	`, status, scanned, moved, msg, finishedAt.UTC().Format(timeLayout), id)
	return err
}

// AddMove 记录一次文件移动
func (d *Database) AddMove(m MoveRecord) error {
	_, err := d.db.Exec(`
		INSERT INTO moves (run_id, source_path, dest_path, filename, category, overwrote)
		VALUES (?, ?, ?, ?, ?, ?)
	`, m.RunID, m.SourcePath, m.DestPath, m.Filename, m.Category, m.Overwrote)
	return err
}

// GetRecentRuns 获取最近的运行记录，按开始时间倒序
func (d *Database) GetRecentRuns(limit int) ([]Run, error) {
	rows, err := d.db.Query(`
		SELECT id, directory, include_exts, exclude_exts, dry_run, status, scanned, moved, error, started_at, COALESCE(finished_at, '')
		FROM runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun 按 ID 获取运行记录，支持 ID 前缀
func (d *Database) GetRun(id string) (*Run, error) {
	rows, err := d.db.Query(`
		SELECT id, directory, include_exts, exclude_exts, dry_run, status, scanned, moved, error, started_at, COALESCE(finished_at, '')
		FROM runs
		WHERE id LIKE ? || '%'
		ORDER BY started_at DESC
		LIMIT 2
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var found []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		found = append(found, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	switch len(found) {
	case 0:
		return nil, fmt.Errorf("run %s not found", id)
	case 1:
		return &found[0], nil
	default:
		return nil, fmt.Errorf("run id prefix %s is ambiguous", id)
	}
}

// GetLatestRun 获取最近一次运行的 ID，没有则返回空字符串
func (d *Database) GetLatestRun() string {
	var id string
	d.db.QueryRow(`
		SELECT id FROM runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT 1
	`).Scan(&id)
	return id
}

// GetRunMoves 获取指定运行的全部移动记录，按移动顺序
func (d *Database) GetRunMoves(runID string) ([]MoveRecord, error) {
	rows, err := d.db.Query(`
		SELECT id, run_id, source_path, dest_path, filename, category, overwrote, created_at
		FROM moves
		WHERE run_id = ?
		ORDER BY id ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		var createdAt string
		if err := rows.Scan(&m.ID, &m.RunID, &m.SourcePath, &m.DestPath, &m.Filename, &m.Category, &m.Overwrote, &createdAt); err != nil {
			return nil, err
		}
		m.CreatedAt = parseTime(createdAt)
		moves = append(moves, m)
	}
	return moves, rows.Err()
}

// ==================== 统计 ====================

// Statistics 日志统计，预览运行不计入移动数
type Statistics struct {
	Runs       int            // 运行次数
	Failed     int            // 失败次数
	DryRuns    int            // 预览次数
	Moved      int            // 实际移动的文件总数
	Overwrote  int            // 覆盖已有文件的次数
	ByCategory map[string]int // 各分类实际移动数
}

// GetStatistics 汇总全部运行记录
func (d *Database) GetStatistics() (*Statistics, error) {
	stats := &Statistics{ByCategory: make(map[string]int)}

	err := d.db.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(dry_run), 0),
			COALESCE(SUM(CASE WHEN dry_run = 0 THEN moved ELSE 0 END), 0)
		FROM runs
	`, StatusFailed).Scan(&stats.Runs, &stats.Failed, &stats.DryRuns, &stats.Moved)
	if err != nil {
		return nil, err
	}

	rows, err := d.db.Query(`
		SELECT m.category, COUNT(*), COALESCE(SUM(m.overwrote), 0)
		FROM moves m
		JOIN runs r ON r.id = m.run_id
		WHERE r.dry_run = 0
		GROUP BY m.category
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count, overwrote int
		if err := rows.Scan(&category, &count, &overwrote); err != nil {
			return nil, err
		}
		stats.ByCategory[category] = count
		stats.Overwrote += overwrote
	}
	return stats, rows.Err()
}

// ==================== 重置 ====================

// ResetHistory 清空全部运行和移动记录
func (d *Database) ResetHistory() error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	for _, stmt := range []string{"DELETE FROM moves", "DELETE FROM runs"} {
		if _, err := tx.Exec(stmt); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// ==================== 内部函数 ====================

// rowScanner sql.Rows 与 sql.Row 的公共接口
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanRun 读取一行运行记录
func scanRun(row rowScanner) (Run, error) {
	var r Run
	var startedAt, finishedAt string
	if err := row.Scan(&r.ID, &r.Directory, &r.Include, &r.Exclude, &r.DryRun, &r.Status,
		&r.Scanned, &r.Moved, &r.Error, &startedAt, &finishedAt); err != nil {
		return Run{}, err
	}
	r.StartedAt = parseTime(startedAt)
	r.FinishedAt = parseTime(finishedAt)
	return r, nil
}

// parseTime 解析数据库时间，兼容驱动返回的 RFC3339 格式
func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{timeLayout, time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
