// Package organizer 文件整理模块
// 负责创建分类目录、逐个分类文件并移动到对应子目录
// 整个过程单线程、单遍扫描，遇到第一个文件系统错误立即终止
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/tidyup

package organizer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"tidyup/internal/classifier"
	"tidyup/internal/errors"
	"tidyup/internal/logging"
	"tidyup/internal/scanner"
	"tidyup/internal/ui"
)

// ==================== 类型定义 ====================

// Options 一次整理的配置，构造后不再修改
type Options struct {
	Directory string            // 目标目录
	Include   classifier.ExtSet // 包含的扩展名，空表示不限制
	Exclude   classifier.ExtSet // 排除的扩展名，优先于包含
	Verbose   bool              // 逐个文件输出进度
	DryRun    bool              // 预览模式，不创建目录也不移动文件
}

// NewOptions 由命令行参数构造配置，扩展名统一规范化
func NewOptions(dir string, include, exclude []string, verbose, dryRun bool) Options {
	if dir == "" {
		dir = "."
	}
	return Options{
		Directory: dir,
		Include:   classifier.NewExtSet(include...),
		Exclude:   classifier.NewExtSet(exclude...),
		Verbose:   verbose,
		DryRun:    dryRun,
	}
}

// filter 配置对应的分类过滤器
func (o Options) filter() classifier.Filter {
	return classifier.Filter{Include: o.Include, Exclude: o.Exclude}
}

// Move 一次文件移动
type Move struct {
	Name        string // 文件名（保留原始大小写）
	Source      string // 原路径
	Destination string // 新路径
	Category    string // 分类目录名
	Overwrote   bool   // 目标位置已有同名文件并被覆盖
}

// Report 整理结果
type Report struct {
	RunID     string    // 运行 ID
	Directory string    // 目标目录
	DryRun    bool      // 是否为预览
	Scanned   int       // 处理的普通文件数
	Moved     int       // 移动（或预览中将要移动）的文件数
	Skipped   int       // 跳过的文件数
	Created   []string  // 本次新建的分类目录
	Moves     []Move    // 移动明细，按处理顺序
	Started   time.Time // 开始时间
	Finished  time.Time // 结束时间
}

// Recorder 整理日志记录器
// 记录失败只会产生警告，不影响整理本身
type Recorder interface {
	Begin(r *Report, opts Options) error
	Record(runID string, m Move) error
	End(r *Report, runErr error) error
}

// ==================== 引擎 ====================

// Engine 整理引擎
type Engine struct {
	logger   *log.Logger
	recorder Recorder
	progress bool
	now      func() time.Time
}

// Option 引擎选项
type Option func(*Engine)

// WithLogger 设置诊断日志
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRecorder 设置整理日志记录器
func WithRecorder(r Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// WithProgress 非详细模式下是否在标准错误绘制进度条
func WithProgress(show bool) Option {
	return func(e *Engine) { e.progress = show }
}

// New 创建整理引擎
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: logging.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run 执行一次整理
// 流程：检查目录 -> 创建分类目录 -> 列目录 -> 逐个分类并移动
// 返回第一个致命错误（*errors.IOError），此时不返回部分结果
func (e *Engine) Run(opts Options) (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		Directory: opts.Directory,
		DryRun:    opts.DryRun,
		Started:   e.now(),
	}

	journal := e.begin(report, opts)

	err := e.run(opts, report, journal)
	report.Finished = e.now()

	if journal {
		if endErr := e.recorder.End(report, err); endErr != nil {
			e.logger.Warn("journal: finish run failed", "run", report.RunID, "err", endErr)
		}
	}

	if err != nil {
		return nil, err
	}
	return report, nil
}

// run 整理主循环
func (e *Engine) run(opts Options, report *Report, journal bool) error {
	// ========== 步骤1: 创建分类目录 ==========
	if opts.DryRun {
		if err := checkDir(opts.Directory); err != nil {
			return err
		}
	} else {
		created, err := e.Provision(opts.Directory)
		if err != nil {
			return err
		}
		report.Created = created
	}

	// ========== 步骤2: 列出目录 ==========
	listing, err := scanner.Open(opts.Directory)
	if err != nil {
		return err
	}

	bar := ui.NewProgress(ui.Stderr(), listing.Len(), "  整理中", e.progress && !opts.Verbose)
	defer bar.Finish()

	// ========== 步骤3/4: 逐个分类、移动 ==========
	filter := opts.filter()
	return listing.Each(func(f scanner.FileInfo) error {
		defer bar.Step()

		// 目录、符号链接等一律静默跳过
		if !f.IsRegular {
			return nil
		}
		report.Scanned++

		d := filter.Classify(f.Name)
		if !d.Moves() {
			report.Skipped++
			if opts.Verbose {
				ui.Dim("%s (%s)", f.Name, d.Reason)
			}
			return nil
		}

		move, err := e.relocate(f, opts.Directory, d.Category, opts.DryRun)
		if err != nil {
			return err
		}

		report.Moved++
		report.Moves = append(report.Moves, move)
		if opts.Verbose {
			ui.Info("%s → %s/", f.Name, d.Category)
		}
		if journal {
			e.record(report, move)
		}
		return nil
	})
}

// relocate 把文件移动到 dir/category/原文件名
// 目标已存在时直接覆盖（与 rename 语义一致），只记录一条警告
func (e *Engine) relocate(f scanner.FileInfo, dir, category string, dryRun bool) (Move, error) {
	dst := filepath.Join(dir, category, f.Name)
	move := Move{
		Name:        f.Name,
		Source:      f.Path,
		Destination: dst,
		Category:    category,
	}

	if _, err := os.Lstat(dst); err == nil {
		move.Overwrote = true
		e.logger.Warn("overwriting existing file", "path", dst)
	}

	if dryRun {
		return move, nil
	}

	if err := os.Rename(f.Path, dst); err != nil {
		return Move{}, errors.NewIOError("rename", f.Path, err)
	}
	e.logger.Debug("moved", "from", f.Path, "to", dst)
	return move, nil
}

// Provision 为路由表中的每个分类创建子目录
// 已存在的目录不算错误，可以重复调用；返回本次新建的目录
func (e *Engine) Provision(dir string) ([]string, error) {
	if err := checkDir(dir); err != nil {
		return nil, err
	}

	var created []string
	for _, category := range classifier.Categories() {
		path := filepath.Join(dir, category)

		err := os.Mkdir(path, 0755)
		switch {
		case err == nil:
			created = append(created, path)
			e.logger.Info("created folder", "path", path)
		case errors.Is(err, fs.ErrExist):
			info, statErr := os.Stat(path)
			if statErr != nil {
				return created, errors.NewIOError("stat", path, statErr)
			}
			if !info.IsDir() {
				return created, errors.NewIOError("mkdir", path, errors.ErrNotDirectory)
			}
		default:
			return created, errors.NewIOError("mkdir", path, err)
		}
	}
	return created, nil
}

// checkDir 确认目标路径存在且是目录
func checkDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.NewIOError("stat", dir, err)
	}
	if !info.IsDir() {
		return errors.NewIOError("stat", dir, errors.ErrNotDirectory)
	}
	return nil
}

// ==================== 整理日志 ====================

// begin 开始记录，返回本次运行是否继续写日志
func (e *Engine) begin(report *Report, opts Options) bool {
	if e.recorder == nil {
		return false
	}
	if err := e.recorder.Begin(report, opts); err != nil {
		e.logger.Warn("journal: start run failed, continuing without journal", "err", err)
		return false
	}
	return true
}

// record 写一条移动记录；预览模式也会记录，运行本身标记为 dry run
func (e *Engine) record(report *Report, m Move) {
	if err := e.recorder.Record(report.RunID, m); err != nil {
		e.logger.Warn("journal: record move failed", "file", m.Name, "err", err)
	}
}

// Summary 汇总文字
func (r *Report) Summary() string {
	if r.DryRun {
		return fmt.Sprintf("预览完成: 将移动 %d 个文件（共 %d 个文件）", r.Moved, r.Scanned)
	}
	return fmt.Sprintf("整理完成: 移动 %d 个文件（共 %d 个文件）", r.Moved, r.Scanned)
}
