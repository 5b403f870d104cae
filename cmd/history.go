// Package cmd 命令行入口模块
// history.go - 整理日志命令，列出历次整理或查看某次整理移动的文件
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/tidyup

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tidyup/internal/config"
	"tidyup/internal/storage"
	"tidyup/internal/ui"
)

// shortIDLen 列表中显示的运行 ID 长度
const shortIDLen = 8

// newHistoryCommand 整理日志命令定义
func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [运行ID]",
		Short: "整理日志",
		Long: `查看 --journal 记录的整理日志。

不指定运行ID时列出最近的整理；指定时显示该次整理移动的文件，
运行ID 可以只写前几位。

示例:
  tidyup history               # 最近 10 次整理
  tidyup history --limit 30    # 最近 30 次整理
  tidyup history 3f2a          # 查看指定整理`,
		Args: maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(ctx, args, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "列出的整理次数")
	return cmd
}

// runHistory 执行整理日志命令
func runHistory(ctx *commandContext, args []string, limit int) error {
	ui.Banner(config.Version)

	db, err := openHistory(ctx.settings)
	if err != nil || db == nil {
		return err
	}
	defer db.Close()

	if len(args) > 0 {
		return showRun(db, args[0])
	}
	return listRuns(db, limit)
}

// openHistory 打开已有的日志数据库
// 数据库不存在时返回 nil，不会创建新文件
func openHistory(settings *config.Settings) (*storage.Database, error) {
	if _, err := os.Stat(settings.JournalPath); os.IsNotExist(err) {
		ui.Warning("没有整理记录")
		ui.Dim("使用 --journal 或设置 %s_JOURNAL=1 记录整理日志", config.EnvPrefix)
		return nil, nil
	}
	return storage.NewDatabase(settings.JournalPath)
}

// listRuns 列出最近的整理
func listRuns(db *storage.Database, limit int) error {
	ui.Title("📋", "整理日志")

	runs, err := db.GetRecentRuns(limit)
	if err != nil {
		return fmt.Errorf("读取整理日志: %w", err)
	}
	if len(runs) == 0 {
		ui.Warning("没有整理记录")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			shortID(r.ID),
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			truncateString(r.Directory, 40),
			fmt.Sprintf("%d/%d", r.Moved, r.Scanned),
			runStatus(r),
		})
	}

	ui.Println()
	ui.Table(
		[]string{"ID", "时间", "目录", "移动", "状态"},
		rows,
		[]ui.Align{ui.AlignLeft, ui.AlignLeft, ui.AlignLeft, ui.AlignRight, ui.AlignLeft},
	)
	ui.Println()
	ui.Dim("使用 'tidyup history <运行ID>' 查看移动的文件")
	return nil
}

// showRun 显示一次整理的详情
func showRun(db *storage.Database, id string) error {
	r, err := db.GetRun(id)
	if err != nil {
		return err
	}

	ui.Title("📋", fmt.Sprintf("整理: %s", r.ID))

	lines := []string{
		fmt.Sprintf("📂 目录: %s", r.Directory),
		fmt.Sprintf("📅 时间: %s", r.StartedAt.Local().Format("2006-01-02 15:04:05")),
		fmt.Sprintf("📄 移动: %d / %d", r.Moved, r.Scanned),
		fmt.Sprintf("📌 状态: %s", runStatus(*r)),
	}
	if r.Include != "" {
		lines = append(lines, fmt.Sprintf("✅ 只整理: %s", r.Include))
	}
	if r.Exclude != "" {
		lines = append(lines, fmt.Sprintf("🚫 跳过: %s", r.Exclude))
	}
	ui.Box("整理详情", lines)

	if r.Error != "" {
		ui.Error("%s", r.Error)
	}

	moves, err := db.GetRunMoves(r.ID)
	if err != nil {
		return fmt.Errorf("读取移动记录: %w", err)
	}
	if len(moves) == 0 {
		ui.Dim("没有移动任何文件")
		return nil
	}

	rows := make([][]string, 0, len(moves))
	for _, m := range moves {
		note := ""
		if m.Overwrote {
			note = ui.Yellow("覆盖")
		}
		rows = append(rows, []string{m.Filename, m.Category + "/", note})
	}

	ui.Println()
	ui.Table([]string{"文件", "分类", "备注"}, rows, nil)
	return nil
}

// runStatus 运行状态的显示文字
func runStatus(r storage.Run) string {
	status := r.Status
	switch r.Status {
	case storage.StatusSuccess:
		status = ui.Green("完成")
	case storage.StatusFailed:
		status = ui.Red("失败")
	case storage.StatusRunning:
		status = ui.Yellow("未结束")
	}
	if r.DryRun {
		status += ui.Gray(" (预览)")
	}
	return status
}

// shortID 截短运行 ID
func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

// truncateString 截断字符串，超出部分用 ... 表示
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return "..." + string(runes[len(runes)-maxLen+3:])
}
