// Package cmd 命令行入口模块
// stats.go - 整理统计命令，汇总整理日志中的运行次数和分类分布
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/tidyup

package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"tidyup/internal/classifier"
	"tidyup/internal/config"
	"tidyup/internal/ui"
)

// newStatsCommand 统计命令定义
func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "整理统计",
		Long:  "汇总整理日志：运行次数、移动的文件数和各分类分布（预览不计入）",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(ctx)
		},
	}
}

// runStats 执行统计命令
func runStats(ctx *commandContext) error {
	ui.Banner(config.Version)
	ui.Title("📊", "整理统计")
	ui.Divider()

	db, err := openHistory(ctx.settings)
	if err != nil || db == nil {
		return err
	}
	defer db.Close()

	stats, err := db.GetStatistics()
	if err != nil {
		return fmt.Errorf("读取整理日志: %w", err)
	}

	// 运行概况
	ui.Println()
	ui.Info("运行概况:")
	ui.Info("  整理次数:  %d 次", stats.Runs)
	ui.Info("  其中预览:  %d 次", stats.DryRuns)
	ui.Info("  其中失败:  %d 次", stats.Failed)
	ui.Info("  移动文件:  %d 个", stats.Moved)
	ui.Info("  覆盖文件:  %d 个", stats.Overwrote)

	if len(stats.ByCategory) == 0 {
		return nil
	}

	// 分类分布，按路由表顺序，日志中出现的其他分类排在最后
	categories := classifier.Categories()
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c] = true
	}
	var extra []string
	for c := range stats.ByCategory {
		if !known[c] {
			extra = append(extra, c)
		}
	}
	sort.Strings(extra)

	ui.Println()
	ui.Info("分类分布:")
	for _, c := range append(categories, extra...) {
		if n, ok := stats.ByCategory[c]; ok {
			ui.Info("  %-10s %d", c+"/", n)
		}
	}
	return nil
}
