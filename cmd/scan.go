// Package cmd 命令行入口模块
// scan.go - 扫描命令，显示目录文件统计和整理预估
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/tidyup

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tidyup/internal/config"
	"tidyup/internal/scanner"
	"tidyup/internal/ui"
)

// newScanCommand 扫描命令定义
// 只读取目录，不创建也不移动任何文件
func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "扫描统计",
		Long:  "扫描目录第一层，按扩展名统计文件数量和大小，并预估可整理的文件数",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(ctx)
		},
	}
}

// runScan 执行扫描命令
func runScan(ctx *commandContext) error {
	ui.Banner(config.Version)

	files, err := scanner.ScanDirectory(ctx.directory)
	if err != nil {
		return err
	}
	stats := scanner.GetStatistics(files)

	ui.Title("📊", fmt.Sprintf("扫描: %s", ctx.directory))
	ui.Info("文件: %s (%s)", ui.Plural(stats.TotalFiles, "个"), ui.FormatSize(stats.TotalSize))
	ui.Info("目录: %s", ui.Plural(stats.TotalDirs, "个"))
	if stats.TotalOther > 0 {
		ui.Info("其他: %s", ui.Plural(stats.TotalOther, "个")) // 符号链接等，整理时跳过
	}

	if stats.TotalFiles == 0 {
		ui.Warning("没有文件需要整理")
		return nil
	}

	ui.Println()
	rows := make([][]string, 0, len(stats.ExtStats))
	for _, es := range stats.Sorted() {
		category := "-"
		if es.Category != "" {
			category = es.Category + "/"
		}
		rows = append(rows, []string{
			es.Extension,
			fmt.Sprintf("%d", es.Count),
			ui.FormatSize(es.Size),
			category,
		})
	}
	ui.Table(
		[]string{"扩展名", "数量", "大小", "目标"},
		rows,
		[]ui.Align{ui.AlignLeft, ui.AlignRight, ui.AlignRight, ui.AlignLeft},
	)

	ui.Println()
	routable := stats.Routable()
	if routable == 0 {
		ui.Warning("没有可整理的文件")
		return nil
	}
	ui.Success("可整理 %d 个文件（共 %d 个文件）", routable, stats.TotalFiles)
	ui.Dim("运行 tidyup -d %s 开始整理", ctx.directory)
	return nil
}
