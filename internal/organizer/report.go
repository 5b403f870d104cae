// Package organizer 文件整理模块
// report.go - 整理结果与预览计划输出
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/tidyup

package organizer

import (
	"fmt"
	"sort"

	"tidyup/internal/ui"
)

// MaxDisplayFiles 预览中每个分类最多显示的文件数
const MaxDisplayFiles = 5

// ByCategory 按分类分组移动明细
func (r *Report) ByCategory() map[string][]Move {
	groups := make(map[string][]Move)
	for _, m := range r.Moves {
		groups[m.Category] = append(groups[m.Category], m)
	}
	return groups
}

// PrintPlan 打印预览计划
// 显示目标目录、文件数量和每个分类下的文件
func PrintPlan(r *Report) {
	groups := r.ByCategory()

	lines := []string{
		fmt.Sprintf("📂 目录: %s", r.Directory),
		fmt.Sprintf("📄 文件: %d 个", r.Moved),
		fmt.Sprintf("📁 分类: %d 种", len(groups)),
	}
	ui.Box("📋 整理计划", lines)

	folders := make([]string, 0, len(groups))
	for f := range groups {
		folders = append(folders, f)
	}
	sort.Strings(folders)

	for _, folder := range folders {
		moves := groups[folder]
		ui.Println(fmt.Sprintf("\n  %s %s/ %s", ui.Green("📁"), ui.Bold(folder), ui.Gray(fmt.Sprintf("(%d个)", len(moves)))))

		for i, m := range moves {
			if i >= MaxDisplayFiles {
				ui.Dim("      ... 还有 %d 个文件", len(moves)-MaxDisplayFiles)
				break
			}
			marker := ui.Green("→")
			if m.Overwrote {
				marker = ui.Yellow("!")
			}
			ui.Println(fmt.Sprintf("      %s %s", marker, m.Name))
		}
	}
	ui.Println()
}

// PrintSummary 打印整理结果
func PrintSummary(r *Report) {
	if r.DryRun {
		PrintPlan(r)
		ui.Warning("预览模式 - 未执行实际操作")
		ui.Dim("去掉 -n 参数执行实际整理")
		ui.Success("%s", r.Summary())
		return
	}

	overwrote := 0
	for _, m := range r.Moves {
		if m.Overwrote {
			overwrote++
		}
	}
	if overwrote > 0 {
		ui.Warning("覆盖了 %d 个已存在的同名文件", overwrote)
	}
	ui.Success("%s", r.Summary())
}
