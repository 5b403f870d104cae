// Package ui 终端界面模块
// progress.go - 基于 progressbar 的进度条
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/tidyup

package ui

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Progress 进度条
// 不可见时所有操作都是空操作，调用方无需判断
type Progress struct {
	bar *progressbar.ProgressBar
}

// NewProgress 创建进度条，绘制到 w
func NewProgress(w io.Writer, total int, description string, visible bool) *Progress {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetVisibility(visible),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	return &Progress{bar: bar}
}

// Step 前进一格
func (p *Progress) Step() {
	_ = p.bar.Add(1)
}

// Finish 结束进度条
func (p *Progress) Finish() {
	_ = p.bar.Finish()
}
