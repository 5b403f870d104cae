// Package ui 终端界面模块
// 提供终端输出美化功能，包括颜色、图标、表格和进度条
// 普通信息写标准输出，错误写标准错误
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/tidyup

package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ==================== 颜色定义 ====================
// 使用 fatih/color 库定义各种颜色函数
var (
	Cyan     = color.New(color.FgCyan).SprintFunc()             // 青色
	Green    = color.New(color.FgGreen).SprintFunc()            // 绿色（成功）
	Yellow   = color.New(color.FgYellow).SprintFunc()           // 黄色（警告）
	Red      = color.New(color.FgRed).SprintFunc()              // 红色（错误）
	Gray     = color.New(color.FgHiBlack).SprintFunc()          // 灰色（次要信息）
	Bold     = color.New(color.Bold).SprintFunc()               // 粗体
	BoldCyan = color.New(color.FgCyan, color.Bold).SprintFunc() // 青色粗体
)

// ==================== 输出目标 ====================

var (
	out    io.Writer = os.Stdout // 标准输出
	errOut io.Writer = os.Stderr // 标准错误
)

// SetOutput 替换输出目标，nil 表示保持不变
func SetOutput(stdout, stderr io.Writer) {
	if stdout != nil {
		out = stdout
	}
	if stderr != nil {
		errOut = stderr
	}
}

// Stdout 当前标准输出
func Stdout() io.Writer { return out }

// Stderr 当前标准错误
func Stderr() io.Writer { return errOut }

// DisableColor 关闭颜色输出
func DisableColor() {
	color.NoColor = true
}

// IsTerminal 判断写入目标是否为终端
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ==================== 输出函数 ====================

// Banner 打印程序名和版本
func Banner(version string) {
	fmt.Fprintf(out, "\n  %s %s\n  %s\n\n", BoldCyan("tidyup"), Gray("v"+version), Gray("按扩展名整理目录"))
}

// Title 打印标题
// 格式: 图标 + 青色粗体文字
func Title(icon, text string) {
	fmt.Fprintf(out, "\n%s %s\n", icon, BoldCyan(text))
}

// Success 打印成功消息
func Success(format string, args ...interface{}) {
	fmt.Fprintf(out, "  %s %s\n", Green("✓"), fmt.Sprintf(format, args...))
}

// Error 打印错误消息（标准错误）
func Error(format string, args ...interface{}) {
	fmt.Fprintf(errOut, "  %s %s\n", Red("✗"), fmt.Sprintf(format, args...))
}

// Warning 打印警告消息
func Warning(format string, args ...interface{}) {
	fmt.Fprintf(out, "  %s %s\n", Yellow("⚠"), fmt.Sprintf(format, args...))
}

// Info 打印信息消息
func Info(format string, args ...interface{}) {
	fmt.Fprintf(out, "  %s\n", fmt.Sprintf(format, args...))
}

// Dim 打印暗色消息
func Dim(format string, args ...interface{}) {
	fmt.Fprintf(out, "  %s\n", Gray(fmt.Sprintf(format, args...)))
}

// Divider 打印分隔线
func Divider() {
	fmt.Fprintln(out, Gray(strings.Repeat("─", 55)))
}

// Println 直接输出一行
func Println(a ...interface{}) {
	fmt.Fprintln(out, a...)
}

// ==================== 方框绘制 ====================

// Box 绘制带标题的方框
func Box(title string, lines []string) {
	width := 55

	fmt.Fprintln(out, Cyan("╭"+strings.Repeat("─", width-2)+"╮"))

	titlePadding := (width - 4 - displayWidth(title)) / 2
	if titlePadding < 0 {
		titlePadding = 0
	}
	rightPadding := width - 4 - titlePadding - displayWidth(title)
	if rightPadding < 0 {
		rightPadding = 0
	}
	fmt.Fprintf(out, "%s %s%s%s %s\n",
		Cyan("│"),
		strings.Repeat(" ", titlePadding),
		Bold(title),
		strings.Repeat(" ", rightPadding),
		Cyan("│"))

	fmt.Fprintln(out, Cyan("├"+strings.Repeat("─", width-2)+"┤"))

	for _, line := range lines {
		padding := width - 4 - displayWidth(line)
		if padding < 0 {
			padding = 0
		}
		fmt.Fprintf(out, "%s %s%s %s\n", Cyan("│"), line, strings.Repeat(" ", padding), Cyan("│"))
	}

	fmt.Fprintln(out, Cyan("╰"+strings.Repeat("─", width-2)+"╯"))
}

// displayWidth 计算字符串的显示宽度
// 中文字符占2个宽度，ASCII字符占1个宽度
func displayWidth(s string) int {
	width := 0
	for _, r := range s {
		if r > 127 {
			width += 2
		} else {
			width++
		}
	}
	return width
}

// ==================== 格式化函数 ====================

// FormatSize 格式化文件大小（KiB/MiB/GiB）
func FormatSize(size int64) string {
	if size < 0 {
		size = 0
	}
	return humanize.IBytes(uint64(size))
}

// Plural 数量 + 单位
func Plural(n int, unit string) string {
	return fmt.Sprintf("%d %s", n, unit)
}
