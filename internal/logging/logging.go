// Package logging 诊断日志模块
// 基于 charmbracelet/log，诊断信息统一写到标准错误
// 面向用户的输出（进度、汇总）由 internal/ui 负责
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/tidyup

package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Prefix 日志前缀
const Prefix = "tidyup"

// New 创建日志记录器
// level 取值 debug / info / warn / error，无法识别时使用 warn
func New(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  ParseLevel(level),
	})
}

// ParseLevel 解析日志级别
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

// Discard 丢弃所有输出的日志记录器，用于测试和未配置的调用方
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// Verbose 详细模式下把级别放宽到 info，已经更宽松时保持不变
func Verbose(l *log.Logger, verbose bool) {
	if verbose && l.GetLevel() > log.InfoLevel {
		l.SetLevel(log.InfoLevel)
	}
}
