// Package errors 错误处理模块
// 定义 tidyup 的两类错误：参数错误（ConfigError）与文件系统错误（IOError）
// 分类跳过（无扩展名、未映射、被过滤）不是错误，不经过本模块
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/tidyup

package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// 重新导出标准库函数，调用方只需导入本包
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)

// ErrNotDirectory 路径存在但不是目录
var ErrNotDirectory = errors.New("not a directory")

// ErrorKind 错误种类
type ErrorKind int

// 错误种类定义
const (
	Unknown         ErrorKind = iota
	IOFailure                 // 文件系统操作失败（致命）
	InvalidArgument           // 参数值非法
	UnknownArgument           // 未知的标志或多余的位置参数
	MissingValue              // 标志缺少必需的值
)

// String 返回错误种类名称
func (k ErrorKind) String() string {
	switch k {
	case IOFailure:
		return "io"
	case InvalidArgument:
		return "invalid-argument"
	case UnknownArgument:
		return "unknown-argument"
	case MissingValue:
		return "missing-value"
	default:
		return "unknown"
	}
}

// ==================== 文件系统错误 ====================

// IOError 文件系统错误
// 创建目录、列目录、读取元数据、移动文件的任何失败都是 IOError
// 一旦出现，整理过程立即终止，不重试
type IOError struct {
	Op   string // 操作名：stat / mkdir / readdir / lstat / rename
	Path string // 出错的路径
	Err  error  // 底层错误
}

// NewIOError 创建文件系统错误
func NewIOError(op, path string, err error) *IOError {
	return &IOError{Op: op, Path: path, Err: err}
}

// Error 格式: "<操作> <路径>: <原因>"
func (e *IOError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s", e.Op, e.Path)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, cause(e.Err))
}

// cause 去掉 os 包错误里重复的操作名和路径
func cause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Err
	}
	return err
}

// Unwrap 返回底层错误，便于 errors.Is(err, fs.ErrNotExist) 之类的判断
func (e *IOError) Unwrap() error {
	return e.Err
}

// Kind 返回错误种类
func (e *IOError) Kind() ErrorKind {
	return IOFailure
}

// ==================== 参数错误 ====================

// ConfigError 命令行参数错误
// 策略：打印用法后正常退出，不触碰文件系统
type ConfigError struct {
	Param string    // 出问题的参数（标志名或位置参数）
	Err   error     // 底层错误（通常来自 pflag）
	kind  ErrorKind // 错误种类
}

// NewConfigError 创建参数错误
func NewConfigError(param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{Param: param, Err: err, kind: kind}
}

// Error 返回参数错误信息
func (e *ConfigError) Error() string {
	switch {
	case e.Err != nil:
		return e.Err.Error()
	case e.kind == UnknownArgument:
		return fmt.Sprintf("unknown argument %s", e.Param)
	case e.kind == MissingValue:
		return fmt.Sprintf("missing value for %s", e.Param)
	default:
		return fmt.Sprintf("invalid argument %s", e.Param)
	}
}

// Unwrap 返回底层错误
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Kind 返回错误种类
func (e *ConfigError) Kind() ErrorKind {
	return e.kind
}

// ==================== 判断函数 ====================

// IsIOError 判断错误链中是否包含 IOError
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}

// IsConfigError 判断错误链中是否包含 ConfigError
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

// PathOf 返回 IOError 携带的路径，非 IOError 返回空字符串
func PathOf(err error) string {
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return ioErr.Path
	}
	return ""
}
