// Package config 配置管理模块
// 提供版本信息和运行环境设置
// 设置来自环境变量（TIDYUP_ 前缀）和命令行标志，不读取配置文件
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/tidyup

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// 版本和作者信息常量
const (
	Version   = "1.0.0"                              // 程序版本号
	BuildDate = "2026"                               // 构建日期
	Author    = "lynx-lee"                           // 作者
	Homepage  = "https://github.com/lynx-lee/tidyup" // 项目主页
	License   = "MIT"                                // 开源许可
)

// EnvPrefix 环境变量前缀
const EnvPrefix = "TIDYUP"

// 设置项键名
const (
	KeyHome     = "home"      // 数据目录
	KeyJournal  = "journal"   // 是否记录整理日志
	KeyLogLevel = "log_level" // 诊断日志级别
	KeyNoColor  = "no_color"  // 禁用颜色
)

// JournalFile 日志数据库文件名
const JournalFile = "journal.db"

// Settings 运行环境设置
type Settings struct {
	DataDir     string // 数据目录 (~/.tidyup)
	JournalPath string // 日志数据库路径 (~/.tidyup/journal.db)
	Journal     bool   // 是否记录整理日志
	LogLevel    string // 诊断日志级别: debug / info / warn / error
	NoColor     bool   // 禁用颜色输出
}

// Defaults 默认设置
func Defaults() Settings {
	return Settings{
		DataDir:  defaultDataDir(),
		Journal:  false,
		LogLevel: "warn",
	}
}

// defaultDataDir 默认数据目录，无法确定用户目录时退回当前目录
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".tidyup"
	}
	return filepath.Join(home, ".tidyup")
}

// Load 加载设置
// 优先级：命令行标志 > 环境变量 > 默认值
// flags 可以为 nil；只有已注册的同名标志才会被绑定
func Load(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault(KeyHome, defaults.DataDir)
	v.SetDefault(KeyJournal, defaults.Journal)
	v.SetDefault(KeyLogLevel, defaults.LogLevel)
	v.SetDefault(KeyNoColor, defaults.NoColor)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		// 标志名与键名一一对应（journal -> journal）
		for _, key := range []string{KeyJournal, KeyNoColor} {
			flag := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flag.Name, err)
			}
		}
	}

	s := &Settings{
		DataDir:  v.GetString(KeyHome),
		Journal:  v.GetBool(KeyJournal),
		LogLevel: strings.ToLower(v.GetString(KeyLogLevel)),
		NoColor:  v.GetBool(KeyNoColor),
	}
	if s.DataDir == "" {
		s.DataDir = defaults.DataDir
	}
	s.JournalPath = filepath.Join(s.DataDir, JournalFile)

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate 校验设置
func (s *Settings) Validate() error {
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid %s_LOG_LEVEL %q (want debug, info, warn or error)", EnvPrefix, s.LogLevel)
	}
}

// EnsureDataDir 创建数据目录（如果不存在）
// 只在需要写日志数据库时调用，保证关闭日志时不产生任何额外文件
func (s *Settings) EnsureDataDir() error {
	return os.MkdirAll(s.DataDir, 0755)
}
