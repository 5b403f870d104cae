// Package cmd 命令行入口模块
// context.go - 命令共享的运行环境（设置、日志）
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/tidyup

package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"tidyup/internal/config"
	"tidyup/internal/logging"
	"tidyup/internal/ui"
)

// commandContext 一次命令执行期间共享的状态
type commandContext struct {
	directory string // -d/--directory
	verbose   bool   // -v/--verbose

	settings *config.Settings
	logger   *log.Logger
}

// prepare 加载设置并初始化日志和颜色，作为根命令的 PersistentPreRunE
func (c *commandContext) prepare(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	c.settings = settings

	if settings.NoColor {
		ui.DisableColor()
	}

	c.logger = logging.New(ui.Stderr(), settings.LogLevel)
	logging.Verbose(c.logger, c.verbose)
	return nil
}

// log 返回日志记录器，prepare 之前返回丢弃型记录器
func (c *commandContext) log() *log.Logger {
	if c.logger == nil {
		return logging.Discard()
	}
	return c.logger
}
