// Package cmd 命令行入口模块
// config.go - 配置查看命令，显示当前生效的设置和路由表
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/tidyup

package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"tidyup/internal/classifier"
	"tidyup/internal/config"
	"tidyup/internal/ui"
)

// newConfigCommand 配置命令定义
func newConfigCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "查看配置",
		Long:  "显示当前生效的设置（来自 " + config.EnvPrefix + "_ 环境变量）和扩展名路由表",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			showConfig(ctx.settings)
			return nil
		},
	}
}

// showConfig 显示当前配置
func showConfig(s *config.Settings) {
	ui.Banner(config.Version)
	ui.Title("⚙️", "当前配置")
	ui.Divider()

	ui.Println()
	ui.Info("运行设置:")
	ui.Info("  整理日志:      %s", onOff(s.Journal))
	ui.Info("  日志级别:      %s", s.LogLevel)
	ui.Info("  颜色输出:      %s", onOff(!s.NoColor))

	ui.Println()
	ui.Info("数据路径:")
	ui.Info("  数据目录:      %s", s.DataDir)
	ui.Info("  日志数据库:    %s", s.JournalPath)

	ui.Println()
	ui.Info("路由表:")
	for _, category := range classifier.Categories() {
		ui.Info("  %-10s <- %s", category+"/", strings.Join(classifier.ExtensionsFor(category), ", "))
	}

	ui.Println()
	ui.Dim("修改设置示例:")
	ui.Dim("  export %s_JOURNAL=1", config.EnvPrefix)
	ui.Dim("  export %s_HOME=~/.config/tidyup", config.EnvPrefix)
	ui.Dim("  export %s_LOG_LEVEL=debug", config.EnvPrefix)
}

// onOff 开关状态的显示文字
func onOff(on bool) string {
	if on {
		return "开启"
	}
	return "关闭"
}
