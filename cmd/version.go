// Package cmd 命令行入口模块
// version.go - 版本命令，显示程序版本和作者信息
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/tidyup

package cmd

import (
	"github.com/spf13/cobra"

	"tidyup/internal/config"
	"tidyup/internal/ui"
)

// newVersionCommand 版本命令定义
func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "版本信息",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ui.Banner(config.Version)
			ui.Info("版本:   %s", config.Version)   // 版本号
			ui.Info("作者:   %s", config.Author)    // 作者
			ui.Info("主页:   %s", config.Homepage)  // 项目主页
			ui.Info("许可:   %s", config.License)   // 开源许可
			ui.Info("构建:   %s", config.BuildDate) // 构建日期
			ui.Println()
		},
	}
}
