// Package cmd 命令行入口模块
// reset.go - 重置命令，用于清除整理日志
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/tidyup

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tidyup/internal/config"
	"tidyup/internal/ui"
)

// newResetCommand 重置命令定义
func newResetCommand(ctx *commandContext) *cobra.Command {
	var history bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "重置数据",
		Long:  "清除整理日志。整理过的文件不受影响。",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// 没有指定任何标志，显示帮助信息
			if !history {
				return cmd.Help()
			}
			return runResetHistory(ctx)
		},
	}

	cmd.Flags().BoolVar(&history, "history", false, "清除整理日志")
	return cmd
}

// runResetHistory 清空日志数据库中的全部记录
func runResetHistory(ctx *commandContext) error {
	ui.Banner(config.Version)

	db, err := openHistory(ctx.settings)
	if err != nil || db == nil {
		return err
	}
	defer db.Close()

	if err := db.ResetHistory(); err != nil {
		return fmt.Errorf("清除整理日志: %w", err)
	}
	ui.Success("已清除整理日志")
	return nil
}
