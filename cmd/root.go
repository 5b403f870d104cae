// Package cmd 命令行入口模块
// 提供 tidyup 的所有命令行功能，包括目录整理、扫描、整理日志等
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/tidyup

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tidyup/internal/config"
	"tidyup/internal/errors"
	"tidyup/internal/organizer"
	"tidyup/internal/ui"
)

// tidyFlags 整理命令自身的参数
type tidyFlags struct {
	include []string // -e/--extensions 只整理这些扩展名
	exclude []string // -i/--ignore 跳过这些扩展名
	dryRun  bool     // -n/--dry-run 预览模式
	journal bool     // --journal 记录整理日志
	noColor bool     // --no-color 禁用颜色
}

// newRootCommand 创建根命令及全部子命令
// 每次调用都返回全新的命令树，标志值互不影响
func newRootCommand() *cobra.Command {
	ctx := &commandContext{}
	flags := &tidyFlags{}

	rootCmd := &cobra.Command{
		Use:   "tidyup",
		Short: "tidyup - 按扩展名整理目录",
		Long: ui.Cyan("tidyup") + ` v` + config.Version + `

  把目录中的文件按扩展名移动到分类子目录:
    png / jpg / jpeg  ->  images/
    py                ->  python/
    cpp               ->  c++/

  只处理目录第一层的普通文件；目标位置已有同名文件时直接覆盖。

示例:
  tidyup -d ~/Desktop              # 整理桌面
  tidyup -d ~/Desktop -e png jpg   # 只整理 png 和 jpg
  tidyup -d ~/Desktop -i py        # 跳过 py 文件
  tidyup -d ~/Desktop -n           # 预览模式
  tidyup -d ~/Desktop --journal    # 记录整理日志
  tidyup history                   # 查看整理日志
  tidyup scan -d ~/Desktop         # 扫描统计
`,
		Args:              noArgs, // 不接受位置参数
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: ctx.prepare,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTidy(ctx, flags)
		},
	}

	// 全局标志，子命令共用
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&ctx.directory, "directory", "d", ".", "目标目录")
	pf.BoolVarP(&ctx.verbose, "verbose", "v", false, "详细输出")
	pf.BoolVar(&flags.noColor, "no-color", false, "禁用颜色输出")

	// 整理命令标志
	f := rootCmd.Flags()
	f.StringSliceVarP(&flags.include, "extensions", "e", nil, "只整理这些扩展名（可跟多个）")
	f.StringSliceVarP(&flags.exclude, "ignore", "i", nil, "跳过这些扩展名（可跟多个）")
	f.BoolVarP(&flags.dryRun, "dry-run", "n", false, "预览模式")
	f.BoolVar(&flags.journal, "journal", false, "记录整理日志")

	rootCmd.SetFlagErrorFunc(flagError)

	rootCmd.AddCommand(
		newScanCommand(ctx),
		newHistoryCommand(ctx),
		newStatsCommand(ctx),
		newResetCommand(ctx),
		newConfigCommand(ctx),
		newVersionCommand(),
	)
	return rootCmd
}

// Execute 执行根命令
// 这是程序的主入口，由 main.go 调用
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run 执行命令并返回退出码
// 参数错误：错误写标准错误、用法写标准输出，退出码 0
// 其他错误：错误写标准错误，退出码 1
func run(args []string, stdout, stderr io.Writer) int {
	ui.SetOutput(stdout, stderr)

	rootCmd := newRootCommand()
	rootCmd.SetArgs(normalizeArgs(args))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return 0
	}

	if errors.IsConfigError(err) {
		ui.Error("%v", err)
		fmt.Fprint(stdout, cmd.UsageString())
		return 0
	}

	ui.Error("%s 失败: %v", cmd.CommandPath(), err)
	return 1
}

// runTidy 执行目录整理
// 流程：构造配置 -> 打开日志（可选）-> 整理 -> 输出结果
func runTidy(ctx *commandContext, flags *tidyFlags) error {
	opts := organizer.NewOptions(ctx.directory, flags.include, flags.exclude, ctx.verbose, flags.dryRun)

	engineOpts := []organizer.Option{
		organizer.WithLogger(ctx.log()),
		organizer.WithProgress(ui.IsTerminal(ui.Stdout())),
	}

	// 日志打开失败只警告，不影响整理
	if ctx.settings.Journal {
		if journal := openJournal(ctx); journal != nil {
			defer journal.Close()
			engineOpts = append(engineOpts, organizer.WithRecorder(journal))
		}
	}

	if ctx.verbose {
		ui.Title("📂", fmt.Sprintf("整理: %s", opts.Directory))
		if opts.Include.Len() > 0 {
			ui.Dim("只整理: %s", opts.Include)
		}
		if opts.Exclude.Len() > 0 {
			ui.Dim("跳过: %s", opts.Exclude)
		}
	}

	report, err := organizer.New(engineOpts...).Run(opts)
	if err != nil {
		return err
	}

	organizer.PrintSummary(report)
	if ctx.settings.Journal && ctx.verbose {
		ui.Dim("运行 ID: %s", report.RunID)
	}
	return nil
}

// openJournal 打开整理日志，失败时返回 nil
func openJournal(ctx *commandContext) *organizer.Journal {
	if err := ctx.settings.EnsureDataDir(); err != nil {
		ctx.log().Warn("journal disabled", "dir", ctx.settings.DataDir, "err", err)
		return nil
	}
	journal, err := organizer.OpenJournal(ctx.settings.JournalPath)
	if err != nil {
		ctx.log().Warn("journal disabled", "path", ctx.settings.JournalPath, "err", err)
		return nil
	}
	return journal
}

// ==================== 参数校验 ====================

// noArgs 不接受位置参数
var noArgs = maxArgs(0)

// maxArgs 最多接受 n 个位置参数，多余的参数按未知参数处理
func maxArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) > n {
			return errors.NewConfigError(args[n], errors.UnknownArgument, nil)
		}
		return nil
	}
}

// flagError 把 pflag 的解析错误转换为 ConfigError
func flagError(_ *cobra.Command, err error) error {
	if errors.Is(err, pflag.ErrHelp) {
		return err
	}

	msg := err.Error()
	kind := errors.UnknownArgument
	switch {
	case strings.Contains(msg, "needs an argument"):
		kind = errors.MissingValue
	case strings.Contains(msg, "invalid argument"):
		kind = errors.InvalidArgument
	}
	return errors.NewConfigError("", kind, err)
}
