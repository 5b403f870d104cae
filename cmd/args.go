// Package cmd 命令行入口模块
// args.go - 命令行参数预处理
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/tidyup

package cmd

import "strings"

// listFlags 可以跟多个值的标志，值到下一个以 '-' 开头的参数为止
var listFlags = map[string]string{
	"-e":           "extensions",
	"--extensions": "extensions",
	"-i":           "ignore",
	"--ignore":     "ignore",
}

// normalizeArgs 把 "-e png jpg" 这样的多值写法折叠成 "--extensions=png,jpg"
// pflag 的切片标志每次只取一个值，这里提前合并
// 遇到 "--" 后的参数原样保留
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}

		name, ok := listFlags[arg]
		if !ok {
			out = append(out, arg)
			continue
		}

		var values []string
		for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			values = append(values, args[i])
		}
		out = append(out, "--"+name+"="+strings.Join(values, ","))
	}
	return out
}
