// tidyup - 按扩展名整理目录
// 把目录第一层的文件移动到 images/、python/、c++/ 等分类子目录
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/tidyup
// License: MIT

package main

import "tidyup/cmd"

// main 程序入口函数
// 调用 cmd.Execute() 启动命令行应用
func main() {
	cmd.Execute()
}
