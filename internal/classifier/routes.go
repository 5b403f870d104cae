// Package classifier 文件分类模块
// routes.go - 路由表：扩展名到分类文件夹的固定映射
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/tidyup

package classifier

// Route 一条路由规则
type Route struct {
	Extension string // 扩展名（小写，不带点号）
	Category  string // 目标子目录名
}

// routes 路由表，启动时确定，运行期间只读
// 顺序决定 Categories() 的返回顺序
var routes = []Route{
	{Extension: "png", Category: "images"},
	{Extension: "jpg", Category: "images"},
	{Extension: "jpeg", Category: "images"},
	{Extension: "py", Category: "python"},
	{Extension: "cpp", Category: "c++"},
}

// routeIndex 扩展名 -> 分类 的查找索引
var routeIndex = func() map[string]string {
	idx := make(map[string]string, len(routes))
	for _, r := range routes {
		if _, dup := idx[r.Extension]; dup {
			panic("classifier: duplicate route for extension " + r.Extension)
		}
		idx[r.Extension] = r.Category
	}
	return idx
}()

// Lookup 查找扩展名对应的分类
// ext 必须已经是小写且不带点号
func Lookup(ext string) (string, bool) {
	category, ok := routeIndex[ext]
	return category, ok
}

// Routes 返回路由表副本
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Categories 返回去重后的分类列表，按路由表顺序
func Categories() []string {
	seen := make(map[string]bool, len(routes))
	var out []string
	for _, r := range routes {
		if seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		out = append(out, r.Category)
	}
	return out
}

// ExtensionsFor 返回映射到指定分类的全部扩展名
func ExtensionsFor(category string) []string {
	var out []string
	for _, r := range routes {
		if r.Category == category {
			out = append(out, r.Extension)
		}
	}
	return out
}
