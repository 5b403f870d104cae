// Package classifier 文件分类模块
// 按扩展名查路由表，并应用包含/排除过滤器，决定文件是否移动以及移到哪里
// 分类是纯函数：结果只取决于文件名、路由表和两个过滤集合
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/tidyup

package classifier

import (
	"sort"
	"strings"
)

// ==================== 类型定义 ====================

// SkipReason 跳过原因
// Eligible 表示不跳过（需要移动）
type SkipReason int

const (
	Eligible    SkipReason = iota // 符合条件，需要移动
	NoExtension                   // 没有扩展名
	Unmapped                      // 扩展名不在路由表中
	NotIncluded                   // 不在包含列表中
	Excluded                      // 在排除列表中
)

// String 返回跳过原因的中文描述
func (r SkipReason) String() string {
	switch r {
	case Eligible:
		return "移动"
	case NoExtension:
		return "无扩展名"
	case Unmapped:
		return "未映射的扩展名"
	case NotIncluded:
		return "不在包含列表中"
	case Excluded:
		return "已被排除"
	default:
		return "未知"
	}
}

// Decision 单个文件的分类结果
type Decision struct {
	Extension string     // 提取出的扩展名（可能为空）
	Category  string     // 目标分类（仅 Reason == Eligible 时有意义）
	Reason    SkipReason // 跳过原因
}

// Moves 是否需要移动
func (d Decision) Moves() bool {
	return d.Reason == Eligible
}

// ==================== 扩展名集合 ====================

// ExtSet 扩展名集合（小写，不带点号）
// 用户给出的顺序没有意义，所以用集合表示
type ExtSet map[string]struct{}

// NewExtSet 由用户输入构造集合
// 统一转小写、去掉前导点号，丢弃空字符串
func NewExtSet(exts ...string) ExtSet {
	set := make(ExtSet, len(exts))
	for _, e := range exts {
		e = NormalizeExtension(e)
		if e == "" {
			continue
		}
		set[e] = struct{}{}
	}
	return set
}

// Has 判断集合是否包含扩展名
func (s ExtSet) Has(ext string) bool {
	_, ok := s[ext]
	return ok
}

// Len 集合大小
func (s ExtSet) Len() int {
	return len(s)
}

// Sorted 返回排序后的扩展名，用于显示
func (s ExtSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// String 逗号分隔的扩展名
func (s ExtSet) String() string {
	return strings.Join(s.Sorted(), ",")
}

// NormalizeExtension 规范化用户输入的扩展名: ".PNG" -> "png"
func NormalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	ext = strings.TrimPrefix(ext, ".")
	return strings.ToLower(ext)
}

// ==================== 分类 ====================

// Extension 提取文件扩展名
// 取最后一个点号之后的部分并转小写；没有点号或以点号结尾时返回空串
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// Filter 包含/排除过滤器
// Include 为空表示不限制；Exclude 总是优先
type Filter struct {
	Include ExtSet
	Exclude ExtSet
}

// Classify 对单个文件名做分类
// 判断顺序：无扩展名 -> 未映射 -> 包含过滤 -> 排除过滤
func (f Filter) Classify(name string) Decision {
	ext := Extension(name)
	if ext == "" {
		return Decision{Reason: NoExtension}
	}

	category, ok := Lookup(ext)
	if !ok {
		return Decision{Extension: ext, Reason: Unmapped}
	}

	if f.Include.Len() > 0 && !f.Include.Has(ext) {
		return Decision{Extension: ext, Category: category, Reason: NotIncluded}
	}

	if f.Exclude.Has(ext) {
		return Decision{Extension: ext, Category: category, Reason: Excluded}
	}

	return Decision{Extension: ext, Category: category, Reason: Eligible}
}
