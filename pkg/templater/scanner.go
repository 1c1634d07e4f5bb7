package templater

import (
	"slices"
	"strings"

	"github.com/lwmacct/251207-go-pkg-templater/pkg/templexp"
)

// 占位符定界符。
const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// IsName 判断 s 是否为合法变量名：[A-Za-z0-9_]+。
func IsName(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if !templexp.IsNameChar(s[i]) {
			return false
		}
	}

	return true
}

// nameEnd 返回从 start 开始的最长变量名的结束位置。
func nameEnd(text string, start int) int {
	i := start
	for i < len(text) && templexp.IsNameChar(text[i]) {
		i++
	}

	return i
}

// placeholderAt 尝试在 text[i:] 处匹配 {{NAME}}。
//
// 匹配成功时返回变量名与占位符之后的位置。
func placeholderAt(text string, i int) (string, int, bool) {
	if !strings.HasPrefix(text[i:], openDelim) {
		return "", i, false
	}

	start := i + len(openDelim)
	end := nameEnd(text, start)
	if end == start || !strings.HasPrefix(text[end:], closeDelim) {
		return "", i, false
	}

	return text[start:end], end + len(closeDelim), true
}

// Scan 返回 text 中所有 {{NAME}} 占位符的变量名，去重并按名称排序。
//
// 默认值定义行内部的占位符同样会被收集。
// 格式不正确的占位符（括号不配对、含非法字符）不会匹配，也不视为错误。
func Scan(text string) []string {
	seen := make(map[string]struct{})
	for i := 0; i < len(text); {
		name, next, ok := placeholderAt(text, i)
		if !ok {
			i++
			continue
		}
		seen[name] = struct{}{}
		i = next
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
