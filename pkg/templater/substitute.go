package templater

import "strings"

// Substitute 将 text 中的每个 {{NAME}} 替换为解析表中的字面值。
//
// 单遍扫描复制：替换值原样写入，不会再次展开其中的 {{...}}；
// 不在表中的占位符保持原样。
func Substitute(text string, table *Table) string {
	var buf strings.Builder
	buf.Grow(len(text))

	last := 0
	for i := 0; i < len(text); {
		name, next, ok := placeholderAt(text, i)
		if !ok {
			i++
			continue
		}
		if v, found := table.Lookup(name); found {
			buf.WriteString(text[last:i])
			buf.WriteString(v.Value)
			last = next
		}
		i = next
	}
	buf.WriteString(text[last:])

	return buf.String()
}
