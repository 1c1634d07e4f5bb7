package templater

import "strings"

// Default 是模板中的一条默认值定义 {{NAME=EXPR}}。
type Default struct {
	Name string
	Expr string // 未求值的表达式
	Line int    // 所在行号，从 1 开始
}

// parseDefaultLine 判断整行是否为 {{NAME=EXPR}}。
//
// EXPR 取到行末最后一个 }} 之前，允许为空。
func parseDefaultLine(line string) (Default, bool) {
	line = strings.TrimSuffix(line, "\r")
	if len(line) < len(openDelim)+len(closeDelim)+2 ||
		!strings.HasPrefix(line, openDelim) ||
		!strings.HasSuffix(line, closeDelim) {
		return Default{}, false
	}

	start := len(openDelim)
	end := nameEnd(line, start)
	if end == start || end >= len(line)-len(closeDelim) || line[end] != '=' {
		return Default{}, false
	}

	return Default{
		Name: line[start:end],
		Expr: line[end+1 : len(line)-len(closeDelim)],
	}, true
}

// ExtractDefaults 按文档顺序提取默认值定义，并返回移除这些行之后的模板。
//
// 只有独占一整行的 {{NAME=EXPR}} 才是默认值定义；被移除的行连同其换行符一起删除。
func ExtractDefaults(text string) ([]Default, string) {
	var (
		defaults []Default
		stripped strings.Builder
	)
	stripped.Grow(len(text))

	lineNo := 0
	for line := range strings.SplitAfterSeq(text, "\n") {
		lineNo++
		if def, ok := parseDefaultLine(strings.TrimSuffix(line, "\n")); ok {
			def.Line = lineNo
			defaults = append(defaults, def)

			continue
		}
		stripped.WriteString(line)
	}

	return defaults, stripped.String()
}
