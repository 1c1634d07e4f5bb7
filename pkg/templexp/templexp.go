package templexp

import (
	"fmt"
	"maps"
	"os"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// 变量快照
// ═══════════════════════════════════════════════════════════════════════════

// Environ 将 "KEY=VALUE" 形式的条目转为变量表。
//
// 没有 "=" 的条目会被忽略；同名条目以后出现者为准。
func Environ(entries []string) map[string]string {
	vars := make(map[string]string, len(entries))
	for _, entry := range entries {
		key, val, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = val
	}

	return vars
}

// ═══════════════════════════════════════════════════════════════════════════
// Shell Parameter Expansion
// ═══════════════════════════════════════════════════════════════════════════

// IsNameChar 判断 ch 能否出现在变量名中。
//
// 变量名为 [A-Za-z0-9_]+，允许数字开头，与 {{NAME}} 占位符一致。
func IsNameChar(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') || ch == '_'
}

// expander 持有一次展开过程的变量表，":=" 的赋值只写入这里。
type expander struct {
	vars map[string]string
}

func parseParameter(expr string) (name, op, word string, ok bool) {
	i := 0
	for i < len(expr) && IsNameChar(expr[i]) {
		i++
	}

	if i == 0 {
		return "", "", "", false
	}

	name, rest := expr[:i], expr[i:]
	if rest == "" {
		return name, "", "", true
	}

	if len(rest) >= 2 && rest[0] == ':' {
		switch rest[1] {
		case '-', '+', '?', '=':
			return name, rest[:2], rest[2:], true
		}
	}

	switch rest[0] {
	case '-', '+', '?', '=':
		return name, rest[:1], rest[1:], true
	}

	return "", "", "", false
}

// RequiredError 表示 ${VAR:?msg} / ${VAR?msg} 的必填校验失败。
type RequiredError struct {
	Name    string
	Message string
}

func (e *RequiredError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("templexp: %s: parameter null or not set", e.Name)
	}

	return fmt.Sprintf("templexp: %s: %s", e.Name, e.Message)
}

func (x *expander) word(word string) (string, error) {
	if !strings.Contains(word, "${") {
		return word, nil
	}

	return x.expand(word)
}

// expression 展开单个 ${...} 内部的表达式，ok 为 false 时调用方原样输出。
func (x *expander) expression(expr string) (string, bool, error) {
	name, op, word, ok := parseParameter(expr)
	if !ok {
		return "", false, nil
	}

	val, isSet := x.vars[name]
	// 带冒号的运算符把空值视为未设置
	present := isSet
	if strings.HasPrefix(op, ":") {
		present = isSet && val != ""
	}

	switch strings.TrimPrefix(op, ":") {
	case "":
		return val, true, nil
	case "-":
		if present {
			return val, true, nil
		}
		expanded, err := x.word(word)
		if err != nil {
			return "", false, err
		}
		return expanded, true, nil
	case "+":
		if !present {
			return "", true, nil
		}
		expanded, err := x.word(word)
		if err != nil {
			return "", false, err
		}
		return expanded, true, nil
	case "?":
		if present {
			return val, true, nil
		}
		return "", false, &RequiredError{Name: name, Message: word}
	case "=":
		if present {
			return val, true, nil
		}
		expanded, err := x.word(word)
		if err != nil {
			return "", false, err
		}
		x.vars[name] = expanded
		return expanded, true, nil
	}

	return "", false, nil
}

func (x *expander) expand(text string) (string, error) {
	var buf strings.Builder
	buf.Grow(len(text))

	for i := 0; i < len(text); {
		ch := text[i]
		if ch != '$' || i+1 >= len(text) {
			buf.WriteByte(ch)
			i++
			continue
		}

		switch text[i+1] {
		case '$':
			buf.WriteByte('$')
			i += 2
			continue
		case '{':
		default:
			buf.WriteByte(ch)
			i++
			continue
		}

		end := findMatchingBrace(text, i+2)
		if end == -1 {
			buf.WriteByte(ch)
			i++
			continue
		}

		expanded, ok, err := x.expression(text[i+2 : end])
		if err != nil {
			return "", err
		}
		if ok {
			buf.WriteString(expanded)
		} else {
			buf.WriteString(text[i : end+1])
		}

		i = end + 1
	}

	return buf.String(), nil
}

func findMatchingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		if text[i] == '$' && i+1 < len(text) && text[i+1] == '{' {
			depth++
			i++
			continue
		}
		if text[i] == '}' {
			if depth == 0 {
				return i
			}
			depth--
		}
	}

	return -1
}

// ═══════════════════════════════════════════════════════════════════════════
// 入口
// ═══════════════════════════════════════════════════════════════════════════

// Expand 使用给定变量表对 text 执行 Shell 参数展开。
//
// 支持语法：
//   - ${VAR} - 变量替换，未设置时为空串
//   - ${VAR:-default} / ${VAR-default} - fallback
//   - ${VAR:+alt} / ${VAR+alt} - 替代值
//   - ${VAR:?msg} / ${VAR?msg} - 必填校验，失败返回 [*RequiredError]
//   - ${VAR:=default} / ${VAR=default} - 赋值（仅作用于当前展开）
//   - $$ - 字面量 $
//
// vars 不会被修改，":=" 写入的是内部副本。
func Expand(text string, vars map[string]string) (string, error) {
	x := &expander{vars: maps.Clone(vars)}
	if x.vars == nil {
		x.vars = map[string]string{}
	}

	return x.expand(text)
}

// ExpandEnv 以当前进程环境变量为变量表执行 [Expand]。
func ExpandEnv(text string) (string, error) {
	return Expand(text, Environ(os.Environ()))
}
