package templater

import (
	"fmt"
	"io"
)

// Kind 诊断类别。
type Kind uint8

const (
	// KindEmptyTemplate 模板中既没有占位符也没有默认值定义。
	KindEmptyTemplate Kind = iota
	// KindResolved 变量已解析，提示信息。
	KindResolved
	// KindUnresolved 变量没有任何来源，被替换为空串。
	KindUnresolved
	// KindEvaluationFailed 默认值表达式求值失败，被替换为空串。
	KindEvaluationFailed
)

var kindNames = [...]string{
	KindEmptyTemplate:    "empty-template",
	KindResolved:         "resolved",
	KindUnresolved:       "unresolved",
	KindEvaluationFailed: "evaluation-failed",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Diagnostic 是解析过程中产生的一条建议性信息，不会中断处理。
type Diagnostic struct {
	Kind  Kind
	Name  string
	Value string
	Err   error
}

// IsWarning 报告该诊断是否为警告。
func (d Diagnostic) IsWarning() bool {
	return d.Kind != KindResolved
}

// IsFailure 报告该诊断是否意味着某个变量被替换为空串。
func (d Diagnostic) IsFailure() bool {
	return d.Kind == KindUnresolved || d.Kind == KindEvaluationFailed
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case KindEmptyTemplate:
		return "warning: no variable was found in template, syntax is {{VAR}}"
	case KindResolved:
		return fmt.Sprintf("%s = %q", d.Name, d.Value)
	case KindUnresolved:
		return fmt.Sprintf("warning: %s is not defined and no default is set, replacing by empty", d.Name)
	case KindEvaluationFailed:
		return fmt.Sprintf("warning: default for %s could not be evaluated (%v), replacing by empty", d.Name, d.Err)
	}

	return fmt.Sprintf("%s: %s", d.Kind, d.Name)
}

// Diagnostics 按发现顺序排列的诊断列表。
type Diagnostics []Diagnostic

// Warnings 仅返回警告。
func (ds Diagnostics) Warnings() Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.IsWarning() {
			out = append(out, d)
		}
	}

	return out
}

// HasWarnings 报告是否存在警告。
func (ds Diagnostics) HasWarnings() bool {
	for _, d := range ds {
		if d.IsWarning() {
			return true
		}
	}

	return false
}

// Failures 仅返回未解析与求值失败的诊断。
func (ds Diagnostics) Failures() Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.IsFailure() {
			out = append(out, d)
		}
	}

	return out
}

// WriteTo 将诊断逐行写入 w。
func (ds Diagnostics) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, d := range ds {
		n, err := fmt.Fprintln(w, d.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}
