package templater

import (
	"os"

	"github.com/lwmacct/251207-go-pkg-templater/pkg/templexp"
)

// Result 是一次解析过程的输出。
type Result struct {
	Output      string
	Table       *Table
	Diagnostics Diagnostics
}

// ResolveAndSubstitute 解析 text 中的全部变量并返回替换后的文本。
//
// 处理流程：扫描占位符 → 提取默认值定义 → 按优先级解析 → 替换。
// 所有异常情况都以诊断形式返回，不会中断处理。eval 为 nil 时使用 [ModeInterpolate]。
//
// 诊断顺序：空模板警告、每个已绑定变量的提示（按名称排序）、其余警告（按发现顺序）。
func ResolveAndSubstitute(text string, env map[string]string, assignments []Assignment, eval Evaluator) *Result {
	referenced := Scan(text)
	defaults, stripped := ExtractDefaults(text)

	var diags Diagnostics
	if len(referenced) == 0 && len(defaults) == 0 {
		diags = append(diags, Diagnostic{Kind: KindEmptyTemplate})
	}

	table, warnings := Resolve(env, assignments, defaults, referenced, eval)
	for _, b := range table.Bindings() {
		if b.Origin == OriginUnset {
			continue
		}
		diags = append(diags, Diagnostic{Kind: KindResolved, Name: b.Name, Value: b.Value})
	}
	diags = append(diags, warnings...)

	return &Result{
		Output:      Substitute(stripped, table),
		Table:       table,
		Diagnostics: diags,
	}
}

// OSEnvironment 返回当前进程环境变量的快照。
func OSEnvironment() map[string]string {
	return templexp.Environ(os.Environ())
}
