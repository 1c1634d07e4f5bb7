package templater

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// hclFunctions 是 hcl 模式下可调用的函数，均为纯字符串函数。
var hclFunctions = map[string]function.Function{
	"coalesce":  stdlib.CoalesceFunc,
	"format":    stdlib.FormatFunc,
	"join":      stdlib.JoinFunc,
	"lower":     stdlib.LowerFunc,
	"replace":   stdlib.ReplaceFunc,
	"strlen":    stdlib.StrlenFunc,
	"substr":    stdlib.SubstrFunc,
	"trimspace": stdlib.TrimSpaceFunc,
	"upper":     stdlib.UpperFunc,
}

var errUnknownValue = errors.New("expression result is not known")

type hclEvaluator struct {
	functions map[string]function.Function
}

func newHCLEvaluator() *hclEvaluator {
	return &hclEvaluator{functions: hclFunctions}
}

// Evaluate 将 expr 作为 HCL 模板求值，已绑定变量以顶层字符串变量暴露。
//
// 非 HCL 标识符的变量名（如以数字开头）无法在表达式中引用。
func (e *hclEvaluator) Evaluate(expr string, vars map[string]string) (string, error) {
	tmpl, diags := hclsyntax.ParseTemplate([]byte(expr), "default", hcl.InitialPos)
	if diags.HasErrors() {
		return "", fmt.Errorf("parse expression: %w", diags)
	}

	ctx := &hcl.EvalContext{
		Variables: make(map[string]cty.Value, len(vars)),
		Functions: e.functions,
	}
	for name, val := range vars {
		if hclsyntax.ValidIdentifier(name) {
			ctx.Variables[name] = cty.StringVal(val)
		}
	}

	val, diags := tmpl.Value(ctx)
	if diags.HasErrors() {
		return "", fmt.Errorf("evaluate expression: %w", diags)
	}
	if val.IsNull() {
		return "", nil
	}
	if !val.IsWhollyKnown() {
		return "", errUnknownValue
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("convert result: %w", err)
	}

	return str.AsString(), nil
}
