package templater

import (
	"fmt"
	"strings"

	"github.com/lwmacct/251207-go-pkg-templater/pkg/templexp"
)

// Evaluator 计算默认值表达式。
//
// vars 为求值时刻已绑定的全部变量（含环境变量），实现不得修改它。
type Evaluator interface {
	Evaluate(expr string, vars map[string]string) (string, error)
}

// EvaluatorFunc 将普通函数适配为 [Evaluator]。
type EvaluatorFunc func(expr string, vars map[string]string) (string, error)

// Evaluate 调用 f(expr, vars)。
func (f EvaluatorFunc) Evaluate(expr string, vars map[string]string) (string, error) {
	return f(expr, vars)
}

// Mode 默认值表达式的求值方式。
type Mode uint8

const (
	// ModeInterpolate 仅做 ${VAR} 风格的插值，默认模式。
	ModeInterpolate Mode = iota
	// ModeLiteral 表达式原样作为值。
	ModeLiteral
	// ModeHCL 按 HCL 模板求值，需显式开启。
	ModeHCL
)

var modeNames = map[Mode]string{
	ModeInterpolate: "interpolate",
	ModeLiteral:     "literal",
	ModeHCL:         "hcl",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}

	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Modes 返回全部模式名称，用于帮助信息。
func Modes() []string {
	return []string{ModeInterpolate.String(), ModeLiteral.String(), ModeHCL.String()}
}

// ParseMode 解析模式名称，空串视为 [ModeInterpolate]。
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeInterpolate, nil
	}
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}

	return 0, fmt.Errorf("unknown evaluation mode %q (want one of %s)", s, strings.Join(Modes(), ", "))
}

// NewEvaluator 返回模式对应的求值器，未知模式回退到 [ModeInterpolate]。
func NewEvaluator(m Mode) Evaluator {
	switch m {
	case ModeLiteral:
		return EvaluatorFunc(evaluateLiteral)
	case ModeHCL:
		return newHCLEvaluator()
	default:
		return EvaluatorFunc(templexp.Expand)
	}
}

func evaluateLiteral(expr string, _ map[string]string) (string, error) {
	return expr, nil
}
