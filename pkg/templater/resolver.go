package templater

import (
	"log/slog"
	"maps"
)

// resolver 在一次解析过程中维护已绑定的变量。
type resolver struct {
	env   map[string]string
	bound map[string]ResolvedValue
	eval  Evaluator
}

func (r *resolver) lookup(name string) (ResolvedValue, bool) {
	if val, ok := r.env[name]; ok {
		return ResolvedValue{Value: val, Origin: OriginEnvironment}, true
	}
	v, ok := r.bound[name]

	return v, ok
}

// bind 仅在 name 尚未绑定时写入，返回是否写入。
func (r *resolver) bind(name string, v ResolvedValue) bool {
	if prev, ok := r.lookup(name); ok {
		slog.Debug("Variable already bound, skipping", "name", name, "origin", prev.Origin, "shadowed", v.Origin)

		return false
	}
	r.bound[name] = v

	return true
}

// snapshot 返回当前全部绑定的字符串视图，供默认值求值。
func (r *resolver) snapshot() map[string]string {
	vars := maps.Clone(r.env)
	if vars == nil {
		vars = make(map[string]string, len(r.bound))
	}
	for name, v := range r.bound {
		vars[name] = v.Value
	}

	return vars
}

// Resolve 构建解析表并返回过程中产生的警告。
//
// 优先级：环境变量 > 外部文件 > 模板默认值 > 未设置。
// 外部文件与默认值均按出现顺序处理，同名者先到先得；默认值求值时可见此前的全部绑定。
// referenced 中最终仍未绑定的变量被绑定为空串并产生 [KindUnresolved] 警告。
func Resolve(env map[string]string, assignments []Assignment, defaults []Default, referenced []string, eval Evaluator) (*Table, Diagnostics) {
	if eval == nil {
		eval = NewEvaluator(ModeInterpolate)
	}
	r := &resolver{env: env, bound: make(map[string]ResolvedValue), eval: eval}

	var warnings Diagnostics

	for _, a := range assignments {
		r.bind(a.Name, ResolvedValue{Value: a.Value, Origin: OriginExternalFile})
	}

	for _, def := range defaults {
		if _, ok := r.lookup(def.Name); ok {
			slog.Debug("Default ignored, variable already bound", "name", def.Name, "line", def.Line)

			continue
		}

		value, err := r.eval.Evaluate(def.Expr, r.snapshot())
		if err != nil {
			warnings = append(warnings, Diagnostic{Kind: KindEvaluationFailed, Name: def.Name, Err: err})
			value = ""
		}
		r.bind(def.Name, ResolvedValue{Value: value, Origin: OriginTemplateDefault})
	}

	values := make(map[string]ResolvedValue, len(referenced)+len(defaults))
	for _, def := range defaults {
		values[def.Name], _ = r.lookup(def.Name)
	}
	for _, name := range referenced {
		v, ok := r.lookup(name)
		if !ok {
			warnings = append(warnings, Diagnostic{Kind: KindUnresolved, Name: name})
			v = ResolvedValue{Origin: OriginUnset}
		}
		values[name] = v
	}

	return newTable(values), warnings
}
