package templater

import (
	"fmt"
	"slices"
)

// Origin 标记变量值的来源，数值越大优先级越高。
type Origin uint8

const (
	OriginUnset Origin = iota
	OriginTemplateDefault
	OriginExternalFile
	OriginEnvironment
)

var originNames = [...]string{
	OriginUnset:           "unset",
	OriginTemplateDefault: "template-default",
	OriginExternalFile:    "external-file",
	OriginEnvironment:     "environment",
}

func (o Origin) String() string {
	if int(o) < len(originNames) {
		return originNames[o]
	}

	return fmt.Sprintf("Origin(%d)", uint8(o))
}

// MarshalText 使 Origin 在 JSON/YAML 中以名称输出。
func (o Origin) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// ResolvedValue 是绑定到变量名的最终字面值。
type ResolvedValue struct {
	Value  string
	Origin Origin
}

// Binding 是解析表中的一行，用于遍历与序列化。
type Binding struct {
	Name   string `json:"name"   yaml:"name"`
	Value  string `json:"value"  yaml:"value"`
	Origin Origin `json:"origin" yaml:"origin"`
}

// Table 是一次解析过程的结果表，构造后不可修改。
//
// 包含模板中引用的全部变量与默认值定义引入的全部变量，每个名称恰好一次，按名称排序。
type Table struct {
	names  []string
	values map[string]ResolvedValue
}

func newTable(values map[string]ResolvedValue) *Table {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	slices.Sort(names)

	return &Table{names: names, values: values}
}

// Lookup 返回 name 的解析结果。
func (t *Table) Lookup(name string) (ResolvedValue, bool) {
	if t == nil {
		return ResolvedValue{}, false
	}
	v, ok := t.values[name]

	return v, ok
}

// Len 返回变量个数。
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.names)
}

// Names 返回排序后的变量名副本。
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}

	return slices.Clone(t.names)
}

// Bindings 按名称顺序返回全部绑定。
func (t *Table) Bindings() []Binding {
	out := make([]Binding, 0, t.Len())
	for _, name := range t.Names() {
		v := t.values[name]
		out = append(out, Binding{Name: name, Value: v.Value, Origin: v.Origin})
	}

	return out
}
