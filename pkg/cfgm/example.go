package cfgm

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"time"

	yamlv3 "go.yaml.in/yaml/v3"
)

// ExampleYAML 将配置结构体序列化为带注释的 YAML。
//
// 注释取自 desc tag，适用于生成 config.example.yaml。
func ExampleYAML[T any](cfg T) []byte {
	node := structToNode(reflect.ValueOf(cfg))
	node.HeadComment = "配置示例文件, 复制此文件并根据需要修改"

	var buf bytes.Buffer
	enc := yamlv3.NewEncoder(&buf)
	enc.SetIndent(2)
	_ = enc.Encode(node)
	_ = enc.Close()

	return buf.Bytes()
}

func structToNode(val reflect.Value) *yamlv3.Node {
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!null"}
		}
		val = val.Elem()
	}

	node := &yamlv3.Node{Kind: yamlv3.MappingNode}
	typ := val.Type()
	for i := range typ.NumField() {
		field := typ.Field(i)
		key := configTagName(field)
		if key == "" || !field.IsExported() {
			continue
		}

		keyNode := &yamlv3.Node{Kind: yamlv3.ScalarNode, Value: key}
		comment := field.Tag.Get("desc")

		var valNode *yamlv3.Node
		if isStructType(field.Type) {
			valNode = structToNode(val.Field(i))
			// 复杂类型注释放在 key 上方，前面加空行
			keyNode.HeadComment = "\n" + comment
		} else {
			valNode = scalarNode(val.Field(i))
			valNode.LineComment = comment
		}

		node.Content = append(node.Content, keyNode, valNode)
	}

	return node
}

func scalarNode(val reflect.Value) *yamlv3.Node {
	if d, ok := val.Interface().(time.Duration); ok {
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Value: d.String()}
	}

	switch val.Kind() {
	case reflect.String:
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Value: val.String(), Style: yamlv3.SingleQuotedStyle}
	case reflect.Slice:
		node := &yamlv3.Node{Kind: yamlv3.SequenceNode, Style: yamlv3.FlowStyle}
		for i := range val.Len() {
			node.Content = append(node.Content, scalarNode(val.Index(i)))
		}

		return node
	default:
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Value: strings.TrimSpace(fmt.Sprint(val.Interface()))}
	}
}
