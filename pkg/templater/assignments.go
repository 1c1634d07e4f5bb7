package templater

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	yamlv3 "go.yaml.in/yaml/v3"
)

// Assignment 是外部变量文件中的一条 NAME=VALUE。
type Assignment struct {
	Name  string
	Value string
	Line  int
}

// ParseAssignments 解析行格式的变量文件。
//
// 每行一条 NAME=VALUE；# 开头的行与空行被忽略；VALUE 为 "=" 之后的原样内容，
// 不做引号处理也不按空白切分。NAME 前的空白与 "export " 前缀被容忍。
// 格式错误的行直接跳过。
func ParseAssignments(text string) []Assignment {
	var out []Assignment

	lineNo := 0
	for line := range strings.SplitSeq(text, "\n") {
		lineNo++
		line = strings.TrimSuffix(line, "\r")

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(strings.TrimLeft(line, " \t"), "=")
		name := strings.TrimSpace(strings.TrimPrefix(key, "export "))
		if !ok || !IsName(name) {
			slog.Debug("Skipping malformed assignment", "line", lineNo)

			continue
		}

		out = append(out, Assignment{Name: name, Value: value, Line: lineNo})
	}

	return out
}

// ParseAssignmentsYAML 解析扁平的 YAML/JSON 映射，保持文档顺序。
//
// 仅接受标量值；非法变量名或非标量值的条目被跳过。null 视为空串。
func ParseAssignmentsYAML(data []byte) ([]Assignment, error) {
	var doc yamlv3.Node
	if err := yamlv3.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse vars document: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yamlv3.MappingNode {
		return nil, errors.New("vars document root must be a mapping")
	}

	var out []Assignment
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if val.Kind == yamlv3.AliasNode && val.Alias != nil {
			val = val.Alias
		}
		if !IsName(key.Value) || val.Kind != yamlv3.ScalarNode {
			slog.Debug("Skipping unsupported vars entry", "key", key.Value, "line", key.Line)

			continue
		}

		value := val.Value
		if val.Tag == "!!null" {
			value = ""
		}
		out = append(out, Assignment{Name: key.Value, Value: value, Line: key.Line})
	}

	return out, nil
}

// LoadAssignments 按文件扩展名选择解析方式。
//
// .yaml / .yml / .json 使用 [ParseAssignmentsYAML]，其余使用 [ParseAssignments]。
func LoadAssignments(path string, data []byte) ([]Assignment, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		assignments, err := ParseAssignmentsYAML(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		return assignments, nil
	default:
		return ParseAssignments(string(data)), nil
	}
}
