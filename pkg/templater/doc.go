// Package templater 将文本模板中的 {{NAME}} 占位符替换为解析后的字面值。
//
// # 值来源与优先级 (从高到低)
//
//  1. 环境变量 - 调用方传入的快照
//  2. 外部变量文件 - [ParseAssignments] / [ParseAssignmentsYAML]
//  3. 模板默认值 - 独占一行的 {{NAME=EXPR}}
//  4. 未设置 - 替换为空串并产生警告
//
// 已绑定的变量不会被低优先级来源覆盖。默认值按文档顺序求值，
// 表达式可以引用此前已绑定的任何变量，但看不到之后才定义的变量。
//
// # 默认值求值模式
//
//   - interpolate: ${VAR} 插值，支持 :- := :+ :? 等运算符（默认）
//   - literal: 原样使用
//   - hcl: HCL 模板表达式，如 ${upper(NAME)}，需显式开启
//
// # 快速开始
//
//	res := templater.ResolveAndSubstitute(text, templater.OSEnvironment(), nil, nil)
//	fmt.Print(res.Output)
//	res.Diagnostics.WriteTo(os.Stderr)
//
// 替换是单遍的字面复制：值中的 {{OTHER}} 不会再次展开，也不存在转义问题。
package templater
