// Package templexp 提供字符串的 Shell 参数展开。
//
// 该包仅处理 ${...} 语法，适合在配置文件和模板默认值中做轻量替换。
// 不执行命令、不引入模板引擎，强调可读性与可预测性。
//
// # 设计参考
//
//   - Bash 参数展开: https://www.gnu.org/software/bash/manual/bash.html#Shell-Parameter-Expansion
//
// # 语义说明
//
//  1. 仅做字符串层面的替换（不解析 $VAR）
//  2. 支持嵌套展开与 "$$" 字面量
//  3. ":=" 赋值仅作用于当前展开过程，不修改调用方的变量表
//  4. 无法识别的表达式保持原样
//
// # 快速开始
//
// 使用显式变量表展开：
//
//	out, err := templexp.Expand(`${HOST}:${PORT:-8080}`, map[string]string{"HOST": "db"})
//
// 使用进程环境变量展开配置文件：
//
//	content := `model: "${LLM_MODEL:-gpt-4}"`
//	expanded, err := templexp.ExpandEnv(content)
//
// 详见 [Expand] 文档。
package templexp
