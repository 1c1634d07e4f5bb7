// Package cfgm 提供通用的配置加载功能。
//
// 支持 YAML/JSON，按默认值、配置文件、环境变量与 CLI flags 逐层覆盖。
// 配置 key 使用 json tag 统一描述，YAML 与 JSON 共享同一套 key。
//
// # 加载优先级 (从低到高)
//
//  1. 默认值 - 通过 defaultConfig 参数传入
//  2. 配置文件 - 通过 [WithConfigPaths] 或 [WithAppName] 设置
//  3. 环境变量(前缀) - 通过 [WithEnvPrefix] 自动生成绑定
//  4. CLI flags - 通过 [WithCommand] 选项设置，最高优先级
//
// # 快速开始
//
// 定义配置结构体（json + desc 标签）：
//
//	type Config struct {
//	    Mode  string `json:"mode"  desc:"求值模式"`
//	    Quiet bool   `json:"quiet" desc:"静默模式"`
//	}
//
// 在命令中加载：
//
//	cfg, err := cfgm.LoadCmd(cmd, DefaultConfig(), "templater",
//	    cfgm.WithEnvPrefix("TEMPLATER_"),
//	)
//
// # 配置文件路径
//
// [WithAppName] 会生成默认搜索路径（见 [DefaultPaths]）：
//   - .myapp.yaml (当前目录)
//   - ~/.myapp.yaml (用户主目录)
//   - /etc/myapp/config.yaml (系统配置)
//
// 配置文件中出现结构体未定义的 key 时记录一条警告日志。
//
// # 模板展开
//
// 配置文件在解析前进行 Shell 参数展开（见 templexp 包），
// 使用 [WithoutTemplateExpansion] 可禁用：
//
//	# .templater.yaml
//	render:
//	  vars-file: "${TEMPLATER_ENV:-dev}.env"
//
// # CLI Flag 映射
//
// 仅替换 "." 为 "-"：
//   - render.mode → --render-mode
//   - render.vars-file → --render-vars-file
//
// # 生成配置示例
//
// 使用 [ExampleYAML] 生成带注释的 YAML：
//
//	yaml := cfgm.ExampleYAML(defaultConfig)
//	os.WriteFile("config.example.yaml", yaml, 0644)
package cfgm
