// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - .templater.yaml / ~/.templater.yaml / /etc/templater/config.yaml
//  3. 环境变量 - TEMPLATER_ 前缀
//  4. CLI flags - 仅用户显式设置的 flag
package config

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-templater/pkg/cfgm"
)

// AppName 应用名称，用于配置文件搜索路径。
const AppName = "templater"

// EnvPrefix 配置项环境变量前缀。
const EnvPrefix = "TEMPLATER_"

// Config 应用配置。
type Config struct {
	Render  RenderConfig  `json:"render" desc:"渲染配置"`
	Inspect InspectConfig `json:"inspect" desc:"inspect 命令配置"`
}

// RenderConfig 渲染配置。
type RenderConfig struct {
	VarsFile string `json:"vars-file" desc:"外部变量文件 (NAME=VALUE 行格式，或 .yaml/.yml/.json)"`
	Mode     string `json:"mode" desc:"默认值求值模式: interpolate | literal | hcl"`
	Quiet    bool   `json:"quiet" desc:"不输出诊断信息"`
	Strict   bool   `json:"strict" desc:"存在未解析变量或求值失败时以非零状态退出"`
	Output   string `json:"output" desc:"输出文件，空表示标准输出"`
}

// InspectConfig inspect 命令配置。
type InspectConfig struct {
	Format string `json:"format" desc:"输出格式: yaml | json"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			Mode: "interpolate",
		},
		Inspect: InspectConfig{
			Format: "yaml",
		},
	}
}

// Load 为命令加载配置。
func Load(cmd *cli.Command, opts ...cfgm.Option) (*Config, error) {
	return cfgm.LoadCmd(cmd, DefaultConfig(), AppName,
		append([]cfgm.Option{cfgm.WithEnvPrefix(EnvPrefix)}, opts...)...,
	)
}
