// Package render 提供模板渲染命令。
package render

import (
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-templater/internal/command"
	"github.com/lwmacct/251207-go-pkg-templater/pkg/templater"
)

// Command 渲染命令
var Command = NewCommand()

// NewCommand 创建渲染命令，每次返回独立的 flag 实例。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "替换模板中的 {{VAR}} 占位符并输出结果",
		ArgsUsage: "<template|->",
		Action:    action,
		Flags: append(SourceFlags(),
			&cli.BoolFlag{
				Name:    "render-quiet",
				Aliases: []string{"s"},
				Value:   command.Defaults.Render.Quiet,
				Usage:   "不输出诊断信息",
			},
			&cli.BoolFlag{
				Name:  "render-strict",
				Value: command.Defaults.Render.Strict,
				Usage: "存在未解析变量或求值失败时以非零状态退出",
			},
			&cli.StringFlag{
				Name:    "render-output",
				Aliases: []string{"o"},
				Value:   command.Defaults.Render.Output,
				Usage:   "输出文件，默认标准输出",
			},
		),
	}
}

// SourceFlags 返回决定变量来源的 flags，render 与 inspect 共用。
func SourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "render-vars-file",
			Aliases: []string{"f"},
			Value:   command.Defaults.Render.VarsFile,
			Usage:   "外部变量文件 (NAME=VALUE 行格式，或 .yaml/.yml/.json)",
		},
		&cli.StringFlag{
			Name:    "render-mode",
			Aliases: []string{"m"},
			Value:   command.Defaults.Render.Mode,
			Usage:   "默认值求值模式: " + strings.Join(templater.Modes(), " | "),
		},
	}
}
