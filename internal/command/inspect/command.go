// Package inspect 提供解析表查看命令。
package inspect

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251207-go-pkg-templater/internal/command"
	"github.com/lwmacct/251207-go-pkg-templater/internal/command/render"
	"github.com/lwmacct/251207-go-pkg-templater/internal/config"
	"github.com/lwmacct/251207-go-pkg-templater/pkg/templater"
)

// Command inspect 命令
var Command = NewCommand()

// NewCommand 创建 inspect 命令。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "输出每个变量的解析值与来源，不渲染模板",
		ArgsUsage: "<template|->",
		Action:    action,
		Flags: append(render.SourceFlags(),
			&cli.StringFlag{
				Name:  "inspect-format",
				Value: command.Defaults.Inspect.Format,
				Usage: "输出格式: yaml | json",
			},
		),
	}
}

// Report 是 inspect 的输出结构。
type Report struct {
	Template  string              `json:"template"           yaml:"template"`
	Mode      string              `json:"mode"               yaml:"mode"`
	Variables []templater.Binding `json:"variables"          yaml:"variables"`
	Warnings  []string            `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// NewReport 由解析结果构建报告。
func NewReport(path, mode string, res *templater.Result) Report {
	r := Report{
		Template:  path,
		Mode:      mode,
		Variables: res.Table.Bindings(),
	}
	for _, d := range res.Diagnostics.Warnings() {
		r.Warnings = append(r.Warnings, d.String())
	}

	return r
}

// Write 按 format 输出报告。
func (r Report) Write(w io.Writer, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(r)
	case "yaml", "":
		enc := yamlv3.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("unknown inspect format %q (want yaml or json)", format)
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	path, err := render.TemplateArg(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	root := cmd.Root()
	res, err := render.Resolve(cfg.Render, path, root.Reader, nil)
	if err != nil {
		return err
	}

	return NewReport(path, cfg.Render.Mode, res).Write(root.Writer, cfg.Inspect.Format)
}
