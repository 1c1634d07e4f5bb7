// Package configcmd 提供配置相关命令。
package configcmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-templater/internal/config"
	"github.com/lwmacct/251207-go-pkg-templater/pkg/cfgm"
)

// Command 配置命令
var Command = NewCommand()

// NewCommand 创建配置命令。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "配置文件工具",
		Commands: []*cli.Command{
			{
				Name:   "example",
				Usage:  "输出带注释的配置示例",
				Action: exampleAction,
			},
			{
				Name:   "paths",
				Usage:  "输出配置文件搜索路径",
				Action: pathsAction,
			},
		},
	}
}

func exampleAction(_ context.Context, cmd *cli.Command) error {
	_, err := cmd.Root().Writer.Write(cfgm.ExampleYAML(config.DefaultConfig()))

	return err
}

func pathsAction(_ context.Context, cmd *cli.Command) error {
	for _, p := range cfgm.DefaultPaths(config.AppName) {
		if _, err := fmt.Fprintln(cmd.Root().Writer, p); err != nil {
			return err
		}
	}

	return nil
}
