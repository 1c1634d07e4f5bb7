package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/lwmacct/251207-go-pkg-version/pkg/version"
	"github.com/lwmacct/251219-go-pkg-logm/pkg/logm"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-templater/internal/command/configcmd"
	"github.com/lwmacct/251207-go-pkg-templater/internal/command/inspect"
	"github.com/lwmacct/251207-go-pkg-templater/internal/command/render"
	"github.com/lwmacct/251207-go-pkg-templater/internal/config"
)

func main() {
	_ = logm.Init(logm.PresetAuto()...)

	app := &cli.Command{
		Name:    config.AppName,
		Usage:   "使用环境变量、变量文件与模板默认值替换 {{VAR}} 占位符",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			version.Command,
			render.Command,
			inspect.Command,
			configcmd.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		slog.Error("templater failed", "error", err)
		os.Exit(1)
	}
}
