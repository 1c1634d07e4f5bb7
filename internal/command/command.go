// Package command 提供 templater 的命令行功能。
package command

import "github.com/lwmacct/251207-go-pkg-templater/internal/config"

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()
