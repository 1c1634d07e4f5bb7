package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-templater/internal/config"
	"github.com/lwmacct/251207-go-pkg-templater/pkg/templater"
)

// ErrStrict 表示 strict 模式下存在未解析或求值失败的变量。
var ErrStrict = errors.New("template has unresolved or failed variables")

// Resolve 读取模板与变量文件并执行一次解析。
//
// templatePath 为 "-" 时从 stdin 读取模板。env 为 nil 时使用当前进程环境变量。
func Resolve(cfg config.RenderConfig, templatePath string, stdin io.Reader, env map[string]string) (*templater.Result, error) {
	mode, err := templater.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	text, err := readTemplate(templatePath, stdin)
	if err != nil {
		return nil, err
	}

	var assignments []templater.Assignment
	if cfg.VarsFile != "" {
		data, err := os.ReadFile(cfg.VarsFile)
		if err != nil {
			return nil, fmt.Errorf("read vars file: %w", err)
		}
		assignments, err = templater.LoadAssignments(cfg.VarsFile, data)
		if err != nil {
			return nil, fmt.Errorf("load vars file: %w", err)
		}
		slog.Debug("Loaded vars file", "path", cfg.VarsFile, "count", len(assignments))
	}

	if env == nil {
		env = templater.OSEnvironment()
	}

	return templater.ResolveAndSubstitute(text, env, assignments, templater.NewEvaluator(mode)), nil
}

func readTemplate(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read template from stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}

	return string(data), nil
}

// TemplateArg 返回唯一的模板参数。
func TemplateArg(cmd *cli.Command) (string, error) {
	if cmd.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one template argument, got %d", cmd.NArg())
	}

	return cmd.Args().First(), nil
}

func action(ctx context.Context, cmd *cli.Command) error {
	path, err := TemplateArg(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	root := cmd.Root()
	res, err := Resolve(cfg.Render, path, root.Reader, nil)
	if err != nil {
		return err
	}

	if !cfg.Render.Quiet {
		if _, err := res.Diagnostics.WriteTo(root.ErrWriter); err != nil {
			return fmt.Errorf("write diagnostics: %w", err)
		}
	}

	if err := writeOutput(cfg.Render.Output, root.Writer, res.Output); err != nil {
		return err
	}

	if failures := res.Diagnostics.Failures(); cfg.Render.Strict && len(failures) > 0 {
		return fmt.Errorf("%w: %d warning(s)", ErrStrict, len(failures))
	}

	return nil
}

func writeOutput(path string, stdout io.Writer, text string) error {
	if path == "" {
		_, err := io.WriteString(stdout, text)

		return err
	}

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil { //nolint:gosec // rendered output is meant to be readable
		return fmt.Errorf("write output: %w", err)
	}
	slog.Debug("Wrote rendered template", "path", path, "bytes", len(text))

	return nil
}
