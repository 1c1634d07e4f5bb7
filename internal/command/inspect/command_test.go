package inspect_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-templater/internal/command/inspect"
	"github.com/lwmacct/251207-go-pkg-templater/pkg/templater"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout bytes.Buffer
	app := &cli.Command{
		Name:      "templater",
		Writer:    &stdout,
		ErrWriter: &bytes.Buffer{},
		Commands:  []*cli.Command{inspect.NewCommand()},
	}
	err := app.Run(context.Background(), append([]string{"templater", "inspect"}, args...))

	return stdout.String(), err
}

func TestInspect_YAML(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "t.txt")
	require.NoError(t, os.WriteFile(tpl, []byte("{{IT_A=a}}\n{{IT_A}} {{IT_MISSING}}"), 0o600))

	out, err := run(t, tpl)
	require.NoError(t, err)

	assert.Contains(t, out, "mode: interpolate")
	assert.Contains(t, out, "- name: IT_A\n    value: a\n    origin: template-default")
	assert.Contains(t, out, "origin: unset")
	assert.Contains(t, out, "IT_MISSING is not defined")
}

func TestInspect_JSON(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "t.txt")
	require.NoError(t, os.WriteFile(tpl, []byte("{{IT_B}}"), 0o600))
	t.Setenv("IT_B", "env-value")

	out, err := run(t, "--inspect-format", "json", tpl)
	require.NoError(t, err)

	var report struct {
		Variables []struct {
			Name   string `json:"name"`
			Value  string `json:"value"`
			Origin string `json:"origin"`
		} `json:"variables"`
		Warnings []string `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Variables, 1)
	assert.Equal(t, "IT_B", report.Variables[0].Name)
	assert.Equal(t, "env-value", report.Variables[0].Value)
	assert.Equal(t, "environment", report.Variables[0].Origin)
	assert.Empty(t, report.Warnings)
}

func TestReport_UnknownFormat(t *testing.T) {
	res := templater.ResolveAndSubstitute("", nil, nil, nil)
	report := inspect.NewReport("-", "literal", res)

	assert.Equal(t, []string{"warning: no variable was found in template, syntax is {{VAR}}"}, report.Warnings)

	err := report.Write(&bytes.Buffer{}, "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "toml")
}
