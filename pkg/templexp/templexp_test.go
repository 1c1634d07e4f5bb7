package templexp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-templater/pkg/templexp"
)

func TestExpand_ShellParameterExpansion(t *testing.T) {
	vars := map[string]string{
		"SHELL_SET":   "set-value",
		"SHELL_EMPTY": "",
		"1ST":         "first",
	}

	tests := []struct {
		name     string
		template string
		want     string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "basic expansion",
			template: `prefix-${SHELL_SET}-suffix`,
			want:     "prefix-set-value-suffix",
		},
		{
			name:     "missing expands to empty",
			template: `x=${SHELL_MISSING}`,
			want:     "x=",
		},
		{
			name:     "fallback with colon treats empty as unset",
			template: `${SHELL_EMPTY:-fallback}`,
			want:     "fallback",
		},
		{
			name:     "fallback without colon keeps empty",
			template: `x=${SHELL_EMPTY-fallback}`,
			want:     "x=",
		},
		{
			name:     "alternate with colon",
			template: `${SHELL_SET:+alt}`,
			want:     "alt",
		},
		{
			name:     "alternate with colon on empty",
			template: `x=${SHELL_EMPTY:+alt}`,
			want:     "x=",
		},
		{
			name:     "alternate without colon on empty",
			template: `${SHELL_EMPTY+alt}`,
			want:     "alt",
		},
		{
			name:     "nested fallback",
			template: `${SHELL_MISSING:-${SHELL_SET}}`,
			want:     "set-value",
		},
		{
			name:     "assignment updates expansion data",
			template: `${SHELL_NEW:=value}-${SHELL_NEW}`,
			want:     "value-value",
		},
		{
			name:     "literal dollar",
			template: `$$${SHELL_SET}`,
			want:     "$set-value",
		},
		{
			name:     "bare dollar kept",
			template: `cost $5 and $HOME`,
			want:     "cost $5 and $HOME",
		},
		{
			name:     "unterminated brace kept",
			template: `${SHELL_SET`,
			want:     "${SHELL_SET",
		},
		{
			name:     "unknown expression kept",
			template: `${-abc}`,
			want:     "${-abc}",
		},
		{
			name:     "leading digit name",
			template: `${1ST}-${1ST:+alt}`,
			want:     "first-alt",
		},
		{
			name:     "required var triggers error",
			template: `${SHELL_MISSING:?missing}`,
			wantErr:  true,
			errMsg:   "missing",
		},
		{
			name:     "required var without message",
			template: `${SHELL_EMPTY:?}`,
			wantErr:  true,
			errMsg:   "parameter null or not set",
		},
		{
			name:     "required without colon accepts empty",
			template: `x=${SHELL_EMPTY?}`,
			want:     "x=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := templexp.Expand(tt.template, vars)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)

				var reqErr *templexp.RequiredError
				assert.ErrorAs(t, err, &reqErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_DoesNotMutateVars(t *testing.T) {
	vars := map[string]string{"A": "1"}

	got, err := templexp.Expand(`${B:=2}${B}`, vars)
	require.NoError(t, err)
	assert.Equal(t, "22", got)
	assert.Equal(t, map[string]string{"A": "1"}, vars)
}

func TestExpand_NilVars(t *testing.T) {
	got, err := templexp.Expand(`${A:=x}${A}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "xx", got)
}

func TestExpandEnv_JSONConfig(t *testing.T) {
	t.Setenv("API_KEY", "sk-test-123")
	t.Setenv("MODEL", "gpt-4")

	jsonConfig := `{"name": "${AGENT_NAME:-test-agent}", "model": "${MODEL:-gpt-3.5-turbo}", "api_key": "${API_KEY}", "max_tokens": 2048}`

	expanded, err := templexp.ExpandEnv(jsonConfig)
	require.NoError(t, err, "templexp.ExpandEnv() should succeed")
	assert.Contains(t, expanded, "test-agent", "AGENT_NAME should fall back")
	assert.Contains(t, expanded, "gpt-4", "MODEL should be expanded to gpt-4")
	assert.Contains(t, expanded, "sk-test-123", "API_KEY should be expanded")
}

func TestEnviron(t *testing.T) {
	got := templexp.Environ([]string{"A=1", "B=x=y", "NOEQ", "=bad", "C="})
	assert.Equal(t, map[string]string{"A": "1", "B": "x=y", "C": ""}, got)
}
