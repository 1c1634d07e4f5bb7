package templater_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-templater/pkg/templater"
)

func TestParseAssignments(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []templater.Assignment
	}{
		{
			name: "comments and blank lines",
			text: "# header\n\nA=1\n   \n  # indented comment\nB=2\n",
			want: []templater.Assignment{
				{Name: "A", Value: "1", Line: 3},
				{Name: "B", Value: "2", Line: 6},
			},
		},
		{
			name: "value kept verbatim",
			text: "Q=a & b  c=d # not a comment \"quoted\"",
			want: []templater.Assignment{
				{Name: "Q", Value: "a & b  c=d # not a comment \"quoted\"", Line: 1},
			},
		},
		{
			name: "empty value",
			text: "E=",
			want: []templater.Assignment{{Name: "E", Value: "", Line: 1}},
		},
		{
			name: "malformed lines skipped",
			text: "no equals\nBAD-NAME=1\n=x\nOK=yes",
			want: []templater.Assignment{{Name: "OK", Value: "yes", Line: 4}},
		},
		{
			name: "crlf and export prefix",
			text: "export A=1\r\n  B=2\r\n",
			want: []templater.Assignment{
				{Name: "A", Value: "1", Line: 1},
				{Name: "B", Value: "2", Line: 2},
			},
		},
		{
			name: "duplicates kept in order",
			text: "A=1\nA=2",
			want: []templater.Assignment{
				{Name: "A", Value: "1", Line: 1},
				{Name: "A", Value: "2", Line: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, templater.ParseAssignments(tt.text))
		})
	}
}

func TestResolve_FirstAssignmentWins(t *testing.T) {
	table, warnings := templater.Resolve(nil, templater.ParseAssignments("A=1\nA=2"), nil, []string{"A"}, nil)

	assert.Empty(t, warnings)
	v, ok := table.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, "1", v.Value)
}

func TestParseAssignmentsYAML(t *testing.T) {
	data := []byte(`
ZED: last
alpha: "quoted value"
NUM: 42
EMPTY: null
nested:
  key: skipped
list: [1, 2]
bad-key: skipped
`)

	got, err := templater.ParseAssignmentsYAML(data)
	require.NoError(t, err)

	assert.Equal(t, []templater.Assignment{
		{Name: "ZED", Value: "last", Line: 2},
		{Name: "alpha", Value: "quoted value", Line: 3},
		{Name: "NUM", Value: "42", Line: 4},
		{Name: "EMPTY", Value: "", Line: 5},
	}, got)
}

func TestParseAssignmentsYAML_JSON(t *testing.T) {
	got, err := templater.ParseAssignmentsYAML([]byte(`{"B": "2", "A": true}`))
	require.NoError(t, err)

	assert.Equal(t, []templater.Assignment{
		{Name: "B", Value: "2", Line: 1},
		{Name: "A", Value: "true", Line: 1},
	}, got)
}

func TestParseAssignmentsYAML_Errors(t *testing.T) {
	_, err := templater.ParseAssignmentsYAML([]byte("- a\n- b\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapping")

	_, err = templater.ParseAssignmentsYAML([]byte("a: [unclosed"))
	require.Error(t, err)

	got, err := templater.ParseAssignmentsYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadAssignments(t *testing.T) {
	got, err := templater.LoadAssignments("vars.env", []byte("A=1: x"))
	require.NoError(t, err)
	assert.Equal(t, []templater.Assignment{{Name: "A", Value: "1: x", Line: 1}}, got)

	got, err = templater.LoadAssignments("vars.YML", []byte("A: '1: x'"))
	require.NoError(t, err)
	assert.Equal(t, []templater.Assignment{{Name: "A", Value: "1: x", Line: 1}}, got)

	_, err = templater.LoadAssignments("vars.json", []byte("[1]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vars.json")
}
