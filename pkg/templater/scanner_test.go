package templater_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lwmacct/251207-go-pkg-templater/pkg/templater"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "no placeholders",
			text: "plain text { } {{ }}",
			want: []string{},
		},
		{
			name: "deduplicated and sorted",
			text: "{{B}} {{A}} {{B}}\n{{a_1}}",
			want: []string{"A", "B", "a_1"},
		},
		{
			name: "malformed placeholders ignored",
			text: "{{A-B}} {{ A }} {{A} {A}} {{}} {{C",
			want: []string{},
		},
		{
			name: "includes names inside default lines",
			text: "{{X={{Y}}}}\n{{Z}}",
			want: []string{"Y", "Z"},
		},
		{
			name: "triple braces",
			text: "{{{A}}}",
			want: []string{"A"},
		},
		{
			name: "digits only name",
			text: "{{123}}",
			want: []string{"123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, templater.Scan(tt.text))
		})
	}
}

func TestIsName(t *testing.T) {
	assert.True(t, templater.IsName("A_b9"))
	assert.True(t, templater.IsName("9"))
	assert.False(t, templater.IsName(""))
	assert.False(t, templater.IsName("A-B"))
	assert.False(t, templater.IsName("A B"))
}

func TestExtractDefaults(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantDefaults []templater.Default
		wantStripped string
	}{
		{
			name:         "single default removed",
			text:         "{{GREETING=Hi}}\n{{GREETING}}, {{WHO}}!",
			wantDefaults: []templater.Default{{Name: "GREETING", Expr: "Hi", Line: 1}},
			wantStripped: "{{GREETING}}, {{WHO}}!",
		},
		{
			name: "document order kept",
			text: "a\n{{B=2}}\nb\n{{A=${B}1}}\n",
			wantDefaults: []templater.Default{
				{Name: "B", Expr: "2", Line: 2},
				{Name: "A", Expr: "${B}1", Line: 4},
			},
			wantStripped: "a\nb\n",
		},
		{
			name:         "expression runs to final braces",
			text:         "{{A=x}} y}}",
			wantDefaults: []templater.Default{{Name: "A", Expr: "x}} y", Line: 1}},
			wantStripped: "",
		},
		{
			name:         "empty expression",
			text:         "{{A=}}\nv={{A}}",
			wantDefaults: []templater.Default{{Name: "A", Expr: "", Line: 1}},
			wantStripped: "v={{A}}",
		},
		{
			name:         "crlf line endings",
			text:         "{{A=1}}\r\n{{A}}\r\n",
			wantDefaults: []templater.Default{{Name: "A", Expr: "1", Line: 1}},
			wantStripped: "{{A}}\r\n",
		},
		{
			name:         "not whole line",
			text:         " {{A=1}}\n{{A=1}} \nx {{A=1}}",
			wantStripped: " {{A=1}}\n{{A=1}} \nx {{A=1}}",
		},
		{
			name:         "invalid name",
			text:         "{{A-B=1}}\n{{=1}}",
			wantStripped: "{{A-B=1}}\n{{=1}}",
		},
		{
			name:         "plain placeholder is not a default",
			text:         "{{A}}\n",
			wantStripped: "{{A}}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defaults, stripped := templater.ExtractDefaults(tt.text)
			assert.Equal(t, tt.wantDefaults, defaults)
			assert.Equal(t, tt.wantStripped, stripped)
		})
	}
}
