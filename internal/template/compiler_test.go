package template

import (
	"testing"

	"github.com/joshsymonds/tab-corral/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name     string
		template string
		domain   string
		wantName string
		wantOK   bool
		wantErr  error
	}{
		{
			name:     "placeholder with literal suffix",
			template: ":name.example.com",
			domain:   "dev.example.com",
			wantName: "dev",
			wantOK:   true,
		},
		{
			name:     "placeholder then wildcard then literal",
			template: ":name.*.example.com",
			domain:   "project.dev.example.com",
			wantName: "project",
			wantOK:   true,
		},
		{
			name:     "wildcard segment is required",
			template: ":name.*.example.com",
			domain:   "example.com",
			wantOK:   false,
		},
		{
			name:     "default template captures leftmost label",
			template: DefaultTemplate,
			domain:   "gitlab.com",
			wantName: "gitlab",
			wantOK:   true,
		},
		{
			name:     "match is anchored, not a substring test",
			template: ":name.example.com",
			domain:   "dev.example.com.attacker.io",
			wantOK:   false,
		},
		{
			name:     "wildcard matches exactly one label",
			template: ":name.*.example.com",
			domain:   "project.a.b.example.com",
			wantOK:   false,
		},
		{
			name:     "multiple wildcards",
			template: "*.:name.*.example.com",
			domain:   "eu.staging.dev.example.com",
			wantName: "staging",
			wantOK:   true,
		},
		{
			name:     "literal dots are not wildcards",
			template: ":name.example.com",
			domain:   "devXexampleXcom",
			wantOK:   false,
		},
		{
			name:     "missing placeholder",
			template: "*.example.com",
			wantErr:  common.ErrInvalidTemplate,
		},
		{
			name:     "empty template",
			template: "",
			wantErr:  common.ErrInvalidTemplate,
		},
		{
			name:     "multiple placeholders",
			template: ":name.:name.example.com",
			wantErr:  common.ErrInvalidTemplate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compiled, err := Compile(tt.template)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.template, compiled.Template)
			assert.Equal(t, 1, compiled.NamePosition)

			name, ok := compiled.Match(tt.domain)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantName, name)
			}
		})
	}
}

func TestCompileKeepsOriginalText(t *testing.T) {
	// Template identity is the source text, so the compiled form must carry
	// it through unchanged for persistence and removal-by-string.
	a, err := Compile(":name.*")
	require.NoError(t, err)
	assert.Equal(t, ":name.*", a.Template)

	c, err := Compile(":name.*.*")
	require.NoError(t, err)
	assert.NotEqual(t, a.Template, c.Template)
}
