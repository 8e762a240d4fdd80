package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-game-project/text-utils/casing"
	"github.com/code-game-project/text-utils/feedback"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "casefmt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "format: pascal\ntrim_chars: \"_-\"\nlog_level: debug\ncolor: false\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Format:    casing.PascalCase,
		TrimChars: "_-",
		LogLevel:  "debug",
		Color:     false,
	}, cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, "format: snake\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Format = casing.Underscores
	assert.Equal(t, want, cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "unknown format", content: "format: kebab\n", wantErr: casing.ErrInvalidFormat},
		{name: "unknown log level", content: "log_level: loud\n", wantErr: feedback.ErrInvalidSeverity},
		{name: "malformed yaml", content: "format: [pascal\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "casefmt.yaml")
	cfg := Default()
	cfg.Format = casing.PascalCase
	cfg.TrimChars = "*"

	require.NoError(t, cfg.Write(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestFilePath(t *testing.T) {
	assert.Equal(t, filepath.Join(ConfigDir(), "casefmt.yaml"), FilePath())
	assert.Equal(t, "textutils", filepath.Base(ConfigDir()))
}
