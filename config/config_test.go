package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ionut-t/tedit/core"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
line_numbers = false
vertical_motion = "line-end"
strip_placeholder_on_save = true
log_file = "/tmp/tedit.log"

[theme]
border = "#ff00ff"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.LineNumbers)
	assert.Equal(t, "line-end", cfg.VerticalMotion)
	assert.True(t, cfg.StripPlaceholderOnSave)
	assert.Equal(t, "/tmp/tedit.log", cfg.LogFile)
	assert.Equal(t, "#ff00ff", cfg.Theme.Border)
	assert.Equal(t, Default().Theme.LineNumber, cfg.Theme.LineNumber, "unset theme keys keep defaults")

	assert.Equal(t, core.Options{
		VerticalMotion:         core.VerticalLineEnd,
		StripPlaceholderOnSave: true,
		ShowLineNumbers:        false,
	}, cfg.EditorOptions())
}

func TestLoad_RejectsUnknownPolicy(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader(`vertical_motion = "diagonal"`))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_RejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("line_numbers = = true"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), path)
}

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
	assert.Equal(t, core.DefaultOptions(), Default().EditorOptions())
}
