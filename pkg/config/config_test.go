package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 750*time.Millisecond, cfg.TooltipDelay)
	assert.Equal(t, Offset{X: 5, Y: 5}, cfg.TooltipOffset)
	assert.True(t, cfg.HideTooltipOnPointerMove)
	assert.Equal(t, "material-icons", cfg.IconClass)
	assert.False(t, cfg.DisableDefaultContextMenus)
	assert.NoError(t, cfg.Validate())
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
tooltipDelay: 300ms
tooltipOffset:
  x: -10
  y: 12
iconClass: ""
disableDefaultContextMenus: true
`))
	require.NoError(t, err)

	assert.Equal(t, 300*time.Millisecond, cfg.TooltipDelay)
	assert.Equal(t, Offset{X: -10, Y: 12}, cfg.TooltipOffset)
	assert.Equal(t, "", cfg.IconClass)
	assert.True(t, cfg.DisableDefaultContextMenus)
	assert.True(t, cfg.HideTooltipOnPointerMove, "unset keys keep defaults")
	assert.Equal(t, DefaultSubmenuCloseDelay, cfg.SubmenuCloseDelay)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("tooltipDelai: 1s"))
	assert.Error(t, err)

	_, err = Parse([]byte("tooltipDelay: -1s"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breve.yaml")
	require.NoError(t, os.WriteFile(path, []byte("submenuCloseDelay: 20ms\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20*time.Millisecond, cfg.SubmenuCloseDelay)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
