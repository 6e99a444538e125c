package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const menuYAML = `
Copy:
  type: function
  action: copy
"---":
  type: separator
More:
  type: category
  children:
    Paste:
      type: function
      action: paste
      condition: false
Odd:
  type: gadget
`

func writeMenu(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(menuYAML), 0o600))
	return path
}

func TestRunLint(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer

	err := runLint(&out, writeMenu(t), nil)
	require.ErrorIs(t, err, errIssues)

	assert.Equal(t, `Copy (copy)
----
More >
  Paste (paste, disabled)
Odd (unknown type)
dropped Odd: unknown_type
`, out.String())
}

func TestRunLintUnboundAction(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer

	err := runLint(&out, writeMenu(t), []string{"copy"})
	require.ErrorIs(t, err, errIssues)
	assert.Contains(t, out.String(), "dropped More > Paste: missing_run")
}

func TestRunLintClean(t *testing.T) {
	color.NoColor = true
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Copy:\n  type: function\n  action: copy\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, runLint(&out, path, nil))
	assert.Contains(t, out.String(), "ok")
}

func TestSplitActions(t *testing.T) {
	assert.Equal(t, []string{"copy", "paste"}, splitActions(" copy, ,paste "))
	assert.Nil(t, splitActions(""))
}
