package menu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const menuYAML = `
Copy:
  type: function
  icon: content_copy
  action: copy
Zebra:
  type: category
  children:
    Paste:
      type: function
      action: paste
    "---":
      type: separator
    Special:
      type: function
      action: paste
      condition: false
Alpha:
  type: function
  action: wrap
  toggle: true
Mystery:
  type: widget
`

func TestParseSpecKeepsOrder(t *testing.T) {
	s, err := ParseSpec([]byte(menuYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"Copy", "Zebra", "Alpha", "Mystery"}, s.Labels())

	cp, ok := s.Get("Copy")
	require.True(t, ok)
	assert.Equal(t, KindFunction, cp.Kind)
	assert.Equal(t, "content_copy", cp.Icon)
	assert.Equal(t, "copy", cp.Action)
	assert.True(t, cp.Enabled())

	zebra, _ := s.Get("Zebra")
	require.Equal(t, KindCategory, zebra.Kind)
	assert.Equal(t, []string{"Paste", "---", "Special"}, zebra.Children.Labels())
	special, _ := zebra.Children.Get("Special")
	assert.False(t, special.Enabled())

	alpha, _ := s.Get("Alpha")
	require.NotNil(t, alpha.Toggle)
	assert.True(t, *alpha.Toggle)

	mystery, _ := s.Get("Mystery")
	assert.Equal(t, KindUnknown, mystery.Kind)
}

func TestParseSpecJSON(t *testing.T) {
	s, err := ParseSpec([]byte(`{"B": {"type": "function", "action": "b"}, "A": {"type": "separator"}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, s.Labels())
}

func TestParseSpecErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", "  \n"},
		{"sequence", "- a\n- b\n"},
		{"scalar", "hello"},
		{"children not a mapping", "A:\n  type: category\n  children: [1, 2]\n"},
		{"malformed", "A: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSpec([]byte(tt.data))
			require.ErrorIs(t, err, ErrInvalidSpec)
		})
	}
}

func TestLoadSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(menuYAML), 0o600))

	s, err := LoadSpec(path)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())

	_, err = LoadSpec(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSpecAddReplacesInPlace(t *testing.T) {
	s := NewSpec().
		Add("A", Separator()).
		Add("B", Separator()).
		Add("A", Function(func() {}))

	assert.Equal(t, []string{"A", "B"}, s.Labels())
	a, _ := s.Get("A")
	assert.Equal(t, KindFunction, a.Kind)

	var zero Spec
	zero.Add("x", Separator())
	assert.Equal(t, 1, zero.Len())

	var nilSpec *Spec
	assert.Equal(t, 0, nilSpec.Len())
	_, ok := nilSpec.Get("x")
	assert.False(t, ok)
}

func TestSpecWalkAndActions(t *testing.T) {
	s, err := ParseSpec([]byte(menuYAML))
	require.NoError(t, err)

	var paths []string
	s.Walk(func(path []string, _ Item) {
		paths = append(paths, Issue{Path: path}.String())
	})
	assert.Equal(t, []string{
		"Copy: ", "Zebra: ", "Zebra > Paste: ", "Zebra > ---: ", "Zebra > Special: ", "Alpha: ", "Mystery: ",
	}, paths)

	assert.Equal(t, []string{"copy", "paste", "wrap"}, s.Actions())
}

func TestKindNames(t *testing.T) {
	for _, k := range []Kind{KindFunction, KindCategory, KindSeparator} {
		assert.Equal(t, k, ParseKind(k.String()))
	}
	assert.Equal(t, KindUnknown, ParseKind("widget"))
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestLint(t *testing.T) {
	s, err := ParseSpec([]byte(menuYAML))
	require.NoError(t, err)
	s.Add("Broken", Category(nil))
	s.Add("Locked", Category(nil, WithCondition(false)))
	s.Add("Frozen", Category(NewSpec().Add("Ghost", Function(nil)), WithCondition(false)))

	issues := Lint(s, map[string]func(){"copy": func() {}, "paste": func() {}})

	var got []string
	for _, i := range issues {
		got = append(got, i.String())
	}
	assert.Equal(t, []string{
		"Alpha: missing_run",
		"Mystery: unknown_type",
		"Broken: missing_children",
	}, got)

	assert.Len(t, Lint(s, nil), 6)
	for _, i := range Lint(s, nil) {
		assert.NotEqual(t, "Frozen", i.Path[0], "disabled categories are never built")
	}
}
