package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/breve/pkg/dom/memdom"
	"github.com/mchmarny/breve/pkg/geometry"
)

func TestButton(t *testing.T) {
	doc := memdom.New(geometry.Size{Width: 100, Height: 100})

	b := Button(doc, "content_copy", "Copy", "material-icons").(*memdom.Element)
	assert.Equal(t, "button", b.Tag())
	assert.True(t, b.HasClass("btn"))

	children := b.Children()
	require.Len(t, children, 2)
	assert.True(t, children[0].HasClass("icon"))
	assert.True(t, children[0].HasClass("withText"))
	assert.True(t, children[1].HasClass("text"))
	assert.Equal(t, "content_copy Copy", b.TextContent())
}

func TestButtonWithoutLibrary(t *testing.T) {
	doc := memdom.New(geometry.Size{Width: 100, Height: 100})

	b := Button(doc, "content_copy", "Copy", "").(*memdom.Element)
	require.Len(t, b.Children(), 1)
	assert.Equal(t, "Copy", b.TextContent())

	assert.Nil(t, Icon(doc, GlyphChevron, ""))
}

func TestIconOnlyButton(t *testing.T) {
	doc := memdom.New(geometry.Size{Width: 100, Height: 100})

	b := Button(doc, "delete", "", "material-icons").(*memdom.Element)
	require.Len(t, b.Children(), 1)
	assert.False(t, b.Children()[0].HasClass("withText"))
}
