package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/breve/pkg/dom"
	"github.com/mchmarny/breve/pkg/dom/memdom"
	"github.com/mchmarny/breve/pkg/geometry"
	"github.com/mchmarny/breve/pkg/logger"
	"github.com/mchmarny/breve/pkg/timer/timertest"
)

func testMenu(doc *memdom.Document) *Menu {
	return New(doc, WithClock(timertest.New()), WithLogger(logger.Discard()))
}

func nested() *Spec {
	noop := func() {}
	return NewSpec().
		Add("Copy", Function(noop)).
		Add("More", Category(NewSpec().Add("Paste", Function(noop))))
}

func TestCommitPinsSubmenuOfDetachedAnchor(t *testing.T) {
	doc := memdom.New(geometry.Size{Width: 800, Height: 600})
	anchor := doc.CreateElement("div")
	doc.Body().Append(anchor)
	m := testMenu(doc)

	inst, err := m.Open(anchor, nested())
	require.NoError(t, err)
	require.Len(t, inst.levels, 1)

	sub := inst.levels[0]
	sub.anchor.Remove()
	m.commit(inst)

	r, err := sub.el.Rect()
	require.NoError(t, err)
	assert.Equal(t, geometry.Point{X: 0, Y: 576}, r.Origin())
}

func TestCommitSkipsClosedInstance(t *testing.T) {
	doc := memdom.New(geometry.Size{Width: 800, Height: 600})
	anchor := doc.CreateElement("div")
	doc.Body().Append(anchor)
	m := testMenu(doc)

	inst, err := m.Open(anchor, nested())
	require.NoError(t, err)
	m.Close()

	assert.NotPanics(t, func() { m.commit(inst) })
}

func TestOpenDuringBuildIsRejected(t *testing.T) {
	doc := memdom.New(geometry.Size{Width: 800, Height: 600})
	anchor := doc.CreateElement("div")
	doc.Body().Append(anchor)
	m := testMenu(doc)

	m.building = true
	_, err := m.Open(anchor, nested())
	require.ErrorIs(t, err, ErrBuildInProgress)
	assert.Nil(t, m.Current())
	assert.Equal(t, 1, doc.Nodes())

	m.building = false
	_, err = m.Open(anchor, nested())
	require.NoError(t, err)
	assert.False(t, m.building)
}

func TestBuildQueueStartsEmpty(t *testing.T) {
	doc := memdom.New(geometry.Size{Width: 800, Height: 600})
	anchor := doc.CreateElement("div")
	doc.Body().Append(anchor)
	m := testMenu(doc)

	for range 2 {
		inst, err := m.Open(anchor, nested())
		require.NoError(t, err)
		require.Len(t, inst.levels, 1)
		assert.Equal(t, SubmenuIDPrefix+"1", inst.levels[0].el.ID())
		m.Close()
	}
}

func TestCascadeStopsAtRoot(t *testing.T) {
	doc := memdom.New(geometry.Size{Width: 800, Height: 600})
	anchor := doc.CreateElement("div")
	doc.Body().Append(anchor)
	m := testMenu(doc)

	inst, err := m.Open(anchor, nested())
	require.NoError(t, err)

	dom.Show(inst.levels[0].el)
	m.cascade(inst.levels[0], geometry.Point{X: 700, Y: 500})
	assert.False(t, dom.IsHidden(inst.root.el))
	assert.True(t, dom.IsHidden(inst.levels[0].el))
}
