// Package tooltip shows a delayed text bubble next to the pointer when it rests
// on an element. All tooltips of a page share one element and one timer.
package tooltip

import (
	"fmt"

	"github.com/mchmarny/breve/pkg/config"
	"github.com/mchmarny/breve/pkg/dom"
	"github.com/mchmarny/breve/pkg/geometry"
	"github.com/mchmarny/breve/pkg/timer"
)

// Element ids of the shared tooltip.
const (
	ID     = "BreveTooltip"
	TextID = "BreveTooltipText"
)

// Manager owns the shared tooltip element.
//
// It implements menu.Gate: while paused no tooltip shows, and the one that is
// visible hides.
type Manager struct {
	doc   dom.Document
	cfg   config.Config
	timer *timer.Timer
	el    dom.Element
	text  dom.Element
}

// Option configures a Manager.
type Option func(*options)

type options struct {
	cfg   config.Config
	clock timer.Clock
}

// WithConfig sets the tooltip settings. Defaults to config.Default().
func WithConfig(cfg config.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithClock sets the clock driving the show delay.
func WithClock(c timer.Clock) Option {
	return func(o *options) { o.clock = c }
}

// New creates the tooltip element and appends it, hidden, to the body.
func New(doc dom.Document, opts ...Option) *Manager {
	o := &options{cfg: config.Default(), clock: timer.System}
	for _, opt := range opts {
		opt(o)
	}

	m := &Manager{
		doc:   doc,
		cfg:   o.cfg,
		timer: timer.New(o.clock, timer.WithSticky()),
		el:    doc.CreateElement("div"),
		text:  doc.CreateElement("span"),
	}
	m.el.SetID(ID)
	m.el.SetStyle("animation-duration", fmt.Sprintf("%dms", o.cfg.TooltipFade.Milliseconds()))
	m.text.SetID(TextID)
	m.el.Append(m.text)
	dom.HideByDefault(m.el)
	doc.Body().Append(m.el)
	return m
}

// Element returns the shared tooltip element.
func (m *Manager) Element() dom.Element { return m.el }

// Attach shows text when the pointer rests on target. An empty text uses the
// title attribute of target instead. The title attribute is removed either way
// so the native tooltip does not show too. Attaching twice adds a second set
// of listeners; use the returned func to detach.
func (m *Manager) Attach(target dom.Element, text string) dom.Unlisten {
	if title, ok := target.Attr("title"); ok && text == "" {
		text = title
	}
	target.RemoveAttr("title")

	offs := []dom.Unlisten{
		target.On(dom.PointerOver, func(*dom.Event) {
			m.timer.Arm(func() { m.show(text) }, m.cfg.TooltipDelay, m.hide)
		}),
		target.On(dom.PointerOut, func(*dom.Event) {
			m.hide()
			m.timer.Cancel()
		}),
	}
	if m.cfg.HideTooltipOnPointerMove {
		offs = append(offs, target.On(dom.PointerMove, func(*dom.Event) {
			m.hide()
			if !m.timer.Paused() {
				m.timer.Pause()
				m.timer.Resume()
			}
		}))
	}

	return func() {
		for _, off := range offs {
			off()
		}
	}
}

// Pause hides the tooltip and holds back new ones until Resume.
func (m *Manager) Pause() { m.timer.Pause() }

// Resume restarts the most recent pending tooltip, if any.
func (m *Manager) Resume() { m.timer.Resume() }

// Visible reports whether the tooltip is showing.
func (m *Manager) Visible() bool { return !dom.IsHidden(m.el) }

func (m *Manager) show(text string) {
	m.text.SetText(text)
	offset := geometry.Point{X: m.cfg.TooltipOffset.X, Y: m.cfg.TooltipOffset.Y}
	m.el.MoveTo(geometry.PlaceRelativeToPointer(m.doc.Pointer(), dom.Measure(m.el), m.doc.Viewport(), offset))
	dom.Show(m.el)
}

func (m *Manager) hide() { dom.Hide(m.el) }
