// Package menu builds nested right-click context menus from declarative
// specs. Submenus open on hover with a short hover-intent delay and every
// level is placed so it stays inside the viewport.
//
// A Menu manages at most one open instance. Menus are not safe for concurrent
// use; the host delivers events and timer callbacks from one event loop.
package menu

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/mchmarny/breve/pkg/config"
	"github.com/mchmarny/breve/pkg/dom"
	"github.com/mchmarny/breve/pkg/geometry"
	"github.com/mchmarny/breve/pkg/metric"
	"github.com/mchmarny/breve/pkg/timer"
)

// Element ids and classes of the rendered menu, matched by the stylesheet.
const (
	ContainerID      = "BreveContextMenu"
	RootID           = "contextMenuMain"
	SubmenuIDPrefix  = "contextMenuSub"
	ClassContainer   = "contextMenuContainer"
	ClassMenu        = "contextMenu"
	ClassContextOpen = "contextOpen"
)

// Gate is paused while a menu is open so tooltips do not compete with it.
type Gate interface {
	Pause()
	Resume()
}

type nopGate struct{}

func (nopGate) Pause()  {}
func (nopGate) Resume() {}

// Menu opens and closes context menus on a document.
type Menu struct {
	doc      dom.Document
	cfg      config.Config
	clock    timer.Clock
	gate     Gate
	recorder metric.Recorder
	actions  map[string]func()
	log      *slog.Logger

	current  *Instance
	building bool
}

// Option is a functional option for configuring a Menu.
type Option func(*Menu)

// WithConfig sets the widget settings. Defaults to config.Default().
func WithConfig(cfg config.Config) Option {
	return func(m *Menu) { m.cfg = cfg }
}

// WithClock sets the clock driving hover-intent timers.
func WithClock(c timer.Clock) Option {
	return func(m *Menu) { m.clock = c }
}

// WithTooltipGate sets the gate paused while a menu is open, usually the
// tooltip manager.
func WithTooltipGate(g Gate) Option {
	return func(m *Menu) {
		if g != nil {
			m.gate = g
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metric.Recorder) Option {
	return func(m *Menu) {
		if r != nil {
			m.recorder = r
		}
	}
}

// WithActions binds callbacks to the action names used by specs.
func WithActions(actions map[string]func()) Option {
	return func(m *Menu) {
		for name, fn := range actions {
			m.actions[name] = fn
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(m *Menu) {
		if l != nil {
			m.log = l
		}
	}
}

// New returns a Menu rendering into doc.
func New(doc dom.Document, opts ...Option) *Menu {
	m := &Menu{
		doc:      doc,
		cfg:      config.Default(),
		clock:    timer.System,
		gate:     nopGate{},
		recorder: metric.Nop,
		actions:  map[string]func(){},
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Instance is one open context menu.
type Instance struct {
	// ID identifies the instance in logs.
	ID string

	anchor    dom.Element
	container dom.Element
	root      *level
	levels    []*level
	unlisten  []dom.Unlisten
	closed    bool
}

// Anchor returns the element the menu was opened for.
func (i *Instance) Anchor() dom.Element { return i.anchor }

// Container returns the element holding every level of the menu.
func (i *Instance) Container() dom.Element { return i.container }

// Root returns the top level menu box.
func (i *Instance) Root() dom.Element { return i.root.el }

// Submenus returns the submenu boxes in level order.
func (i *Instance) Submenus() []dom.Element {
	out := make([]dom.Element, 0, len(i.levels))
	for _, l := range i.levels {
		out = append(out, l.el)
	}
	return out
}

// Closed reports whether the instance has been dismissed.
func (i *Instance) Closed() bool { return i.closed }

type eventSource interface {
	On(dom.EventType, dom.Handler) dom.Unlisten
}

func (i *Instance) listen(src eventSource, typ dom.EventType, h dom.Handler) {
	i.unlisten = append(i.unlisten, src.On(typ, h))
}

// Current returns the open instance, or nil.
func (m *Menu) Current() *Instance { return m.current }

// IsOpen reports whether a menu is open.
func (m *Menu) IsOpen() bool { return m.current != nil }

// Open builds spec as a context menu for anchor at the pointer position.
//
// Only one menu can be open at a time: while one is open, or while a build is
// running, Open leaves the current state untouched and returns an error.
// Invalid items are left out of the menu. The dismissal listeners (pointer
// down outside the menu, another context menu request, Escape) are armed after
// the event that triggered Open finishes propagating.
func (m *Menu) Open(anchor dom.Element, spec *Spec) (*Instance, error) {
	switch {
	case anchor == nil:
		return nil, ErrNilAnchor
	case spec == nil:
		return nil, ErrNilSpec
	case m.building:
		m.reject(reasonBuildInProgress)
		return nil, ErrBuildInProgress
	case m.current != nil:
		m.reject(reasonAlreadyOpen)
		return nil, ErrAlreadyOpen
	}

	m.building = true
	defer func() { m.building = false }()

	inst := &Instance{ID: uuid.NewString(), anchor: anchor}
	b := &build{m: m, inst: inst}

	inst.container = m.doc.CreateElement("div")
	inst.container.SetID(ContainerID)
	inst.container.AddClass(ClassContainer)
	dom.HideByDefault(inst.container)

	root := m.doc.CreateElement("div")
	root.SetID(RootID)
	root.AddClass(ClassMenu)
	inst.root = &level{el: root}
	b.fill(inst.root, spec)

	inst.container.Append(root)
	m.doc.Body().Append(inst.container)
	b.resolve()

	// the container is out of layout until shown
	restore := dom.Reveal(inst.container)
	root.MoveTo(geometry.PlaceRelativeToPointer(m.doc.Pointer(), dom.Size(root), m.doc.Viewport(), geometry.Point{}))
	m.commit(inst)
	restore()

	anchor.AddClass(ClassContextOpen)
	dom.Show(inst.container)
	m.gate.Pause()
	m.current = inst
	m.doc.Defer(func() { m.arm(inst) })

	m.recorder.Opened()
	m.log.Debug("context menu opened", "menu", inst.ID, "items", len(inst.root.items), "submenus", len(inst.levels))

	return inst, nil
}

// Close dismisses the open menu. It is a no-op when no menu is open.
func (m *Menu) Close() {
	if m.current != nil {
		m.closeInstance(m.current, reasonAPI)
	}
}

// Bind opens the menu returned by spec when target is right-clicked. The
// native context menu of target is suppressed. Opening is deferred until the
// right-click finished propagating so an open menu is dismissed first.
func (m *Menu) Bind(target dom.Element, spec func() *Spec) dom.Unlisten {
	return target.On(dom.ContextMenu, func(e *dom.Event) {
		e.PreventDefault()
		m.doc.Defer(func() {
			if _, err := m.Open(target, spec()); err != nil {
				m.log.Debug("context menu not opened", "error", err)
			}
		})
	})
}

// SuppressNativeMenus prevents the browser context menu everywhere on the page.
func SuppressNativeMenus(doc dom.Document) dom.Unlisten {
	return doc.On(dom.ContextMenu, func(e *dom.Event) { e.PreventDefault() })
}

func (m *Menu) reject(reason string) {
	attrs := []any{"reason", reason}
	if m.current != nil {
		attrs = append(attrs, "menu", m.current.ID)
	}
	m.log.Error("refusing to open context menu", attrs...)
	m.recorder.Rejected(reason)
}

// arm installs the dismissal listeners of inst unless it was closed already.
func (m *Menu) arm(inst *Instance) {
	if m.current != inst {
		return
	}
	inst.listen(m.doc, dom.PointerDown, func(e *dom.Event) {
		if !m.inside(inst, e.Pointer) {
			m.closeInstance(inst, reasonOutsideClick)
		}
	})
	inst.listen(m.doc, dom.ContextMenu, func(*dom.Event) {
		m.closeInstance(inst, reasonContextMenu)
	})
	inst.listen(m.doc, dom.KeyDown, func(e *dom.Event) {
		if e.Key == dom.KeyEscape {
			m.closeInstance(inst, reasonEscape)
		}
	})
}

// inside reports whether p is within a visible level of inst.
func (m *Menu) inside(inst *Instance, p geometry.Point) bool {
	if dom.Inside(inst.root.el, p) {
		return true
	}
	for _, l := range inst.levels {
		if !dom.IsHidden(l.el) && dom.Inside(l.el, p) {
			return true
		}
	}
	return false
}

func (m *Menu) closeInstance(inst *Instance, reason string) {
	if inst.closed || m.current != inst {
		return
	}
	m.current = nil
	inst.closed = true

	for _, l := range inst.levels {
		l.intent.Cancel()
	}
	for _, off := range inst.unlisten {
		off()
	}
	inst.unlisten = nil

	inst.container.Remove()
	inst.anchor.RemoveClass(ClassContextOpen)
	m.gate.Resume()

	m.recorder.Closed(reason)
	m.log.Debug("context menu closed", "menu", inst.ID, "reason", reason)
}
