package menu

import (
	"fmt"

	"github.com/mchmarny/breve/pkg/dom"
	"github.com/mchmarny/breve/pkg/geometry"
	"github.com/mchmarny/breve/pkg/timer"
)

// level is one menu box: the root or a submenu.
type level struct {
	el     dom.Element
	anchor dom.Element // item opening this level, nil for the root
	parent *level      // level holding anchor
	items  []dom.Element
	intent *timer.Timer
}

func (l *level) hasSelected() bool {
	for _, it := range l.items {
		if dom.IsSelected(it) {
			return true
		}
	}
	return false
}

// chain returns the boxes of l and every level above it.
func (l *level) chain() []dom.Element {
	var els []dom.Element
	for lvl := l; lvl != nil; lvl = lvl.parent {
		els = append(els, lvl.el)
	}
	return els
}

// resolve drains the submenu queue first in, first out. Requests queued while
// building a submenu land behind the ones already waiting, which yields level
// order: all submenus of depth n are built before any of depth n+1.
func (b *build) resolve() {
	n := 0
	for len(b.queue) > 0 {
		req := b.queue[0]
		b.queue = b.queue[1:]
		if req.children.Len() == 0 {
			b.m.log.Debug("skipping empty submenu", "menu", b.inst.ID, "label", req.label)
			continue
		}
		n++
		b.submenu(req, n)
	}
}

func (b *build) submenu(req request, n int) {
	el := b.m.doc.CreateElement("div")
	el.AddClass(ClassMenu)
	el.SetID(fmt.Sprintf("%s%d", SubmenuIDPrefix, n))

	lvl := &level{
		el:     el,
		anchor: req.anchor,
		parent: req.parent,
		intent: timer.New(b.m.clock),
	}
	b.fill(lvl, req.children)
	dom.HideByDefault(el)

	b.inst.levels = append(b.inst.levels, lvl)
	b.inst.container.Append(el)
	b.m.hoverIntent(b.inst, lvl)
}

// commit places every submenu next to its anchor. It runs once the instance
// is attached to the document and does nothing for an instance that was
// closed in the meantime. Levels are placed in level order, so the level
// holding an anchor already sits at its final position when the anchor is
// measured. Each submenu and its ancestors are lifted back into layout for
// the measurement.
func (m *Menu) commit(inst *Instance) {
	if inst.closed {
		return
	}
	viewport := m.doc.Viewport()
	for _, lvl := range inst.levels {
		restore := dom.Reveal(lvl.chain()...)
		size := dom.Size(lvl.el)
		anchor, err := lvl.anchor.Rect()
		restore()
		if err != nil {
			m.log.Warn("submenu anchor cannot be measured, pinning to viewport",
				"menu", inst.ID, "submenu", lvl.el.ID(), "error", err)
			lvl.el.MoveTo(geometry.PinToViewport(size, viewport))
			continue
		}
		lvl.el.MoveTo(geometry.PlaceRelativeToAnchor(size, anchor, viewport))
	}
}

// hoverIntent wires the open and close behavior of a submenu.
func (m *Menu) hoverIntent(inst *Instance, lvl *level) {
	delay := m.cfg.SubmenuCloseDelay

	inst.listen(lvl.anchor, dom.PointerOver, func(*dom.Event) {
		dom.Show(lvl.el)
		dom.Select(lvl.anchor)
		lvl.intent.Cancel()
	})
	inst.listen(lvl.anchor, dom.PointerLeave, func(e *dom.Event) {
		if dom.Inside(lvl.el, e.Pointer) {
			return
		}
		lvl.intent.Arm(func() {
			dom.Hide(lvl.el)
			dom.Deselect(lvl.anchor)
		}, delay, nil)
	})
	inst.listen(lvl.el, dom.PointerOver, func(*dom.Event) {
		lvl.intent.Cancel()
	})
	inst.listen(lvl.el, dom.PointerLeave, func(e *dom.Event) {
		p := e.Pointer
		lvl.intent.Arm(func() {
			m.cascade(lvl, p)
		}, delay, nil)
	})
}

// cascade closes lvl and walks up the chain of parent submenus.
//
// p is where the pointer left lvl. A level stays open, and the walk stops,
// when one of its items is selected (a deeper submenu is active), when p is on
// the item that opened it, or when p is inside the level itself. All three
// checks apply at every level, so leaving a deep submenu for one of its
// ancestors closes only the levels below that ancestor.
func (m *Menu) cascade(lvl *level, p geometry.Point) {
	for lvl != nil && lvl.anchor != nil {
		if lvl.hasSelected() || dom.Inside(lvl.anchor, p) || dom.Inside(lvl.el, p) {
			return
		}
		dom.Hide(lvl.el)
		dom.Deselect(lvl.anchor)
		lvl = lvl.parent
	}
}
