package menu

import (
	"fmt"

	"github.com/mchmarny/breve/pkg/dom"
	"github.com/mchmarny/breve/pkg/widget"
)

// Classes set on menu items.
const (
	ClassDisabled  = "noFunction"
	ClassSeparator = "separator"
)

// build carries the state of one Open call. Submenu requests queue here
// instead of in package state, so every build starts with an empty queue.
type build struct {
	m     *Menu
	inst  *Instance
	queue []request
}

// request asks the resolver to build the submenu of a category item.
type request struct {
	label    string
	anchor   dom.Element
	parent   *level
	children *Spec
}

// fill builds every entry of spec into lvl. Item ids encode the level and the
// position of the entry, dropped entries included.
func (b *build) fill(lvl *level, spec *Spec) {
	for pos, e := range spec.Entries() {
		el := b.item(e.Label, e.Item, lvl)
		if el == nil {
			continue
		}
		if e.Item.Kind != KindSeparator {
			el.SetID(fmt.Sprintf("%s-itemAtPos%d", lvl.el.ID(), pos+1))
		}
		lvl.el.Append(el)
		lvl.items = append(lvl.items, el)
	}
}

// item converts one entry into an element, or returns nil when the entry
// cannot be rendered.
func (b *build) item(label string, it Item, owner *level) dom.Element {
	switch it.Kind {
	case KindFunction:
		return b.function(label, it)
	case KindCategory:
		return b.category(label, it, owner)
	case KindSeparator:
		return b.separator()
	default:
		b.drop(label, reasonUnknownType)
		return nil
	}
}

func (b *build) function(label string, it Item) dom.Element {
	run := it.Run
	if run == nil && it.Action != "" {
		run = b.m.actions[it.Action]
	}
	if run == nil {
		b.drop(label, reasonMissingRun)
		return nil
	}

	btn := b.button(label, it)
	if it.Enabled() {
		inst := b.inst
		b.inst.listen(btn, dom.Click, func(*dom.Event) {
			run()
			b.m.closeInstance(inst, reasonSelect)
		})
	}
	if it.Toggle != nil {
		glyph := widget.GlyphUnchecked
		if *it.Toggle {
			glyph = widget.GlyphChecked
		}
		widget.AppendIcon(b.m.doc, btn, glyph, b.m.cfg.IconClass)
	}
	return btn
}

func (b *build) category(label string, it Item, owner *level) dom.Element {
	if it.Enabled() && it.Children == nil {
		b.drop(label, reasonMissingChildren)
		return nil
	}

	btn := b.button(label, it)
	if it.Enabled() {
		b.queue = append(b.queue, request{
			label:    label,
			anchor:   btn,
			parent:   owner,
			children: it.Children,
		})
	}
	widget.AppendIcon(b.m.doc, btn, widget.GlyphChevron, b.m.cfg.IconClass)
	return btn
}

func (b *build) separator() dom.Element {
	div := b.m.doc.CreateElement("div")
	div.AddClass(ClassSeparator)
	div.Append(b.m.doc.CreateElement("div"))
	return div
}

func (b *build) button(label string, it Item) dom.Element {
	library := b.m.cfg.IconClass
	if it.IconClass != "" {
		library = it.IconClass
	}
	btn := widget.Button(b.m.doc, it.Icon, label, library)
	btn.AddClass(it.Kind.String())
	if !it.Enabled() {
		btn.AddClass(ClassDisabled)
	}
	return btn
}

func (b *build) drop(label, reason string) {
	b.m.log.Debug("dropping menu item", "menu", b.inst.ID, "label", label, "reason", reason)
	b.m.recorder.Dropped(reason)
}
