// Package memdom is an in-memory dom.Document with a deterministic block
// layout. It backs the widget tests and any host that renders without a
// browser.
//
// Layout rules: buttons are ButtonSize, separators SeparatorSize, elements
// sized with SetSize keep that size, and any other element stacks its
// in-flow children vertically. Elements positioned with MoveTo leave the flow.
// Classes registered with Collapse lay out like display:none.
package memdom

import (
	"slices"
	"strings"

	"github.com/mchmarny/breve/pkg/dom"
	"github.com/mchmarny/breve/pkg/geometry"
)

var (
	// ButtonSize is the layout size of every button.
	ButtonSize = geometry.Size{Width: 160, Height: 24}
	// SeparatorSize is the layout size of elements with the separator class.
	SeparatorSize = geometry.Size{Width: 160, Height: 8}
)

// Document is an in-memory page.
type Document struct {
	body     *Element
	viewport geometry.Size
	pointer  geometry.Point
	window   listeners
	deferred []func()
	active   int
	collapse []string
}

var _ dom.Document = (*Document)(nil)

// New returns an empty document with the given viewport.
func New(viewport geometry.Size) *Document {
	d := &Document{viewport: viewport}
	d.body = d.newElement("body")
	return d
}

func (d *Document) newElement(tag string) *Element {
	return &Element{doc: d, tag: tag, attrs: map[string]string{}, style: map[string]string{}}
}

// CreateElement returns a detached element.
func (d *Document) CreateElement(tag string) dom.Element { return d.newElement(tag) }

// Body returns the root element.
func (d *Document) Body() dom.Element { return d.body }

// BodyElement returns the root element with its concrete type.
func (d *Document) BodyElement() *Element { return d.body }

// Collapse makes elements carrying class, and everything inside them, lay out
// the way browsers treat display:none: they take no room in the flow and
// measure as an empty box at the origin.
func (d *Document) Collapse(class string) { d.collapse = append(d.collapse, class) }

func (d *Document) Viewport() geometry.Size { return d.viewport }

// SetViewport resizes the viewport.
func (d *Document) SetViewport(s geometry.Size) { d.viewport = s }

func (d *Document) Pointer() geometry.Point { return d.pointer }

// MovePointer sets the pointer position without dispatching events.
func (d *Document) MovePointer(p geometry.Point) { d.pointer = p }

// On registers a window listener.
func (d *Document) On(typ dom.EventType, h dom.Handler) dom.Unlisten {
	return d.window.add(d, typ, h)
}

// Defer queues f until the current dispatch completes. Outside a dispatch the
// queue is drained by Flush.
func (d *Document) Defer(f func()) { d.deferred = append(d.deferred, f) }

// Flush runs deferred callbacks, including ones queued while flushing.
func (d *Document) Flush() {
	for len(d.deferred) > 0 {
		f := d.deferred[0]
		d.deferred = d.deferred[1:]
		f()
	}
}

// ActiveListeners returns the number of registered listeners, window and
// element, that have not been removed.
func (d *Document) ActiveListeners() int { return d.active }

// Dispatch delivers an event to target, its ancestors and the window, then
// flushes deferred callbacks. A nil target dispatches to the window only.
// The event pointer defaults to the document pointer.
func (d *Document) Dispatch(target *Element, evt *dom.Event) {
	if evt.Pointer == (geometry.Point{}) {
		evt.Pointer = d.pointer
	}
	if target != nil {
		evt.Target = target
		for el := target; el != nil; el = el.parent {
			el.listeners.fire(evt)
			if !evt.Type.Bubbles() {
				break
			}
		}
	}
	if target == nil || evt.Type.Bubbles() {
		d.window.fire(evt)
	}
	d.Flush()
}

// Fire dispatches an event of the given type at the current pointer.
func (d *Document) Fire(target *Element, typ dom.EventType) *dom.Event {
	evt := dom.NewEvent(typ, d.pointer, "", nil, nil)
	d.Dispatch(target, evt)
	return evt
}

// FireAt moves the pointer to p and dispatches an event there.
func (d *Document) FireAt(target *Element, typ dom.EventType, p geometry.Point) *dom.Event {
	d.pointer = p
	return d.Fire(target, typ)
}

// PressKey dispatches a keydown event to the body.
func (d *Document) PressKey(key string) *dom.Event {
	evt := dom.NewEvent(dom.KeyDown, d.pointer, key, nil, nil)
	d.Dispatch(d.body, evt)
	return evt
}

// ByID returns the attached element with the given id, or nil.
func (d *Document) ByID(id string) *Element {
	found := d.Query(func(el *Element) bool { return el.id == id })
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// Query returns attached elements matching fn in document order.
func (d *Document) Query(fn func(*Element) bool) []*Element {
	var out []*Element
	var walk func(*Element)
	walk = func(el *Element) {
		if fn(el) {
			out = append(out, el)
		}
		for _, c := range el.children {
			walk(c)
		}
	}
	walk(d.body)
	return out
}

// WithClass returns attached elements carrying class name.
func (d *Document) WithClass(name string) []*Element {
	return d.Query(func(el *Element) bool { return el.HasClass(name) })
}

// Nodes returns the number of attached elements below the body.
func (d *Document) Nodes() int {
	return len(d.Query(func(el *Element) bool { return el != d.body }))
}

// Element is an in-memory node.
type Element struct {
	doc      *Document
	tag      string
	id       string
	classes  []string
	text     string
	attrs    map[string]string
	style    map[string]string
	parent   *Element
	children []*Element

	size      *geometry.Size
	position  *geometry.Point
	listeners listeners
}

var _ dom.Element = (*Element)(nil)

func (e *Element) Tag() string     { return e.tag }
func (e *Element) ID() string      { return e.id }
func (e *Element) SetID(id string) { e.id = id }

func (e *Element) AddClass(names ...string) {
	for _, n := range names {
		if !slices.Contains(e.classes, n) {
			e.classes = append(e.classes, n)
		}
	}
}

func (e *Element) RemoveClass(names ...string) {
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool {
		return slices.Contains(names, c)
	})
}

func (e *Element) HasClass(name string) bool { return slices.Contains(e.classes, name) }

// Classes returns the class list in insertion order.
func (e *Element) Classes() []string { return slices.Clone(e.classes) }

func (e *Element) SetText(text string) { e.text = text }

// Text returns the element's own text.
func (e *Element) Text() string { return e.text }

// TextContent returns the text of the element and its descendants joined by
// spaces, skipping empty nodes.
func (e *Element) TextContent() string {
	var parts []string
	var walk func(*Element)
	walk = func(el *Element) {
		if el.text != "" {
			parts = append(parts, el.text)
		}
		for _, c := range el.children {
			walk(c)
		}
	}
	walk(e)
	return strings.Join(parts, " ")
}

func (e *Element) SetAttr(name, value string) { e.attrs[name] = value }

func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *Element) RemoveAttr(name string) { delete(e.attrs, name) }

func (e *Element) SetStyle(property, value string) { e.style[property] = value }

// Style returns a style property.
func (e *Element) Style(property string) string { return e.style[property] }

func (e *Element) Append(children ...dom.Element) {
	for _, c := range children {
		child, ok := c.(*Element)
		if !ok || child == nil {
			continue
		}
		child.Remove()
		child.parent = e
		e.children = append(e.children, child)
	}
}

func (e *Element) Remove() {
	if e.parent == nil {
		return
	}
	e.parent.children = slices.DeleteFunc(e.parent.children, func(c *Element) bool { return c == e })
	e.parent = nil
}

// Parent returns the parent element, or nil when detached.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the child elements.
func (e *Element) Children() []*Element { return slices.Clone(e.children) }

// SetSize fixes the layout size of the element.
func (e *Element) SetSize(s geometry.Size) { e.size = &s }

func (e *Element) MoveTo(p geometry.Point) { e.position = &p }

func (e *Element) Rect() (geometry.Rect, error) {
	if !e.attached() {
		return geometry.Rect{}, dom.ErrDetached
	}
	if !e.displayed() {
		return geometry.Rect{}, nil
	}
	return geometry.NewRect(e.origin(), e.measure()), nil
}

func (e *Element) On(typ dom.EventType, h dom.Handler) dom.Unlisten {
	return e.listeners.add(e.doc, typ, h)
}

func (e *Element) attached() bool {
	el := e
	for el.parent != nil {
		el = el.parent
	}
	return el == e.doc.body
}

func (e *Element) collapsed() bool {
	for _, c := range e.doc.collapse {
		if e.HasClass(c) {
			return true
		}
	}
	return false
}

func (e *Element) displayed() bool {
	for el := e; el != nil; el = el.parent {
		if el.collapsed() {
			return false
		}
	}
	return true
}

// inFlow reports whether e takes room in its parent's stack.
func (e *Element) inFlow() bool { return e.position == nil && !e.collapsed() }

func (e *Element) measure() geometry.Size {
	switch {
	case e.size != nil:
		return *e.size
	case e.tag == "button":
		return ButtonSize
	case e.HasClass("separator"):
		return SeparatorSize
	}
	var s geometry.Size
	for _, c := range e.children {
		if !c.inFlow() {
			continue
		}
		cs := c.measure()
		s.Width = max(s.Width, cs.Width)
		s.Height += cs.Height
	}
	return s
}

func (e *Element) origin() geometry.Point {
	if e.position != nil {
		return *e.position
	}
	if e.parent == nil {
		return geometry.Point{}
	}
	p := e.parent.origin()
	for _, sib := range e.parent.children {
		if sib == e {
			break
		}
		if sib.inFlow() {
			p.Y += sib.measure().Height
		}
	}
	return p
}

type listener struct {
	typ    dom.EventType
	h      dom.Handler
	active bool
}

type listeners struct {
	list []*listener
}

func (ls *listeners) add(d *Document, typ dom.EventType, h dom.Handler) dom.Unlisten {
	l := &listener{typ: typ, h: h, active: true}
	ls.list = append(ls.list, l)
	d.active++
	return func() {
		if !l.active {
			return
		}
		l.active = false
		d.active--
		ls.list = slices.DeleteFunc(ls.list, func(x *listener) bool { return x == l })
	}
}

func (ls *listeners) fire(evt *dom.Event) {
	for _, l := range slices.Clone(ls.list) {
		if l.active && l.typ == evt.Type {
			l.h(evt)
		}
	}
}
