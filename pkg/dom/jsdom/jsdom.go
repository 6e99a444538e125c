//go:build js && wasm

// Package jsdom implements dom.Document on top of the browser DOM through
// syscall/js.
package jsdom

import (
	"strconv"
	"syscall/js"
	"time"

	"github.com/mchmarny/breve/pkg/dom"
	"github.com/mchmarny/breve/pkg/geometry"
	"github.com/mchmarny/breve/pkg/timer"
)

// Document wraps the global window and document objects.
type Document struct {
	window   js.Value
	document js.Value
	pointer  geometry.Point
	track    []dom.Unlisten
}

var _ dom.Document = (*Document)(nil)

// New wraps the current page and starts tracking the pointer position.
func New() *Document {
	d := &Document{
		window:   js.Global(),
		document: js.Global().Get("document"),
	}
	follow := func(e *dom.Event) { d.pointer = e.Pointer }
	// contextmenu listeners on the window run after the ones on the target,
	// so the pointer is refreshed on capture.
	d.track = []dom.Unlisten{
		d.On(dom.PointerMove, follow),
		listenCapture(d.window, dom.ContextMenu, follow),
	}
	return d
}

// Release stops pointer tracking.
func (d *Document) Release() {
	for _, off := range d.track {
		off()
	}
	d.track = nil
}

func (d *Document) CreateElement(tag string) dom.Element {
	return Wrap(d.document.Call("createElement", tag))
}

func (d *Document) Body() dom.Element { return Wrap(d.document.Get("body")) }

func (d *Document) Viewport() geometry.Size {
	w := d.window.Get("innerWidth")
	if w.Truthy() {
		return geometry.Size{Width: w.Float(), Height: d.window.Get("innerHeight").Float()}
	}
	root := d.document.Get("documentElement")
	return geometry.Size{Width: root.Get("clientWidth").Float(), Height: root.Get("clientHeight").Float()}
}

func (d *Document) Pointer() geometry.Point { return d.pointer }

func (d *Document) On(typ dom.EventType, h dom.Handler) dom.Unlisten {
	return listen(d.window, typ, h)
}

// Defer schedules f with a zero delay timeout, which runs after the current
// event finished propagating.
func (d *Document) Defer(f func()) {
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		cb.Release()
		f()
		return nil
	})
	d.window.Call("setTimeout", cb, 0)
}

// QueryAll returns the elements matching a CSS selector.
func (d *Document) QueryAll(selector string) []dom.Element {
	list := d.document.Call("querySelectorAll", selector)
	n := list.Get("length").Int()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Wrap(list.Call("item", i)))
	}
	return out
}

// Clock schedules timer callbacks with setTimeout so they run on the page's
// event loop together with DOM events.
var Clock timer.Clock = timer.ClockFunc(func(d time.Duration, f func()) timer.Stopper {
	t := &timeout{}
	t.cb = js.FuncOf(func(js.Value, []js.Value) any {
		if t.done {
			return nil
		}
		t.done = true
		t.cb.Release()
		f()
		return nil
	})
	t.handle = js.Global().Call("setTimeout", t.cb, d.Milliseconds())
	return t
})

type timeout struct {
	cb     js.Func
	handle js.Value
	done   bool
}

func (t *timeout) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	js.Global().Call("clearTimeout", t.handle)
	t.cb.Release()
	return true
}

// Element wraps an HTML element.
type Element struct {
	v js.Value
}

var _ dom.Element = Element{}

// Wrap returns the dom.Element for a JS element value.
func Wrap(v js.Value) Element { return Element{v: v} }

// Value returns the wrapped JS value.
func (e Element) Value() js.Value { return e.v }

func (e Element) ID() string      { return e.v.Get("id").String() }
func (e Element) SetID(id string) { e.v.Set("id", id) }

func (e Element) AddClass(names ...string) {
	for _, n := range names {
		e.v.Get("classList").Call("add", n)
	}
}

func (e Element) RemoveClass(names ...string) {
	for _, n := range names {
		e.v.Get("classList").Call("remove", n)
	}
}

func (e Element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e Element) SetText(text string) { e.v.Set("textContent", text) }

func (e Element) SetAttr(name, value string) { e.v.Call("setAttribute", name, value) }

func (e Element) Attr(name string) (string, bool) {
	if !e.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return e.v.Call("getAttribute", name).String(), true
}

func (e Element) RemoveAttr(name string) { e.v.Call("removeAttribute", name) }

func (e Element) SetStyle(property, value string) {
	e.v.Get("style").Call("setProperty", property, value)
}

func (e Element) Append(children ...dom.Element) {
	for _, c := range children {
		if child, ok := c.(Element); ok {
			e.v.Call("append", child.v)
		}
	}
}

func (e Element) Remove() { e.v.Call("remove") }

func (e Element) MoveTo(p geometry.Point) {
	style := e.v.Get("style")
	style.Set("left", px(p.X))
	style.Set("top", px(p.Y))
}

func (e Element) Rect() (geometry.Rect, error) {
	if !e.v.Truthy() || !e.v.Get("isConnected").Bool() {
		return geometry.Rect{}, dom.ErrDetached
	}
	b := e.v.Call("getBoundingClientRect")
	return geometry.Rect{
		X:      b.Get("left").Float(),
		Y:      b.Get("top").Float(),
		Width:  b.Get("width").Float(),
		Height: b.Get("height").Float(),
	}, nil
}

func (e Element) On(typ dom.EventType, h dom.Handler) dom.Unlisten {
	return listen(e.v, typ, h)
}

func listen(target js.Value, typ dom.EventType, h dom.Handler) dom.Unlisten {
	return addListener(target, typ, h, false)
}

func listenCapture(target js.Value, typ dom.EventType, h dom.Handler) dom.Unlisten {
	return addListener(target, typ, h, true)
}

func addListener(target js.Value, typ dom.EventType, h dom.Handler, capture bool) dom.Unlisten {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		native := args[0]
		evt := dom.NewEvent(typ, pointerOf(native), keyOf(native), targetOf(native), func() {
			native.Call("preventDefault")
		})
		h(evt)
		return nil
	})
	target.Call("addEventListener", string(typ), cb, capture)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		target.Call("removeEventListener", string(typ), cb, capture)
		cb.Release()
	}
}

func pointerOf(native js.Value) geometry.Point {
	x := native.Get("clientX")
	if x.IsUndefined() {
		return geometry.Point{}
	}
	return geometry.Point{X: x.Float(), Y: native.Get("clientY").Float()}
}

func keyOf(native js.Value) string {
	k := native.Get("key")
	if k.IsUndefined() {
		return ""
	}
	return k.String()
}

func targetOf(native js.Value) dom.Element {
	t := native.Get("target")
	if t.IsUndefined() || t.IsNull() {
		return nil
	}
	return Wrap(t)
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
