// Package dom defines the small slice of a document object model the menu and
// tooltip widgets need: element construction, class toggling, geometry and
// event listeners. Drivers live in sub packages.
package dom

import (
	"errors"

	"github.com/mchmarny/breve/pkg/geometry"
)

// ErrDetached is returned when geometry is requested for an element that is
// not part of the document.
var ErrDetached = errors.New("element is not attached to the document")

// EventType names a DOM event.
type EventType string

const (
	PointerOver  EventType = "mouseover"
	PointerOut   EventType = "mouseout"
	PointerLeave EventType = "mouseleave"
	PointerMove  EventType = "mousemove"
	PointerDown  EventType = "mousedown"
	Click        EventType = "click"
	ContextMenu  EventType = "contextmenu"
	KeyDown      EventType = "keydown"
)

// Bubbles reports whether events of this type propagate to ancestors.
func (t EventType) Bubbles() bool {
	return t != PointerLeave
}

// KeyEscape is the Key value of the Escape key.
const KeyEscape = "Escape"

// Event is a pointer or keyboard event delivered to a Handler.
type Event struct {
	Type    EventType
	Pointer geometry.Point
	Key     string
	Target  Element

	prevent   func()
	prevented bool
}

// NewEvent returns an event. prevent, if not nil, is called by PreventDefault
// to cancel the native default action.
func NewEvent(typ EventType, pointer geometry.Point, key string, target Element, prevent func()) *Event {
	return &Event{Type: typ, Pointer: pointer, Key: key, Target: target, prevent: prevent}
}

// PreventDefault cancels the default action of the event.
func (e *Event) PreventDefault() {
	e.prevented = true
	if e.prevent != nil {
		e.prevent()
	}
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.prevented }

// Handler handles an event.
type Handler func(*Event)

// Unlisten removes a previously registered listener. Calling it more than
// once is safe.
type Unlisten func()

// Element is a node of the document.
type Element interface {
	ID() string
	SetID(id string)

	AddClass(names ...string)
	RemoveClass(names ...string)
	HasClass(name string) bool

	SetText(text string)
	SetAttr(name, value string)
	Attr(name string) (string, bool)
	RemoveAttr(name string)
	SetStyle(property, value string)

	Append(children ...Element)
	Remove()

	// MoveTo positions the element absolutely in viewport coordinates.
	MoveTo(p geometry.Point)
	// Rect returns the current layout box of the element.
	Rect() (geometry.Rect, error)

	On(typ EventType, h Handler) Unlisten
}

// Document is the page hosting the widgets.
type Document interface {
	CreateElement(tag string) Element
	Body() Element

	Viewport() geometry.Size
	Pointer() geometry.Point

	// On registers a window level listener.
	On(typ EventType, h Handler) Unlisten
	// Defer runs f once the event currently being dispatched has finished
	// propagating.
	Defer(f func())
}
