package dom

import "github.com/mchmarny/breve/pkg/geometry"

// Visibility classes toggled on floating elements. The stylesheet animates
// between them.
const (
	ClassShown           = "shown"
	ClassHidden          = "hidden"
	ClassHiddenByDefault = "hiddenByDefault"
	ClassSelected        = "selected"
)

// Show makes el visible.
func Show(el Element) {
	el.AddClass(ClassShown)
	el.RemoveClass(ClassHidden, ClassHiddenByDefault)
}

// Hide fades el out. Elements that were never shown stay untouched so the
// fade-out animation does not play on load.
func Hide(el Element) {
	if el.HasClass(ClassHiddenByDefault) {
		return
	}
	el.AddClass(ClassHidden)
	el.RemoveClass(ClassShown)
}

// HideByDefault hides el without animation.
func HideByDefault(el Element) {
	el.AddClass(ClassHiddenByDefault, ClassHidden)
}

// IsHidden reports whether el is currently hidden.
func IsHidden(el Element) bool {
	return el.HasClass(ClassHidden)
}

// Select marks el as the active item of its menu.
func Select(el Element) { el.AddClass(ClassSelected) }

// Deselect clears the selected mark.
func Deselect(el Element) { el.RemoveClass(ClassSelected) }

// IsSelected reports whether el carries the selected mark.
func IsSelected(el Element) bool { return el.HasClass(ClassSelected) }

// Inside reports whether p lies within the layout box of el. Elements that
// cannot be measured contain nothing.
func Inside(el Element, p geometry.Point) bool {
	if el == nil {
		return false
	}
	r, err := el.Rect()
	if err != nil {
		return false
	}
	return r.Contains(p)
}

// Reveal lifts the hiddenByDefault class from every given element that
// carries it, putting them back in layout while they stay invisible. The
// returned func restores the class. Callers measure and restore within one
// event loop task so the lifted elements are never painted.
func Reveal(els ...Element) (restore func()) {
	var lifted []Element
	for _, el := range els {
		if el != nil && el.HasClass(ClassHiddenByDefault) {
			el.RemoveClass(ClassHiddenByDefault)
			lifted = append(lifted, el)
		}
	}
	return func() {
		for _, el := range lifted {
			el.AddClass(ClassHiddenByDefault)
		}
	}
}

// Measure returns the size el renders at once shown, even while it is still
// hidden by default.
func Measure(el Element) geometry.Size {
	restore := Reveal(el)
	defer restore()
	return Size(el)
}

// Size returns the layout size of el, or zero when it cannot be measured.
func Size(el Element) geometry.Size {
	r, err := el.Rect()
	if err != nil {
		return geometry.Size{}
	}
	return r.Size()
}
