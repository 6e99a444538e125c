// Package widget builds the small element fragments shared by menus and
// tooltips: icons, text labels and buttons.
package widget

import "github.com/mchmarny/breve/pkg/dom"

// Icon glyph names used by the menus.
const (
	GlyphChevron   = "chevron_right"
	GlyphChecked   = "check_box"
	GlyphUnchecked = "check_box_outline_blank"
)

// Icon returns a div wrapping an icon from library, or nil when no library is
// configured. An empty name renders the library's default glyph.
func Icon(doc dom.Document, name, library string) dom.Element {
	if library == "" {
		return nil
	}
	div := doc.CreateElement("div")
	div.AddClass("icon")
	i := doc.CreateElement("i")
	i.AddClass(library)
	if name != "" {
		i.SetText(name)
	}
	div.Append(i)
	return div
}

// Text returns a div wrapping a text span.
func Text(doc dom.Document, text string) dom.Element {
	div := doc.CreateElement("div")
	div.AddClass("text")
	span := doc.CreateElement("span")
	span.SetText(text)
	div.Append(span)
	return div
}

// Button returns a button holding an optional icon and an optional label.
func Button(doc dom.Document, icon, text, library string) dom.Element {
	b := doc.CreateElement("button")
	b.AddClass("btn")
	if icon != "" {
		if ic := Icon(doc, icon, library); ic != nil {
			if text != "" {
				ic.AddClass("withText")
			}
			b.Append(ic)
		}
	}
	if text != "" {
		b.Append(Text(doc, text))
	}
	return b
}

// AppendIcon appends an icon to parent when the library is configured.
func AppendIcon(doc dom.Document, parent dom.Element, name, library string) {
	if ic := Icon(doc, name, library); ic != nil {
		parent.Append(ic)
	}
}
