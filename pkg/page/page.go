// Package page renders the HTML served by the development server: the demo
// page that loads the wasm bundle and a static preview of a menu spec.
package page

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/mchmarny/breve/pkg/menu"
)

const (
	// DefaultTitle is the demo page title.
	DefaultTitle = "breve"

	// DefaultWasmPath is where the server exposes the wasm bundle.
	DefaultWasmPath = "/assets/breve.wasm"

	// DefaultExecPath is where the server exposes the Go wasm support script.
	DefaultExecPath = "/assets/wasm_exec.js"

	// MenuAttr marks elements that open the context menu on right-click.
	MenuAttr = "data-menu"
)

// Options configures the demo page.
type Options struct {
	Title     string
	WasmPath  string
	ExecPath  string
	IconClass string
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.WasmPath == "" {
		o.WasmPath = DefaultWasmPath
	}
	if o.ExecPath == "" {
		o.ExecPath = DefaultExecPath
	}
	return o
}

// Index renders the demo page. Elements carrying MenuAttr get the context
// menu, elements with a title get a tooltip once the bundle is running.
func Index(o Options, spec *menu.Spec) g.Node {
	o = o.withDefaults()
	return html.Doctype(
		html.HTML(
			html.Lang("en"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.TitleEl(g.Text(o.Title)),
				g.If(o.IconClass == "material-icons",
					html.Link(html.Rel("stylesheet"), html.Href("https://fonts.googleapis.com/icon?family=Material+Icons")),
				),
				html.StyleEl(g.Raw(Stylesheet)),
				html.Script(html.Src(o.ExecPath)),
			),
			html.Body(
				html.H1(g.Text(o.Title)),
				html.Div(
					html.Class("demo"),
					g.Attr(MenuAttr, "main"),
					html.Title("Right-click for the context menu"),
					g.Text("Right-click anywhere in this box."),
				),
				html.Button(html.Title("Plain tooltip, no menu"), g.Text("Hover me")),
				html.H2(g.Text("Menu")),
				Tree(spec),
				html.Script(g.Raw(loader(o.WasmPath))),
			),
		),
	)
}

func loader(wasm string) string {
	return `const go = new Go();
WebAssembly.instantiateStreaming(fetch("` + wasm + `"), go.importObject).then(r => go.run(r.instance));`
}

// Tree renders spec as nested lists, one list per level.
func Tree(spec *menu.Spec) g.Node {
	if spec.Len() == 0 {
		return html.P(html.Class("tree empty"), g.Text("no menu items"))
	}
	return html.Ul(html.Class("tree"), g.Map(spec.Entries(), entry))
}

func entry(e menu.Entry) g.Node {
	it := e.Item
	class := it.Kind.String()
	if !it.Enabled() {
		class += " " + menu.ClassDisabled
	}
	var children g.Node
	if it.Kind == menu.KindCategory && it.Children != nil {
		children = Tree(it.Children)
	}
	return html.Li(
		html.Class(class),
		g.If(it.Kind != menu.KindSeparator, html.Span(html.Class("label"), g.Text(e.Label))),
		g.If(it.Action != "", html.Code(g.Text(it.Action))),
		children,
	)
}
