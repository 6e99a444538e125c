//go:build js && wasm

// Command breve-wasm runs the menu and tooltip widgets in the browser. It
// loads the widget config and the menu spec from the server that served the
// page, attaches tooltips to elements with a title and binds the context menu
// to elements carrying the data-menu attribute.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"syscall/js"

	"github.com/mchmarny/breve/pkg/config"
	"github.com/mchmarny/breve/pkg/dom/jsdom"
	"github.com/mchmarny/breve/pkg/logger"
	"github.com/mchmarny/breve/pkg/menu"
	"github.com/mchmarny/breve/pkg/page"
	"github.com/mchmarny/breve/pkg/tooltip"
)

var version = "v0.0.0" // Set at build time via -ldflags "-X main.version=version"

func main() {
	log := logger.NewConsoleLogger(os.Stderr, version, storedLevel())
	origin := js.Global().Get("location").Get("origin").String()

	cfg, err := loadConfig(origin + "/config")
	if err != nil {
		log.Warn("using default config", "error", err)
		cfg = config.Default()
	}
	spec, err := loadMenu(origin + "/menu")
	if err != nil {
		log.Error("failed to load menu", "error", err)
		return
	}

	doc := jsdom.New()
	tips := tooltip.New(doc, tooltip.WithConfig(cfg), tooltip.WithClock(jsdom.Clock))
	m := menu.New(doc,
		menu.WithConfig(cfg),
		menu.WithClock(jsdom.Clock),
		menu.WithTooltipGate(tips),
		menu.WithActions(actions(spec, log)),
		menu.WithLogger(log),
	)

	for _, el := range doc.QueryAll("[title]") {
		tips.Attach(el, "")
	}
	targets := doc.QueryAll("[" + page.MenuAttr + "]")
	for _, el := range targets {
		m.Bind(el, func() *menu.Spec { return spec })
	}
	if cfg.DisableDefaultContextMenus {
		menu.SuppressNativeMenus(doc)
	}

	log.Info("widgets ready", "menus", len(targets), "items", spec.Len(), "actions", len(spec.Actions()))

	// keep the callbacks alive
	select {}
}

// storedLevel reads the log level from localStorage so it can be raised from
// the developer console without a rebuild.
func storedLevel() string {
	v := js.Global().Get("localStorage").Call("getItem", "breveLogLevel")
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

func fetch(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func loadConfig(url string) (config.Config, error) {
	data, err := fetch(url)
	if err != nil {
		return config.Config{}, err
	}
	return config.Parse(data)
}

func loadMenu(url string) (*menu.Spec, error) {
	data, err := fetch(url)
	if err != nil {
		return nil, err
	}
	return menu.ParseSpec(data)
}

// actions binds the action names of spec. A few names map to browser
// commands; the rest only log, which is what the demo page needs.
func actions(spec *menu.Spec, log *slog.Logger) map[string]func() {
	builtin := map[string]func(){
		"copy":   func() { js.Global().Get("document").Call("execCommand", "copy") },
		"reload": func() { js.Global().Get("location").Call("reload") },
		"print":  func() { js.Global().Call("print") },
	}
	out := make(map[string]func(), len(spec.Actions()))
	for _, name := range spec.Actions() {
		fn, ok := builtin[name]
		if !ok {
			fn = func() {}
		}
		out[name] = func() {
			log.Info("menu action", "action", name)
			fn()
		}
	}
	return out
}
