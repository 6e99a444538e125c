package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gopkg.in/yaml.v3"

	"github.com/mchmarny/breve/pkg/metric"
	"github.com/mchmarny/breve/pkg/page"
)

const contentTypeYAML = "application/yaml; charset=utf-8"

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.indexHandler)
	r.Get("/menu", s.menuHandler)
	r.Get("/menu/tree", s.treeHandler)
	r.Get("/config", s.configHandler)
	r.Get("/healthz", healthzHandler)
	r.Handle("/metrics", metric.GetHandlerForRegistry(s.registry))

	if s.assetsDir != "" {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(s.assetsDir))))
	}

	for pattern, h := range s.extra {
		r.Handle(pattern, h)
	}

	return r
}

func (s *server) indexHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	n := page.Index(page.Options{IconClass: s.cfg.IconClass}, s.current())
	if err := n.Render(w); err != nil {
		slog.Error("failed to render page", "error", err)
	}
}

func (s *server) treeHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Tree(s.current()).Render(w); err != nil {
		slog.Error("failed to render menu tree", "error", err)
	}
}

// menuHandler serves the menu file as written. Re-encoding would lose the key
// order, which is the visual order of the items.
func (s *server) menuHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", contentTypeYAML)
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(s.currentRaw())
}

func (s *server) configHandler(w http.ResponseWriter, _ *http.Request) {
	data, err := yaml.Marshal(s.cfg)
	if err != nil {
		http.Error(w, "failed to encode config", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypeYAML)
	_, _ = w.Write(data)
}

func healthzHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
