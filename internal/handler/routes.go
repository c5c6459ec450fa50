package handler

import (
	"io/fs"
	"net/http"

	appmiddleware "go-wp-front/internal/middleware"
	"go-wp-front/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates and configures a new chi router.
func NewRouter(siteHandler *SiteHandler, seoHandler *SeoHandler, errorMiddleware func(appmiddleware.AppHandler) http.Handler) *chi.Mux {
	r := chi.NewRouter()

	// A good base middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// Serve static files.
	staticSub, _ := fs.Sub(web.StaticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	// Content routes share a per-request CMS memo so the navbar, resolver
	// and sitemap reuse identical upstream calls within one render.
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.Memo)

		r.Get("/robots.txt", seoHandler.robotsHandler)
		r.Get("/sitemap.xml", seoHandler.sitemapHandler)

		// Everything else resolves against the CMS.
		r.Handle("/*", errorMiddleware(siteHandler.renderHandler))
	})

	return r
}
