package handler

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-wp-front/internal/config"
	"go-wp-front/internal/logger"
	"go-wp-front/internal/wp"
)

const sitemapDateFormat = "2006-01-02"

// sitemapPageSize bounds how many entries of each type the sitemap lists.
const sitemapPageSize = 100

// SeoHandler holds dependencies for SEO-related handlers.
type SeoHandler struct {
	client *wp.Client
	log    logger.Logger
	site   config.SiteConfig
}

// NewSeoHandler creates a new SeoHandler.
func NewSeoHandler(client *wp.Client, log logger.Logger, site config.SiteConfig) *SeoHandler {
	return &SeoHandler{client: client, log: log, site: site}
}

// robotsHandler serves robots.txt pointing at the sitemap.
func (h *SeoHandler) robotsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "User-agent: *")
	fmt.Fprintln(w, "Allow: /")
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Sitemap: %s/sitemap.xml\n", strings.TrimSuffix(h.site.PublicURL, "/"))
}

type sitemapURL struct {
	XMLName xml.Name `xml:"url"`
	Loc     string   `xml:"loc"`
	LastMod string   `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// sitemapHandler generates and serves a dynamic sitemap.xml from the
// published pages and posts. Upstream failures produce a sitemap with
// whatever could be fetched; the endpoint itself never fails on them.
func (h *SeoHandler) sitemapHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	base := strings.TrimSuffix(h.site.PublicURL, "/")

	sitemap := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{{Loc: base + "/"}},
	}

	if pages, err := h.client.Pages(ctx, wp.ListParams{PerPage: sitemapPageSize}); err != nil {
		h.log.Warn(fmt.Sprintf("sitemap: pages unavailable: %v", err))
	} else {
		for _, page := range pages.Pages {
			sitemap.URLs = append(sitemap.URLs, sitemapURL{
				Loc:     base + "/" + page.Slug,
				LastMod: sitemapDate(page.Modified),
			})
		}
	}

	if posts, err := h.client.Posts(ctx, wp.ListParams{PerPage: sitemapPageSize, Orderby: "date", Order: "desc"}); err != nil {
		h.log.Warn(fmt.Sprintf("sitemap: posts unavailable: %v", err))
	} else {
		for _, post := range posts.Posts {
			sitemap.URLs = append(sitemap.URLs, sitemapURL{
				Loc:     base + "/" + post.Slug,
				LastMod: sitemapDate(post.Modified),
			})
		}
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Write([]byte(xml.Header))
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(sitemap); err != nil {
		http.Error(w, "Failed to generate sitemap XML", http.StatusInternalServerError)
		return
	}
}

// sitemapDate reduces a WordPress timestamp to the sitemap date form,
// omitting lastmod entirely when the timestamp does not parse.
func sitemapDate(wpDate string) string {
	t, err := time.Parse("2006-01-02T15:04:05", wpDate)
	if err != nil {
		return ""
	}
	return t.Format(sitemapDateFormat)
}
