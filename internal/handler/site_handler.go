package handler

import (
	"context"
	"net/http"
	"strings"

	"go-wp-front/internal/config"
	"go-wp-front/internal/format"
	"go-wp-front/internal/logger"
	"go-wp-front/internal/meta"
	"go-wp-front/internal/middleware"
	"go-wp-front/internal/resolver"
	"go-wp-front/internal/view"
	"go-wp-front/internal/wp"

	"golang.org/x/sync/errgroup"
)

// featuredImageSize is the media rendition used for cards and articles.
const featuredImageSize = "medium"

// SiteHandler renders every content-backed route: the front page, the
// posts archive, single posts and pages, previews and the 404 page.
type SiteHandler struct {
	client   *wp.Client
	resolver *resolver.Resolver
	view     *view.View
	log      logger.Logger
	site     config.SiteConfig
}

// NewSiteHandler creates a SiteHandler with the given dependencies.
func NewSiteHandler(client *wp.Client, res *resolver.Resolver, v *view.View, log logger.Logger, site config.SiteConfig) *SiteHandler {
	return &SiteHandler{
		client:   client,
		resolver: res,
		view:     v,
		log:      log,
		site:     site,
	}
}

// postCard is the view model for one entry in the posts archive grid.
type postCard struct {
	Title       string
	Path        string
	Date        string
	Excerpt     string
	ImageURL    string
	ReadingTime int
}

// renderHandler is the catch-all page handler. The resolver decides what
// the path shows; navigation and settings failures never block the render.
func (h *SiteHandler) renderHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	ctx := r.Context()
	segments := pathSegments(r.URL.Path)

	res := h.resolver.Resolve(ctx, segments, r.URL.Query())

	switch res.Kind {
	case resolver.KindContent:
		return h.renderContent(w, r, res)
	case resolver.KindListing:
		return h.renderListing(w, r, res)
	case resolver.KindAuthRequired:
		return h.renderAuthRequired(w, r, res)
	default:
		return h.renderNotFound(w, r, res.Settings)
	}
}

// renderContent renders a single post or page.
func (h *SiteHandler) renderContent(w http.ResponseWriter, r *http.Request, res resolver.Resolution) *middleware.AppError {
	ctx := r.Context()
	item := res.Item

	featuredImage := h.client.FeaturedImageURL(ctx, item.FeaturedMedia, featuredImageSize)

	data := h.navData(ctx, res.Settings)
	data["Item"] = item
	data["FeaturedImage"] = format.ImageURL(featuredImage, h.site.PlaceholderImage)
	data["HasFeaturedImage"] = featuredImage != ""
	data["Preview"] = res.Preview
	data["Meta"] = meta.Build(item, featuredImage, h.metaSite(res.Settings))

	if err := h.view.Render(w, "post.html", data); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render content", Code: http.StatusInternalServerError}
	}
	return nil
}

// renderListing renders one page of the posts archive. Featured images for
// the page of results are resolved concurrently; a failed image leaves the
// placeholder in place and the render proceeds.
func (h *SiteHandler) renderListing(w http.ResponseWriter, r *http.Request, res resolver.Resolution) *middleware.AppError {
	ctx := r.Context()

	list, err := h.client.Posts(ctx, wp.ListParams{
		Page:    res.Page,
		PerPage: h.site.PostsPerPage,
		Orderby: "date",
		Order:   "desc",
	})
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Error Loading Posts", Code: http.StatusBadGateway}
	}

	cards := h.buildCards(ctx, list.Posts)

	data := h.navData(ctx, res.Settings)
	data["Posts"] = cards
	data["TotalPosts"] = list.Total
	data["TotalPages"] = list.TotalPages
	data["CurrentPage"] = res.Page
	data["PageNumbers"] = format.PageWindow(res.Page, list.TotalPages)
	data["PrevPage"] = res.Page - 1
	data["NextPage"] = res.Page + 1
	data["HasPrev"] = res.Page > 1
	data["HasNext"] = res.Page < list.TotalPages
	data["RangeStart"] = (res.Page-1)*h.site.PostsPerPage + 1
	data["RangeEnd"] = minInt(res.Page*h.site.PostsPerPage, list.Total)
	data["Meta"] = meta.ForHome(res.Settings, h.metaSite(res.Settings))

	if err := h.view.Render(w, "posts.html", data); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render posts", Code: http.StatusInternalServerError}
	}
	return nil
}

// buildCards shapes posts into card view models, fanning out the featured
// image lookups. The fan-out shares the request context and its memo;
// there is no ordering dependency between items.
func (h *SiteHandler) buildCards(ctx context.Context, posts []wp.Post) []postCard {
	cards := make([]postCard, len(posts))
	g, gctx := errgroup.WithContext(ctx)
	for i := range posts {
		i := i
		g.Go(func() error {
			post := posts[i]
			imageURL := ""
			if post.FeaturedMedia != 0 {
				imageURL = h.client.FeaturedImageURL(gctx, post.FeaturedMedia, featuredImageSize)
			}
			cards[i] = postCard{
				Title:       post.Title.Rendered,
				Path:        "/" + post.Slug,
				Date:        format.FormatDate(post.Date),
				Excerpt:     format.Excerpt(post.Excerpt.Rendered, 150),
				ImageURL:    format.ImageURL(imageURL, h.site.PlaceholderImage),
				ReadingTime: format.ReadingTime(post.Content.Rendered),
			}
			return nil
		})
	}
	// Image lookups never return errors, only empty URLs.
	_ = g.Wait()
	return cards
}

// renderNotFound renders the 404 page with the static not-found metadata.
func (h *SiteHandler) renderNotFound(w http.ResponseWriter, r *http.Request, settings *wp.FrontSettings) *middleware.AppError {
	data := h.navData(r.Context(), settings)
	data["Meta"] = meta.NotFound(h.metaSite(settings))

	w.WriteHeader(http.StatusNotFound)
	if err := h.view.Render(w, "notfound.html", data); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render not found page", Code: http.StatusInternalServerError}
	}
	return nil
}

// renderAuthRequired explains that preview mode needs configured
// credentials. Deliberately not a 404.
func (h *SiteHandler) renderAuthRequired(w http.ResponseWriter, r *http.Request, res resolver.Resolution) *middleware.AppError {
	data := h.navData(r.Context(), res.Settings)
	m := meta.NotFound(h.metaSite(res.Settings))
	m.Title = "Preview unavailable"
	data["Meta"] = m

	w.WriteHeader(http.StatusUnauthorized)
	if err := h.view.Render(w, "preview_error.html", data); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render preview error page", Code: http.StatusInternalServerError}
	}
	return nil
}

// navData assembles the shared chrome: menu tree, logo, site title. Every
// lookup here is individually fault-isolated inside the client.
func (h *SiteHandler) navData(ctx context.Context, settings *wp.FrontSettings) map[string]interface{} {
	items := h.client.MenuItems(ctx, wp.MenuQuery{
		Slug:     h.site.MenuSlug,
		Location: h.site.MenuLocation,
	})

	return map[string]interface{}{
		"Menu":            wp.BuildMenuTree(items),
		"Logo":            h.client.SiteLogo(ctx),
		"SiteTitle":       settings.Title,
		"SiteDescription": settings.Description,
	}
}

func (h *SiteHandler) metaSite(settings *wp.FrontSettings) meta.Site {
	return meta.Site{
		Title:       settings.Title,
		Description: settings.Description,
		BaseURL:     h.site.PublicURL,
	}
}

// pathSegments splits a request path into its non-empty segments.
func pathSegments(path string) []string {
	var segments []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
