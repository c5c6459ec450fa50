// Package resolver maps an incoming URL (path segments plus query
// parameters) to the content entity or listing the page should render. It
// consults the CMS front settings to know whether the site root is a
// static page or a posts archive, and preserves the fixed precedence of
// page slugs over post slugs.
package resolver

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"go-wp-front/internal/logger"
	"go-wp-front/internal/wp"
)

// ContentClient is the slice of the CMS client the resolver needs.
type ContentClient interface {
	FrontSettings(ctx context.Context) *wp.FrontSettings
	PageBySlug(ctx context.Context, slug string, preview bool) (*wp.Page, error)
	PostBySlug(ctx context.Context, slug string, preview bool) (*wp.Post, error)
	PageByID(ctx context.Context, id int, preview bool) (*wp.Page, error)
	PostByID(ctx context.Context, id int, preview bool) (*wp.Post, error)
	HasCredentials() bool
}

// Kind classifies the outcome of a resolution.
type Kind int

const (
	// KindContent renders a single post or page.
	KindContent Kind = iota
	// KindListing renders the paginated posts archive.
	KindListing
	// KindNotFound renders the 404 page.
	KindNotFound
	// KindAuthRequired renders the preview authentication error. It is
	// deliberately distinct from KindNotFound.
	KindAuthRequired
)

// Resolution is the resolver's verdict for one request.
type Resolution struct {
	Kind     Kind
	Item     *wp.Item
	Page     int // 1-based listing page, for KindListing
	Preview  bool
	Settings *wp.FrontSettings
}

// Resolver decides what a URL shows.
type Resolver struct {
	client ContentClient
	log    logger.Logger
}

// New creates a Resolver.
func New(client ContentClient, log logger.Logger) *Resolver {
	return &Resolver{client: client, log: log}
}

// Resolve runs the route decision procedure. Transport failures during
// entity lookups degrade to a not-found outcome; only a preview attempt
// without configured credentials is reported differently.
func (r *Resolver) Resolve(ctx context.Context, segments []string, query url.Values) Resolution {
	settings := r.client.FrontSettings(ctx)

	// Preview requests identify their target by numeric id and bypass
	// slug routing entirely.
	if query.Get("preview") == "true" {
		if id, err := strconv.Atoi(query.Get("p")); err == nil && id > 0 {
			return r.resolvePreview(ctx, id, settings)
		}
	}

	if len(segments) == 0 {
		return r.resolveFront(ctx, settings, query)
	}

	switch len(segments) {
	case 1:
		return r.resolveSingle(ctx, segments[0], settings, query)
	case 2:
		return r.resolveNested(ctx, segments[0], segments[1], settings)
	default:
		// Pages have no sub-resources beyond the posts page, and posts
		// never nest deeper than one level under it.
		return Resolution{Kind: KindNotFound, Settings: settings}
	}
}

// resolvePreview authenticates and tries the id as a post, then a page.
func (r *Resolver) resolvePreview(ctx context.Context, id int, settings *wp.FrontSettings) Resolution {
	if !r.client.HasCredentials() {
		return Resolution{Kind: KindAuthRequired, Preview: true, Settings: settings}
	}

	if post, err := r.client.PostByID(ctx, id, true); err == nil {
		return Resolution{Kind: KindContent, Item: post.Item(), Preview: true, Settings: settings}
	} else if errors.Is(err, wp.ErrAuthRequired) {
		return Resolution{Kind: KindAuthRequired, Preview: true, Settings: settings}
	}

	if page, err := r.client.PageByID(ctx, id, true); err == nil {
		return Resolution{Kind: KindContent, Item: page.Item(), Preview: true, Settings: settings}
	} else if errors.Is(err, wp.ErrAuthRequired) {
		return Resolution{Kind: KindAuthRequired, Preview: true, Settings: settings}
	}

	return Resolution{Kind: KindNotFound, Preview: true, Settings: settings}
}

// resolveFront handles the empty path: a fixed front page or the archive,
// per the front settings. A failed settings fetch already defaulted to the
// posts mode before we got here.
func (r *Resolver) resolveFront(ctx context.Context, settings *wp.FrontSettings, query url.Values) Resolution {
	if settings.ShowOnFront == wp.ShowOnFrontPage && settings.PageOnFront > 0 {
		page, err := r.client.PageByID(ctx, settings.PageOnFront, false)
		if err != nil {
			r.log.Warn("resolver: configured front page is unavailable")
			return Resolution{Kind: KindNotFound, Settings: settings}
		}
		return Resolution{Kind: KindContent, Item: page.Item(), Settings: settings}
	}
	return Resolution{Kind: KindListing, Page: listingPage(query), Settings: settings}
}

// resolveSingle handles a one-segment path. Page-slug resolution is always
// attempted before post-slug resolution; a page and a post sharing a slug
// resolve as the page.
func (r *Resolver) resolveSingle(ctx context.Context, slug string, settings *wp.FrontSettings, query url.Values) Resolution {
	page, err := r.client.PageBySlug(ctx, slug, false)
	if err == nil {
		if settings.PageForPosts > 0 && page.ID == settings.PageForPosts {
			return Resolution{Kind: KindListing, Page: listingPage(query), Settings: settings}
		}
		return Resolution{Kind: KindContent, Item: page.Item(), Settings: settings}
	}
	if !errors.Is(err, wp.ErrNotFound) {
		r.log.Warn("resolver: page lookup failed, falling through to post lookup")
	}

	post, err := r.client.PostBySlug(ctx, slug, false)
	if err != nil {
		return Resolution{Kind: KindNotFound, Settings: settings}
	}
	return Resolution{Kind: KindContent, Item: post.Item(), Settings: settings}
}

// resolveNested handles a two-segment path: the second segment is a post
// slug only when the first segment is the designated posts page.
func (r *Resolver) resolveNested(ctx context.Context, first, second string, settings *wp.FrontSettings) Resolution {
	if settings.PageForPosts > 0 {
		page, err := r.client.PageBySlug(ctx, first, false)
		if err == nil && page.ID == settings.PageForPosts {
			post, err := r.client.PostBySlug(ctx, second, false)
			if err != nil {
				return Resolution{Kind: KindNotFound, Settings: settings}
			}
			return Resolution{Kind: KindContent, Item: post.Item(), Settings: settings}
		}
	}
	return Resolution{Kind: KindNotFound, Settings: settings}
}

// listingPage reads the 1-based page query parameter.
func listingPage(query url.Values) int {
	if n, err := strconv.Atoi(query.Get("page")); err == nil && n > 0 {
		return n
	}
	return 1
}
