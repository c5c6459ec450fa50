// Package wp is the client for the upstream WordPress REST API. It
// normalizes responses into typed records and models "not found" as a
// typed outcome rather than an error; only transport and protocol failures
// surface as errors. Calls are GET-only and memoized per request.
package wp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go-wp-front/internal/config"
	"go-wp-front/internal/logger"
)

// previewStatuses widens the visibility filter for authenticated previews.
const previewStatuses = "draft,pending,publish"

// bodySnippetLimit bounds how much of an upstream error body gets logged.
const bodySnippetLimit = 500

// Client issues read-only requests against a WordPress installation.
type Client struct {
	cfg  config.WordPressConfig
	http *http.Client
	log  logger.Logger
}

// NewClient creates a Client for the configured WordPress instance. No
// timeout is set on the underlying http.Client; upstream failures surface
// immediately as transport errors and the caller's request lifetime is the
// only cancellation mechanism.
func NewClient(cfg config.WordPressConfig, log logger.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{},
		log:  log,
	}
}

// HasCredentials reports whether preview-capable credentials are configured.
func (c *Client) HasCredentials() bool {
	return c.cfg.HasCredentials()
}

// endpointURL builds an absolute URL for an API endpoint. Absolute
// endpoints pass through, paths anchored under /wp-json/ resolve against
// the site URL, and everything else against the configured API base (or
// the conventional /wp-json/wp/v2 prefix when none is set).
func (c *Client) endpointURL(endpoint string, params url.Values) string {
	var u string
	switch {
	case strings.HasPrefix(endpoint, "http://"), strings.HasPrefix(endpoint, "https://"):
		u = endpoint
	case strings.HasPrefix(endpoint, "/wp-json/"):
		u = strings.TrimSuffix(c.cfg.SiteURL, "/") + endpoint
	default:
		base := strings.TrimSuffix(c.cfg.APIURL, "/")
		if base == "" {
			base = strings.TrimSuffix(c.cfg.SiteURL, "/") + "/wp-json/wp/v2"
		}
		u = base + endpoint
	}
	if len(params) > 0 {
		sep := "?"
		if strings.Contains(u, "?") {
			sep = "&"
		}
		u += sep + params.Encode()
	}
	return u
}

// get issues an authenticated GET, verifies the response is 2xx JSON and
// decodes it into out. It returns the response headers so listing callers
// can read the X-WP-Total counters.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) (http.Header, error) {
	target := c.endpointURL(endpoint, params)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &APIError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.HasCredentials() {
		req.SetBasicAuth(c.cfg.Username, c.cfg.Password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &APIError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Endpoint: endpoint, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn(fmt.Sprintf("wp: %s returned %d: %s", endpoint, resp.StatusCode, snippet(body)))
		return nil, &APIError{Endpoint: endpoint, Status: resp.StatusCode, Body: snippet(body)}
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		c.log.Warn(fmt.Sprintf("wp: %s returned non-JSON content type %q", endpoint, contentType))
		return nil, &APIError{Endpoint: endpoint, Status: resp.StatusCode, Body: snippet(body), Err: fmt.Errorf("non-JSON content type %q", contentType)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return nil, &APIError{Endpoint: endpoint, Status: resp.StatusCode, Body: snippet(body), Err: err}
	}
	return resp.Header, nil
}

func snippet(body []byte) string {
	if len(body) > bodySnippetLimit {
		return string(body[:bodySnippetLimit])
	}
	return string(body)
}

// headerCount parses an X-WP-* counter header, defaulting to 0 when the
// header is absent or malformed. Counts are never estimated from page size.
func headerCount(h http.Header, name string) int {
	n, err := strconv.Atoi(h.Get(name))
	if err != nil {
		return 0
	}
	return n
}

// query serializes ListParams into the REST API's query parameters.
func (p ListParams) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Orderby != "" {
		q.Set("orderby", p.Orderby)
	}
	if p.Order != "" {
		q.Set("order", p.Order)
	}
	if len(p.Categories) > 0 {
		q.Set("categories", joinInts(p.Categories))
	}
	if len(p.Tags) > 0 {
		q.Set("tags", joinInts(p.Tags))
	}
	if p.Parent != nil {
		q.Set("parent", strconv.Itoa(*p.Parent))
	}
	return q
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// PostList is one page of posts plus the totals derived from the
// X-WP-Total and X-WP-TotalPages response headers.
type PostList struct {
	Posts      []Post
	Total      int
	TotalPages int
}

// PageList is one page of pages plus the listing totals.
type PageList struct {
	Pages      []Page
	Total      int
	TotalPages int
}

// Posts fetches a page of posts.
func (c *Client) Posts(ctx context.Context, params ListParams) (*PostList, error) {
	q := params.query()
	v, err := memoized(ctx, "posts", q.Encode(), func() (interface{}, error) {
		var posts []Post
		header, err := c.get(ctx, "/posts", q, &posts)
		if err != nil {
			return nil, err
		}
		return &PostList{
			Posts:      posts,
			Total:      headerCount(header, "X-WP-Total"),
			TotalPages: headerCount(header, "X-WP-TotalPages"),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*PostList), nil
}

// Pages fetches a page of pages.
func (c *Client) Pages(ctx context.Context, params ListParams) (*PageList, error) {
	q := params.query()
	v, err := memoized(ctx, "pages", q.Encode(), func() (interface{}, error) {
		var pages []Page
		header, err := c.get(ctx, "/pages", q, &pages)
		if err != nil {
			return nil, err
		}
		return &PageList{
			Pages:      pages,
			Total:      headerCount(header, "X-WP-Total"),
			TotalPages: headerCount(header, "X-WP-TotalPages"),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*PageList), nil
}

// slugQuery builds the by-slug listing filter, widening the status filter
// for previews. Single-item-by-slug deliberately goes through the listing
// endpoint and takes the first match; the upstream API has no dedicated
// by-slug endpoint.
func slugQuery(slug string, preview bool) url.Values {
	q := url.Values{}
	q.Set("slug", slug)
	if preview {
		q.Set("status", previewStatuses)
	}
	return q
}

// PostBySlug fetches a single post by slug. With preview set the status
// filter widens to drafts, which requires configured credentials.
func (c *Client) PostBySlug(ctx context.Context, slug string, preview bool) (*Post, error) {
	if preview && !c.cfg.HasCredentials() {
		return nil, ErrAuthRequired
	}
	q := slugQuery(slug, preview)
	v, err := memoized(ctx, "post_by_slug", q.Encode(), func() (interface{}, error) {
		var posts []Post
		if _, err := c.get(ctx, "/posts", q, &posts); err != nil {
			return nil, err
		}
		if len(posts) == 0 {
			return nil, ErrNotFound
		}
		return &posts[0], nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Post), nil
}

// PageBySlug fetches a single page by slug, via the listing endpoint like
// PostBySlug.
func (c *Client) PageBySlug(ctx context.Context, slug string, preview bool) (*Page, error) {
	if preview && !c.cfg.HasCredentials() {
		return nil, ErrAuthRequired
	}
	q := slugQuery(slug, preview)
	v, err := memoized(ctx, "page_by_slug", q.Encode(), func() (interface{}, error) {
		var pages []Page
		if _, err := c.get(ctx, "/pages", q, &pages); err != nil {
			return nil, err
		}
		if len(pages) == 0 {
			return nil, ErrNotFound
		}
		return &pages[0], nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Page), nil
}

// idQuery is the by-id variant of slugQuery.
func idQuery(preview bool) url.Values {
	q := url.Values{}
	if preview {
		q.Set("status", previewStatuses)
	}
	return q
}

// PostByID fetches a single post by numeric id. An upstream 404 maps to
// ErrNotFound.
func (c *Client) PostByID(ctx context.Context, id int, preview bool) (*Post, error) {
	if preview && !c.cfg.HasCredentials() {
		return nil, ErrAuthRequired
	}
	q := idQuery(preview)
	v, err := memoized(ctx, "post_by_id", fmt.Sprintf("%d|%s", id, q.Encode()), func() (interface{}, error) {
		var post Post
		if _, err := c.get(ctx, fmt.Sprintf("/posts/%d", id), q, &post); err != nil {
			return nil, notFoundOr(err)
		}
		return &post, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Post), nil
}

// PageByID fetches a single page by numeric id.
func (c *Client) PageByID(ctx context.Context, id int, preview bool) (*Page, error) {
	if preview && !c.cfg.HasCredentials() {
		return nil, ErrAuthRequired
	}
	q := idQuery(preview)
	v, err := memoized(ctx, "page_by_id", fmt.Sprintf("%d|%s", id, q.Encode()), func() (interface{}, error) {
		var page Page
		if _, err := c.get(ctx, fmt.Sprintf("/pages/%d", id), q, &page); err != nil {
			return nil, notFoundOr(err)
		}
		return &page, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Page), nil
}

// notFoundOr maps an upstream 404 to ErrNotFound and passes other errors
// through.
func notFoundOr(err error) error {
	if apiErr, ok := err.(*APIError); ok && apiErr.Status == http.StatusNotFound {
		return ErrNotFound
	}
	return err
}

// Categories fetches taxonomy terms.
func (c *Client) Categories(ctx context.Context, params ListParams) ([]Category, error) {
	q := params.query()
	v, err := memoized(ctx, "categories", q.Encode(), func() (interface{}, error) {
		var categories []Category
		if _, err := c.get(ctx, "/categories", q, &categories); err != nil {
			return nil, err
		}
		return categories, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Category), nil
}

// Media fetches a media item by id. A zero id resolves to nil without an
// upstream call; that is an absence, not an error.
func (c *Client) Media(ctx context.Context, id int) (*Media, error) {
	if id == 0 {
		return nil, nil
	}
	v, err := memoized(ctx, "media", strconv.Itoa(id), func() (interface{}, error) {
		var media Media
		if _, err := c.get(ctx, fmt.Sprintf("/media/%d", id), nil, &media); err != nil {
			return nil, notFoundOr(err)
		}
		return &media, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Media), nil
}

// FeaturedImageURL resolves a featured-media reference to a URL: the named
// size if the media has it, else the original source URL. Failures of any
// kind yield "" so a missing image never blocks a render.
func (c *Client) FeaturedImageURL(ctx context.Context, mediaID int, size string) string {
	media, err := c.Media(ctx, mediaID)
	if err != nil || media == nil {
		return ""
	}
	if sized, ok := media.MediaDetails.Sizes[size]; ok && sized.SourceURL != "" {
		return sized.SourceURL
	}
	return media.SourceURL
}
