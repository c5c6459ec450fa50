// Package meta derives the SEO metadata record for a rendered page from
// the resolved content item's Yoast payload, with layered fallbacks to the
// item's own fields and finally to hardcoded defaults. Building metadata
// never fails: a malformed payload degrades to a static not-found record.
package meta

import (
	"strings"

	"go-wp-front/internal/format"
	"go-wp-front/internal/wp"
)

// descriptionLimit bounds derived meta descriptions.
const descriptionLimit = 160

// notFoundTitle is the static fallback title.
const notFoundTitle = "Page Not Found"

// Site carries the site-level values the builder falls back to.
type Site struct {
	Title       string
	Description string
	BaseURL     string
}

// Image is one Open Graph image.
type Image struct {
	URL    string
	Width  int
	Height int
}

// Robots are the indexing directives, already parsed to booleans.
type Robots struct {
	Index  bool
	Follow bool
}

// String renders the robots meta tag value.
func (r Robots) String() string {
	index, follow := "index", "follow"
	if !r.Index {
		index = "noindex"
	}
	if !r.Follow {
		follow = "nofollow"
	}
	return index + ", " + follow
}

// Meta is the full metadata record a response carries.
type Meta struct {
	Title         string
	Description   string
	Canonical     string
	Robots        Robots
	OGType        string
	OGTitle       string
	OGDescription string
	OGURL         string
	OGSiteName    string
	OGLocale      string
	PublishedTime string
	Images        []Image
	TwitterCard   string
}

// NotFound is the static record for 404 responses and for any metadata
// derivation that blows up.
func NotFound(site Site) Meta {
	return Meta{
		Title:       notFoundTitle + " - " + siteTitle(site),
		Description: "The page you are looking for could not be found.",
		Robots:      Robots{Index: false, Follow: false},
		OGType:      "website",
		OGTitle:     notFoundTitle,
		OGSiteName:  siteTitle(site),
		TwitterCard: "summary",
	}
}

// ForHome builds the homepage metadata from the front settings.
func ForHome(settings *wp.FrontSettings, site Site) Meta {
	title := settings.Title
	if title == "" {
		title = siteTitle(site)
	}
	description := settings.Description
	if description == "" {
		description = site.Description
	}
	return Meta{
		Title:         title,
		Description:   description,
		Canonical:     site.BaseURL,
		Robots:        Robots{Index: true, Follow: true},
		OGType:        "website",
		OGTitle:       title,
		OGDescription: description,
		OGURL:         site.BaseURL,
		OGSiteName:    title,
		TwitterCard:   "summary_large_image",
	}
}

// Build derives the metadata record for a content item. featuredImageURL
// is the already-resolved featured media URL, used to synthesize an Open
// Graph image when the Yoast payload has none. Any panic during derivation
// is recovered into the static not-found record.
func Build(item *wp.Item, featuredImageURL string, site Site) (m Meta) {
	defer func() {
		if rec := recover(); rec != nil {
			m = NotFound(site)
		}
	}()

	yoast := item.Yoast

	m = Meta{
		Title:         firstNonEmpty(yoastTitle(yoast), item.Title, siteTitle(site)),
		Description:   firstNonEmpty(yoastDescription(yoast), format.Excerpt(item.Excerpt, descriptionLimit), site.Description),
		Canonical:     firstNonEmpty(yoastCanonical(yoast), canonicalFor(item, site)),
		Robots:        parseRobots(yoast),
		OGType:        "article",
		OGSiteName:    siteTitle(site),
		PublishedTime: item.Date,
		TwitterCard:   "summary_large_image",
	}
	if item.Type == wp.ItemTypePage {
		m.OGType = "website"
	}

	if yoast != nil {
		if yoast.OGType != "" {
			m.OGType = yoast.OGType
		}
		if yoast.OGSiteName != "" {
			m.OGSiteName = yoast.OGSiteName
		}
		if yoast.OGLocale != "" {
			m.OGLocale = yoast.OGLocale
		}
		if yoast.ArticlePublishedTime != "" {
			m.PublishedTime = yoast.ArticlePublishedTime
		}
		if yoast.TwitterCard != "" {
			m.TwitterCard = yoast.TwitterCard
		}
	}
	m.OGTitle = firstNonEmpty(yoastOGTitle(yoast), m.Title)
	m.OGDescription = firstNonEmpty(yoastOGDescription(yoast), m.Description)
	m.OGURL = firstNonEmpty(yoastOGURL(yoast), m.Canonical)
	m.Images = images(yoast, featuredImageURL)

	return m
}

// images prefers the Yoast image list; otherwise a single record for the
// resolved featured image; otherwise none.
func images(yoast *wp.Yoast, featuredImageURL string) []Image {
	if yoast != nil && len(yoast.OGImage) > 0 {
		out := make([]Image, 0, len(yoast.OGImage))
		for _, img := range yoast.OGImage {
			if img.URL == "" {
				continue
			}
			out = append(out, Image{URL: img.URL, Width: img.Width, Height: img.Height})
		}
		if len(out) > 0 {
			return out
		}
	}
	if featuredImageURL != "" {
		return []Image{{URL: featuredImageURL}}
	}
	return nil
}

// parseRobots maps the Yoast robots strings to booleans; absent directives
// default to indexable.
func parseRobots(yoast *wp.Yoast) Robots {
	robots := Robots{Index: true, Follow: true}
	if yoast == nil || yoast.Robots == nil {
		return robots
	}
	if strings.EqualFold(yoast.Robots.Index, "noindex") {
		robots.Index = false
	}
	if strings.EqualFold(yoast.Robots.Follow, "nofollow") {
		robots.Follow = false
	}
	return robots
}

func canonicalFor(item *wp.Item, site Site) string {
	base := strings.TrimSuffix(site.BaseURL, "/")
	if item.Slug == "" {
		return base
	}
	return base + "/" + item.Slug
}

func siteTitle(site Site) string {
	if site.Title != "" {
		return site.Title
	}
	return wp.DefaultSiteTitle
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func yoastTitle(y *wp.Yoast) string {
	if y == nil {
		return ""
	}
	return y.Title
}

func yoastDescription(y *wp.Yoast) string {
	if y == nil {
		return ""
	}
	return y.Description
}

func yoastCanonical(y *wp.Yoast) string {
	if y == nil {
		return ""
	}
	return y.Canonical
}

func yoastOGTitle(y *wp.Yoast) string {
	if y == nil {
		return ""
	}
	return y.OGTitle
}

func yoastOGDescription(y *wp.Yoast) string {
	if y == nil {
		return ""
	}
	return y.OGDescription
}

func yoastOGURL(y *wp.Yoast) string {
	if y == nil {
		return ""
	}
	return y.OGURL
}
