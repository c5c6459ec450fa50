package wp

// Rendered wraps the pre-rendered HTML strings the REST API returns for
// titles, content and excerpts.
type Rendered struct {
	Rendered string `json:"rendered"`
}

// RenderedProtected is a Rendered value that can be password protected.
type RenderedProtected struct {
	Rendered  string `json:"rendered"`
	Protected bool   `json:"protected"`
}

// RobotsDirectives is the Yoast robots block. Index/Follow are strings
// ("index"/"noindex", "follow"/"nofollow") in the upstream payload.
type RobotsDirectives struct {
	Index           string `json:"index,omitempty"`
	Follow          string `json:"follow,omitempty"`
	MaxSnippet      string `json:"max-snippet,omitempty"`
	MaxImagePreview string `json:"max-image-preview,omitempty"`
	MaxVideoPreview string `json:"max-video-preview,omitempty"`
}

// OGImage is a single Open Graph image record in a Yoast payload.
type OGImage struct {
	URL    string `json:"url,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Type   string `json:"type,omitempty"`
}

// Yoast is the per-item SEO payload produced by the Yoast plugin. Every
// field is optional; consumers fall back to content item fields and then to
// hardcoded defaults.
type Yoast struct {
	Title                string            `json:"title,omitempty"`
	Description          string            `json:"description,omitempty"`
	Robots               *RobotsDirectives `json:"robots,omitempty"`
	Canonical            string            `json:"canonical,omitempty"`
	OGLocale             string            `json:"og_locale,omitempty"`
	OGType               string            `json:"og_type,omitempty"`
	OGTitle              string            `json:"og_title,omitempty"`
	OGDescription        string            `json:"og_description,omitempty"`
	OGURL                string            `json:"og_url,omitempty"`
	OGSiteName           string            `json:"og_site_name,omitempty"`
	ArticlePublishedTime string            `json:"article_published_time,omitempty"`
	OGImage              []OGImage         `json:"og_image,omitempty"`
	Author               string            `json:"author,omitempty"`
	TwitterCard          string            `json:"twitter_card,omitempty"`
}

// Post is a single blog post as returned by /posts.
type Post struct {
	ID            int               `json:"id"`
	Date          string            `json:"date"`
	DateGMT       string            `json:"date_gmt"`
	Modified      string            `json:"modified"`
	ModifiedGMT   string            `json:"modified_gmt"`
	Slug          string            `json:"slug"`
	Status        string            `json:"status"`
	Type          string            `json:"type"`
	Link          string            `json:"link"`
	Title         Rendered          `json:"title"`
	Content       RenderedProtected `json:"content"`
	Excerpt       RenderedProtected `json:"excerpt"`
	Author        int               `json:"author"`
	FeaturedMedia int               `json:"featured_media"`
	Sticky        bool              `json:"sticky"`
	Format        string            `json:"format"`
	Categories    []int             `json:"categories"`
	Tags          []int             `json:"tags"`
	Yoast         *Yoast            `json:"yoast_head_json,omitempty"`
}

// Page is a static page as returned by /pages. Pages additionally carry a
// parent reference and a menu order, which the menu fallback uses.
type Page struct {
	ID            int               `json:"id"`
	Date          string            `json:"date"`
	DateGMT       string            `json:"date_gmt"`
	Modified      string            `json:"modified"`
	ModifiedGMT   string            `json:"modified_gmt"`
	Slug          string            `json:"slug"`
	Status        string            `json:"status"`
	Type          string            `json:"type"`
	Link          string            `json:"link"`
	Title         Rendered          `json:"title"`
	Content       RenderedProtected `json:"content"`
	Excerpt       RenderedProtected `json:"excerpt"`
	Author        int               `json:"author"`
	FeaturedMedia int               `json:"featured_media"`
	Parent        int               `json:"parent"`
	MenuOrder     int               `json:"menu_order"`
	Yoast         *Yoast            `json:"yoast_head_json,omitempty"`
}

// Category is a taxonomy term from /categories.
type Category struct {
	ID          int    `json:"id"`
	Count       int    `json:"count"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Taxonomy    string `json:"taxonomy"`
	Parent      int    `json:"parent"`
}

// MediaSize is one named rendition of a media item.
type MediaSize struct {
	File      string `json:"file"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	MimeType  string `json:"mime_type"`
	SourceURL string `json:"source_url"`
}

// MediaDetails carries the dimensions and size map of a media item.
type MediaDetails struct {
	Width  int                  `json:"width"`
	Height int                  `json:"height"`
	File   string               `json:"file"`
	Sizes  map[string]MediaSize `json:"sizes"`
}

// Media is an attachment from /media.
type Media struct {
	ID           int          `json:"id"`
	Slug         string       `json:"slug"`
	Type         string       `json:"type"`
	Link         string       `json:"link"`
	Title        Rendered     `json:"title"`
	AltText      string       `json:"alt_text"`
	MediaType    string       `json:"media_type"`
	MimeType     string       `json:"mime_type"`
	MediaDetails MediaDetails `json:"media_details"`
	SourceURL    string       `json:"source_url"`
}

// MenuItem is a navigation entry from the menu-items plugin endpoint.
// Parent 0 means top level; a parent id that does not resolve within the
// fetched set is treated as top level as well.
type MenuItem struct {
	ID        int      `json:"id"`
	Title     Rendered `json:"title"`
	URL       string   `json:"url"`
	Target    string   `json:"target"`
	Object    string   `json:"object"`
	ObjectID  int      `json:"object_id"`
	Parent    int      `json:"parent"`
	MenuOrder int      `json:"menu_order"`
	Type      string   `json:"type"`
	TypeLabel string   `json:"type_label"`
}

// Menu is a named menu from the menus plugin endpoint.
type Menu struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// FrontSettings is the singleton deciding what the site root shows:
// a posts listing ("posts") or a fixed page ("page").
type FrontSettings struct {
	ShowOnFront  string `json:"show_on_front"`
	PageOnFront  int    `json:"page_on_front,omitempty"`
	PageForPosts int    `json:"page_for_posts,omitempty"`
	PostsPerPage int    `json:"posts_per_page,omitempty"`
	Title        string `json:"title"`
	Description  string `json:"description"`
}

// SiteSettings is the authenticated /settings read, used outside routing.
// Beyond the front-page fields it exposes the customizer values the menu
// and logo lookups consult.
type SiteSettings struct {
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	ShowOnFront      string         `json:"show_on_front"`
	PageOnFront      int            `json:"page_on_front,omitempty"`
	PageForPosts     int            `json:"page_for_posts,omitempty"`
	PostsPerPage     int            `json:"posts_per_page,omitempty"`
	NavMenuLocations map[string]int `json:"nav_menu_locations,omitempty"`
	CustomLogo       int            `json:"custom_logo,omitempty"`
	SiteLogo         int            `json:"site_logo,omitempty"`
}

// Logo is a resolved site logo.
type Logo struct {
	URL    string
	Width  int
	Height int
	Alt    string
}

// ListParams are the paging, ordering and filter options for listing
// endpoints. Zero values are omitted from the query string.
type ListParams struct {
	Page       int
	PerPage    int
	Search     string
	Orderby    string
	Order      string
	Categories []int
	Tags       []int
	Parent     *int
}

// MenuQuery selects which menu to resolve; fields are tried in the order
// slug, location, id.
type MenuQuery struct {
	Slug     string
	Location string
	MenuID   int
}
