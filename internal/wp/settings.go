package wp

import (
	"context"
	"encoding/json"
	"fmt"
)

// Default settings strings, used whenever the settings endpoints are
// unreachable so routing and metadata generation are never blocked.
const (
	DefaultSiteTitle       = "WordPress Site"
	DefaultSiteDescription = "A WordPress powered site"
	DefaultPostsPerPage    = 10

	// ShowOnFrontPosts / ShowOnFrontPage are the two front-page modes.
	ShowOnFrontPosts = "posts"
	ShowOnFrontPage  = "page"
)

// DefaultFrontSettings is the record used when the front settings endpoint
// fails: the site root falls back to a posts listing.
func DefaultFrontSettings() *FrontSettings {
	return &FrontSettings{
		ShowOnFront:  ShowOnFrontPosts,
		Title:        DefaultSiteTitle,
		Description:  DefaultSiteDescription,
		PostsPerPage: DefaultPostsPerPage,
	}
}

// DefaultSiteSettings is the fallback for the authenticated settings read.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		Title:        DefaultSiteTitle,
		Description:  DefaultSiteDescription,
		ShowOnFront:  ShowOnFrontPosts,
		PostsPerPage: DefaultPostsPerPage,
	}
}

// frontPayload covers the field-name variations of the root settings
// endpoint: some installs use "name" for the site title, some "title", and
// some nest everything under "site".
type frontPayload struct {
	ShowOnFront  string `json:"show_on_front"`
	PageOnFront  int    `json:"page_on_front"`
	PageForPosts int    `json:"page_for_posts"`
	PostsPerPage int    `json:"posts_per_page"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Description  string `json:"description"`
}

// FrontSettings reads the front-page routing settings from the root-level
// settings endpoint. It never fails: any transport, protocol or decoding
// problem yields the default record, which routes the site root to a posts
// listing.
func (c *Client) FrontSettings(ctx context.Context) *FrontSettings {
	v, err := memoized(ctx, "front_settings", "", func() (interface{}, error) {
		var raw json.RawMessage
		if _, err := c.get(ctx, "/wp-json/wp/v2/settings?embed=true", nil, &raw); err != nil {
			return nil, err
		}

		// Some WP setups nest the fields under "site", some put them at
		// the top level.
		var wrapper struct {
			Site json.RawMessage `json:"site"`
		}
		payload := raw
		if err := json.Unmarshal(raw, &wrapper); err == nil && len(wrapper.Site) > 0 {
			payload = wrapper.Site
		}

		var fp frontPayload
		if err := json.Unmarshal(payload, &fp); err != nil {
			return nil, err
		}

		fs := &FrontSettings{
			ShowOnFront:  fp.ShowOnFront,
			PageOnFront:  fp.PageOnFront,
			PageForPosts: fp.PageForPosts,
			PostsPerPage: fp.PostsPerPage,
			Title:        fp.Name,
			Description:  fp.Description,
		}
		if fs.ShowOnFront == "" {
			fs.ShowOnFront = ShowOnFrontPosts
		}
		if fs.Title == "" {
			fs.Title = fp.Title
		}
		if fs.Title == "" {
			fs.Title = DefaultSiteTitle
		}
		if fs.Description == "" {
			fs.Description = DefaultSiteDescription
		}
		return fs, nil
	})
	if err != nil {
		c.log.Warn(fmt.Sprintf("wp: front settings unavailable, using defaults: %v", err))
		return DefaultFrontSettings()
	}
	return v.(*FrontSettings)
}

// SiteSettings reads the authenticated /settings endpoint, used outside
// front-page routing (menus, logo, site chrome). Like FrontSettings it
// degrades to a default record instead of failing.
func (c *Client) SiteSettings(ctx context.Context) *SiteSettings {
	v, err := memoized(ctx, "site_settings", "", func() (interface{}, error) {
		var settings SiteSettings
		if _, err := c.get(ctx, "/settings", nil, &settings); err != nil {
			return nil, err
		}
		if settings.Title == "" {
			settings.Title = DefaultSiteTitle
		}
		if settings.Description == "" {
			settings.Description = DefaultSiteDescription
		}
		return &settings, nil
	})
	if err != nil {
		c.log.Warn(fmt.Sprintf("wp: site settings unavailable, using defaults: %v", err))
		return DefaultSiteSettings()
	}
	return v.(*SiteSettings)
}

// SiteLogo resolves the site logo from the customizer settings, following
// the custom_logo then site_logo media references. Returns nil when no
// logo is configured or anything along the way fails.
func (c *Client) SiteLogo(ctx context.Context) *Logo {
	settings := c.SiteSettings(ctx)

	mediaID := settings.CustomLogo
	if mediaID == 0 {
		mediaID = settings.SiteLogo
	}
	if mediaID == 0 {
		return nil
	}

	media, err := c.Media(ctx, mediaID)
	if err != nil || media == nil {
		return nil
	}

	alt := media.AltText
	if alt == "" {
		alt = "Site Logo"
	}
	return &Logo{
		URL:    media.SourceURL,
		Width:  media.MediaDetails.Width,
		Height: media.MediaDetails.Height,
		Alt:    alt,
	}
}
