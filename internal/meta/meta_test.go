package meta

import (
	"testing"

	"go-wp-front/internal/wp"
)

var testSite = Site{
	Title:       "Example Site",
	Description: "An example description",
	BaseURL:     "https://example.com",
}

func TestBuildWithoutYoast(t *testing.T) {
	item := &wp.Item{
		ID:      1,
		Type:    wp.ItemTypePost,
		Slug:    "hello-world",
		Date:    "2024-03-05T09:30:00",
		Title:   "Hello World",
		Excerpt: "<p>Plain words here.</p>",
	}

	m := Build(item, "", testSite)

	if m.Title != "Hello World" {
		t.Errorf("expected the item title, got %q", m.Title)
	}
	if m.Description != "Plain words here." {
		t.Errorf("expected the stripped excerpt, got %q", m.Description)
	}
	if m.Canonical != "https://example.com/hello-world" {
		t.Errorf("unexpected canonical %q", m.Canonical)
	}
	if !m.Robots.Index || !m.Robots.Follow {
		t.Errorf("expected indexable defaults, got %+v", m.Robots)
	}
	if m.OGType != "article" {
		t.Errorf("expected article og:type for a post, got %q", m.OGType)
	}
	if m.PublishedTime != "2024-03-05T09:30:00" {
		t.Errorf("unexpected published time %q", m.PublishedTime)
	}
	if len(m.Images) != 0 {
		t.Errorf("expected no images, got %d", len(m.Images))
	}
}

func TestBuildYoastPrecedence(t *testing.T) {
	item := &wp.Item{
		ID:      2,
		Type:    wp.ItemTypePost,
		Slug:    "annotated",
		Date:    "2024-01-01T00:00:00",
		Title:   "Fallback Title",
		Excerpt: "<p>Fallback excerpt.</p>",
		Yoast: &wp.Yoast{
			Title:                "SEO Title",
			Description:          "SEO description",
			Canonical:            "https://cms.example.com/annotated",
			OGTitle:              "Share Title",
			OGType:               "article",
			OGLocale:             "id_ID",
			ArticlePublishedTime: "2024-01-02T12:00:00+00:00",
			TwitterCard:          "summary",
		},
	}

	m := Build(item, "", testSite)

	if m.Title != "SEO Title" {
		t.Errorf("expected the SEO title, got %q", m.Title)
	}
	if m.Description != "SEO description" {
		t.Errorf("expected the SEO description, got %q", m.Description)
	}
	if m.Canonical != "https://cms.example.com/annotated" {
		t.Errorf("expected the SEO canonical, got %q", m.Canonical)
	}
	if m.OGTitle != "Share Title" {
		t.Errorf("expected the og title, got %q", m.OGTitle)
	}
	if m.OGDescription != "SEO description" {
		t.Errorf("expected og description to fall back to the description, got %q", m.OGDescription)
	}
	if m.OGLocale != "id_ID" {
		t.Errorf("expected the og locale, got %q", m.OGLocale)
	}
	if m.PublishedTime != "2024-01-02T12:00:00+00:00" {
		t.Errorf("expected the SEO published time, got %q", m.PublishedTime)
	}
	if m.TwitterCard != "summary" {
		t.Errorf("expected the SEO twitter card, got %q", m.TwitterCard)
	}
}

func TestBuildOGTypeForPage(t *testing.T) {
	item := &wp.Item{ID: 3, Type: wp.ItemTypePage, Slug: "about", Title: "About"}
	m := Build(item, "", testSite)
	if m.OGType != "website" {
		t.Errorf("expected website og:type for a page, got %q", m.OGType)
	}
}

func TestParseRobots(t *testing.T) {
	tests := []struct {
		name       string
		yoast      *wp.Yoast
		wantString string
	}{
		{"nil payload defaults to indexable", nil, "index, follow"},
		{"explicit index follow", &wp.Yoast{Robots: &wp.RobotsDirectives{Index: "index", Follow: "follow"}}, "index, follow"},
		{"noindex", &wp.Yoast{Robots: &wp.RobotsDirectives{Index: "noindex", Follow: "follow"}}, "noindex, follow"},
		{"nofollow", &wp.Yoast{Robots: &wp.RobotsDirectives{Index: "index", Follow: "nofollow"}}, "index, nofollow"},
		{"both off", &wp.Yoast{Robots: &wp.RobotsDirectives{Index: "noindex", Follow: "nofollow"}}, "noindex, nofollow"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseRobots(tt.yoast).String(); got != tt.wantString {
				t.Errorf("expected %q, got %q", tt.wantString, got)
			}
		})
	}
}

func TestBuildImages(t *testing.T) {
	t.Run("prefers the SEO image list", func(t *testing.T) {
		item := &wp.Item{
			Type:  wp.ItemTypePost,
			Title: "Pictures",
			Yoast: &wp.Yoast{OGImage: []wp.OGImage{
				{URL: "https://cms.example.com/a.jpg", Width: 1200, Height: 630},
				{URL: "https://cms.example.com/b.jpg"},
			}},
		}
		m := Build(item, "https://cms.example.com/featured.jpg", testSite)
		if len(m.Images) != 2 || m.Images[0].URL != "https://cms.example.com/a.jpg" {
			t.Fatalf("expected the SEO images, got %+v", m.Images)
		}
		if m.Images[0].Width != 1200 || m.Images[0].Height != 630 {
			t.Errorf("expected dimensions to carry over, got %+v", m.Images[0])
		}
	})

	t.Run("falls back to the featured image", func(t *testing.T) {
		item := &wp.Item{Type: wp.ItemTypePost, Title: "Pictures"}
		m := Build(item, "https://cms.example.com/featured.jpg", testSite)
		if len(m.Images) != 1 || m.Images[0].URL != "https://cms.example.com/featured.jpg" {
			t.Errorf("expected the featured image record, got %+v", m.Images)
		}
	})
}

func TestBuildRecoversToNotFound(t *testing.T) {
	m := Build(nil, "", testSite)

	if m.Title != "Page Not Found - Example Site" {
		t.Errorf("expected the not-found title, got %q", m.Title)
	}
	if m.Robots.Index || m.Robots.Follow {
		t.Errorf("expected a non-indexable record, got %+v", m.Robots)
	}
}

func TestNotFound(t *testing.T) {
	t.Run("uses the site title", func(t *testing.T) {
		m := NotFound(testSite)
		if m.Title != "Page Not Found - Example Site" {
			t.Errorf("unexpected title %q", m.Title)
		}
		if m.TwitterCard != "summary" {
			t.Errorf("unexpected twitter card %q", m.TwitterCard)
		}
	})

	t.Run("empty site falls back to the default title", func(t *testing.T) {
		m := NotFound(Site{})
		if m.Title != "Page Not Found - "+wp.DefaultSiteTitle {
			t.Errorf("unexpected title %q", m.Title)
		}
	})
}

func TestForHome(t *testing.T) {
	settings := &wp.FrontSettings{Title: "Front Title", Description: "Front description"}
	m := ForHome(settings, testSite)

	if m.Title != "Front Title" || m.OGSiteName != "Front Title" {
		t.Errorf("expected the settings title throughout, got %q / %q", m.Title, m.OGSiteName)
	}
	if m.Canonical != testSite.BaseURL || m.OGURL != testSite.BaseURL {
		t.Errorf("expected the base URL, got %q / %q", m.Canonical, m.OGURL)
	}
	if !m.Robots.Index {
		t.Error("expected the homepage to be indexable")
	}
}
