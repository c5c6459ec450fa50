package view

import (
	"html/template"
	"net/url"
	"strings"

	"go-wp-front/internal/format"
)

// Funcs exposes the presentation formatters to the templates. placeholder
// is the image path substituted for missing or invalid image URLs.
func Funcs(placeholder string) template.FuncMap {
	return template.FuncMap{
		"formatDate":  format.FormatDate,
		"excerpt":     format.Excerpt,
		"readingTime": format.ReadingTime,
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"imageURL": func(raw string) string {
			return format.ImageURL(raw, placeholder)
		},
		// navPath reduces an absolute menu URL to its local path so
		// navigation stays on this front end instead of linking back to
		// the WordPress install. Rooted relative paths pass through;
		// anything unparseable links nowhere.
		"navPath": func(raw string) string {
			u, err := url.Parse(raw)
			if err != nil {
				return "#"
			}
			if u.IsAbs() {
				if u.Path == "" {
					return "/"
				}
				return u.Path
			}
			if strings.HasPrefix(u.Path, "/") {
				return u.Path
			}
			return "#"
		},
	}
}
