// Package format holds the stateless presentation helpers used by the
// templates and the metadata builder: HTML stripping, excerpt truncation,
// locale date rendering and image URL validation.
package format

import (
	"html"
	"math"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"github.com/microcosm-cc/bluemonday"
)

// DateLayout is the display layout for post dates ("02 January 2006"
// rendered with Indonesian month names).
const DateLayout = "02 January 2006"

// dateLocale is fixed; the site is rendered in a single locale.
const dateLocale = monday.LocaleIdID

// stripPolicy removes every tag and keeps text content only.
var stripPolicy = bluemonday.StrictPolicy()

// tagPattern is a lossy cleanup for fragments bluemonday leaves encoded.
// Acceptable for excerpts and meta descriptions, not a full parser.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

var whitespacePattern = regexp.MustCompile(`\s+`)

// StripHTML removes markup from a rendered WordPress fragment and decodes
// the usual entities, returning trimmed plain text. Non-breaking spaces
// become plain spaces so excerpts and meta descriptions wrap normally.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	stripped := stripPolicy.Sanitize(tagPattern.ReplaceAllString(s, ""))
	text := html.UnescapeString(stripped)
	return strings.TrimSpace(strings.ReplaceAll(text, " ", " "))
}

// Truncate shortens text to at most max characters, appending an ellipsis
// when anything was cut. Runes, not bytes, so multibyte text survives.
func Truncate(s string, max int) string {
	if s == "" || max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max])) + "..."
}

// Excerpt strips markup from rendered HTML and truncates the result.
func Excerpt(htmlContent string, max int) string {
	return Truncate(StripHTML(htmlContent), max)
}

// FormatDate renders a WordPress timestamp for display. Upstream dates are
// ISO 8601 without a zone designator; on any parse failure the raw input is
// returned unchanged rather than an error.
func FormatDate(dateString string) string {
	parsed, err := parseWPDate(dateString)
	if err != nil {
		return dateString
	}
	return monday.Format(parsed, DateLayout, dateLocale)
}

// parseWPDate accepts the date shapes the REST API emits.
func parseWPDate(dateString string) (time.Time, error) {
	layouts := []string{"2006-01-02T15:04:05", time.RFC3339, "2006-01-02 15:04:05"}
	var err error
	for _, layout := range layouts {
		var t time.Time
		if t, err = time.Parse(layout, dateString); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// ImageURL validates a candidate image URL and substitutes the placeholder
// path for anything that is not an absolute URL.
func ImageURL(raw, placeholder string) string {
	if raw == "" {
		return placeholder
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return placeholder
	}
	return raw
}

// Slugify derives a URL slug from a title the way WordPress does:
// lowercase, alphanumerics and hyphens only, runs collapsed.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = regexp.MustCompile(`[^a-z0-9 -]`).ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, "-")
	s = regexp.MustCompile(`-+`).ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// readingWordsPerMinute matches the upstream estimate.
const readingWordsPerMinute = 200

// ReadingTime estimates reading minutes for rendered HTML, rounding up.
func ReadingTime(htmlContent string) int {
	text := StripHTML(htmlContent)
	if text == "" {
		return 0
	}
	words := len(strings.Fields(text))
	return int(math.Ceil(float64(words) / float64(readingWordsPerMinute)))
}

// maxVisiblePages bounds the pagination control width.
const maxVisiblePages = 5

// PageWindow returns the page numbers the pagination control shows: all of
// them when few, otherwise a window around the current page clamped to the
// ends.
func PageWindow(current, total int) []int {
	if total <= 0 {
		return nil
	}
	if total <= maxVisiblePages {
		pages := make([]int, 0, total)
		for i := 1; i <= total; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	start := current - 2
	end := current + 2
	switch {
	case current <= 3:
		start, end = 1, maxVisiblePages
	case current >= total-2:
		start, end = total-maxVisiblePages+1, total
	}
	if start < 1 {
		start = 1
	}
	if end > total {
		end = total
	}

	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}
