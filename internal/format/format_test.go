package format

import (
	"reflect"
	"testing"
)

func TestStripHTML(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text", "hello world", "hello world"},
		{"simple tags", "<p>hello <strong>world</strong></p>", "hello world"},
		{"entities", "<p>fish &amp; chips</p>", "fish & chips"},
		{"nbsp", "one&nbsp;two", "one two"},
		{"surrounding whitespace", "  <p>trimmed</p>\n", "trimmed"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripHTML(tc.input); got != tc.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"empty", "", 10, ""},
		{"shorter than max", "short", 10, "short"},
		{"exactly max", "1234567890", 10, "1234567890"},
		{"longer than max", "hello world again", 11, "hello world..."},
		{"trims trailing space before ellipsis", "hello world", 6, "hello..."},
		{"zero budget", "anything", 0, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Truncate(tc.input, tc.max); got != tc.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tc.input, tc.max, got, tc.want)
			}
		})
	}
}

func TestExcerpt(t *testing.T) {
	got := Excerpt("<p>The quick brown fox jumps over the lazy dog</p>", 19)
	want := "The quick brown fox..."
	if got != want {
		t.Errorf("Excerpt = %q, want %q", got, want)
	}
}

func TestFormatDate(t *testing.T) {
	t.Run("wordpress timestamp renders in locale", func(t *testing.T) {
		got := FormatDate("2024-03-05T09:30:00")
		want := "05 Maret 2024"
		if got != want {
			t.Errorf("FormatDate = %q, want %q", got, want)
		}
	})

	t.Run("unparseable input is returned unchanged", func(t *testing.T) {
		if got := FormatDate("not-a-date"); got != "not-a-date" {
			t.Errorf("FormatDate = %q, want input back", got)
		}
	})
}

func TestImageURL(t *testing.T) {
	const placeholder = "/static/placeholder.svg"

	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"absolute url passes through", "https://cms.example.com/img.jpg", "https://cms.example.com/img.jpg"},
		{"empty falls back", "", placeholder},
		{"relative path falls back", "/uploads/img.jpg", placeholder},
		{"garbage falls back", "not a url", placeholder},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ImageURL(tc.input, placeholder); got != tc.want {
				t.Errorf("ImageURL(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"  Spaces   everywhere  ", "spaces-everywhere"},
		{"Special!@# Chars", "special-chars"},
		{"already-a-slug", "already-a-slug"},
	}

	for _, tc := range testCases {
		if got := Slugify(tc.input); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestReadingTime(t *testing.T) {
	if got := ReadingTime(""); got != 0 {
		t.Errorf("ReadingTime of empty content = %d, want 0", got)
	}
	if got := ReadingTime("<p>a few words only</p>"); got != 1 {
		t.Errorf("ReadingTime of short content = %d, want 1", got)
	}
}

func TestPageWindow(t *testing.T) {
	testCases := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{"no pages", 1, 0, nil},
		{"few pages show all", 2, 4, []int{1, 2, 3, 4}},
		{"window near the beginning", 2, 10, []int{1, 2, 3, 4, 5}},
		{"window in the middle", 6, 10, []int{4, 5, 6, 7, 8}},
		{"window near the end", 9, 10, []int{6, 7, 8, 9, 10}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := PageWindow(tc.current, tc.total)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("PageWindow(%d, %d) = %v, want %v", tc.current, tc.total, got, tc.want)
			}
		})
	}
}
