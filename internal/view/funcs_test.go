package view

import "testing"

func TestNavPath(t *testing.T) {
	navPath, ok := Funcs("/static/placeholder.svg")["navPath"].(func(string) string)
	if !ok {
		t.Fatal("navPath is not registered with the expected signature")
	}

	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"absolute url reduces to its path", "https://cms.example.com/about", "/about"},
		{"absolute url without a path is the root", "https://cms.example.com", "/"},
		{"rooted relative path passes through", "/about", "/about"},
		{"rooted path with query keeps the path", "/blog?page=2", "/blog"},
		{"bare relative fragment links nowhere", "about", "#"},
		{"empty links nowhere", "", "#"},
		{"unparseable links nowhere", "http://bad host/", "#"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := navPath(tc.input); got != tc.want {
				t.Errorf("navPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
