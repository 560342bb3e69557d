package site

import (
	"testing"
)

func TestPermalink(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		rel      string
		expected string
	}{
		{"page", "https://example.com", "posts/hello.md", "https://example.com/posts/hello/"},
		{"trailing slash on base", "https://example.com/", "about.md", "https://example.com/about/"},
		{"root index", "https://example.com", "index.md", "https://example.com/"},
		{"section index", "https://example.com", "posts/index.md", "https://example.com/posts/"},
		{"underscore index", "https://example.com", "posts/_index.md", "https://example.com/posts/"},
		{"nested", "https://example.com", "a/b/c.markdown", "https://example.com/a/b/c/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Permalink(tt.base, tt.rel); got != tt.expected {
				t.Errorf("Permalink(%q, %q) = %q, want %q", tt.base, tt.rel, got, tt.expected)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		rel      string
		expected string
	}{
		{"posts/hello.md", "posts/hello/index.html"},
		{"index.md", "index.html"},
		{"posts/index.md", "posts/index.html"},
		{"about.md", "about/index.html"},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			if got := OutputPath(tt.rel); got != tt.expected {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.rel, got, tt.expected)
			}
		})
	}
}
