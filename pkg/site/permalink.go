package site

import (
	"path"
	"strings"
)

// Permalink maps a content-relative document path to its canonical URL
// under baseURL. Documents publish as directories: "posts/hello.md"
// becomes "<base>/posts/hello/", and an index document collapses into its
// parent directory.
func Permalink(baseURL, relPath string) string {
	base := strings.TrimRight(baseURL, "/")
	slug := documentSlug(relPath)
	if slug == "" {
		return base + "/"
	}
	return base + "/" + slug + "/"
}

// OutputPath maps a content-relative document path to its file under the
// output directory, mirroring the pretty-URL layout: every document is
// written as <slug>/index.html.
func OutputPath(relPath string) string {
	slug := documentSlug(relPath)
	if slug == "" {
		return "index.html"
	}
	return path.Join(slug, "index.html")
}

// documentSlug strips the extension and collapses index documents into
// their directory.
func documentSlug(relPath string) string {
	p := strings.TrimSuffix(relPath, path.Ext(relPath))
	if path.Base(p) == "index" || path.Base(p) == "_index" {
		p = path.Dir(p)
	}
	if p == "." || p == "/" {
		return ""
	}
	return strings.Trim(p, "/")
}
