package render

import (
	"strings"

	"github.com/stanzadev/stanza/pkg/events"
)

// internalLinkPrefix marks a link resolved against the site's own content
// tree, e.g. "@/posts/hello.md#intro".
const internalLinkPrefix = "@/"

// InternalLink records a resolved link to a site-local document.
type InternalLink struct {
	// Path is the content-relative path of the target document.
	Path string `json:"path"`

	// Anchor is the target fragment without '#', empty when absent.
	Anchor string `json:"anchor,omitempty"`
}

// isExternalLink reports whether a link starts with an HTTP(S) scheme.
func isExternalLink(link string) bool {
	return strings.HasPrefix(link, "http:") || strings.HasPrefix(link, "https:")
}

// resolveInternalLink looks up an "@/..." reference in the permalink table.
// The part after "@/" and before any fragment is the table key.
func resolveInternalLink(link string, permalinks map[string]string) (InternalLink, string, error) {
	ref := strings.TrimPrefix(link, internalLinkPrefix)
	ref, anchor, _ := strings.Cut(ref, "#")

	permalink, ok := permalinks[ref]
	if !ok {
		return InternalLink{}, "", &UnresolvedLinkError{Link: link}
	}

	resolved := permalink
	if anchor != "" {
		resolved += "#" + anchor
	}
	return InternalLink{Path: ref, Anchor: anchor}, resolved, nil
}

// fixLink classifies a link and returns its rewritten target, recording it
// in the internal or external inventory as a side effect. Classification is
// a total, deterministic function of the link string:
//
//   - email autolinks pass through unchanged
//   - "@/..." resolves against the permalink table (hard error on miss)
//   - "#..." resolves relative to the current document, when one is known
//   - http(s) links are inventoried and pass through
//   - everything else passes through untouched and uninventoried
func (t *transformer) fixLink(kind events.LinkKind, link string) (string, error) {
	if kind == events.LinkEmail {
		return link, nil
	}

	switch {
	case strings.HasPrefix(link, internalLinkPrefix):
		internal, resolved, err := resolveInternalLink(link, t.ctx.Permalinks)
		if err != nil {
			return "", err
		}
		t.internalLinks = append(t.internalLinks, internal)
		return resolved, nil

	case isExternalLink(link):
		t.externalLinks = append(t.externalLinks, link)
		return link, nil

	case strings.HasPrefix(link, "#"):
		// Local anchor without the internal path prefix.
		if t.ctx.CurrentPath != "" {
			t.internalLinks = append(t.internalLinks, InternalLink{
				Path:   t.ctx.CurrentPath,
				Anchor: link[1:],
			})
			return t.ctx.CurrentPermalink + link, nil
		}
		return link, nil

	default:
		return link, nil
	}
}
