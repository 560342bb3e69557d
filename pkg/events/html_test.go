package events

import (
	"testing"
)

// roundTrip parses source and serializes the untransformed event stream.
func roundTrip(source string) string {
	return RenderHTML(Parse([]byte(source), Options{}))
}

func TestRenderHTML(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{
			"paragraph",
			"hello world\n",
			"<p>hello world</p>\n",
		},
		{
			"emphasis and strong",
			"*a* **b**\n",
			"<p><em>a</em> <strong>b</strong></p>\n",
		},
		{
			"strikethrough",
			"~~gone~~\n",
			"<p><del>gone</del></p>\n",
		},
		{
			"heading",
			"## Section\n",
			"<h2>Section</h2>\n",
		},
		{
			"inline code",
			"use `go vet` often\n",
			"<p>use <code>go vet</code> often</p>\n",
		},
		{
			"fenced code with language",
			"```rust\nfn main() {}\n```\n",
			"<pre><code class=\"language-rust\">fn main() {}\n</code></pre>\n",
		},
		{
			"fenced code escapes",
			"```\na < b\n```\n",
			"<pre><code>a &lt; b\n</code></pre>\n",
		},
		{
			"blockquote",
			"> quoted\n",
			"<blockquote>\n<p>quoted</p>\n</blockquote>\n",
		},
		{
			"unordered list",
			"- a\n- b\n",
			"<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n",
		},
		{
			"ordered list with start",
			"3. a\n4. b\n",
			"<ol start=\"3\">\n<li>a</li>\n<li>b</li>\n</ol>\n",
		},
		{
			"thematic break",
			"a\n\n---\n\nb\n",
			"<p>a</p>\n<hr />\n<p>b</p>\n",
		},
		{
			"inline link",
			"[x](https://example.com)\n",
			"<p><a href=\"https://example.com\">x</a></p>\n",
		},
		{
			"link with title",
			"[x](https://example.com \"the title\")\n",
			"<p><a href=\"https://example.com\" title=\"the title\">x</a></p>\n",
		},
		{
			"email autolink",
			"<foo@example.com>\n",
			"<p><a href=\"mailto:foo@example.com\">foo@example.com</a></p>\n",
		},
		{
			"image",
			"![alt text](pic.png \"t\")\n",
			"<p><img src=\"pic.png\" alt=\"alt text\" title=\"t\" /></p>\n",
		},
		{
			"text escaping",
			"a < b & c\n",
			"<p>a &lt; b &amp; c</p>\n",
		},
		{
			"hard break",
			"a\\\nb\n",
			"<p>a<br />\nb</p>\n",
		},
		{
			"task list",
			"- [x] done\n",
			"<ul>\n<li><input disabled=\"\" type=\"checkbox\" checked=\"\"/> done</li>\n</ul>\n",
		},
		{
			"table",
			"| a | b |\n|---|--:|\n| 1 | 2 |\n",
			"<table><thead><tr><th>a</th><th align=\"right\">b</th></tr></thead><tbody>\n<tr><td>1</td><td align=\"right\">2</td></tr>\n</tbody></table>\n",
		},
		{
			"html block passthrough",
			"<div>\nraw\n</div>\n",
			"<div>\nraw\n</div>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roundTrip(tt.source)
			if got != tt.expected {
				t.Errorf("RenderHTML(%q)\n got: %q\nwant: %q", tt.source, got, tt.expected)
			}
		})
	}
}

func TestRenderHTML_SubstitutedEvents(t *testing.T) {
	evs := []Event{
		HTMLEvent(`<h2 id="intro">`, Range{}),
		TextEvent("Intro", Range{}),
		EndEvent(Tag{Kind: TagHeading, Level: 2}),
	}
	got := RenderHTML(evs)
	want := "<h2 id=\"intro\">Intro</h2>\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
