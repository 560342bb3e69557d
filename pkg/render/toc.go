package render

// Heading is one node of the table-of-contents tree. Headings are built
// flat in document order, then folded into a tree: a heading becomes a
// child of the nearest preceding unclosed heading of a smaller level.
type Heading struct {
	Level     int       `json:"level"`
	ID        string    `json:"id"`
	Permalink string    `json:"permalink"`
	Title     string    `json:"title"`
	Children  []Heading `json:"children,omitempty"`
}

// makeTableOfContents folds the flat, document-ordered heading list into
// the TOC tree.
func makeTableOfContents(flat []Heading) []Heading {
	var toc []Heading
	for _, h := range flat {
		insertHeading(&toc, h)
	}
	return toc
}

func insertHeading(tree *[]Heading, h Heading) {
	if n := len(*tree); n > 0 {
		last := &(*tree)[n-1]
		if h.Level > last.Level {
			insertHeading(&last.Children, h)
			return
		}
	}
	*tree = append(*tree, h)
}
