package site

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// markdownExtensions is the set of file extensions treated as content.
var markdownExtensions = []string{".md", ".markdown"}

// Discover walks contentDir and returns the slash-separated relative paths
// of every Markdown document, sorted for deterministic processing order.
// Hidden files and directories (dot-prefixed) are skipped.
func Discover(ctx context.Context, contentDir string) ([]string, error) {
	info, err := os.Stat(contentDir)
	if err != nil {
		return nil, fmt.Errorf("stat content dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content path %s is not a directory", contentDir)
	}

	var docs []string
	err = filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		if strings.HasPrefix(d.Name(), ".") && path != contentDir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isMarkdown(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		docs = append(docs, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(docs)
	return docs, nil
}

func isMarkdown(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, known := range markdownExtensions {
		if ext == known {
			return true
		}
	}
	return false
}
