// Package corpusio loads corpus documents from files and directories.
package corpusio

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/happyhackingspace/stoplist/internal/htmlutil"
)

// Options control corpus loading.
type Options struct {
	// Strip phrases are removed from every document before it enters the
	// corpus, e.g. site boilerplate repeated on each page.
	Strip []string
}

// Load reads the corpus documents under the given paths. A directory
// contributes its .txt, .html and .htm entries in name order without
// recursing; a file path loads regardless of extension. HTML documents
// are reduced to their readable text. Document order follows the
// expanded path order.
func Load(paths []string, opts Options) ([]string, error) {
	files, err := expand(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no corpus files under %s", strings.Join(paths, ", "))
	}

	docs := make([]string, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		g.Go(func() error {
			text, err := readDocument(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			docs[i] = applyStrip(text, opts.Strip)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("Corpus loaded", "files", len(files))
	return docs, nil
}

func expand(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(entry.Name())) {
			case ".txt", ".html", ".htm":
				files = append(files, filepath.Join(path, entry.Name()))
			}
		}
	}
	return files, nil
}

func readDocument(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer func() { _ = f.Close() }()

		doc, err := htmlutil.Parse(f)
		if err != nil {
			return "", err
		}
		return htmlutil.Text(doc), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func applyStrip(text string, phrases []string) string {
	for _, phrase := range phrases {
		text = strings.ReplaceAll(text, phrase, " ")
	}
	return text
}
