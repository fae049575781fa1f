package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/happyhackingspace/stoplist/internal/htmlutil"
)

const maxPageBytes = 5 * 1024 * 1024

func (c *CLI) newFetchCommand() *cobra.Command {
	var (
		outputDir string
		seedFile  string
		timeout   int
		delay     int
		userAgent string
		maxPages  int
	)

	cmd := &cobra.Command{
		Use:   "fetch [urls...]",
		Short: "Fetch pages and save their text as corpus documents",
		Example: `  stoplist fetch https://thelatinlibrary.com/cicero/oratore1.shtml --output corpus

  # URLs from a file, one per line, # comments allowed
  stoplist fetch --seed urls.txt --output corpus --delay 500`,
		RunE: func(cmd *cobra.Command, args []string) error {
			urls := args
			if seedFile != "" {
				seeds, err := loadLines(seedFile)
				if err != nil {
					return fmt.Errorf("load seeds: %w", err)
				}
				urls = append(urls, seeds...)
			}
			if len(urls) == 0 {
				return fmt.Errorf("no URLs given")
			}

			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			client := newHTTPClient(timeout)
			saved := 0
			for i, rawURL := range urls {
				if maxPages > 0 && saved >= maxPages {
					break
				}
				if i > 0 && delay > 0 {
					time.Sleep(time.Duration(delay) * time.Millisecond)
				}

				title, text, err := fetchPageText(client, rawURL, userAgent)
				if err != nil {
					slog.Warn("Failed to fetch", "url", rawURL, "error", err)
					continue
				}
				if strings.TrimSpace(text) == "" {
					slog.Warn("Page has no text", "url", rawURL)
					continue
				}

				path := filepath.Join(outputDir, fmt.Sprintf("%03d.txt", saved+1))
				if err := os.WriteFile(path, []byte(text), 0644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				saved++
				slog.Info("Fetched", "url", rawURL, "title", title, "file", path)
			}

			if saved == 0 {
				return fmt.Errorf("no pages fetched")
			}
			slog.Info("Fetch complete", "pages", saved, "dir", outputDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "output", "corpus", "Output directory for document files")
	cmd.Flags().StringVar(&seedFile, "seed", "", "File with URLs, one per line")
	cmd.Flags().IntVar(&timeout, "timeout", 30, "HTTP timeout in seconds")
	cmd.Flags().IntVar(&delay, "delay", 1000, "Delay between requests in ms")
	cmd.Flags().StringVar(&userAgent, "user-agent", "Mozilla/5.0 (compatible; stoplist/1.0)", "User-Agent header")
	cmd.Flags().IntVar(&maxPages, "max", 0, "Max pages to fetch (0=unlimited)")
	return cmd
}

func newHTTPClient(timeoutSec int) *http.Client {
	return &http.Client{
		Timeout: time.Duration(timeoutSec) * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 5 {
				return fmt.Errorf("too many redirects")
			}
			return nil
		},
	}
}

// loadLines reads non-empty, non-comment lines from a seed file.
func loadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

// fetchPageText downloads a page and reduces it to corpus text. Plain
// text responses pass through untouched; anything else is treated as
// HTML. Bodies are capped at maxPageBytes.
func fetchPageText(client *http.Client, rawURL, userAgent string) (title, text string, err error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return "", "", err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return "", "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return "", "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body := io.LimitReader(resp.Body, maxPageBytes)
	if strings.Contains(resp.Header.Get("Content-Type"), "text/plain") {
		data, err := io.ReadAll(body)
		if err != nil {
			return "", "", err
		}
		return "", string(data), nil
	}

	doc, err := htmlutil.Parse(body)
	if err != nil {
		return "", "", err
	}
	return htmlutil.Title(doc), htmlutil.Text(doc), nil
}
