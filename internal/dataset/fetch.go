package dataset

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gocarina/gocsv"
)

// Source describes where the CSV comes from. File takes precedence over URL
// when both are set, which is how a local snapshot overrides the remote
// dataset during development.
type Source struct {
	URL  string
	File string
}

// httpTimeout bounds the remote fetch; a failed or slow fetch aborts the run.
const httpTimeout = 60 * time.Second

// Fetch retrieves and decodes the CSV from the configured source.
func Fetch(ctx context.Context, src Source) ([]Record, error) {
	if src.File != "" {
		return fetchFile(src.File)
	}
	url := src.URL
	if url == "" {
		url = DefaultURL
	}
	return fetchURL(ctx, url)
}

func fetchFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var records []Record
	if err := gocsv.Unmarshal(f, &records); err != nil {
		return nil, fmt.Errorf("failed to decode dataset file %s: %w", path, err)
	}
	return records, nil
}

func fetchURL(ctx context.Context, url string) ([]Record, error) {
	ctx, cancel := context.WithTimeout(ctx, httpTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build dataset request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch dataset: unexpected status %s", resp.Status)
	}

	var records []Record
	if err := gocsv.Unmarshal(resp.Body, &records); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return records, nil
}
