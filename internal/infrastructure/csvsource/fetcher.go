package csvsource

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/ucl-stats/internal/domain/player"
)

const maxBodyBytes = 32 << 20

// Fetcher reads the raw dataset bytes in one shot.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
	Location() string
}

// NewFetcher picks an HTTP fetcher for http(s) locations and a file fetcher
// for everything else.
func NewFetcher(location string, httpClient *http.Client) Fetcher {
	location = strings.TrimSpace(location)
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewHTTPFetcher(httpClient, location)
	}
	return NewFileFetcher(location)
}

type FileFetcher struct {
	path string
}

func NewFileFetcher(path string) *FileFetcher {
	return &FileFetcher{path: path}
}

func (f *FileFetcher) Location() string {
	return f.path
}

func (f *FileFetcher) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "read dataset file"), player.ErrTransport)
	}
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, crerr.Mark(crerr.Wrapf(err, "read dataset file %q", f.path), player.ErrTransport)
	}
	return raw, nil
}

type HTTPFetcher struct {
	httpClient *http.Client
	url        string
	maxBody    int64
}

func NewHTTPFetcher(httpClient *http.Client, url string) *HTTPFetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	return &HTTPFetcher{
		httpClient: httpClient,
		url:        url,
		maxBody:    maxBodyBytes,
	}
}

func (f *HTTPFetcher) Location() string {
	return f.url
}

// Fetch issues a single GET; there is no retry on failure.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "build dataset request"), player.ErrTransport)
	}
	req.Header.Set("accept", "text/csv, text/plain;q=0.9, */*;q=0.5")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "fetch dataset"), player.ErrTransport)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, crerr.Mark(
			crerr.Newf("failed to fetch dataset: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			player.ErrTransport,
		)
	}

	// One byte past the limit tells an oversize body apart from one that fits.
	raw, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "read dataset body"), player.ErrTransport)
	}
	if int64(len(raw)) > f.maxBody {
		return nil, crerr.Mark(
			crerr.Newf("dataset body exceeds %d bytes", f.maxBody),
			player.ErrTransport,
		)
	}
	return raw, nil
}
