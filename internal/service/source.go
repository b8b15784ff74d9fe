package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
	"theme-color-service/internal/config"
)

// NormalizeURL prefixes raw with http:// unless it already names an http or
// https scheme.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "http://" + raw
}

type ImageFetcher struct {
	userAgent string
	maxBytes  int64
	http      *http.Client
}

func NewImageFetcher(cfg config.Config) *ImageFetcher {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.UserAgent
	}
	maxBytes := cfg.MaxImageBytes
	if maxBytes <= 0 {
		maxBytes = config.DefaultMaxImageBytes
	}
	return &ImageFetcher{
		userAgent: userAgent,
		maxBytes:  maxBytes,
		http: &http.Client{
			Timeout: time.Duration(cfg.FetchTimeoutSec) * time.Second,
		},
	}
}

// Fetch downloads raw and decodes it, sniffing the format from the bytes.
func (f *ImageFetcher) Fetch(ctx context.Context, raw string) (image.Image, error) {
	u := NormalizeURL(raw)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &FetchError{URL: u, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, &FetchError{URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{URL: u, Err: fmt.Errorf("unexpected upstream status: %s", resp.Status)}
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, &FetchError{URL: u, Err: err}
	}
	if int64(len(b)) > f.maxBytes {
		return nil, &FetchError{URL: u, Err: fmt.Errorf("image exceeds %d bytes", f.maxBytes)}
	}

	img, err := imaging.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if img.Bounds().Empty() {
		return nil, &DecodeError{Err: ErrEmptyImage}
	}
	return img, nil
}
