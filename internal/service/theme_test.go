package service

import (
	"context"
	"errors"
	"image/color"
	"testing"

	"theme-color-service/internal/config"
)

func TestThemeColorFromURLRequiresInput(t *testing.T) {
	svc := NewThemeService(config.Config{}, NewImageFetcher(config.Config{}), nil)
	for _, raw := range []string{"", "   "} {
		if _, err := svc.ThemeColorFromURL(context.Background(), raw); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("raw=%q: expected ErrInvalidArgument, got %v", raw, err)
		}
	}
}

func TestThemeColorFromURL(t *testing.T) {
	srv := newUpstream(t, encodePNG(t, 120, 80, color.RGBA{12, 34, 56, 255}), nil)
	svc := NewThemeService(config.Config{Workers: 3}, NewImageFetcher(config.Config{}), nil)

	got, err := svc.ThemeColorFromURL(context.Background(), srv.URL+"/image")
	if err != nil {
		t.Fatalf("theme color: %v", err)
	}
	if got != "#0C2238" {
		t.Fatalf("got %s, want #0C2238", got)
	}
}

func TestThemeColorFromURLPropagatesNotFound(t *testing.T) {
	srv := newUpstream(t, nil, nil)
	svc := NewThemeService(config.Config{}, NewImageFetcher(config.Config{}), nil)

	if _, err := svc.ThemeColorFromURL(context.Background(), srv.URL+"/nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
