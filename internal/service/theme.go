package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"theme-color-service/internal/config"
	"theme-color-service/internal/model"
	"theme-color-service/internal/ws"
)

type ThemeService struct {
	workers int
	fetcher *ImageFetcher
	hub     *ws.Hub
}

func NewThemeService(cfg config.Config, fetcher *ImageFetcher, hub *ws.Hub) *ThemeService {
	return &ThemeService{workers: cfg.Workers, fetcher: fetcher, hub: hub}
}

// ThemeColorFromURL fetches the image named by raw and returns its average
// colour as #RRGGBB. Successful results are published on the hub.
func (s *ThemeService) ThemeColorFromURL(ctx context.Context, raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrInvalidArgument
	}
	img, err := s.fetcher.Fetch(ctx, raw)
	if err != nil {
		return "", err
	}
	hex, err := ThemeColor(img, s.workers)
	if err != nil {
		return "", err
	}

	if s.hub != nil {
		s.hub.BroadcastEvent(model.Event{
			Type:      model.EventThemeComputed,
			Payload:   model.ThemeComputed{ID: uuid.NewString(), Img: raw, RGB: hex},
			CreatedAt: time.Now().UnixMilli(),
		})
	}
	return hex, nil
}
