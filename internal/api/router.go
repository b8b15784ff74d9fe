package api

import (
	"net/http"

	"github.com/gorilla/websocket"
	"theme-color-service/internal/service"
	"theme-color-service/internal/ws"
)

func NewRouter(hub *ws.Hub, themeSvc *service.ThemeService) http.Handler {
	h := &Handler{
		hub:      hub,
		themeSvc: themeSvc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.Healthz)
	mux.HandleFunc("/api", h.ThemeColor)
	mux.HandleFunc("/v1/ws", h.WebSocket)

	return logRequests(recoverPanics(mux))
}
