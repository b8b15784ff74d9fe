package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"theme-color-service/internal/model"
	"theme-color-service/internal/service"
	"theme-color-service/internal/ws"
)

type Handler struct {
	hub      *ws.Hub
	themeSvc *service.ThemeService
	upgrader websocket.Upgrader
}

type apiError struct {
	Error string `json:"error"`
}

func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ThemeColor serves GET /api?img=<url>. Every failure is reported as 500
// with the err field set and an empty rgb.
func (h *Handler) ThemeColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeColorErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	img := r.URL.Query().Get("img")
	if img == "" {
		writeColorErr(w, http.StatusInternalServerError, service.ErrInvalidArgument.Error())
		return
	}

	hex, err := h.themeSvc.ThemeColorFromURL(r.Context(), img)
	if err != nil {
		log.Printf("theme color failed: img=%q kind=%s err=%v", img, errorKind(err), err)
		writeColorErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, model.ColorResponse{RGB: hex})
}

func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, errors.New("websocket requires GET"))
		return
	}
	if !websocket.IsWebSocketUpgrade(r) {
		writeErr(w, http.StatusBadRequest, errors.New("websocket upgrade required"))
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: remote=%s host=%s uri=%s err=%v", r.RemoteAddr, r.Host, r.RequestURI, err)
		return
	}
	client := ws.NewClient(h.hub, conn)
	h.hub.Register(client)
	h.hub.BroadcastEvent(model.Event{Type: model.EventClientConnected, Payload: map[string]string{"id": uuid.NewString()}, CreatedAt: time.Now().UnixMilli()})
	go client.WritePump()
	go client.ReadPump()
}

func errorKind(err error) string {
	var fetchErr *service.FetchError
	var decodeErr *service.DecodeError
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, service.ErrNotFound):
		return "not_found"
	case errors.As(err, &fetchErr):
		return "fetch"
	case errors.As(err, &decodeErr):
		return "decode"
	default:
		return "internal"
	}
}

func writeJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func writeErr(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, apiError{Error: err.Error()})
}

func writeColorErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, model.ColorResponse{Err: &msg})
}
