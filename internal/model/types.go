package model

type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ColorResponse is the body of every /api reply. Err is nil on success so it
// renders as JSON null; RGB is empty whenever Err is set.
type ColorResponse struct {
	Err *string `json:"err"`
	RGB string  `json:"rgb"`
}

type ThemeComputed struct {
	ID  string `json:"id"`
	Img string `json:"img"`
	RGB string `json:"rgb"`
}

const (
	EventClientConnected = "ws.client_connected"
	EventThemeComputed   = "theme.computed"
)

type Event struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	CreatedAt int64       `json:"created_at_unix_ms"`
}
