package websocket

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"phishx/internal/api/http/logger"
	"phishx/internal/core/dashboard"
	"phishx/internal/store/session"
)

const (
	CommandRefresh = "refresh"

	FrameSnapshot = "snapshot"
	FrameError    = "error"

	writeWait      = 10 * time.Second
	maxCommandSize = 512
)

func NewRequestHandler(sessions session.SessionHandler) *Handler {
	return &Handler{
		Sessions: sessions,
		Upgrader: websocket.Upgrader{},
	}
}

type Handler struct {
	Sessions session.SessionHandler
	Upgrader websocket.Upgrader
}

// Frame is one server to client message.
type Frame struct {
	Type    string              `json:"type"`
	Data    *dashboard.Snapshot `json:"data,omitempty"`
	Message string              `json:"message,omitempty"`
}

// ServeHTTP handles GET /v1/sessions/{sessionId}/stream (WebSocket).
// The current snapshot is sent on connect; each "refresh" text message
// re-fetches and answers with a new snapshot frame.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionId := chi.URLParam(r, "sessionId")
	if sessionId == "" {
		http.Error(w, "missing session id", http.StatusBadRequest)
		return
	}
	logger.SetTarget(r.Context(), logger.Target{SessionId: sessionId})

	sess, err := h.Sessions.Get(sessionId)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	ws, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer ws.Close()
	ws.SetReadLimit(maxCommandSize)

	fw := &frameWriter{ws: ws}
	snap := sess.View.Snapshot(r.Context())
	if err := fw.write(Frame{Type: FrameSnapshot, Data: &snap}); err != nil {
		return
	}

	refreshes := 0
	for {
		mt, msg, err := ws.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[!] stream %s closed: %v", sessionId, err)
			}
			break
		}
		if mt != websocket.TextMessage {
			continue
		}

		// the session may have expired while the stream was open
		if _, err := h.Sessions.Get(sessionId); err != nil {
			_ = fw.write(Frame{Type: FrameError, Message: "session not found"})
			break
		}

		switch strings.TrimSpace(string(msg)) {
		case CommandRefresh:
			refreshes++
			snap := sess.View.Refresh(r.Context())
			if err := fw.write(Frame{Type: FrameSnapshot, Data: &snap}); err != nil {
				return
			}
		default:
			if err := fw.write(Frame{Type: FrameError, Message: "unknown command"}); err != nil {
				return
			}
		}
	}
	logger.PutExtra(r.Context(), "refreshes", refreshes)

	_ = ws.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "stream closed"),
		time.Now().Add(1*time.Second),
	)
}

// frameWriter serializes JSON frames onto the connection.
type frameWriter struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (w *frameWriter) write(f Frame) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	_ = w.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return w.ws.WriteJSON(f)
}
