package session

import (
	"time"

	"phishx/internal/core/blockedsvc"
	"phishx/internal/core/dashboard"
)

type Session struct {
	Id        string
	CreatedAt time.Time
	LastSeen  time.Time
	View      dashboard.ViewHandler
	Editor    blockedsvc.EditorHandler
}

type SessionInfo struct {
	Id        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type sessionState struct {
	sessions map[string]*Session
}
