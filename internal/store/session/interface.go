package session

import (
	"phishx/internal/core/blockedsvc"
	"phishx/internal/core/dashboard"
)

type SessionHandler interface {
	Create() SessionInfo
	Get(sessionId string) (*Session, error)
	Delete(sessionId string) error
	Len() int
}

// Factory builds the per-session view and editor.
type Factory func() (dashboard.ViewHandler, blockedsvc.EditorHandler)
