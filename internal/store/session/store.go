package session

import (
	"strings"
	"sync"
	"time"

	perrors "phishx/internal/errors"
	"phishx/internal/metrics"
	"phishx/internal/utils"
)

var ErrSessionNotFound = perrors.New(perrors.KindNotFound, "session not found")

func NewSessionStore(ttl time.Duration, factory Factory, m *metrics.Registry) *SessionStore {
	return &SessionStore{
		ttl:     ttl,
		factory: factory,
		metrics: m,
		now:     time.Now,
		state:   &sessionState{sessions: map[string]*Session{}},
	}
}

// SessionStore keeps sessions in memory. Idle ones are dropped on the next
// access after their TTL; nothing runs in the background.
type SessionStore struct {
	ttl     time.Duration
	factory Factory
	metrics *metrics.Registry
	now     func() time.Time

	mu    sync.Mutex
	state *sessionState
}

func (s *SessionStore) Create() SessionInfo {
	view, editor := s.factory()

	var info SessionInfo
	_ = s.withLock(func(st *sessionState) error {
		now := s.now()
		sess := &Session{
			Id:        utils.NewUlid(),
			CreatedAt: now,
			LastSeen:  now,
			View:      view,
			Editor:    editor,
		}
		st.sessions[sess.Id] = sess
		info = SessionInfo{Id: sess.Id, CreatedAt: now, ExpiresAt: now.Add(s.ttl)}
		return nil
	})
	return info
}

// Get returns the session and marks it as seen. Ids are matched
// case-insensitively.
func (s *SessionStore) Get(sessionId string) (*Session, error) {
	sessionId, ok := canonicalId(sessionId)
	if !ok {
		return nil, ErrSessionNotFound
	}
	var sess *Session
	err := s.withLock(func(st *sessionState) error {
		found, ok := st.sessions[sessionId]
		if !ok {
			return ErrSessionNotFound
		}
		found.LastSeen = s.now()
		sess = found
		return nil
	})
	return sess, err
}

func (s *SessionStore) Delete(sessionId string) error {
	sessionId, ok := canonicalId(sessionId)
	if !ok {
		return ErrSessionNotFound
	}
	return s.withLock(func(st *sessionState) error {
		if _, ok := st.sessions[sessionId]; !ok {
			return ErrSessionNotFound
		}
		delete(st.sessions, sessionId)
		return nil
	})
}

func (s *SessionStore) Len() int {
	var n int
	_ = s.withLock(func(st *sessionState) error {
		n = len(st.sessions)
		return nil
	})
	return n
}

func (s *SessionStore) withLock(fn func(st *sessionState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireLocked()
	err := fn(s.state)
	s.metrics.SetActiveSessions(len(s.state.sessions))
	return err
}

func (s *SessionStore) expireLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl)
	for id, sess := range s.state.sessions {
		if sess.LastSeen.Before(cutoff) {
			delete(s.state.sessions, id)
		}
	}
}

func canonicalId(sessionId string) (string, bool) {
	if !utils.IsUlid(sessionId) {
		return "", false
	}
	return strings.ToLower(sessionId), true
}
