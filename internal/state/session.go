package state

import "github.com/atomicstack/claude-tmux/internal/session"

// SessionStore holds the most recent snapshot of tmux sessions along with
// the name of the session the client is currently attached to.
type SessionStore interface {
	Sessions() []session.Session
	SetSessions([]session.Session)
	Current() string
	SetCurrent(string)
}

type sessionStore struct {
	sessions []session.Session
	current  string
}

func NewSessionStore() SessionStore {
	return &sessionStore{}
}

func (s *sessionStore) Sessions() []session.Session {
	return cloneSessions(s.sessions)
}

func (s *sessionStore) SetSessions(sessions []session.Session) {
	s.sessions = cloneSessions(sessions)
}

func (s *sessionStore) Current() string {
	return s.current
}

func (s *sessionStore) SetCurrent(current string) {
	s.current = current
}

func cloneSessions(sessions []session.Session) []session.Session {
	if len(sessions) == 0 {
		return nil
	}
	dup := make([]session.Session, len(sessions))
	copy(dup, sessions)
	return dup
}
