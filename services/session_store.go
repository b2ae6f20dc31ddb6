package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// VisitorSession holds one visitor's in-progress forms. It lives only in
// process memory.
type VisitorSession struct {
	Wizard  *BookingWizard
	Contact *ContactFormState

	lastSeen time.Time
}

// SessionStore maps cookie tokens to visitor sessions. Idle sessions expire
// after ttl and are swept when new ones are created.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*VisitorSession
	ttl      time.Duration
	now      func() time.Time

	newWizard func() *BookingWizard
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions:  make(map[string]*VisitorSession),
		ttl:       ttl,
		now:       time.Now,
		newWizard: func() *BookingWizard { return NewBookingWizard() },
	}
}

// Get returns the session for token, or a new session under a new token
// when token is unknown or expired. The returned token must be sent back to
// the visitor.
func (s *SessionStore) Get(token string) (string, *VisitorSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if sess, ok := s.sessions[token]; ok && !s.expired(sess, now) {
		sess.lastSeen = now
		return token, sess
	}

	s.sweep(now)
	token = uuid.NewString()
	sess := &VisitorSession{
		Wizard:   s.newWizard(),
		Contact:  NewContactFormState(),
		lastSeen: now,
	}
	s.sessions[token] = sess
	return token, sess
}

// Delete forgets a session.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) expired(sess *VisitorSession, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.lastSeen) > s.ttl
}

func (s *SessionStore) sweep(now time.Time) {
	for token, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, token)
		}
	}
}
