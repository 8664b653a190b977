package main

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// session owns one user's append-only calculation history. Records are only
// ever appended, never merged, mutated, or removed.
type session struct {
	Token     string
	CreatedAt time.Time
	history   []historyRecord
}

// sessionStore keeps all live sessions in memory for the process lifetime.
// The mutex serializes access across concurrent HTTP requests; within one
// session there is a single logical caller.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*session)}
}

// create mints a new anonymous session with a uuid token.
func (s *sessionStore) create() *session {
	sess := &session{
		Token:     uuid.New().String(),
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()
	return sess
}

// exists reports whether a token names a live session.
func (s *sessionStore) exists(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[token]
	return ok
}

// appendRecord appends one history record to the session's log.
// Returns false if the token doesn't name a live session.
func (s *sessionStore) appendRecord(token string, r historyRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return false
	}
	sess.history = append(sess.history, r)
	return true
}

// records returns a copy of the session's history in insertion order.
func (s *sessionStore) records(token string) []historyRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil
	}
	out := make([]historyRecord, len(sess.history))
	copy(out, sess.history)
	return out
}

/* ─── Handlers & middleware ──────────────────────────────────────────── */

// createSession mints a session token the client presents on later calls.
// POST /api/session (public — this is how a session begins).
func (h *Handler) createSession(c *gin.Context) {
	sess := h.sessions.create()
	c.JSON(http.StatusCreated, gin.H{
		"token":      sess.Token,
		"created_at": DateTime{sess.CreatedAt},
	})
}

// sessionMiddleware validates the Bearer session token and sets it on the
// context for handlers downstream.
func (h *Handler) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apiError(c, http.StatusUnauthorized, "missing or invalid authorization header")
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		if !h.sessions.exists(token) {
			apiError(c, http.StatusUnauthorized, "invalid session token")
			c.Abort()
			return
		}

		c.Set("session_token", token)
		c.Next()
	}
}

// getHistory returns the session's calculation history in call order.
// GET /api/history. Returns an empty array (not null) when nothing has been
// calculated yet.
func (h *Handler) getHistory(c *gin.Context) {
	token := c.GetString("session_token")

	records := h.sessions.records(token)
	if records == nil {
		records = []historyRecord{}
	}

	c.JSON(http.StatusOK, records)
}
