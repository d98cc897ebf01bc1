// Package session holds the console's authentication state and keeps it
// on disk so a restart picks up where the last run left off.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/Spok95/university-records-console/internal/models"
	"go.uber.org/zap"
)

type Store struct {
	mu   sync.Mutex
	path string
	log  *zap.Logger
	cur  models.Session
}

// Open rehydrates the session from path. A missing file is the normal
// first-run case and yields the zero session; a corrupt file is logged
// and treated the same way.
func Open(path string, log *zap.Logger) *Store {
	s := &Store{path: path, log: log}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s
	case err != nil:
		log.Warn("session file unreadable, starting clean", zap.String("path", path), zap.Error(err))
		return s
	}
	if err := json.Unmarshal(data, &s.cur); err != nil {
		log.Warn("session file corrupt, starting clean", zap.String("path", path), zap.Error(err))
		s.cur = models.Session{}
	}
	return s
}

// Snapshot returns a copy of the current session.
func (s *Store) Snapshot() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Each setter updates exactly one field and persists the whole record.
// No setter checks cross-field consistency; login/logout call sites set
// the token before flipping the authenticated flag.

func (s *Store) SetAuthenticated(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur.Authenticated = v
	s.persist()
}

func (s *Store) SetEmail(email *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur.Email = email
	s.persist()
}

func (s *Store) SetPassword(password *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur.Password = password
	s.persist()
}

func (s *Store) SetToken(token *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur.Token = token
	s.persist()
}

// Clear resets every field, as logout does.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = models.Session{}
	s.persist()
}

// persist writes the whole session under s.mu. A write failure keeps the
// in-memory state authoritative for this process; only the restart
// guarantee degrades.
func (s *Store) persist() {
	data, err := json.Marshal(s.cur)
	if err != nil {
		s.log.Error("marshal session", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		s.log.Error("persist session", zap.String("path", s.path), zap.Error(err))
	}
}
