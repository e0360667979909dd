// Package savegame suspends and resumes spiral sessions across process runs.
//
// Sessions are stored as YAML through gdata, one property per game ID under
// the "sessions" object. When the platform data directory is unavailable the
// store keeps sessions in memory only.
package savegame

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/spiral/internal/games/spiral/core"
)

// DefaultAppName is the gdata application name used by the CLI.
const DefaultAppName = "spiral"

const sessionsObject = "sessions"

// Session is a suspended game.
type Session struct {
	GameID  string    `yaml:"game_id"`
	Active  bool      `yaml:"active"`
	Width   int       `yaml:"width"`
	Height  int       `yaml:"height"`
	Seed    int64     `yaml:"seed"`
	SavedAt time.Time `yaml:"saved_at"`
	State   core.Save `yaml:"state"`
}

// Store reads and writes sessions.
type Store struct {
	mu     sync.Mutex
	data   *gdata.Manager // nil in memory-only mode
	memory map[string][]byte
}

// NewMemory returns a store that keeps sessions for the life of the process.
func NewMemory() *Store {
	return &Store{memory: make(map[string][]byte)}
}

// Open opens the store for appName. It never fails: if gdata cannot be
// opened the returned store works in memory only.
func Open(appName string) *Store {
	s := NewMemory()
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Warn("savegame: persistent storage unavailable, sessions kept in memory", "error", err)
		return s
	}
	s.data = m
	return s
}

// Persistent reports whether sessions survive the process.
func (s *Store) Persistent() bool {
	return s != nil && s.data != nil
}

// Save writes sess, replacing any earlier session for the same game.
func (s *Store) Save(sess Session) error {
	if sess.GameID == "" {
		return fmt.Errorf("savegame: empty game id")
	}
	if sess.SavedAt.IsZero() {
		sess.SavedAt = time.Now()
	}
	sess.Active = true

	data, err := yaml.Marshal(&sess)
	if err != nil {
		return fmt.Errorf("savegame: marshal session: %w", err)
	}
	if err := s.write(sess.GameID, data); err != nil {
		return err
	}
	log.Debug("session suspended", "game", sess.GameID, "score", sess.State.Score, "level", sess.State.Level)
	return nil
}

// Load returns the active session for gameID. ok is false when none exists.
func (s *Store) Load(gameID string) (sess Session, ok bool, err error) {
	data, found, err := s.read(gameID)
	if err != nil || !found {
		return Session{}, false, err
	}
	if err := yaml.Unmarshal(data, &sess); err != nil {
		return Session{}, false, fmt.Errorf("savegame: decode session %s: %w", gameID, err)
	}
	if !sess.Active {
		return Session{}, false, nil
	}
	return sess, true, nil
}

// Has reports whether an active session exists for gameID.
func (s *Store) Has(gameID string) bool {
	_, ok, err := s.Load(gameID)
	return ok && err == nil
}

// Clear drops the session for gameID. Clearing a missing session is not an error.
func (s *Store) Clear(gameID string) error {
	if !s.Has(gameID) {
		return nil
	}
	data, err := yaml.Marshal(&Session{GameID: gameID})
	if err != nil {
		return fmt.Errorf("savegame: marshal tombstone: %w", err)
	}
	return s.write(gameID, data)
}

func (s *Store) write(gameID string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		s.memory[gameID] = data
		return nil
	}
	if err := s.data.SaveObjectProp(sessionsObject, gameID, data); err != nil {
		return fmt.Errorf("savegame: write %s: %w", gameID, err)
	}
	return nil
}

func (s *Store) read(gameID string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		data, ok := s.memory[gameID]
		return data, ok, nil
	}
	if !s.data.ObjectPropExists(sessionsObject, gameID) {
		return nil, false, nil
	}
	data, err := s.data.LoadObjectProp(sessionsObject, gameID)
	if err != nil {
		return nil, false, fmt.Errorf("savegame: read %s: %w", gameID, err)
	}
	return data, true, nil
}
