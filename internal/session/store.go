package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	sessionFileName = "session.json"
	filePerms       = 0600 // Owner read/write only
)

// sessionData is the structure of session.json.
type sessionData struct {
	Version        int    `json:"version"`
	PrimaryAccount string `json:"primary_account,omitempty"`
	SubAccount     string `json:"sub_account,omitempty"`
}

// Store persists session state so a created sub-account survives restarts.
// The provider remains the source of truth; this is only a local cache.
type Store struct {
	mu       sync.Mutex
	filePath string
}

// NewStore creates a session store rooted at dataDir.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{filePath: filepath.Join(dataDir, sessionFileName)}, nil
}

// Load restores a session from disk. A missing file yields an empty session,
// not an error; a corrupt file is an error so it is never silently dropped.
func (st *Store) Load() (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	data, err := os.ReadFile(st.filePath)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var sd sessionData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}

	s := New()
	s.SetPrimaryAccount(sd.PrimaryAccount)
	if sd.SubAccount != "" {
		s.SetSubAccount(sd.SubAccount)
	}
	return s, nil
}

// Save writes the session to disk with secure permissions.
func (st *Store) Save(s *Session) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	sd := sessionData{
		Version:        1,
		PrimaryAccount: s.PrimaryAccount(),
		SubAccount:     s.SubAccount(),
	}

	data, err := json.MarshalIndent(sd, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	// Write to temp file first, then rename (atomic)
	tmpPath := st.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, filePerms); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	if err := os.Rename(tmpPath, st.filePath); err != nil {
		_ = os.Remove(tmpPath) // Best-effort cleanup of temp file
		return fmt.Errorf("failed to save session file: %w", err)
	}

	return nil
}

// Clear removes the persisted session, if any.
func (st *Store) Clear() error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if err := os.Remove(st.filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
