package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileStore persists the session as a JSON document on disk so it survives
// restarts, the way a browser keeps it in durable storage.
type fileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a Store backed by the JSON file at path. The parent
// directory is created on first write.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) Get() (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *fileStore) Set(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(sess)
}

func (s *fileStore) SetAccessToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.read()
	if err != nil {
		return err
	}
	sess.AccessToken = token
	return s.write(sess)
}

func (s *fileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session file: %w", err)
	}
	return nil
}

func (s *fileStore) read() (Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, nil
		}
		return Session{}, fmt.Errorf("failed to read session file: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("failed to decode session file: %w", err)
	}
	return sess, nil
}

func (s *fileStore) write(sess Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	// Session files hold credentials, keep them owner-only.
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}
