package session

import "sync"

// memoryStore keeps the session in process memory only.
type memoryStore struct {
	mu      sync.RWMutex
	current Session
}

// NewMemoryStore returns a Store whose contents do not survive the process.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Get() (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, nil
}

func (s *memoryStore) Set(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = sess
	return nil
}

func (s *memoryStore) SetAccessToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.AccessToken = token
	return nil
}

func (s *memoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Session{}
	return nil
}
