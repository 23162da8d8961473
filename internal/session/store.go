package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStore persists the opaque session token.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// StoreFor picks the store the "remember me" flag asks for: a durable
// file store when set, a process-scoped memory store otherwise.
func StoreFor(remember bool, path string) TokenStore {
	if remember {
		return &FileStore{Path: path}
	}
	return &MemStore{}
}

// FileStore keeps the token in a file readable only by the owner.
type FileStore struct {
	Path string
}

func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return fmt.Errorf("token dir: %w", err)
	}
	if err := os.WriteFile(s.Path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (s *FileStore) Load() (string, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// MemStore holds the token for the current process only.
type MemStore struct {
	mu    sync.Mutex
	token string
}

func (s *MemStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", fmt.Errorf("no session token stored")
	}
	return s.token, nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
