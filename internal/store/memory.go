package store

import (
	"context"
	"sync"

	"linkhub/internal/models"
)

// MemStore keeps the document in memory. It backs tests and the dev mode
// where no remote bin is configured. Load and Save deep-copy, so callers
// see document-granularity snapshots exactly as with the remote store.
type MemStore struct {
	mu    sync.Mutex
	users map[string]*models.User

	saveErr error
	saves   int
}

func NewMemStore() *MemStore {
	return &MemStore{users: map[string]*models.User{}}
}

func (s *MemStore) Load(ctx context.Context) map[string]*models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneDoc(s.users)
}

func (s *MemStore) Save(ctx context.Context, users map[string]*models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.users = cloneDoc(users)
	s.saves++
	return nil
}

func (s *MemStore) Ping(ctx context.Context) error {
	return nil
}

// FailSaves makes every subsequent Save return err; pass nil to recover.
func (s *MemStore) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// SaveCount reports how many writes succeeded.
func (s *MemStore) SaveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func cloneDoc(users map[string]*models.User) map[string]*models.User {
	out := make(map[string]*models.User, len(users))
	for slug, u := range users {
		out[slug] = u.Clone()
	}
	return out
}
