package revocation

import (
	"context"
	"sync"
	"time"
)

// MemoryStore хранилище отозванных токенов в памяти процесса
// Записи удаляются лениво после истечения срока токена
type MemoryStore struct {
	mu           sync.Mutex
	revoked      map[string]time.Time
	timeProvider TimeProvider
}

// NewMemoryStore создает хранилище в памяти
func NewMemoryStore(timeProvider TimeProvider) *MemoryStore {
	return &MemoryStore{
		revoked:      make(map[string]time.Time),
		timeProvider: timeProvider,
	}
}

// Revoke отзывает токен до момента until
func (s *MemoryStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	if tokenID == "" {
		return ErrEmptyTokenID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.prune()
	if until.After(s.timeProvider.Now()) {
		s.revoked[tokenID] = until
	}
	return nil
}

// IsRevoked проверяет, отозван ли токен
func (s *MemoryStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !until.After(s.timeProvider.Now()) {
		delete(s.revoked, tokenID)
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) prune() {
	now := s.timeProvider.Now()
	for id, until := range s.revoked {
		if !until.After(now) {
			delete(s.revoked, id)
		}
	}
}
