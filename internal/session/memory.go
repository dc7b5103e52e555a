package session

import (
	"context"
	"sync"
	"time"
)

// MemoryRevocations is the default, process-local revocation set. Entries are
// dropped once the token they name would have expired, so the set stays
// bounded by the number of logouts within one token lifetime. Logout state is
// lost on restart; deployments that need it durable use RedisRevocations.
type MemoryRevocations struct {
	mu     sync.Mutex
	tokens map[string]time.Time // token -> expiry
}

func NewMemoryRevocations() *MemoryRevocations {
	return &MemoryRevocations{tokens: make(map[string]time.Time)}
}

func (m *MemoryRevocations) Add(_ context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// already expired, verification rejects it anyway
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prune()
	m.tokens[token] = time.Now().Add(ttl)
	return nil
}

func (m *MemoryRevocations) Contains(_ context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	exp, ok := m.tokens[token]
	if !ok {
		return false, nil
	}
	if time.Now().After(exp) {
		delete(m.tokens, token)
		return false, nil
	}
	return true, nil
}

// prune removes expired entries; callers hold mu.
func (m *MemoryRevocations) prune() {
	now := time.Now()
	for tok, exp := range m.tokens {
		if now.After(exp) {
			delete(m.tokens, tok)
		}
	}
}
