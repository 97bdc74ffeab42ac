package repository

import (
	"context"
	"sync"
	"time"

	"studio-site/internal/domain"
)

const (
	memoryProgressIdle = 30 * time.Minute
	memorySweepEvery   = time.Minute
)

type progressEntry struct {
	data      []byte
	updatedAt time.Time
}

// MemoryProgressRepository keeps progress in process memory, dropping entries idle for 30 minutes
type MemoryProgressRepository struct {
	entries   map[string]*progressEntry
	mu        sync.RWMutex
	now       func() time.Time
	lastSweep time.Time
}

var _ domain.ProgressStore = (*MemoryProgressRepository)(nil)

// NewMemoryProgressRepository creates an empty in-memory progress store
func NewMemoryProgressRepository() *MemoryProgressRepository {
	return &MemoryProgressRepository{
		entries: make(map[string]*progressEntry),
		now:     time.Now,
	}
}

// Load returns the stored progress, or ErrProgressNotFound if missing or expired
func (s *MemoryProgressRepository) Load(_ context.Context, sessionID string) ([]byte, error) {
	s.mu.RLock()
	entry, exists := s.entries[sessionID]
	s.mu.RUnlock()

	if !exists {
		return nil, domain.ErrProgressNotFound
	}

	if s.now().Sub(entry.updatedAt) > memoryProgressIdle {
		s.mu.Lock()
		delete(s.entries, sessionID)
		s.mu.Unlock()
		return nil, domain.ErrProgressNotFound
	}

	return append([]byte(nil), entry.data...), nil
}

// Save stores a copy of data and refreshes the idle timer. At most once a
// minute it also drops every expired entry so abandoned sessions don't pile up.
func (s *MemoryProgressRepository) Save(_ context.Context, sessionID string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= memorySweepEvery {
		s.sweepLocked(now)
	}

	s.entries[sessionID] = &progressEntry{
		data:      append([]byte(nil), data...),
		updatedAt: now,
	}
	return nil
}

// caller holds s.mu
func (s *MemoryProgressRepository) sweepLocked(now time.Time) {
	for id, entry := range s.entries {
		if now.Sub(entry.updatedAt) > memoryProgressIdle {
			delete(s.entries, id)
		}
	}
	s.lastSweep = now
}

// Clear removes the session's progress
func (s *MemoryProgressRepository) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}
