package repository

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-classic/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-classic/internal/entity"
)

type MemorySessionRepository struct {
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	session   entity.Session
	expiresAt time.Time
}

// NewMemorySessionRepository keeps sessions in process memory with the same ttl semantics as redis.
func NewMemorySessionRepository(ttl time.Duration) *MemorySessionRepository {
	return &MemorySessionRepository{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]memoryEntry),
	}
}

func (that *MemorySessionRepository) CreateOrUpdate(_ context.Context, session *entity.Session) error {
	entry := memoryEntry{session: *session}
	if that.ttl > 0 {
		entry.expiresAt = that.now().Add(that.ttl)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[session.ID] = entry

	return nil
}

func (that *MemorySessionRepository) GetByID(_ context.Context, id string) (*entity.Session, error) {
	that.mu.RLock()
	entry, ok := that.sessions[id]
	that.mu.RUnlock()

	if !ok || that.expired(entry) {
		return nil, apperror.ErrSessionNotFound
	}

	session := entry.session

	return &session, nil
}

func (that *MemorySessionRepository) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.sessions[id]
	if !ok || that.expired(entry) {
		delete(that.sessions, id)
		return apperror.ErrSessionNotFound
	}

	delete(that.sessions, id)

	return nil
}

// Purge drops expired sessions and returns how many were removed.
func (that *MemorySessionRepository) Purge() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	purged := 0
	for id, entry := range that.sessions {
		if that.expired(entry) {
			delete(that.sessions, id)
			purged++
		}
	}

	return purged
}

// RunJanitor purges expired sessions every interval until ctx is done.
func (that *MemorySessionRepository) RunJanitor(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	log := logger.With("method", "RunJanitor")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if purged := that.Purge(); purged > 0 {
				log.Debug("expired sessions purged", "count", purged)
			}
		}
	}
}

func (that *MemorySessionRepository) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !that.now().Before(entry.expiresAt)
}
