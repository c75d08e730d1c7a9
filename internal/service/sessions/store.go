package sessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	KindBooking     = "booking"
	KindPublication = "publication"
)

type entry[T any] struct {
	value      T
	lastAccess time.Time
}

// Store реестр сессий одного вида. Хранит только ссылки:
// состояние каждой сессии защищено ее собственным мьютексом
type Store[T any] struct {
	kind    string
	ttl     time.Duration
	now     func() time.Time
	metrics Metrics
	logger  Logger

	mu      sync.RWMutex
	entries map[string]*entry[T]
}

// NewStore создает реестр; ttl <= 0 отключает истечение по простою
func NewStore[T any](kind string, ttl time.Duration, logger Logger, metrics Metrics) *Store[T] {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Store[T]{
		kind:    kind,
		ttl:     ttl,
		now:     time.Now,
		metrics: metrics,
		logger:  logger,
		entries: make(map[string]*entry[T]),
	}
}

// Create выдает новый UUID и сохраняет сессию, построенную build
func (s *Store[T]) Create(build func(id string) T) T {
	id := uuid.NewString()
	value := build(id)

	s.mu.Lock()
	s.entries[id] = &entry[T]{value: value, lastAccess: s.now()}
	count := len(s.entries)
	s.mu.Unlock()

	s.metrics.SetActiveSessions(s.kind, count)
	s.logger.Debug("Sessions: created %s session %s, %d active", s.kind, id, count)
	return value
}

// Get возвращает сессию и продлевает ее жизнь
func (s *Store[T]) Get(id string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s %s", ErrSessionNotFound, s.kind, id)
	}
	e.lastAccess = s.now()
	return e.value, nil
}

// Delete удаляет сессию; повторное удаление - ErrSessionNotFound
func (s *Store[T]) Delete(id string) error {
	s.mu.Lock()
	if _, ok := s.entries[id]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s %s", ErrSessionNotFound, s.kind, id)
	}
	delete(s.entries, id)
	count := len(s.entries)
	s.mu.Unlock()

	s.metrics.SetActiveSessions(s.kind, count)
	s.logger.Debug("Sessions: deleted %s session %s, %d active", s.kind, id, count)
	return nil
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Sweep удаляет сессии, простаивающие дольше ttl, и возвращает их число
func (s *Store[T]) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	removed := 0
	for id, e := range s.entries {
		if now.Sub(e.lastAccess) > s.ttl {
			delete(s.entries, id)
			removed++
		}
	}
	count := len(s.entries)
	s.mu.Unlock()

	s.metrics.SetActiveSessions(s.kind, count)
	return removed
}

// RunJanitor периодически вызывает Sweep, пока не отменен ctx
func (s *Store[T]) RunJanitor(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := s.Sweep(now); removed > 0 {
				s.logger.Info("Sessions: expired %d %s sessions, %d active", removed, s.kind, s.Len())
			}
		}
	}
}
