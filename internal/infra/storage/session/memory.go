package session

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/villa-booking-front/internal/domain"
)

type memoryEntry struct {
	session   *domain.Session
	expiresAt time.Time
}

// MemoryRepository хранит сессии в памяти процесса.
// Наружу всегда отдаются глубокие копии.
type MemoryRepository struct {
	mu    sync.Mutex
	items map[string]memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryRepository создает новый экземпляр in-memory репозитория сессий
func NewMemoryRepository(ttl time.Duration) *MemoryRepository {
	return &MemoryRepository{
		items: make(map[string]memoryEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get получает сессию по ID
func (r *MemoryRepository) Get(_ context.Context, id string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.lookup(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return entry.session.Clone(), nil
}

// Update применяет fn к копии сессии и сохраняет результат.
// Мьютекс удерживается на всё время fn, поэтому fn не должна ходить в сеть.
func (r *MemoryRepository) Update(ctx context.Context, id string, fn UpdateFunc) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	var working *domain.Session
	if entry, ok := r.lookup(id); ok {
		working = entry.session.Clone()
	} else {
		working = domain.NewSession(id, now)
	}

	if err := fn(working); err != nil {
		return nil, err
	}
	working.UpdatedAt = now

	r.items[id] = memoryEntry{session: working.Clone(), expiresAt: r.expiry(now)}
	return working, nil
}

// Delete удаляет сессию
func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

// Sweep удаляет истекшие сессии и возвращает их количество
func (r *MemoryRepository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, entry := range r.items {
		if r.expired(entry, now) {
			delete(r.items, id)
			removed++
		}
	}
	return removed
}

// RunJanitor периодически вызывает Sweep до отмены контекста
func (r *MemoryRepository) RunJanitor(ctx context.Context, interval time.Duration, log Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := r.Sweep(); removed > 0 {
				log.Info("Session janitor: removed %d expired sessions", removed)
			}
		}
	}
}

// lookup возвращает живую запись; истекшая удаляется. Вызывается под мьютексом.
func (r *MemoryRepository) lookup(id string) (memoryEntry, bool) {
	entry, ok := r.items[id]
	if !ok {
		return memoryEntry{}, false
	}
	if r.expired(entry, r.now()) {
		delete(r.items, id)
		return memoryEntry{}, false
	}
	return entry, true
}

func (r *MemoryRepository) expiry(now time.Time) time.Time {
	if r.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(r.ttl)
}

func (r *MemoryRepository) expired(entry memoryEntry, now time.Time) bool {
	return !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt)
}
