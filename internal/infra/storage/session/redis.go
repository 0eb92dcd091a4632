package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/villa-booking-front/internal/domain"
)

const (
	keyPrefix         = "villa:session:"
	defaultMaxRetries = 5
)

// RedisRepository хранит сессии в Redis в виде JSON со скользящим TTL
type RedisRepository struct {
	client     *redis.Client
	ttl        time.Duration
	maxRetries int
	now        func() time.Time
	logger     Logger
}

// NewRedisRepository создает новый экземпляр Redis репозитория сессий
func NewRedisRepository(client *redis.Client, ttl time.Duration, logger Logger) *RedisRepository {
	return &RedisRepository{
		client:     client,
		ttl:        ttl,
		maxRetries: defaultMaxRetries,
		now:        time.Now,
		logger:     logger,
	}
}

// Get получает сессию по ID и продлевает её TTL
func (r *RedisRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	key := sessionKey(id)

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - redis get: %v", ErrStorage, err)
	}

	if r.ttl > 0 {
		if err := r.client.Expire(ctx, key, r.ttl).Err(); err != nil {
			r.logger.Warn("Session %s: failed to refresh ttl: %v", id, err)
		}
	}

	return decode(data)
}

// Update выполняет read-modify-write в оптимистичной транзакции WATCH/MULTI.
// При конкурентной записи попытка повторяется до maxRetries раз.
func (r *RedisRepository) Update(ctx context.Context, id string, fn UpdateFunc) (*domain.Session, error) {
	key := sessionKey(id)

	var result *domain.Session
	txf := func(tx *redis.Tx) error {
		now := r.now()

		working, err := r.load(ctx, tx, id)
		if err != nil {
			return err
		}
		if working == nil {
			working = domain.NewSession(id, now)
		}

		if err := fn(working); err != nil {
			return &callbackError{err: err}
		}
		working.UpdatedAt = now

		data, err := json.Marshal(working)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEncode, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.ttl)
			return nil
		})
		if err != nil {
			return err
		}

		result = working
		return nil
	}

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			r.logger.Warn("Session %s: concurrent update, retry %d", id, attempt+1)
			continue
		}

		var cbErr *callbackError
		if errors.As(err, &cbErr) {
			return nil, cbErr.err
		}
		if errors.Is(err, ErrEncode) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: Update - %v", ErrStorage, err)
	}

	return nil, fmt.Errorf("%w: session %s after %d attempts", ErrConflict, id, r.maxRetries)
}

// Delete удаляет сессию
func (r *RedisRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - redis del: %v", ErrStorage, err)
	}
	return nil
}

// load читает сессию внутри транзакции. Отсутствие ключа не ошибка.
func (r *RedisRepository) load(ctx context.Context, tx *redis.Tx, id string) (*domain.Session, error) {
	data, err := tx.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s, err := decode(data)
	if err != nil {
		// Повреждённая запись заменяется новой сессией
		r.logger.Error("Session %s: %v, starting over", id, err)
		return nil, nil
	}
	return s, nil
}

// callbackError отделяет ошибки UpdateFunc от ошибок Redis
type callbackError struct {
	err error
}

func (e *callbackError) Error() string { return e.err.Error() }
func (e *callbackError) Unwrap() error { return e.err }

func decode(data []byte) (*domain.Session, error) {
	var s domain.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &s, nil
}

func sessionKey(id string) string {
	return keyPrefix + id
}
