package crypto

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const csrfTokenBytes = 32

// TokenStore - хранилище CSRF-токенов по ключу сессии
type TokenStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// CSRFManager выдает и проверяет одноразовые токены, привязанные к сессии.
// Успешная проверка ротирует токен: повторная отправка того же значения не пройдет
type CSRFManager struct {
	store    TokenStore
	lifetime time.Duration
}

func NewCSRFManager(store TokenStore, lifetime time.Duration) *CSRFManager {
	return &CSRFManager{store: store, lifetime: lifetime}
}

func csrfKey(sessionID string) string {
	return "csrf:" + sessionID
}

// Issue возвращает действующий токен сессии, создавая новый при отсутствии
func (m *CSRFManager) Issue(ctx context.Context, sessionID string) (string, error) {
	token, err := m.store.Get(ctx, csrfKey(sessionID))
	if err != nil {
		return "", fmt.Errorf("failed to load csrf token: %w", err)
	}
	if token != "" {
		return token, nil
	}
	return m.rotate(ctx, sessionID)
}

// Validate сверяет токен за константное время. Совпадение ротирует токен
func (m *CSRFManager) Validate(ctx context.Context, sessionID, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	stored, err := m.store.Get(ctx, csrfKey(sessionID))
	if err != nil {
		return false, fmt.Errorf("failed to load csrf token: %w", err)
	}
	if stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(token)) != 1 {
		return false, nil
	}

	if _, err := m.rotate(ctx, sessionID); err != nil {
		return false, err
	}
	return true, nil
}

func (m *CSRFManager) rotate(ctx context.Context, sessionID string) (string, error) {
	raw := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate csrf token: %w", err)
	}
	token := hex.EncodeToString(raw)

	if err := m.store.Set(ctx, csrfKey(sessionID), token, m.lifetime); err != nil {
		return "", fmt.Errorf("failed to store csrf token: %w", err)
	}
	return token, nil
}

// RedisTokenStore - реализация TokenStore поверх Redis
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisTokenStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}
