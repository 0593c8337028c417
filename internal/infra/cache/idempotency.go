package cache

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "idempotency:"
	inFlightValue = "processing"
	// An in-flight marker outlives no request by much.
	inFlightTTL = 2 * time.Minute
)

var ErrInFlight = errors.New("request with this idempotency key is in flight")

// StoredResponse is a completed response kept for replay.
type StoredResponse struct {
	StatusCode int             `json:"status_code"`
	Body       json.RawMessage `json:"body"`
	Headers    http.Header     `json:"headers"`
}

type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Key namespaces a client key by caller and by the request it was sent with,
// so one key reused on another endpoint or resource never replays a foreign
// response.
func Key(scope, method, path, key string) string {
	return keyPrefix + scope + ":" + method + " " + path + ":" + key
}

// Lookup returns nil without error when nothing is stored under key.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (*StoredResponse, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	if string(data) == inFlightValue {
		return nil, ErrInFlight
	}

	var stored StoredResponse
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// Reserve claims key for the current request. It reports false when another
// request already holds or completed it.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string) (bool, error) {
	return s.client.SetNX(ctx, key, inFlightValue, inFlightTTL).Result()
}

func (s *IdempotencyStore) Complete(ctx context.Context, key string, resp *StoredResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
