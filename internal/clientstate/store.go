package clientstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/emoorm/storefront/pkg/logger"
	"github.com/emoorm/storefront/pkg/redis"
)

// Slots for the per-device state this service persists.
const (
	SlotCart          = "cart"
	SlotWishlist      = "wishlist"
	SlotSearchHistory = "search_history"
	SlotBanners       = "banners"
)

// KV is the narrow storage surface the device store needs. pkg/redis.Client
// satisfies it; tests use the in-memory fake.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	DeviceKey(deviceID, slot string) string
}

// Store persists device-scoped client state as JSON. Payloads that fail to
// decode are logged and treated as empty; the device starts fresh rather than
// wedging.
type Store struct {
	kv   KV
	logg *logger.Logger
}

func NewStore(kv KV, logg *logger.Logger) (*Store, error) {
	if kv == nil {
		return nil, fmt.Errorf("kv store is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Store{kv: kv, logg: logg}, nil
}

// Load decodes the slot's JSON into dest. A missing key or malformed payload
// leaves dest untouched and returns nil.
func (s *Store) Load(ctx context.Context, deviceID, slot string, dest any) error {
	key := s.kv.DeviceKey(deviceID, slot)
	payload, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("loading %s state: %w", slot, err)
	}

	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{"device_id": deviceID, "slot": slot})
		s.logg.Warn(ctx, "discarding malformed device state")
		return nil
	}
	return nil
}

// Save writes the slot's JSON synchronously. Every mutation goes through here
// before it is acknowledged.
func (s *Store) Save(ctx context.Context, deviceID, slot string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s state: %w", slot, err)
	}
	key := s.kv.DeviceKey(deviceID, slot)
	if err := s.kv.Set(ctx, key, string(payload), 0); err != nil {
		return fmt.Errorf("saving %s state: %w", slot, err)
	}
	return nil
}

// Clear removes the slot entirely.
func (s *Store) Clear(ctx context.Context, deviceID, slot string) error {
	key := s.kv.DeviceKey(deviceID, slot)
	if err := s.kv.Del(ctx, key); err != nil {
		return fmt.Errorf("clearing %s state: %w", slot, err)
	}
	return nil
}
