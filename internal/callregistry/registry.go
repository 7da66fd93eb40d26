// Package callregistry tracks live calls in Redis so other processes can see
// which calls are in progress per account.
package callregistry

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"voice-bridge/internal/observability"

	"github.com/redis/go-redis/v9"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=registry.go -destination=mocks_test.go -package=callregistry

// EntryTTL bounds how long a call entry survives if Unregister never runs
const EntryTTL = 2 * time.Hour

// KV is the subset of Redis operations the registry needs
type KV interface {
	IsEnabled() bool
	HSet(ctx context.Context, key string, values map[string]interface{}) error
	Expire(ctx context.Context, key string, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
	ZAdd(ctx context.Context, key string, members ...redis.Z) error
	ZRem(ctx context.Context, key string, members ...interface{}) error
	ZRemRangeByScore(ctx context.Context, key, min, max string) error
	ZCard(ctx context.Context, key string) (int64, error)
}

// Entry describes one live call
type Entry struct {
	CallSid   string
	StreamSid string
	AccountID string
	AgentID   string
	StartedAt time.Time
}

type Registry struct {
	kv     KV
	logger *observability.Logger
	now    func() time.Time
}

// New returns a registry. A nil or disabled KV turns every operation into a
// no-op.
func New(kv KV, logger *observability.Logger) *Registry {
	return &Registry{kv: kv, logger: logger, now: time.Now}
}

func callKey(callSid string) string {
	return "call:" + callSid
}

func accountKey(accountID string) string {
	return "account_calls:" + accountID
}

func (r *Registry) enabled() bool {
	return r != nil && r.kv != nil && r.kv.IsEnabled()
}

// Register records a call as live and refreshes its TTL
func (r *Registry) Register(ctx context.Context, entry Entry) error {
	if !r.enabled() {
		return nil
	}

	key := callKey(entry.CallSid)
	if err := r.kv.HSet(ctx, key, map[string]interface{}{
		"call_sid":   entry.CallSid,
		"stream_sid": entry.StreamSid,
		"account_id": entry.AccountID,
		"agent_id":   entry.AgentID,
		"started_at": entry.StartedAt.UTC().Format(time.RFC3339),
	}); err != nil {
		return fmt.Errorf("failed to register call: %w", err)
	}
	if err := r.kv.Expire(ctx, key, EntryTTL); err != nil {
		return fmt.Errorf("failed to set call ttl: %w", err)
	}

	setKey := accountKey(entry.AccountID)
	if err := r.kv.ZAdd(ctx, setKey, redis.Z{
		Score:  float64(entry.StartedAt.Unix()),
		Member: entry.CallSid,
	}); err != nil {
		return fmt.Errorf("failed to index call: %w", err)
	}
	if err := r.kv.Expire(ctx, setKey, EntryTTL); err != nil {
		return fmt.Errorf("failed to set account index ttl: %w", err)
	}

	if live, err := r.count(ctx, setKey); err != nil {
		r.logger.Warn(ctx, fmt.Sprintf("failed to count live calls: %v", err))
	} else {
		r.logger.Metrics(ctx, observability.MetricField{Key: "account_live_calls", Value: live})
	}
	return nil
}

// Unregister removes a call
func (r *Registry) Unregister(ctx context.Context, callSid, accountID string) error {
	if !r.enabled() {
		return nil
	}
	if err := r.kv.Del(ctx, callKey(callSid)); err != nil {
		return fmt.Errorf("failed to unregister call: %w", err)
	}
	if accountID != "" {
		if err := r.kv.ZRem(ctx, accountKey(accountID), callSid); err != nil {
			return fmt.Errorf("failed to unindex call: %w", err)
		}
	}
	return nil
}

// count prunes entries older than EntryTTL and returns what is left
func (r *Registry) count(ctx context.Context, setKey string) (int64, error) {
	cutoff := r.now().Add(-EntryTTL).Unix()
	if err := r.kv.ZRemRangeByScore(ctx, setKey, "-inf", strconv.FormatInt(cutoff, 10)); err != nil {
		r.logger.Warn(ctx, fmt.Sprintf("failed to prune stale calls: %v", err))
	}

	count, err := r.kv.ZCard(ctx, setKey)
	if err != nil {
		return 0, fmt.Errorf("failed to count active calls: %w", err)
	}
	return count, nil
}
