package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	portsrepo "github.com/kbouri/performup-platform-sub000/internal/core/ports/repositories"
)

const (
	balanceKeyPrefix    = "ledger:balance:"
	generationKeyPrefix = "ledger:balance-gen:"

	// generationTTL only needs to outlive the slowest balance read.
	generationTTL = 24 * time.Hour
)

// setIfGeneration writes KEYS[1] only while KEYS[2] still holds ARGV[2].
// ARGV[3] is the TTL in milliseconds, 0 for none.
var setIfGeneration = redis.NewScript(`
local gen = redis.call('GET', KEYS[2]) or '0'
if gen ~= ARGV[2] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[1])
end
return 1
`)

// RedisBalanceCache keeps derived balances in Redis with a TTL.
type RedisBalanceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisBalanceCache creates a cache. ttl <= 0 stores keys without expiry.
func NewRedisBalanceCache(client *redis.Client, ttl time.Duration) *RedisBalanceCache {
	return &RedisBalanceCache{client: client, ttl: ttl}
}

var _ portsrepo.BalanceCache = (*RedisBalanceCache)(nil)

func balanceKey(accountID string) string {
	return balanceKeyPrefix + accountID
}

func generationKey(accountID string) string {
	return generationKeyPrefix + accountID
}

func (c *RedisBalanceCache) GetBalance(ctx context.Context, accountID string) (int64, bool, error) {
	raw, err := c.client.Get(ctx, balanceKey(accountID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("cache: get balance %s: %w", accountID, err)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("cache: corrupt balance for %s: %w", accountID, err)
	}
	return v, true, nil
}

// Generation returns 0 for an account that was never invalidated.
func (c *RedisBalanceCache) Generation(ctx context.Context, accountID string) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(accountID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cache: get generation %s: %w", accountID, err)
	}
	return gen, nil
}

func (c *RedisBalanceCache) SetBalance(ctx context.Context, accountID string, balance int64, generation int64) (bool, error) {
	keys := []string{balanceKey(accountID), generationKey(accountID)}
	stored, err := setIfGeneration.Run(ctx, c.client, keys,
		strconv.FormatInt(balance, 10), strconv.FormatInt(generation, 10), c.ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("cache: set balance %s: %w", accountID, err)
	}
	return stored == 1, nil
}

// Invalidate drops the cached balances and bumps their generations in one MULTI block.
func (c *RedisBalanceCache) Invalidate(ctx context.Context, accountIDs ...string) error {
	if len(accountIDs) == 0 {
		return nil
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range accountIDs {
			pipe.Incr(ctx, generationKey(id))
			pipe.Expire(ctx, generationKey(id), generationTTL)
			pipe.Del(ctx, balanceKey(id))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache: invalidate balances: %w", err)
	}
	return nil
}
