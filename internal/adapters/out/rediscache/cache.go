// Package rediscache keeps the invoice numbers issued per business day in
// Redis for the day-end missing-invoice check.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "fulfillment:issued:"
	genPrefix = "fulfillment:issued:gen:"
)

// DefaultTTL bounds how long an entry lives without an invalidation.
const DefaultTTL = 10 * time.Minute

// genTTL keeps a day's generation well past any list entry read under it.
const genTTL = 7 * 24 * time.Hour

// setIfGeneration writes KEYS[1] only while KEYS[2] still holds ARGV[1]. A
// missing generation key counts as 0.
var setIfGeneration = redis.NewScript(`
local gen = redis.call('GET', KEYS[2])
if not gen then gen = '0' end
if gen ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

// Connect opens a client and pings it.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return rdb, nil
}

// IssuedInvoiceCache stores one JSON array per day next to a generation
// counter. Days are keyed by their calendar date in the location of the time
// passed in, so callers must use the business time zone consistently.
type IssuedInvoiceCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewIssuedInvoiceCache uses DefaultTTL when ttl is not positive.
func NewIssuedInvoiceCache(client redis.Cmdable, ttl time.Duration) *IssuedInvoiceCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &IssuedInvoiceCache{client: client, ttl: ttl}
}

func (c *IssuedInvoiceCache) Get(ctx context.Context, day time.Time) ([]string, int64, bool, error) {
	listKey, genKey := key(day), generationKey(day)

	values, err := c.client.MGet(ctx, listKey, genKey).Result()
	if err != nil {
		return nil, 0, false, fmt.Errorf("redis mget %s: %w", listKey, err)
	}

	gen, err := parseGeneration(values[1])
	if err != nil {
		return nil, 0, false, fmt.Errorf("redis generation %s: %w", genKey, err)
	}

	raw, ok := values[0].(string)
	if !ok {
		return nil, gen, false, nil
	}

	numbers := make([]string, 0)
	if err = json.Unmarshal([]byte(raw), &numbers); err != nil {
		// A corrupt entry is a miss; the caller rebuilds it.
		_ = c.client.Del(ctx, listKey).Err()
		return nil, gen, false, nil
	}
	return numbers, gen, true, nil
}

func (c *IssuedInvoiceCache) Set(ctx context.Context, day time.Time, gen int64, numbers []string) (bool, error) {
	if numbers == nil {
		numbers = make([]string, 0)
	}
	raw, err := json.Marshal(numbers)
	if err != nil {
		return false, err
	}

	stored, err := setIfGeneration.Run(ctx, c.client,
		[]string{key(day), generationKey(day)},
		strconv.FormatInt(gen, 10), raw, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("redis set %s: %w", key(day), err)
	}
	return stored == 1, nil
}

// Invalidate advances the day's generation and drops its list in one
// transaction.
func (c *IssuedInvoiceCache) Invalidate(ctx context.Context, day time.Time) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(day))
		pipe.Expire(ctx, generationKey(day), genTTL)
		pipe.Del(ctx, key(day))
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis invalidate %s: %w", key(day), err)
	}
	return nil
}

func parseGeneration(v any) (int64, error) {
	if v == nil {
		return 0, nil
	}
	s, ok := v.(string)
	if !ok {
		return 0, errors.New("unexpected generation type")
	}
	return strconv.ParseInt(s, 10, 64)
}

func key(day time.Time) string {
	return keyPrefix + day.Format(time.DateOnly)
}

func generationKey(day time.Time) string {
	return genPrefix + day.Format(time.DateOnly)
}
