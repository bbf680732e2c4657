// Package stats keeps world generation counters in Redis.
package stats

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	dmn "github.com/beka-birhanu/wumpus-api/domain"
	"github.com/beka-birhanu/wumpus-api/service/i"
	"github.com/beka-birhanu/wumpus-api/world"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "wumpus"

	// counter key format: <prefix>:stats:<counter>
	counterKeyFmt = "%s:stats:%s"

	worldsCounter       = "worlds"
	pitsCounter         = "pits"
	eligibleCounter     = "eligible_cells"
	monsterOnPitCounter = "monster_on_pit"
)

// RedisWorldStats accumulates world summaries in Redis counters.
type RedisWorldStats struct {
	client *redis.Client
	locker *redsync.Redsync
	prefix string
}

// NewRedisWorldStats creates a stats store whose keys start with prefix.
func NewRedisWorldStats(client *redis.Client, prefix string) (i.WorldStatsStore, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	if prefix == "" {
		prefix = defaultPrefix
	}

	store := &RedisWorldStats{
		client: client,
		prefix: prefix,
	}
	pool := goredis.NewPool(client)
	store.locker = redsync.New(pool)
	return store, nil
}

// Record adds the summary of one world to the counters in a single transaction.
func (s *RedisWorldStats) Record(ctx context.Context, summary world.Summary) error {
	pipe := s.client.TxPipeline()
	pipe.Incr(ctx, s.key(worldsCounter))
	pipe.IncrBy(ctx, s.key(pitsCounter), int64(summary.Pits))
	pipe.IncrBy(ctx, s.key(eligibleCounter), int64(summary.EligibleCells))
	if summary.MonsterOnPit {
		pipe.Incr(ctx, s.key(monsterOnPitCounter))
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Snapshot reads every counter at once. Missing counters read as zero.
func (s *RedisWorldStats) Snapshot(ctx context.Context) (*dmn.WorldStats, error) {
	values, err := s.client.MGet(ctx, s.keys()...).Result()
	if err != nil {
		return nil, err
	}

	counters := make([]int64, len(values))
	for idx, raw := range values {
		if raw == nil {
			continue
		}
		str, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected counter value %v", raw)
		}
		counters[idx], err = strconv.ParseInt(str, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing counter: %w", err)
		}
	}

	return &dmn.WorldStats{
		Worlds:        counters[0],
		Pits:          counters[1],
		EligibleCells: counters[2],
		MonsterOnPit:  counters[3],
	}, nil
}

// Reset deletes every counter. Concurrent resets across instances are
// serialized by a distributed lock.
func (s *RedisWorldStats) Reset(ctx context.Context) error {
	mutex := s.locker.NewMutex(s.key("reset_lock"))
	if err := mutex.LockContext(ctx); err != nil {
		return fmt.Errorf("obtaining reset lock: %w", err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	return s.client.Del(ctx, s.keys()...).Err()
}

// keys returns the counter keys in WorldStats field order.
func (s *RedisWorldStats) keys() []string {
	return []string{
		s.key(worldsCounter),
		s.key(pitsCounter),
		s.key(eligibleCounter),
		s.key(monsterOnPitCounter),
	}
}

func (s *RedisWorldStats) key(counter string) string {
	return fmt.Sprintf(counterKeyFmt, s.prefix, counter)
}
