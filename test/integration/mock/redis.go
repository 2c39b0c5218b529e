package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis starts (once per test binary) an in-process miniredis server and
// returns a client connected to it. The projection cache runs against it
// exactly as it would against a real Redis.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		mr, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisConn = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	})
	return redisConn
}

// ClearRedis flushes every key so cached projections never leak between
// scenarios.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
