package prefs

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig represents the configuration for the Redis variable store.
type RedisConfig struct {
	ConnectionURL  string        `env:"PREFS_REDIS_URL,required" envDefault:"redis://localhost:6379/0"` // ConnectionURL is the URL of the database. It should be in the format "redis://:password@localhost:6379/0"
	RetryAttempts  int           `env:"PREFS_REDIS_RETRY_ATTEMPTS" envDefault:"3"`                      // RetryAttempts is the number of retry attempts to connect to the database.
	RetryInterval  time.Duration `env:"PREFS_REDIS_RETRY_INTERVAL" envDefault:"5s"`                     // RetryInterval is the interval between retry attempts.
	ConnectTimeout time.Duration `env:"PREFS_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`                   // ConnectTimeout is the timeout for connecting to the database.
	KeyPrefix      string        `env:"PREFS_REDIS_KEY_PREFIX" envDefault:""`                           // KeyPrefix namespaces all variable keys.
}

// Redis stores variables as one hash per owner: "user:<id>:vars" and
// "guild:<id>:vars", field = variable name.
type Redis struct {
	client redis.UniversalClient
	prefix string
}

// NewRedis creates a Redis variable store over an existing client.
func NewRedis(client redis.UniversalClient, keyPrefix string) *Redis {
	return &Redis{client: client, prefix: keyPrefix}
}

// ConnectRedis establishes a connection to a redis server, retrying per the
// config before giving up.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	for range cfg.RetryAttempts {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}

// RedisHealthcheck returns a function that checks the health of the redis
// connection.
func RedisHealthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}

// UserVar implements the VarStore interface.
func (r *Redis) UserVar(ctx context.Context, name, userID string) (string, error) {
	return r.get(ctx, r.prefix+"user:"+userID+":vars", name)
}

// GuildVar implements the VarStore interface.
func (r *Redis) GuildVar(ctx context.Context, name, guildID string) (string, error) {
	return r.get(ctx, r.prefix+"guild:"+guildID+":vars", name)
}

func (r *Redis) get(ctx context.Context, key, field string) (string, error) {
	value, err := r.client.HGet(ctx, key, field).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}
