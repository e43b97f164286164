package prefs

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoConfig represents the configuration for the Mongo variable store.
type MongoConfig struct {
	ConnectionURL   string        `env:"PREFS_MONGODB_URL,required"`                         // ConnectionURL is the URL of the database.
	ConnectTimeout  time.Duration `env:"PREFS_MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`     // ConnectTimeout is the timeout for connecting to the database.
	MaxPoolSize     uint64        `env:"PREFS_MONGODB_MAX_POOL_SIZE" envDefault:"100"`       // MaxPoolSize is the maximum number of connections in the pool.
	MinPoolSize     uint64        `env:"PREFS_MONGODB_MIN_POOL_SIZE" envDefault:"1"`         // MinPoolSize is the minimum number of connections in the pool.
	MaxConnIdleTime time.Duration `env:"PREFS_MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"` // MaxConnIdleTime is the maximum idle time of a pooled connection.
	RetryAttempts   int           `env:"PREFS_MONGODB_RETRY_ATTEMPTS" envDefault:"3"`        // RetryAttempts is the number of retry attempts to connect.
	RetryInterval   time.Duration `env:"PREFS_MONGODB_RETRY_INTERVAL" envDefault:"5s"`       // RetryInterval is the interval between retry attempts.
}

// Mongo stores variables in the user_vars and guild_vars collections, one
// document per variable: {user_id|guild_id, name, value}.
type Mongo struct {
	db *mongo.Database
}

// NewMongo creates a Mongo variable store over an existing database handle.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

// ConnectMongo establishes a client and returns a handle on the given
// database, retrying per the config before giving up.
func ConnectMongo(ctx context.Context, cfg MongoConfig, database string) (*mongo.Database, error) {
	for range cfg.RetryAttempts {
		client, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.ConnectionURL).
				SetConnectTimeout(cfg.ConnectTimeout).
				SetMaxPoolSize(cfg.MaxPoolSize).
				SetMinPoolSize(cfg.MinPoolSize).
				SetMaxConnIdleTime(cfg.MaxConnIdleTime),
		)
		if err == nil {
			if err := client.Ping(ctx, nil); err == nil {
				return client.Database(database), nil
			}
			_ = client.Disconnect(ctx)
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrFailedToConnectToMongo, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrFailedToConnectToMongo
}

// UserVar implements the VarStore interface.
func (m *Mongo) UserVar(ctx context.Context, name, userID string) (string, error) {
	return m.get(ctx, "user_vars", bson.M{"user_id": userID, "name": name})
}

// GuildVar implements the VarStore interface.
func (m *Mongo) GuildVar(ctx context.Context, name, guildID string) (string, error) {
	return m.get(ctx, "guild_vars", bson.M{"guild_id": guildID, "name": name})
}

func (m *Mongo) get(ctx context.Context, collection string, filter bson.M) (string, error) {
	var doc struct {
		Value string `bson:"value"`
	}
	err := m.db.Collection(collection).FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return doc.Value, nil
}
