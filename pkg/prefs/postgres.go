package prefs

import (
	"context"
	"embed"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// PostgresConfig represents the configuration for the Postgres variable
// store.
type PostgresConfig struct {
	ConnectionString  string        `env:"PREFS_PG_CONN_URL,required"`                   // ConnectionString is the connection string to the database.
	MaxOpenConns      int32         `env:"PREFS_PG_MAX_OPEN_CONNS" envDefault:"10"`      // MaxOpenConns is the maximum number of open connections.
	MaxIdleConns      int32         `env:"PREFS_PG_MAX_IDLE_CONNS" envDefault:"5"`       // MaxIdleConns is the maximum number of idle connections.
	HealthCheckPeriod time.Duration `env:"PREFS_PG_HEALTHCHECK_PERIOD" envDefault:"1m"`  // HealthCheckPeriod is the period between health checks.
	MaxConnIdleTime   time.Duration `env:"PREFS_PG_MAX_CONN_IDLE_TIME" envDefault:"10m"` // MaxConnIdleTime is the maximum idle time before a connection is recycled.
	MaxConnLifetime   time.Duration `env:"PREFS_PG_MAX_CONN_LIFETIME" envDefault:"30m"`  // MaxConnLifetime is the maximum lifetime of a connection.
	RetryAttempts     int           `env:"PREFS_PG_RETRY_ATTEMPTS" envDefault:"3"`       // RetryAttempts is the number of retry attempts to connect.
	RetryInterval     time.Duration `env:"PREFS_PG_RETRY_INTERVAL" envDefault:"5s"`      // RetryInterval is the interval between retry attempts.
	MigrationsTable   string        `env:"PREFS_PG_MIGRATIONS_TABLE" envDefault:"prefs_schema_migrations"` // MigrationsTable stores the applied migration version.
}

// Postgres stores variables in the user_vars and guild_vars tables.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a Postgres variable store over an existing pool.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// ConnectPostgres establishes a connection pool with retry logic. The retry
// interval grows linearly per attempt to avoid hammering a database that is
// still starting up.
func ConnectPostgres(ctx context.Context, cfg PostgresConfig) (*pgxpool.Pool, error) {
	connConfig, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseDBConfig, err)
	}
	connConfig.MaxConns = cfg.MaxOpenConns
	connConfig.MinConns = cfg.MaxIdleConns
	connConfig.HealthCheckPeriod = cfg.HealthCheckPeriod
	connConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	connConfig.MaxConnLifetime = cfg.MaxConnLifetime

	for i := range cfg.RetryAttempts {
		pool, err := pgxpool.NewWithConfig(ctx, connConfig)
		if err != nil {
			time.Sleep(time.Duration(i+1) * cfg.RetryInterval)
			continue
		}

		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			time.Sleep(time.Duration(i+1) * cfg.RetryInterval)
			continue
		}

		return pool, nil
	}

	return nil, ErrFailedToOpenDBConnection
}

// MigratePostgres applies the embedded schema migrations that create the
// user_vars and guild_vars tables. Safe to run on every startup.
func MigratePostgres(ctx context.Context, pool *pgxpool.Pool, cfg PostgresConfig) error {
	// Bridge the pgx pool to the database/sql interface goose expects.
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)
	if cfg.MigrationsTable != "" {
		goose.SetTableName(cfg.MigrationsTable)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	return nil
}

// UserVar implements the VarStore interface.
func (p *Postgres) UserVar(ctx context.Context, name, userID string) (string, error) {
	return p.get(ctx,
		`SELECT value FROM user_vars WHERE user_id = $1 AND name = $2`,
		userID, name)
}

// GuildVar implements the VarStore interface.
func (p *Postgres) GuildVar(ctx context.Context, name, guildID string) (string, error) {
	return p.get(ctx,
		`SELECT value FROM guild_vars WHERE guild_id = $1 AND name = $2`,
		guildID, name)
}

func (p *Postgres) get(ctx context.Context, query, ownerID, name string) (string, error) {
	var value string
	err := p.pool.QueryRow(ctx, query, ownerID, name).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}
