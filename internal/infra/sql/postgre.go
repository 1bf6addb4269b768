package sql

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	maxRetries     = 10
	_retryInterval = 5 * time.Second
	_queryTimeout  = 5 * time.Second
	passwordEnvVar = "INSURANCE_SERVER_POSTGRES_PASSWORD"
)

func NewPostgreORM(dsn string) (*DB, error) {
	if pass, ok := os.LookupEnv(passwordEnvVar); ok {
		dsn = fmt.Sprintf("%s password=%s", dsn, pass)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: true,
		timeout:              _queryTimeout,
	}, nil
}

var _ Database = (*PostgreDatabase)(nil)

// PostgreDatabase is a raw pgx pool kept beside the ORM for connectivity checks.
type PostgreDatabase struct {
	url  string
	Conn *pgxpool.Pool
	mu   sync.RWMutex
}

// Singleton pattern for PostgreSQL database
var (
	postgreInstance *PostgreDatabase
	postgreOnce     sync.Once
)

func NewPostgreDatabase(url string) *PostgreDatabase {
	postgreOnce.Do(func() {
		postgreInstance = &PostgreDatabase{
			url: url,
		}
	})

	return postgreInstance
}

func (d *PostgreDatabase) Open(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for range maxRetries {
		conn, err := pgxpool.New(ctx, d.url)
		if err == nil {
			d.Conn = conn
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(_retryInterval):
		}
	}

	return fmt.Errorf("impossible to connect to database after %d retries", maxRetries)
}

func (d *PostgreDatabase) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.Conn != nil {
		d.Conn.Close()
		d.Conn = nil
	}
}

func (d *PostgreDatabase) Ping(ctx context.Context) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.Conn == nil {
		return ErrDatabaseClosed
	}

	pingCtx, cancel := context.WithTimeout(ctx, _queryTimeout)
	defer cancel()

	if err := d.Conn.Ping(pingCtx); err != nil {
		return fmt.Errorf("postgre ping: %w", err)
	}
	return nil
}
