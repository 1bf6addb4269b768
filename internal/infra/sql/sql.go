package sql

import (
	"context"
	"errors"
)

var ErrDatabaseClosed = errors.New("database is not open")

type Database interface {
	Open(context.Context) error
	Close()
	Ping(context.Context) error
}

// NoopDatabase stands in for PostgreSQL when the service runs on the in-memory ORM.
type NoopDatabase struct{}

var _ Database = NoopDatabase{}

func (NoopDatabase) Open(context.Context) error { return nil }
func (NoopDatabase) Close()                     {}
func (NoopDatabase) Ping(context.Context) error { return nil }
