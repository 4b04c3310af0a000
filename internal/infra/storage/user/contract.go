package user

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс выполнения запросов (*sql.DB, *sql.Tx)
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
