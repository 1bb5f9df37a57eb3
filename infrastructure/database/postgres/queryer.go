package postgres

import (
	"context"
	"database/sql"
)

// Queryer é a superfície de consulta que os repositórios recebem depois de
// adquirir uma sessão. *sql.Conn e *sql.DB satisfazem a interface
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
