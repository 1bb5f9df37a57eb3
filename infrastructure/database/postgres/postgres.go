package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/nolafood/restaurant-analytics-api/internal/config"
	"github.com/nolafood/restaurant-analytics-api/internal/domain"
)

// Conn é o provedor de conexões do banco de vendas. Cada requisição adquire
// uma sessão dedicada e é responsável por liberá-la exatamente uma vez,
// inclusive nos caminhos de erro
type Conn interface {
	Acquire(context.Context) (*Session, error)
	Ping(context.Context) error
	Close() error
}

type Connection struct {
	*sql.DB
}

// NewConnection prepara o acesso ao banco. sql.Open não estabelece conexão de
// fato; a disponibilidade é verificada a cada Acquire, então a API sobe mesmo
// com o banco fora do ar e responde 503 até ele voltar
func NewConnection(cfg config.Database) (*Connection, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	return &Connection{DB: db}, nil
}

// Session é a conexão dedicada de uma única requisição
type Session struct {
	*sql.Conn
}

var _ Queryer = (*Session)(nil)

// Acquire abre uma sessão dedicada com o banco. Falha ao estabelecer a conexão
// é traduzida para domain.ErrStoreUnavailable, nunca para o erro cru do driver
func (c *Connection) Acquire(ctx context.Context) (*Session, error) {
	conn, err := c.DB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return &Session{Conn: conn}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
