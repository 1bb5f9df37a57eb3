package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/nolafood/restaurant-analytics-api/infrastructure/database/postgres"
	"github.com/nolafood/restaurant-analytics-api/internal/domain"
)

const (
	salesTable        = "sales s"
	productSalesTable = "product_sales ps"

	// completedStatus marca as vendas que contam como faturamento real
	completedStatus = "COMPLETED"

	topProductsLimit = 5
)

type AnalyticsRepository interface {
	GetGeneralMetrics(ctx context.Context, since time.Time) (*domain.GeneralMetricsRow, error)
	GetTopProducts(ctx context.Context) ([]*domain.TopProductRow, error)
	GetHourlySales(ctx context.Context) ([]*domain.HourlyRow, error)
	GetRevenueByPeriod(ctx context.Context, since time.Time) ([]*domain.PeriodRow, error)
}

type analyticsRepository struct {
	conn postgres.Conn
}

func NewAnalyticsRepository(conn postgres.Conn) AnalyticsRepository {
	return &analyticsRepository{
		conn: conn,
	}
}

// GetGeneralMetrics soma o faturamento, conta as vendas e calcula o ticket
// médio das vendas concluídas a partir da data informada
func (r *analyticsRepository) GetGeneralMetrics(ctx context.Context, since time.Time) (*domain.GeneralMetricsRow, error) {
	query, args, err := buildGeneralMetricsQuery(since)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sess, err := r.conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	return r.queryGeneralMetrics(ctx, sess, query, args)
}

// GetTopProducts retorna os produtos mais vendidos, ordenados pelo faturamento
func (r *analyticsRepository) GetTopProducts(ctx context.Context) ([]*domain.TopProductRow, error) {
	query, args, err := buildTopProductsQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sess, err := r.conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	return r.queryTopProducts(ctx, sess, query, args)
}

// GetHourlySales conta os pedidos concluídos agrupados por hora do dia
func (r *analyticsRepository) GetHourlySales(ctx context.Context) ([]*domain.HourlyRow, error) {
	query, args, err := buildHourlySalesQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sess, err := r.conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	return r.queryHourlySales(ctx, sess, query, args)
}

// GetRevenueByPeriod soma o faturamento das vendas concluídas após o instante
// informado, agrupado por dia da semana na ordem ISO (Seg..Dom)
func (r *analyticsRepository) GetRevenueByPeriod(ctx context.Context, since time.Time) ([]*domain.PeriodRow, error) {
	query, args, err := buildRevenueByPeriodQuery(since)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sess, err := r.conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	return r.queryRevenueByPeriod(ctx, sess, query, args)
}

func buildGeneralMetricsQuery(since time.Time) (string, []interface{}, error) {
	return squirrel.
		Select(
			"COALESCE(SUM(s.total_amount), 0)::numeric AS total_revenue",
			"COUNT(s.id) AS total_sales",
			"COALESCE(AVG(s.total_amount), 0)::numeric AS avg_ticket",
		).
		From(salesTable).
		Where(squirrel.Eq{"s.sale_status_desc": completedStatus}).
		Where(squirrel.GtOrEq{"s.created_at": since.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildTopProductsQuery() (string, []interface{}, error) {
	return squirrel.
		Select(
			"p.name",
			"SUM(ps.quantity)::numeric AS total_quantity",
			"SUM(ps.total_price)::numeric AS total_revenue",
		).
		From(productSalesTable).
		Join("products p ON ps.product_id = p.id").
		Join("sales s ON ps.sale_id = s.id").
		Where(squirrel.Eq{"s.sale_status_desc": completedStatus}).
		GroupBy("p.name").
		OrderBy("total_revenue DESC").
		Limit(topProductsLimit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildHourlySalesQuery() (string, []interface{}, error) {
	// A ordenação pelo rótulo de largura fixa (00:00h..23:00h) equivale à cronológica
	return squirrel.
		Select(
			"TO_CHAR(s.created_at, 'HH24:00h') AS hour",
			"COUNT(s.id) AS pedidos",
		).
		From(salesTable).
		Where(squirrel.Eq{"s.sale_status_desc": completedStatus}).
		GroupBy("1").
		OrderBy("1").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildRevenueByPeriodQuery(since time.Time) (string, []interface{}, error) {
	// 'Dy' gera abreviações capitalizadas (Mon..Sun), as chaves da tabela de tradução
	return squirrel.
		Select(
			"TO_CHAR(s.created_at, 'Dy') AS day_name",
			"TO_CHAR(s.created_at, 'ID')::int AS day_order",
			"SUM(s.total_amount)::numeric AS total_revenue",
		).
		From(salesTable).
		Where(squirrel.Eq{"s.sale_status_desc": completedStatus}).
		Where(squirrel.GtOrEq{"s.created_at": since}).
		GroupBy("1", "2").
		OrderBy("day_order").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *analyticsRepository) queryGeneralMetrics(ctx context.Context, q postgres.Queryer, query string, args []interface{}) (*domain.GeneralMetricsRow, error) {
	row := q.QueryRowContext(ctx, query, args...)

	metrics, err := r.scanGeneralMetrics(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear métricas gerais: %w", err)
	}

	return metrics, nil
}

func (r *analyticsRepository) queryTopProducts(ctx context.Context, q postgres.Queryer, query string, args []interface{}) ([]*domain.TopProductRow, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	defer rows.Close()

	products := make([]*domain.TopProductRow, 0)
	for rows.Next() {
		product, err := r.scanTopProductRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ranking de produtos: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

func (r *analyticsRepository) queryHourlySales(ctx context.Context, q postgres.Queryer, query string, args []interface{}) ([]*domain.HourlyRow, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	defer rows.Close()

	hours := make([]*domain.HourlyRow, 0)
	for rows.Next() {
		hour, err := r.scanHourlyRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por hora: %w", err)
		}
		hours = append(hours, hour)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return hours, nil
}

func (r *analyticsRepository) queryRevenueByPeriod(ctx context.Context, q postgres.Queryer, query string, args []interface{}) ([]*domain.PeriodRow, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	defer rows.Close()

	days := make([]*domain.PeriodRow, 0)
	for rows.Next() {
		day, err := r.scanPeriodRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear faturamento por período: %w", err)
		}
		days = append(days, day)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return days, nil
}

func (r *analyticsRepository) scanGeneralMetrics(row *sql.Row) (*domain.GeneralMetricsRow, error) {
	metrics := &domain.GeneralMetricsRow{}

	err := row.Scan(
		&metrics.TotalRevenue,
		&metrics.TotalSales,
		&metrics.AvgTicket,
	)
	if err != nil {
		return nil, err
	}

	return metrics, nil
}

func (r *analyticsRepository) scanTopProductRows(rows *sql.Rows) (*domain.TopProductRow, error) {
	product := &domain.TopProductRow{}

	err := rows.Scan(
		&product.Name,
		&product.Quantity,
		&product.Revenue,
	)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *analyticsRepository) scanHourlyRows(rows *sql.Rows) (*domain.HourlyRow, error) {
	hour := &domain.HourlyRow{}

	err := rows.Scan(
		&hour.Hour,
		&hour.Orders,
	)
	if err != nil {
		return nil, err
	}

	return hour, nil
}

func (r *analyticsRepository) scanPeriodRows(rows *sql.Rows) (*domain.PeriodRow, error) {
	day := &domain.PeriodRow{}

	err := rows.Scan(
		&day.DayName,
		&day.DayOrder,
		&day.Revenue,
	)
	if err != nil {
		return nil, err
	}

	return day, nil
}

func wrapQueryError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}
