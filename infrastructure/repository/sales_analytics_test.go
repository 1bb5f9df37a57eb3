package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/nolafood/restaurant-analytics-api/infrastructure/database/postgres/mocks"
	"github.com/nolafood/restaurant-analytics-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBuildGeneralMetricsQuery(t *testing.T) {
	since := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	query, args, err := buildGeneralMetricsQuery(since)

	assert.NoError(t, err)
	assert.Equal(t,
		"SELECT COALESCE(SUM(s.total_amount), 0)::numeric AS total_revenue, "+
			"COUNT(s.id) AS total_sales, "+
			"COALESCE(AVG(s.total_amount), 0)::numeric AS avg_ticket "+
			"FROM sales s "+
			"WHERE s.sale_status_desc = $1 AND s.created_at >= $2",
		query,
	)
	assert.Equal(t, []interface{}{"COMPLETED", "2024-03-01"}, args)
}

func TestBuildTopProductsQuery(t *testing.T) {
	query, args, err := buildTopProductsQuery()

	assert.NoError(t, err)
	assert.Equal(t,
		"SELECT p.name, "+
			"SUM(ps.quantity)::numeric AS total_quantity, "+
			"SUM(ps.total_price)::numeric AS total_revenue "+
			"FROM product_sales ps "+
			"JOIN products p ON ps.product_id = p.id "+
			"JOIN sales s ON ps.sale_id = s.id "+
			"WHERE s.sale_status_desc = $1 "+
			"GROUP BY p.name "+
			"ORDER BY total_revenue DESC "+
			"LIMIT 5",
		query,
	)
	assert.Equal(t, []interface{}{"COMPLETED"}, args)
}

func TestBuildHourlySalesQuery(t *testing.T) {
	query, args, err := buildHourlySalesQuery()

	assert.NoError(t, err)
	assert.Equal(t,
		"SELECT TO_CHAR(s.created_at, 'HH24:00h') AS hour, "+
			"COUNT(s.id) AS pedidos "+
			"FROM sales s "+
			"WHERE s.sale_status_desc = $1 "+
			"GROUP BY 1 "+
			"ORDER BY 1",
		query,
	)
	assert.Equal(t, []interface{}{"COMPLETED"}, args)
}

func TestBuildRevenueByPeriodQuery(t *testing.T) {
	since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildRevenueByPeriodQuery(since)

	assert.NoError(t, err)
	assert.Equal(t,
		"SELECT TO_CHAR(s.created_at, 'Dy') AS day_name, "+
			"TO_CHAR(s.created_at, 'ID')::int AS day_order, "+
			"SUM(s.total_amount)::numeric AS total_revenue "+
			"FROM sales s "+
			"WHERE s.sale_status_desc = $1 AND s.created_at >= $2 "+
			"GROUP BY 1, 2 "+
			"ORDER BY day_order",
		query,
	)
	assert.Equal(t, []interface{}{"COMPLETED", since}, args)
}

func TestAnalyticsRepository_storeUnavailable(t *testing.T) {
	acquireErr := fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, "connection refused")

	tests := []struct {
		name string
		call func(ctx context.Context, repo AnalyticsRepository) error
	}{
		{
			name: "Métricas gerais - deve repassar o erro de indisponibilidade",
			call: func(ctx context.Context, repo AnalyticsRepository) error {
				_, err := repo.GetGeneralMetrics(ctx, time.Now())
				return err
			},
		},
		{
			name: "Ranking de produtos - deve repassar o erro de indisponibilidade",
			call: func(ctx context.Context, repo AnalyticsRepository) error {
				_, err := repo.GetTopProducts(ctx)
				return err
			},
		},
		{
			name: "Vendas por hora - deve repassar o erro de indisponibilidade",
			call: func(ctx context.Context, repo AnalyticsRepository) error {
				_, err := repo.GetHourlySales(ctx)
				return err
			},
		},
		{
			name: "Faturamento por período - deve repassar o erro de indisponibilidade",
			call: func(ctx context.Context, repo AnalyticsRepository) error {
				_, err := repo.GetRevenueByPeriod(ctx, time.Now())
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockConn := mocks.NewMockConn(ctrl)
			mockConn.EXPECT().Acquire(gomock.Any()).Return(nil, acquireErr)

			repo := NewAnalyticsRepository(mockConn)

			err := tt.call(context.Background(), repo)
			assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
		})
	}
}
