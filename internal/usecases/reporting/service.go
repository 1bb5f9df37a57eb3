package reporting

import (
	"context"
	"time"

	"github.com/nolafood/restaurant-analytics-api/infrastructure/repository"
	"github.com/nolafood/restaurant-analytics-api/internal/domain"
)

type Service interface {
	GeneralMetrics(ctx context.Context) (*domain.GeneralMetrics, error)
	TopProducts(ctx context.Context) ([]domain.TopProduct, error)
	HourlySales(ctx context.Context) ([]domain.HourlySales, error)
	RevenueByPeriod(ctx context.Context, period domain.Period) ([]domain.WeekdayRevenue, error)
}

type service struct {
	repository repository.AnalyticsRepository
}

func NewService(repository repository.AnalyticsRepository) Service {
	return &service{
		repository: repository,
	}
}

// GeneralMetrics resume as vendas concluídas da janela fixa de 180 dias
func (s *service) GeneralMetrics(ctx context.Context) (*domain.GeneralMetrics, error) {
	since := time.Now().AddDate(0, 0, -domain.GeneralMetricsWindowDays)

	row, err := s.repository.GetGeneralMetrics(ctx, since)
	if err != nil {
		return nil, err
	}

	return shapeGeneralMetrics(row), nil
}

// TopProducts retorna o ranking dos produtos mais vendidos por faturamento
func (s *service) TopProducts(ctx context.Context) ([]domain.TopProduct, error) {
	rows, err := s.repository.GetTopProducts(ctx)
	if err != nil {
		return nil, err
	}

	return shapeTopProducts(rows), nil
}

// HourlySales conta os pedidos concluídos agrupados por hora do dia
func (s *service) HourlySales(ctx context.Context) ([]domain.HourlySales, error) {
	rows, err := s.repository.GetHourlySales(ctx)
	if err != nil {
		return nil, err
	}

	return shapeHourlySales(rows), nil
}

// RevenueByPeriod soma o faturamento por dia da semana dentro da janela do
// período, que o handler já validou
func (s *service) RevenueByPeriod(ctx context.Context, period domain.Period) ([]domain.WeekdayRevenue, error) {
	since := period.StartDate(time.Now())

	rows, err := s.repository.GetRevenueByPeriod(ctx, since)
	if err != nil {
		return nil, err
	}

	return shapeWeekdayRevenue(rows), nil
}
