package reporting

import (
	"github.com/nolafood/restaurant-analytics-api/internal/domain"
	"github.com/shopspring/decimal"
)

// weekdayLabels traduz as abreviações vindas do banco para os rótulos do
// dashboard. Abreviações desconhecidas passam adiante sem tradução
var weekdayLabels = map[string]string{
	"Mon": "Seg",
	"Tue": "Ter",
	"Wed": "Qua",
	"Thu": "Qui",
	"Fri": "Sex",
	"Sat": "Sáb",
	"Sun": "Dom",
}

// truncate descarta a fração do decimal via conversão para float, sem arredondar
func truncate(d decimal.Decimal) int64 {
	return int64(d.InexactFloat64())
}

// shapeGeneralMetrics monta o resumo financeiro. Ausência de linha vira zeros,
// nunca campos omitidos; apenas o ticket médio preserva a fração
func shapeGeneralMetrics(row *domain.GeneralMetricsRow) *domain.GeneralMetrics {
	if row == nil {
		return &domain.GeneralMetrics{}
	}

	return &domain.GeneralMetrics{
		TotalRevenue: truncate(row.TotalRevenue),
		TotalSales:   row.TotalSales,
		AvgTicket:    row.AvgTicket.InexactFloat64(),
	}
}

func shapeTopProducts(rows []*domain.TopProductRow) []domain.TopProduct {
	products := make([]domain.TopProduct, 0, len(rows))
	for _, row := range rows {
		products = append(products, domain.TopProduct{
			Name:     row.Name,
			Quantity: truncate(row.Quantity),
			Revenue:  truncate(row.Revenue),
		})
	}

	return products
}

func shapeHourlySales(rows []*domain.HourlyRow) []domain.HourlySales {
	hours := make([]domain.HourlySales, 0, len(rows))
	for _, row := range rows {
		hours = append(hours, domain.HourlySales{
			Hour:   row.Hour,
			Orders: row.Orders,
		})
	}

	return hours
}

func shapeWeekdayRevenue(rows []*domain.PeriodRow) []domain.WeekdayRevenue {
	days := make([]domain.WeekdayRevenue, 0, len(rows))
	for _, row := range rows {
		days = append(days, domain.WeekdayRevenue{
			Name:    translateWeekday(row.DayName),
			Revenue: truncate(row.Revenue),
		})
	}

	return days
}

func translateWeekday(abbrev string) string {
	if label, ok := weekdayLabels[abbrev]; ok {
		return label
	}

	return abbrev
}
