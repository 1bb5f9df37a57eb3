package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period é o seletor de janela histórica aceito pelo endpoint de faturamento por período
type Period string

const (
	PeriodLast7Days   Period = "7d"
	PeriodLast30Days  Period = "30d"
	PeriodMonth       Period = "month"
	PeriodLast6Months Period = "6m"

	// DefaultPeriod é aplicado quando o cliente não informa o parâmetro period
	DefaultPeriod = PeriodLast7Days

	// GeneralMetricsWindowDays é a janela fixa do resumo geral de vendas
	GeneralMetricsWindowDays = 180
)

// ParsePeriod valida o seletor recebido do cliente. Valor vazio cai no padrão;
// qualquer outro valor desconhecido retorna ErrInvalidPeriod
func ParsePeriod(raw string) (Period, error) {
	if raw == "" {
		return DefaultPeriod, nil
	}

	switch p := Period(raw); p {
	case PeriodLast7Days, PeriodLast30Days, PeriodMonth, PeriodLast6Months:
		return p, nil
	}

	return "", ErrInvalidPeriod
}

// StartDate resolve o início da janela do período a partir do instante informado.
// O período "month" começa à meia-noite do dia 1 do mês corrente
func (p Period) StartDate(now time.Time) time.Time {
	switch p {
	case PeriodLast30Days:
		return now.AddDate(0, 0, -30)
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case PeriodLast6Months:
		return now.AddDate(0, 0, -GeneralMetricsWindowDays)
	}

	return now.AddDate(0, 0, -7)
}

// PeriodRow é uma linha de faturamento agrupada por dia da semana, com o
// ordinal ISO (Seg=1..Dom=7) usado apenas para ordenação
type PeriodRow struct {
	DayName  string
	DayOrder int
	Revenue  decimal.Decimal
}

// WeekdayRevenue é a forma serializada consumida pelo gráfico de faturamento
type WeekdayRevenue struct {
	Name    string `json:"name"`
	Revenue int64  `json:"Faturamento (R$)"`
}
