package domain

import "github.com/shopspring/decimal"

// GeneralMetricsRow carrega os agregados de vendas exatamente como o banco os
// calculou, antes de qualquer conversão para o formato do dashboard
type GeneralMetricsRow struct {
	TotalRevenue decimal.Decimal
	TotalSales   int64
	AvgTicket    decimal.Decimal
}

// GeneralMetrics é o resumo financeiro exposto no dashboard
type GeneralMetrics struct {
	TotalRevenue int64   `json:"totalRevenue"`
	TotalSales   int64   `json:"totalSales"`
	AvgTicket    float64 `json:"avgTicket"`
}

// HourlyRow é uma linha de pedidos agrupada por hora do dia
type HourlyRow struct {
	Hour   string
	Orders int64
}

type HourlySales struct {
	Hour   string `json:"hour"`
	Orders int64  `json:"Pedidos"`
}
