package domain

import "github.com/shopspring/decimal"

// TopProductRow é uma linha do ranking de produtos com os totais ainda em decimal
type TopProductRow struct {
	Name     string
	Quantity decimal.Decimal
	Revenue  decimal.Decimal
}

type TopProduct struct {
	Name     string `json:"name"`
	Quantity int64  `json:"Vendas"`
	Revenue  int64  `json:"Faturamento"`
}
