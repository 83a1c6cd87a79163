package model

import "github.com/shopspring/decimal"

type Product struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Date  string          `json:"date"`
}
