package model

import (
	"github.com/shopspring/decimal"
)

const (
	OrderStatusAccepted = "Accepted"
	OrderStatusDone     = "Done"
	OrderStatusPaid     = "Paid"
)

// DateLayout is the calendar-date format for order and product dates.
const DateLayout = "2006-01-02"

type Order struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	ProductID int             `json:"productId"`
	Price     decimal.Decimal `json:"price"`
	Date      string          `json:"date"`
	Status    string          `json:"status"`
}

type OrderInput struct {
	Name      string `json:"name"`
	ProductID int    `json:"productId"`
}
