package model

import "github.com/shopspring/decimal"

// BillDateLayout is the human-readable date printed on bills.
const BillDateLayout = "02 January, 2006"

type Bill struct {
	BillID   int       `json:"bill_id"`
	Date     string    `json:"date"`
	Provider string    `json:"provider"`
	Buyer    string    `json:"buyer"`
	Table    []BillRow `json:"json_table"`
}

type BillRow struct {
	Number      int             `json:"№"`
	ProductName string          `json:"Product name"`
	Price       decimal.Decimal `json:"Price"`
	Discount    string          `json:"Discount"`
	Sum         decimal.Decimal `json:"Sum"`
}
