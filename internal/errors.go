package internal

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrBillNotFound  = errors.New("order not found or not in \"Paid\" status")

	ErrInvalidDate = errors.New("invalid date format. Please use YYYY-MM-DD")
	ErrInvalidID   = errors.New("invalid order id")
)
