package stock

import (
	"errors"
	"fmt"
)

// ErrInvalidSymbol is returned for symbols outside 1..10 characters
var ErrInvalidSymbol = errors.New("invalid stock symbol")

// NotFoundError means the quote provider could not resolve the symbol
type NotFoundError struct {
	Symbol string
	Err    error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Stock symbol %q not found or data unavailable", e.Symbol)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}
