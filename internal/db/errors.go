package db

import (
	"errors"
	"fmt"

	"github.com/wellywell/plaquexpress/internal/types"
)

var (
	ErrSettingsNotFound = errors.New("notification settings not found")
	ErrOrderNotFound    = errors.New("order not found")
)

type OrderNumberExhaustedError struct {
	Attempts int
}

func (e *OrderNumberExhaustedError) Error() string {
	return fmt.Sprintf("no free order number after %d attempts", e.Attempts)
}

type StatusTransitionError struct {
	OrderID string
	From    types.Status
	To      types.Status
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("order %s cannot move from %s to %s", e.OrderID, e.From, e.To)
}
