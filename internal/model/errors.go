package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// User / account errors
	ErrUserNotFound    = errors.New("user not found")
	ErrAccountNotFound = errors.New("account not found")

	// Catalog errors
	ErrCapeNotFound     = errors.New("cape not found")
	ErrCatalogNotLoaded = errors.New("catalog not loaded")
)

// InsufficientFundsError is returned by checkout when the cart total exceeds
// the account balance. It carries both values so callers can report the exact
// shortfall.
type InsufficientFundsError struct {
	Balance int
	Total   int
}

// Shortfall returns how much currency is missing to cover the total
func (e *InsufficientFundsError) Shortfall() int {
	return e.Total - e.Balance
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: missing %d", e.Shortfall())
}
