// Package error defines domain-specific errors for the Plata application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a category budget is not found.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetAmount is returned when the budget amount is negative.
	ErrInvalidBudgetAmount = errors.New("invalid budget amount")

	// ErrEmptyBudgetCategory is returned when the budget category label is empty.
	ErrEmptyBudgetCategory = errors.New("budget category cannot be empty")

	// ErrInvalidBudgetMonth is returned when the budget month is malformed.
	ErrInvalidBudgetMonth = errors.New("invalid budget month")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetAmount BudgetErrorCode = "BGT-010001"
	ErrCodeEmptyBudgetCategory BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidBudgetMonth  BudgetErrorCode = "BGT-010003"

	// Lookup errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BGT-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
