package models

import (
	"errors"
)

var (
	ErrMissingField        = errors.New("amount, category, description and date must all be set")
	ErrInvalidAmount       = errors.New("the amount must be greater than zero")
	ErrInvalidType         = errors.New("the transaction type must be either \"expense\" or \"income\"")
	ErrUnknownCategory     = errors.New("the category is not one of the configured categories")
	ErrInvalidBudget       = errors.New("budget values must not be negative")
	ErrInvalidIncome       = errors.New("the monthly income must not be negative")
	ErrTransactionNotFound = errors.New("there is no transaction matching your query")
)
