// Package bank models a personal ledger: customers own accounts, accounts
// keep a balance and a history, and deposits and withdrawals move the
// balance. Values in this package are not safe for concurrent use.
package bank

import "errors"

// Set of errors for bank API.
var (
	ErrNoAccounts        = errors.New("bank customer has no accounts")
	ErrAccountNotOwned   = errors.New("bank account not owned by customer")
	ErrInsufficientFunds = errors.New("bank insufficient funds")
	ErrInvalidAmount     = errors.New("bank invalid amount")
)
