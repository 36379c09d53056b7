package bank

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind names a transaction variant.
type Kind string

// Set of transaction kinds.
const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
)

// Transaction is a request to move an account balance. The set of
// implementations is closed: Deposit and Withdrawal.
type Transaction interface {
	// Apply performs the effect on a. It returns nil on success, otherwise
	// a named error and a is left unchanged.
	Apply(a *Account) error
	Kind() Kind
	Amount() decimal.Decimal
	String() string

	transaction()
}

// Deposit credits an account.
type Deposit struct {
	amount decimal.Decimal
}

// NewDeposit returns a deposit of amount. Amount must be positive.
func NewDeposit(amount decimal.Decimal) (Deposit, error) {
	if !amount.IsPositive() {
		return Deposit{}, fmt.Errorf("deposit of %s: %w", amount, ErrInvalidAmount)
	}
	return Deposit{amount: amount}, nil
}

func (d Deposit) Apply(a *Account) error { return a.Deposit(d.amount) }
func (d Deposit) Kind() Kind { return KindDeposit }
func (d Deposit) Amount() decimal.Decimal { return d.amount }
func (d Deposit) String() string { return "Deposit: " + d.amount.StringFixed(2) }
func (Deposit) transaction() {}

// Withdrawal debits an account.
type Withdrawal struct {
	amount decimal.Decimal
}

// NewWithdrawal returns a withdrawal of amount. Amount must be positive.
func NewWithdrawal(amount decimal.Decimal) (Withdrawal, error) {
	if !amount.IsPositive() {
		return Withdrawal{}, fmt.Errorf("withdrawal of %s: %w", amount, ErrInvalidAmount)
	}
	return Withdrawal{amount: amount}, nil
}

func (w Withdrawal) Apply(a *Account) error { return a.Withdraw(w.amount) }
func (w Withdrawal) Kind() Kind { return KindWithdrawal }
func (w Withdrawal) Amount() decimal.Decimal { return w.amount }
func (w Withdrawal) String() string { return "Withdrawal: " + w.amount.StringFixed(2) }
func (Withdrawal) transaction() {}

// NewTransaction builds the variant named by kind.
func NewTransaction(kind Kind, amount decimal.Decimal) (Transaction, error) {
	var (
		t   Transaction
		err error
	)
	switch kind {
	case KindDeposit:
		t, err = NewDeposit(amount)
	case KindWithdrawal:
		t, err = NewWithdrawal(amount)
	default:
		return nil, fmt.Errorf("unknown transaction kind %q", kind)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}
