package bank

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Account holds a balance and the history of transactions applied to it.
type Account struct {
	balance decimal.Decimal
	number  int
	branch  string
	owner   *Customer
	history *History
}

// NewAccount creates an account with an opening balance and registers it
// with owner.
func NewAccount(owner *Customer, number int, branch string, balance decimal.Decimal) *Account {
	a := Account{
		balance: balance,
		number:  number,
		branch:  branch,
		owner:   owner,
		history: &History{},
	}
	owner.addAccount(&a)

	return &a
}

func (a *Account) Balance() decimal.Decimal { return a.balance }
func (a *Account) Number() int { return a.number }
func (a *Account) Branch() string { return a.branch }
func (a *Account) Owner() *Customer { return a.owner }
func (a *Account) History() *History { return a.history }

// Deposit adds amount to the balance. Amount must be positive.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("deposit of %s: %w", amount, ErrInvalidAmount)
	}

	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw subtracts amount from the balance. Amount must be positive and
// not greater than the balance.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("withdrawal of %s: %w", amount, ErrInvalidAmount)
	}
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("withdrawal of %s from %s: %w", amount, a.balance, ErrInsufficientFunds)
	}

	a.balance = a.balance.Sub(amount)
	return nil
}

// OpenSubAccount opens a zero balance account on the same branch, owned by
// and registered with c.
func (a *Account) OpenSubAccount(c *Customer, number int) *Account {
	return NewAccount(c, number, a.branch, decimal.Zero)
}

func (a *Account) String() string {
	return fmt.Sprintf("%s-%d", a.branch, a.number)
}
