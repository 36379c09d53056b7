package bank_test

import (
	"errors"
	"testing"

	"github.com/rschio/ledger/internal/core/bank"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newAccount(balance string) (*bank.Customer, *bank.Account) {
	c := bank.NewCustomer("Rua das Flores, 123")
	return c, bank.NewAccount(c, 1, "001", dec(balance))
}

func TestAccountDeposit(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		wantBalance string
		wantErr     error
	}{
		{"positive", "250.50", "1250.50", nil},
		{"smallest unit", "0.01", "1000.01", nil},
		{"zero", "0", "1000", bank.ErrInvalidAmount},
		{"negative", "-10", "1000", bank.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, a := newAccount("1000")

			err := a.Deposit(dec(tt.amount))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got err %v want %v", err, tt.wantErr)
			}
			if !a.Balance().Equal(dec(tt.wantBalance)) {
				t.Errorf("got balance %s want %s", a.Balance(), tt.wantBalance)
			}
		})
	}
}

func TestAccountWithdraw(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		wantBalance string
		wantErr     error
	}{
		{"partial", "300", "700", nil},
		{"whole balance", "1000", "0", nil},
		{"above balance", "1000.01", "1000", bank.ErrInsufficientFunds},
		{"zero", "0", "1000", bank.ErrInvalidAmount},
		{"negative", "-5", "1000", bank.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, a := newAccount("1000")

			err := a.Withdraw(dec(tt.amount))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got err %v want %v", err, tt.wantErr)
			}
			if !a.Balance().Equal(dec(tt.wantBalance)) {
				t.Errorf("got balance %s want %s", a.Balance(), tt.wantBalance)
			}
		})
	}
}

func TestDirectOperationsSkipHistory(t *testing.T) {
	_, a := newAccount("100")

	if err := a.Deposit(dec("50")); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if err := a.Withdraw(dec("20")); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	if a.History().Len() != 0 {
		t.Errorf("direct operations should not be recorded, got %d entries", a.History().Len())
	}
}

func TestOpenSubAccount(t *testing.T) {
	_, parent := newAccount("1000")
	other := bank.NewCustomer("Av. Paulista, 1000")

	sub := parent.OpenSubAccount(other, 2)

	if !sub.Balance().IsZero() {
		t.Errorf("got balance %s want 0", sub.Balance())
	}
	if sub.Branch() != parent.Branch() {
		t.Errorf("got branch %q want %q", sub.Branch(), parent.Branch())
	}
	if sub.Number() != 2 {
		t.Errorf("got number %d want %d", sub.Number(), 2)
	}
	if sub.Owner() != other {
		t.Errorf("sub account should be owned by the target customer")
	}

	var found int
	for _, a := range other.Accounts() {
		if a == sub {
			found++
		}
	}
	if found != 1 {
		t.Errorf("sub account registered %d times, want 1", found)
	}
	if len(parent.Owner().Accounts()) != 1 {
		t.Errorf("parent owner should keep a single account, got %d", len(parent.Owner().Accounts()))
	}
}

func TestNewAccountRegistersOwner(t *testing.T) {
	c, a := newAccount("0")

	if !c.Owns(a) {
		t.Fatal("owner should own the new account")
	}
	if a.Owner() != c {
		t.Fatal("account should reference its owner")
	}
	if got := a.String(); got != "001-1" {
		t.Errorf("got %q want %q", got, "001-1")
	}
}
