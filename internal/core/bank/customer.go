package bank

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rschio/ledger/internal/opctx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// CustomerKind tells which optional details a customer carries.
type CustomerKind string

// Set of customer kinds.
const (
	KindGeneral    CustomerKind = "general"
	KindIndividual CustomerKind = "individual"
)

// IndividualDetails identifies a customer who is a natural person.
type IndividualDetails struct {
	TaxID     string
	FullName  string
	BirthDate time.Time
}

// Customer owns accounts and runs transactions against them.
type Customer struct {
	ID      uuid.UUID
	Address string
	Kind    CustomerKind
	// Individual is set only when Kind is KindIndividual.
	Individual *IndividualDetails

	accounts []*Account
}

func NewCustomer(address string) *Customer {
	return &Customer{
		ID:      uuid.New(),
		Address: address,
		Kind:    KindGeneral,
	}
}

func NewIndividualCustomer(address string, d IndividualDetails) *Customer {
	c := NewCustomer(address)
	c.Kind = KindIndividual
	c.Individual = &d
	return c
}

// Accounts returns the customer's accounts in the order they were opened.
func (c *Customer) Accounts() []*Account {
	return slices.Clone(c.accounts)
}

// Owns reports whether a is one of the customer's accounts.
func (c *Customer) Owns(a *Account) bool {
	return slices.Contains(c.accounts, a)
}

func (c *Customer) addAccount(a *Account) {
	if c.Owns(a) {
		return
	}
	c.accounts = append(c.accounts, a)
}

// Describe returns a one line, human readable identification.
func (c *Customer) Describe() string {
	if c.Kind == KindIndividual && c.Individual != nil {
		return fmt.Sprintf("%s (tax id %s), %s", c.Individual.FullName, c.Individual.TaxID, c.Address)
	}
	return c.Address
}

// ExecuteTransaction applies t to a, which must belong to c, and records it
// in the account history. A rejected transaction leaves both the balance and
// the history untouched.
func (c *Customer) ExecuteTransaction(ctx context.Context, a *Account, t Transaction) (Entry, error) {
	_, span := opctx.AddSpan(ctx, "bank.ExecuteTransaction",
		attribute.String("kind", string(t.Kind())),
		attribute.String("amount", t.Amount().String()),
	)
	defer span.End()

	fail := func(err error) (Entry, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Entry{}, err
	}

	switch {
	case len(c.accounts) == 0:
		return fail(ErrNoAccounts)
	case !c.Owns(a):
		return fail(fmt.Errorf("account %s: %w", a, ErrAccountNotOwned))
	}

	if err := t.Apply(a); err != nil {
		return fail(fmt.Errorf("apply %s: %w", t.Kind(), err))
	}

	e := Entry{
		Transaction: t,
		Balance:     a.Balance(),
		Date:        opctx.GetTime(ctx),
	}
	a.history.Append(e)

	return e, nil
}
