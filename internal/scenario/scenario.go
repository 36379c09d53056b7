// Package scenario runs a scripted sequence of transactions against a fresh
// customer account and renders every outcome as human readable lines.
package scenario

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rschio/ledger/internal/core/bank"
	"github.com/rschio/ledger/internal/logger"
	"github.com/rschio/ledger/internal/opctx"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

// Config describes the customer, the account and the script to run.
type Config struct {
	Address        string
	Individual     *bank.IndividualDetails
	AccountNumber  int
	Branch         string
	OpeningBalance decimal.Decimal
	Steps          []bank.Transaction
}

// Run opens the account described by cfg, executes every step in order and
// writes the report to w. A rejected step is reported and the run goes on.
// It returns the account so callers can inspect the final state.
func Run(ctx context.Context, log *slog.Logger, w io.Writer, cfg Config) (*bank.Account, error) {
	ctx, span := opctx.AddSpan(ctx, "scenario.Run", attribute.Int("steps", len(cfg.Steps)))
	defer span.End()

	var c *bank.Customer
	if cfg.Individual != nil {
		c = bank.NewIndividualCustomer(cfg.Address, *cfg.Individual)
	} else {
		c = bank.NewCustomer(cfg.Address)
	}
	a := bank.NewAccount(c, cfg.AccountNumber, cfg.Branch, cfg.OpeningBalance)

	log.InfoContext(ctx, "scenario", "status", "account opened",
		"customer", c.ID, "account", a.String(), "balance", a.Balance().String())

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Customer: %s\n", c.Describe())
	fmt.Fprintf(bw, "Initial balance: %s\n", money(a.Balance()))

	for i, t := range cfg.Steps {
		opctx.Tick(ctx)
		step(ctx, log, bw, c, a, i+1, t)
	}

	fmt.Fprintf(bw, "Final balance: %s\n", money(a.Balance()))
	fmt.Fprintln(bw, "Transaction history:")
	for _, e := range a.History().Entries() {
		fmt.Fprintln(bw, e.Transaction.String())
	}

	if err := bw.Flush(); err != nil {
		return a, fmt.Errorf("writing report: %w", err)
	}

	return a, nil
}

func step(ctx context.Context, log *slog.Logger, w io.Writer, c *bank.Customer, a *bank.Account, n int, t bank.Transaction) {
	ctx, span := opctx.AddSpan(ctx, "scenario.step", attribute.Int("n", n))
	defer span.End()

	label := kindLabel(t.Kind())

	if _, err := c.ExecuteTransaction(ctx, a, t); err != nil {
		log.WarnContext(ctx, "scenario", "status", "transaction rejected",
			"step", n, "kind", t.Kind(), "amount", t.Amount().String(), "ERROR", err)
		fmt.Fprintf(w, "%s of %s rejected: %s\n", label, money(t.Amount()), reason(err))
	} else {
		// Attributed to the script loop in Run.
		logger.InfocCtx(ctx, log, 3, "scenario", "status", "transaction recorded",
			"step", n, "kind", t.Kind(), "amount", t.Amount().String())
		fmt.Fprintf(w, "%s of %s applied.\n", label, money(t.Amount()))
	}

	fmt.Fprintf(w, "Balance after %s: %s\n", t.Kind(), money(a.Balance()))
}

func reason(err error) string {
	switch {
	case errors.Is(err, bank.ErrInsufficientFunds):
		return "insufficient funds"
	case errors.Is(err, bank.ErrInvalidAmount):
		return "amount must be positive"
	case errors.Is(err, bank.ErrAccountNotOwned):
		return "account not associated with the customer"
	case errors.Is(err, bank.ErrNoAccounts):
		return "customer has no accounts"
	default:
		return err.Error()
	}
}

func kindLabel(k bank.Kind) string {
	switch k {
	case bank.KindDeposit:
		return "Deposit"
	case bank.KindWithdrawal:
		return "Withdrawal"
	}
	return string(k)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
