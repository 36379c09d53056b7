package bank

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is a transaction recorded in a history.
type Entry struct {
	Transaction Transaction
	// Balance is the account balance right after the transaction.
	Balance decimal.Decimal
	Date    time.Time
}

// History is the append-only, chronological record of one account.
type History struct {
	entries []Entry
}

// Append records e after every previous entry.
func (h *History) Append(e Entry) {
	h.entries = append(h.entries, e)
}

// Entries returns a copy of the recorded entries, oldest first.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	return len(h.entries)
}
