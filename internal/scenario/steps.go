package scenario

import (
	"fmt"
	"strings"

	"github.com/rschio/ledger/internal/core/bank"
	"github.com/shopspring/decimal"
)

// DefaultSteps is the demonstration script.
const DefaultSteps = "deposit:500 withdraw:300 withdraw:1500"

var stepKinds = map[string]bank.Kind{
	"deposit":    bank.KindDeposit,
	"withdraw":   bank.KindWithdrawal,
	"withdrawal": bank.KindWithdrawal,
}

// ParseSteps parses a space separated script of kind:amount steps, such as
// "deposit:500 withdraw:300".
func ParseSteps(script string) ([]bank.Transaction, error) {
	fields := strings.Fields(script)
	ts := make([]bank.Transaction, 0, len(fields))

	for i, f := range fields {
		name, amount, ok := strings.Cut(f, ":")
		if !ok {
			return nil, fmt.Errorf("step %d %q: want kind:amount", i+1, f)
		}

		kind, ok := stepKinds[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("step %d %q: unknown kind %q", i+1, f, name)
		}

		value, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("step %d %q: parsing amount: %w", i+1, f, err)
		}

		t, err := bank.NewTransaction(kind, value)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		ts = append(ts, t)
	}

	return ts, nil
}
