// Package budget implements the budgeting core: salary allocation,
// the monthly transaction ledger, and savings goals.
package budget

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category tags both allocation percentages and transactions.
type Category string

const (
	CategorySpending  Category = "spending"
	CategorySaving    Category = "saving"
	CategoryInvesting Category = "investing"
)

// Categories lists all categories in display order.
var Categories = []Category{CategorySpending, CategorySaving, CategoryInvesting}

// ParseCategory parses a user-supplied category name.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategorySpending:
		return CategorySpending, nil
	case CategorySaving:
		return CategorySaving, nil
	case CategoryInvesting:
		return CategoryInvesting, nil
	}
	return "", fmt.Errorf("unknown category %q (want spending, saving, or investing)", s)
}

// Transaction is a single dated, categorized expense entry.
// Transactions are append-only and immutable once created.
type Transaction struct {
	Category Category
	Amount   decimal.Decimal
	Date     time.Time
}

// Goal is a named savings goal with a target and acquired progress.
type Goal struct {
	Name     string
	Target   decimal.Decimal
	Acquired decimal.Decimal
}

// Ratio returns acquired/target capped at 1, or 0 when the target is
// not positive, so progress bars never divide by zero.
func (g Goal) Ratio() float64 {
	return SpendRatio(g.Acquired, g.Target)
}

// Split holds the salary allocation percentages per category.
// Nothing forces them to total 100; deviation is advisory only.
type Split struct {
	Spending  decimal.Decimal
	Saving    decimal.Decimal
	Investing decimal.Decimal
}

// DefaultSplit returns the recommended 50/30/20 split.
func DefaultSplit() Split {
	return Split{
		Spending:  decimal.NewFromInt(50),
		Saving:    decimal.NewFromInt(30),
		Investing: decimal.NewFromInt(20),
	}
}

// Pct returns the percentage assigned to one category.
func (s Split) Pct(c Category) decimal.Decimal {
	switch c {
	case CategorySaving:
		return s.Saving
	case CategoryInvesting:
		return s.Investing
	default:
		return s.Spending
	}
}

// Total returns the sum of the three percentages.
func (s Split) Total() decimal.Decimal {
	return s.Spending.Add(s.Saving).Add(s.Investing)
}

// Snapshot is the full persisted application state. The store reads
// and writes it atomically; there is no per-field delta path.
type Snapshot struct {
	Salary       decimal.Decimal
	Split        Split
	Goals        []Goal
	Transactions []Transaction
}

// DefaultSnapshot returns the first-run state: zero salary, 50/30/20
// split, no goals, no transactions.
func DefaultSnapshot() Snapshot {
	return Snapshot{Split: DefaultSplit()}
}

// Store is the durable key-value store behind the state container.
// Load returns defaults for anything missing or malformed; Save
// overwrites the full snapshot.
type Store interface {
	Load() (Snapshot, error)
	Save(Snapshot) error
}

var oneHundred = decimal.NewFromInt(100)

// SpendRatio returns spent/total capped at 1 for progress rendering.
// A non-positive total yields 0 rather than propagating a division
// by zero.
func SpendRatio(spent, total decimal.Decimal) float64 {
	if total.Sign() <= 0 {
		return 0
	}
	r, _ := spent.Div(total).Float64()
	if r > 1 {
		return 1
	}
	if r < 0 {
		return 0
	}
	return r
}

// DisplayRemaining floors a signed remaining value at zero. Rendering
// only: arithmetic must keep using the unclamped value.
func DisplayRemaining(remaining decimal.Decimal) decimal.Decimal {
	if remaining.Sign() < 0 {
		return decimal.Zero
	}
	return remaining
}
