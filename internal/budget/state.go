package budget

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// State is the single session-wide state container. It owns the
// in-memory entities, is the only write path to them, and re-saves the
// full snapshot through its Store after every accepted mutation.
//
// Invalid mutations (non-positive transaction amounts, empty goal
// names, non-positive goal targets) are silent no-ops: nothing changes,
// nothing is saved, and no error is returned.
type State struct {
	store Store

	salary       decimal.Decimal
	split        Split
	goals        []Goal
	transactions []Transaction

	now func() time.Time // clock seam for tests
}

// NewState loads the persisted snapshot from store and wraps it in a
// state container. The snapshot is read once here and never re-read
// mid-session; the container is the source of truth until it exits.
func NewState(store Store) (*State, error) {
	snap, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading budget state: %w", err)
	}
	return &State{
		store:        store,
		salary:       snap.Salary,
		split:        snap.Split,
		goals:        snap.Goals,
		transactions: snap.Transactions,
		now:          time.Now,
	}, nil
}

func (s *State) persist() error {
	if err := s.store.Save(s.snapshot()); err != nil {
		return fmt.Errorf("saving budget state: %w", err)
	}
	return nil
}

func (s *State) snapshot() Snapshot {
	return Snapshot{
		Salary:       s.salary,
		Split:        s.split,
		Goals:        append([]Goal(nil), s.goals...),
		Transactions: append([]Transaction(nil), s.transactions...),
	}
}

// Salary returns the current monthly salary.
func (s *State) Salary() decimal.Decimal { return s.salary }

// Split returns the current allocation percentages.
func (s *State) Split() Split { return s.split }

// Goals returns a copy of the goal list. Indexes into it are valid
// arguments to UpdateGoalProgress until the next mutation.
func (s *State) Goals() []Goal {
	return append([]Goal(nil), s.goals...)
}

// Transactions returns a copy of the ledger in entry order.
func (s *State) Transactions() []Transaction {
	return append([]Transaction(nil), s.transactions...)
}

// SetSalary replaces the salary. No validation beyond what the caller
// already coerced; negative input is stored as-is.
func (s *State) SetSalary(v decimal.Decimal) error {
	s.salary = v
	return s.persist()
}

// SubmitSalary resets the three percentages to the recommended
// 50/30/20 split. Declaring a new salary always re-proposes the
// default distribution.
func (s *State) SubmitSalary() error {
	s.split = DefaultSplit()
	return s.persist()
}

// SetPercent replaces one category's percentage independently. The
// other two are untouched and no renormalization happens; a total
// other than 100 is surfaced via TotalAllocationPercent only.
func (s *State) SetPercent(c Category, pct decimal.Decimal) error {
	switch c {
	case CategorySaving:
		s.split.Saving = pct
	case CategoryInvesting:
		s.split.Investing = pct
	default:
		s.split.Spending = pct
	}
	return s.persist()
}

// TotalAllocationPercent returns the sum of the three percentages.
// The presentation layer shows an advisory warning when it is not
// exactly 100; computation proceeds regardless.
func (s *State) TotalAllocationPercent() decimal.Decimal {
	return s.split.Total()
}

// AmountFor derives the monetary amount allocated to a category:
// salary * pct / 100. Recomputed on every call so it always reflects
// the latest salary and percentages.
func (s *State) AmountFor(c Category) decimal.Decimal {
	return s.salary.Mul(s.split.Pct(c)).Div(oneHundred)
}

// AddTransaction appends a transaction stamped with the current time,
// only if amount > 0. Zero or negative amounts are rejected silently.
func (s *State) AddTransaction(c Category, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return nil
	}
	s.transactions = append(s.transactions, Transaction{
		Category: c,
		Amount:   amount,
		Date:     s.now(),
	})
	return s.persist()
}

// MonthlyTotal sums transaction amounts for one category in one month.
func (s *State) MonthlyTotal(c Category, month MonthKey) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range s.transactions {
		if tx.Category == c && month.Contains(tx.Date) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// Remaining returns the allocated amount minus the month's spend for a
// category. The result is signed and goes negative when over budget;
// DisplayRemaining applies the zero floor for rendering.
func (s *State) Remaining(c Category, month MonthKey) decimal.Decimal {
	return s.AmountFor(c).Sub(s.MonthlyTotal(c, month))
}

// AddGoal appends {name, target, acquired: 0}, only if the name is
// non-empty and the target positive. Otherwise nothing happens.
func (s *State) AddGoal(name string, target decimal.Decimal) error {
	if strings.TrimSpace(name) == "" || target.Sign() <= 0 {
		return nil
	}
	s.goals = append(s.goals, Goal{Name: name, Target: target})
	return s.persist()
}

// UpdateGoalProgress sets goals[index].Acquired = min(amount, target).
// Only the upper bound is clamped; negative input passes through
// unchanged. The index must
// come from the current Goals() list — that is the caller's contract.
func (s *State) UpdateGoalProgress(index int, amount decimal.Decimal) error {
	g := &s.goals[index]
	if amount.GreaterThan(g.Target) {
		amount = g.Target
	}
	g.Acquired = amount
	return s.persist()
}
