package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/lucashmf/grana/internal/budget"
	"github.com/shopspring/decimal"
)

func openTestStore(t *testing.T, dbPath string) *Store {
	t.Helper()
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open(%s): %v", dbPath, err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func dec(t *testing.T, v string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(v)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", v, err)
	}
	return d
}

func TestLoadEmptyStoreYieldsDefaults(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "grana.db"))

	snap, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !snap.Salary.Equal(decimal.Zero) {
		t.Fatalf("salary = %s, want 0", snap.Salary)
	}
	sp := snap.Split
	if !sp.Spending.Equal(dec(t, "50")) || !sp.Saving.Equal(dec(t, "30")) || !sp.Investing.Equal(dec(t, "20")) {
		t.Fatalf("split = %s/%s/%s, want 50/30/20", sp.Spending, sp.Saving, sp.Investing)
	}
	if len(snap.Goals) != 0 || len(snap.Transactions) != 0 {
		t.Fatalf("expected empty lists, got %d goals / %d transactions",
			len(snap.Goals), len(snap.Transactions))
	}
}

func TestSnapshotRoundTripAcrossSessions(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "grana.db")

	txDate := time.Date(2024, time.January, 5, 14, 30, 0, 0, time.Local)
	want := budget.Snapshot{
		Salary: dec(t, "5000"),
		Split: budget.Split{
			Spending:  dec(t, "55"),
			Saving:    dec(t, "25"),
			Investing: dec(t, "20"),
		},
		Goals: []budget.Goal{
			{Name: "Car", Target: dec(t, "1000"), Acquired: dec(t, "200")},
		},
		Transactions: []budget.Transaction{
			{Category: budget.CategorySpending, Amount: dec(t, "99.90"), Date: txDate},
		},
	}

	first := openTestStore(t, dbPath)
	if err := first.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Fresh open simulates a new session
	second := openTestStore(t, dbPath)
	got, err := second.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !got.Salary.Equal(want.Salary) {
		t.Fatalf("salary = %s, want %s", got.Salary, want.Salary)
	}
	if !got.Split.Spending.Equal(want.Split.Spending) ||
		!got.Split.Saving.Equal(want.Split.Saving) ||
		!got.Split.Investing.Equal(want.Split.Investing) {
		t.Fatalf("split = %+v, want %+v", got.Split, want.Split)
	}

	if len(got.Goals) != 1 {
		t.Fatalf("goals = %d entries, want 1", len(got.Goals))
	}
	g := got.Goals[0]
	if g.Name != "Car" || !g.Target.Equal(dec(t, "1000")) || !g.Acquired.Equal(dec(t, "200")) {
		t.Fatalf("goal = %+v, want Car/1000/200", g)
	}

	if len(got.Transactions) != 1 {
		t.Fatalf("transactions = %d entries, want 1", len(got.Transactions))
	}
	tx := got.Transactions[0]
	if tx.Category != budget.CategorySpending || !tx.Amount.Equal(dec(t, "99.90")) {
		t.Fatalf("transaction = %+v", tx)
	}
	if !tx.Date.Equal(txDate) {
		t.Fatalf("transaction date = %v, want %v", tx.Date, txDate)
	}
}

func TestSaveOverwritesFullSnapshot(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "grana.db"))

	_ = s.Save(budget.Snapshot{
		Salary: dec(t, "1000"),
		Split:  budget.DefaultSplit(),
		Goals:  []budget.Goal{{Name: "Old", Target: dec(t, "10")}},
	})
	_ = s.Save(budget.Snapshot{
		Salary: dec(t, "2000"),
		Split:  budget.DefaultSplit(),
	})

	snap, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !snap.Salary.Equal(dec(t, "2000")) {
		t.Fatalf("salary = %s, want 2000", snap.Salary)
	}
	if len(snap.Goals) != 0 {
		t.Fatalf("goals survived overwrite: %+v", snap.Goals)
	}
}

func TestCorruptSlotsFallBackPerSlot(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "grana.db"))

	corrupt := []struct{ key, value string }{
		{slotSalary, "not-a-number"},
		{slotSaving, "abc"},
		{slotGoals, "{broken json"},
		{slotTransactions, "[1, 2"},
		{slotSpending, "65"}, // one healthy slot among the wreckage
	}
	for _, c := range corrupt {
		if _, err := s.db.Exec(
			"INSERT OR REPLACE INTO slots (key, value) VALUES (?, ?)", c.key, c.value,
		); err != nil {
			t.Fatalf("seeding slot %s: %v", c.key, err)
		}
	}

	snap, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !snap.Salary.Equal(decimal.Zero) {
		t.Fatalf("corrupt salary = %s, want default 0", snap.Salary)
	}
	if !snap.Split.Saving.Equal(dec(t, "30")) {
		t.Fatalf("corrupt saving pct = %s, want default 30", snap.Split.Saving)
	}
	if !snap.Split.Spending.Equal(dec(t, "65")) {
		t.Fatalf("healthy spending pct = %s, want 65", snap.Split.Spending)
	}
	if len(snap.Goals) != 0 || len(snap.Transactions) != 0 {
		t.Fatalf("corrupt lists decoded to %d goals / %d transactions, want 0/0",
			len(snap.Goals), len(snap.Transactions))
	}
}

func TestUnparseableTransactionDateDropsRecord(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "grana.db"))

	raw := `[
		{"category":"spending","amount":"10","date":"2024-01-05T10:00:00Z"},
		{"category":"spending","amount":"20","date":"yesterday"},
		{"category":"rent","amount":"30","date":"2024-01-06T10:00:00Z"}
	]`
	if _, err := s.db.Exec(
		"INSERT OR REPLACE INTO slots (key, value) VALUES (?, ?)", slotTransactions, raw,
	); err != nil {
		t.Fatalf("seeding transactions: %v", err)
	}

	snap, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.Transactions) != 1 {
		t.Fatalf("decoded %d transactions, want 1 (bad date and bad category dropped)",
			len(snap.Transactions))
	}
	if !snap.Transactions[0].Amount.Equal(dec(t, "10")) {
		t.Fatalf("surviving transaction = %+v", snap.Transactions[0])
	}
}
