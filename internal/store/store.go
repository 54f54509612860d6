// Package store persists the budget snapshot in a local SQLite
// database, one text-encoded slot per tracked entity.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lucashmf/grana/internal/budget"
	"github.com/shopspring/decimal"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store is the SQLite-backed durable store. It implements
// budget.Store: Load reads every slot once at session start, Save
// overwrites the full snapshot on every mutation. There is exactly one
// session reading and writing it; concurrent sessions are
// last-write-wins.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening budget db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// goalRecord and txRecord are the serialized list-slot shapes. Dates
// round-trip as RFC3339 text and are re-parsed on load; JSON alone
// would not preserve a timestamp type.
type goalRecord struct {
	Name     string          `json:"name"`
	Target   decimal.Decimal `json:"target"`
	Acquired decimal.Decimal `json:"acquired"`
}

type txRecord struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"`
}

// Load reads all slots and decodes them into a snapshot. Any slot that
// is missing or malformed falls back to its default (salary 0, split
// 50/30/20, empty lists) instead of failing session startup.
func (s *Store) Load() (budget.Snapshot, error) {
	slots, err := s.readSlots()
	if err != nil {
		return budget.Snapshot{}, err
	}

	snap := budget.DefaultSnapshot()
	snap.Salary = decodeDecimal(slots[slotSalary], snap.Salary)
	snap.Split.Spending = decodeDecimal(slots[slotSpending], snap.Split.Spending)
	snap.Split.Saving = decodeDecimal(slots[slotSaving], snap.Split.Saving)
	snap.Split.Investing = decodeDecimal(slots[slotInvesting], snap.Split.Investing)
	snap.Goals = decodeGoals(slots[slotGoals])
	snap.Transactions = decodeTransactions(slots[slotTransactions])
	return snap, nil
}

// Save re-encodes the full snapshot and overwrites every slot in one
// transaction. No diffing: sync-on-any-change is the whole consistency
// mechanism here.
func (s *Store) Save(snap budget.Snapshot) error {
	goalsJSON, err := json.Marshal(encodeGoals(snap.Goals))
	if err != nil {
		return fmt.Errorf("encoding goals: %w", err)
	}
	txJSON, err := json.Marshal(encodeTransactions(snap.Transactions))
	if err != nil {
		return fmt.Errorf("encoding transactions: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	writes := []struct{ key, value string }{
		{slotSalary, snap.Salary.String()},
		{slotSpending, snap.Split.Spending.String()},
		{slotSaving, snap.Split.Saving.String()},
		{slotInvesting, snap.Split.Investing.String()},
		{slotGoals, string(goalsJSON)},
		{slotTransactions, string(txJSON)},
	}
	for _, w := range writes {
		if _, err := tx.Exec(
			"INSERT OR REPLACE INTO slots (key, value) VALUES (?, ?)",
			w.key, w.value,
		); err != nil {
			return fmt.Errorf("writing slot %s: %w", w.key, err)
		}
	}

	return tx.Commit()
}

func (s *Store) readSlots() (map[string]string, error) {
	rows, err := s.db.Query("SELECT key, value FROM slots")
	if err != nil {
		return nil, fmt.Errorf("reading slots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	slots := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		slots[key] = value
	}
	return slots, rows.Err()
}

func decodeDecimal(text string, fallback decimal.Decimal) decimal.Decimal {
	if text == "" {
		return fallback
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return fallback
	}
	return d
}

func decodeGoals(text string) []budget.Goal {
	if text == "" {
		return nil
	}
	var records []goalRecord
	if err := json.Unmarshal([]byte(text), &records); err != nil {
		return nil
	}
	goals := make([]budget.Goal, 0, len(records))
	for _, r := range records {
		goals = append(goals, budget.Goal{
			Name:     r.Name,
			Target:   r.Target,
			Acquired: r.Acquired,
		})
	}
	return goals
}

func decodeTransactions(text string) []budget.Transaction {
	if text == "" {
		return nil
	}
	var records []txRecord
	if err := json.Unmarshal([]byte(text), &records); err != nil {
		return nil
	}
	txs := make([]budget.Transaction, 0, len(records))
	for _, r := range records {
		date, err := time.Parse(time.RFC3339, r.Date)
		if err != nil {
			// An entry with an unreadable stamp can never be
			// aggregated into any month; drop it.
			continue
		}
		cat, err := budget.ParseCategory(r.Category)
		if err != nil {
			continue
		}
		txs = append(txs, budget.Transaction{
			Category: cat,
			Amount:   r.Amount,
			Date:     date.Local(),
		})
	}
	return txs
}

func encodeGoals(goals []budget.Goal) []goalRecord {
	records := make([]goalRecord, 0, len(goals))
	for _, g := range goals {
		records = append(records, goalRecord{
			Name:     g.Name,
			Target:   g.Target,
			Acquired: g.Acquired,
		})
	}
	return records
}

func encodeTransactions(txs []budget.Transaction) []txRecord {
	records := make([]txRecord, 0, len(txs))
	for _, t := range txs {
		records = append(records, txRecord{
			Category: string(t.Category),
			Amount:   t.Amount,
			Date:     t.Date.Format(time.RFC3339),
		})
	}
	return records
}
