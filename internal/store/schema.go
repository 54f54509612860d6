package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS slots (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// Slot keys. Numeric slots hold decimal text; list slots hold JSON.
const (
	slotSalary       = "salary"
	slotSpending     = "spending"
	slotSaving       = "saving"
	slotInvesting    = "investing"
	slotGoals        = "goals"
	slotTransactions = "transactions"
)
