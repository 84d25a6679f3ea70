package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Deleting a balance cascade-deletes its operations so no operation can end
// up referencing a nonexistent balance.
const schema = `
CREATE TABLE IF NOT EXISTS associations (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS balances (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    initial_amount TEXT NOT NULL,
    position INTEGER NOT NULL DEFAULT 0,
    association_id TEXT NOT NULL,
    FOREIGN KEY (association_id) REFERENCES associations(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS operations (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    op_group TEXT NOT NULL,
    amount TEXT NOT NULL,
    op_type TEXT NOT NULL,
    op_date TEXT NOT NULL,
    invoice TEXT,
    balance_id TEXT NOT NULL,
    FOREIGN KEY (balance_id) REFERENCES balances(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_balances_association_id ON balances(association_id);
CREATE INDEX IF NOT EXISTS idx_operations_balance_id ON operations(balance_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
