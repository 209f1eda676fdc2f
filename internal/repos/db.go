package repos

import (
	"log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Users
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users(LOWER(username));

-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  cost NUMERIC NOT NULL DEFAULT 0 CHECK (cost >= 0),
  quantity INTEGER NOT NULL DEFAULT 0,
  image TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);

-- Bills (append-only: no update/delete anywhere in the app)
CREATE TABLE IF NOT EXISTS bills(
  id TEXT PRIMARY KEY,
  customer_name TEXT NOT NULL,
  customer_phone TEXT,
  customer_email TEXT,
  type TEXT NOT NULL DEFAULT 'Sale' CHECK (type IN ('Sale','Service')),
  amount NUMERIC NOT NULL,
  date TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_bills_date ON bills(date);

CREATE TABLE IF NOT EXISTS bill_items(
  bill_id TEXT NOT NULL REFERENCES bills(id) ON DELETE CASCADE,
  line_no INTEGER NOT NULL,
  name TEXT NOT NULL,
  qty INTEGER NOT NULL CHECK (qty > 0),
  price NUMERIC NOT NULL CHECK (price >= 0),
  product_id TEXT,
  PRIMARY KEY (bill_id, line_no)
);

-- Investments (cash put into or spent on the shop)
CREATE TABLE IF NOT EXISTS investments(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  amount NUMERIC NOT NULL,
  date TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_investments_date ON investments(date);

-- Service tickets (repair jobs)
CREATE TABLE IF NOT EXISTS services(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  amount NUMERIC NOT NULL,
  date TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_services_date ON services(date);

-- Profit aggregates, one row per (type, date)
CREATE TABLE IF NOT EXISTS profits(
  id TEXT PRIMARY KEY,
  type TEXT NOT NULL CHECK (type IN ('daily','monthly')),
  date TEXT NOT NULL,
  profit NUMERIC NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT,
  UNIQUE(type, date)
);
`
	_, err := db.Exec(schema)
	return err
}

// SeedAdmin ensures a dashboard login exists (idempotent; safe on every start).
func SeedAdmin(db *sqlx.DB, username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return err
	}
	res, err := db.Exec(`
		INSERT INTO users(id, username, password_hash)
		VALUES(?, ?, ?)
		ON CONFLICT(username) DO NOTHING
	`, uuid.NewString(), username, string(hash))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		log.Printf("[seed] created admin user %q", username)
	}
	return nil
}
