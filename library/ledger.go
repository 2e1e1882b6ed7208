package library

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// Event kinds recorded by the ledger.
const (
	EventBorrow   = "borrow"
	EventReturn   = "return"
	EventPurchase = "purchase"
	EventFine     = "fine"
	EventDay      = "day"
)

// LedgerEntry is one recorded session event. Amount carries the fine or
// purchase value, Days the borrow duration; either may be zero depending
// on Kind.
type LedgerEntry struct {
	ID     int64     `db:"id"`
	ItemID int       `db:"item_id"`
	Kind   string    `db:"kind"`
	Amount int       `db:"amount"`
	Days   int       `db:"days"`
	At     time.Time `db:"at"`
}

// Ledger records session activity in an in-memory SQLite database. It is
// an audit trail, not authoritative state; everything dies with the
// process.
type Ledger struct {
	db      *sqlx.DB
	session uuid.UUID

	insertStmt *sqlx.Stmt
}

// NewLedger opens a private in-memory database named after a fresh session
// id. A shared cache plus a single connection keeps the sql pool from
// silently opening a second, empty database.
func NewLedger() (*Ledger, error) {
	session := uuid.New()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", session)
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open ledger")
	}
	db.SetMaxOpenConns(1)

	if err := applyLedgerSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	l := &Ledger{db: db, session: session}
	l.insertStmt, err = db.Preparex(
		`INSERT INTO events(session, item_id, kind, amount, days) VALUES(?,?,?,?,?)`)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "prepare insert")
	}
	return l, nil
}

func applyLedgerSchema(db *sqlx.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS events (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        session TEXT NOT NULL,
        item_id INTEGER NOT NULL DEFAULT 0,
        kind TEXT NOT NULL,
        amount INTEGER NOT NULL DEFAULT 0,
        days INTEGER NOT NULL DEFAULT 0,
        at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
    );`)
	return errors.Wrap(err, "apply ledger schema")
}

// Close releases the prepared statement and closes the database.
func (l *Ledger) Close() error {
	if l.insertStmt != nil {
		l.insertStmt.Close()
	}
	return l.db.Close()
}

// Session identifies this process run in every recorded row.
func (l *Ledger) Session() uuid.UUID { return l.session }

// RecordBorrow writes the borrow and its fine posting in one transaction,
// mirroring the atomic step the catalog applied.
func (l *Ledger) RecordBorrow(itemID, days, fine int) error {
	tx, err := l.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	const insert = `INSERT INTO events(session, item_id, kind, amount, days) VALUES(?,?,?,?,?)`
	if _, err := tx.Exec(insert, l.session.String(), itemID, EventBorrow, 0, days); err != nil {
		return errors.Wrap(err, "record borrow")
	}
	if _, err := tx.Exec(insert, l.session.String(), itemID, EventFine, fine, 0); err != nil {
		return errors.Wrap(err, "record fine")
	}
	return errors.Wrap(tx.Commit(), "commit borrow")
}

// RecordReturn writes the return and, for an overdue loan, the extra fee
// posting in one transaction.
func (l *Ledger) RecordReturn(itemID, overdueFee int) error {
	tx, err := l.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	const insert = `INSERT INTO events(session, item_id, kind, amount, days) VALUES(?,?,?,?,?)`
	if _, err := tx.Exec(insert, l.session.String(), itemID, EventReturn, 0, 0); err != nil {
		return errors.Wrap(err, "record return")
	}
	if overdueFee > 0 {
		if _, err := tx.Exec(insert, l.session.String(), itemID, EventFine, overdueFee, 0); err != nil {
			return errors.Wrap(err, "record overdue fee")
		}
	}
	return errors.Wrap(tx.Commit(), "commit return")
}

// RecordPurchase writes a single purchase row.
func (l *Ledger) RecordPurchase(itemID, price int) error {
	_, err := l.insertStmt.Exec(l.session.String(), itemID, EventPurchase, price, 0)
	return errors.Wrap(err, "record purchase")
}

// RecordDay writes a day tick. Item id zero means catalog-wide.
func (l *Ledger) RecordDay() error {
	_, err := l.insertStmt.Exec(l.session.String(), 0, EventDay, 0, 0)
	return errors.Wrap(err, "record day")
}

// Recent returns the newest entries first, up to limit. A non-positive
// limit defaults to 20.
func (l *Ledger) Recent(limit int) ([]LedgerEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	var entries []LedgerEntry
	err := l.db.Select(&entries,
		`SELECT id, item_id, kind, amount, days, at FROM events ORDER BY id DESC LIMIT ?`, limit)
	return entries, errors.Wrap(err, "query recent events")
}

// CountByKind tallies recorded events per kind.
func (l *Ledger) CountByKind() (map[string]int, error) {
	rows, err := l.db.Queryx(`SELECT kind, COUNT(*) AS n FROM events GROUP BY kind`)
	if err != nil {
		return nil, errors.Wrap(err, "query event counts")
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, errors.Wrap(err, "scan event count")
		}
		counts[kind] = n
	}
	return counts, errors.Wrap(rows.Err(), "iterate event counts")
}
