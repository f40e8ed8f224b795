// Session ledger for finished rounds.
//
// Backed by an in-memory SQLite database: rich enough for a rounds table
// and aggregate queries, gone the moment the process exits. The store is
// best-effort during play (callers log and move on) and only fatal at
// startup if the schema cannot be created.

package session

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE rounds (
    id          TEXT PRIMARY KEY,
    word        TEXT NOT NULL,
    guesses     INTEGER NOT NULL,
    won         INTEGER NOT NULL,
    finished_at TEXT NOT NULL
);
CREATE TABLE stats (
    id     INTEGER PRIMARY KEY CHECK (id = 1),
    played INTEGER NOT NULL DEFAULT 0,
    wins   INTEGER NOT NULL DEFAULT 0,
    streak INTEGER NOT NULL DEFAULT 0
);
INSERT INTO stats (id) VALUES (1);
`

// Store records finished rounds and answers aggregate questions about the
// session so far.
type Store struct {
	db *sql.DB
}

// Open creates the in-memory database and its schema.
func Open(ctx context.Context) (*Store, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	// Every pooled connection would get its own empty :memory: database;
	// pin the pool to the one that holds our tables.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database. All recorded state vanishes with it.
func (s *Store) Close() error { return s.db.Close() }

// Round is one finished round: the word that was in play, how many guesses
// it took, and whether the player found it.
type Round struct {
	Word    string
	Guesses int
	Won     bool
}

// RecordRound appends r to the ledger and updates the running counters in a
// single transaction. A win extends the streak; a loss resets it.
func (s *Store) RecordRound(ctx context.Context, r Round) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	finished := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO rounds (id, word, guesses, won, finished_at) VALUES (?,?,?,?,?)`,
		randomID(), r.Word, r.Guesses, boolToInt(r.Won), finished,
	); err != nil {
		return fmt.Errorf("insert round: %w", err)
	}

	var played, wins, streak int
	if err := tx.QueryRowContext(ctx,
		`SELECT played, wins, streak FROM stats WHERE id=1`,
	).Scan(&played, &wins, &streak); err != nil {
		return fmt.Errorf("read stats: %w", err)
	}
	played++
	if r.Won {
		wins++
		streak++
	} else {
		streak = 0
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE stats SET played=?, wins=?, streak=? WHERE id=1`,
		played, wins, streak,
	); err != nil {
		return fmt.Errorf("update stats: %w", err)
	}

	return tx.Commit()
}

// Summary aggregates the session so far.
type Summary struct {
	Played        int     // rounds finished (won or lost)
	Wins          int     // rounds won
	Streak        int     // consecutive wins ending at the latest round
	AvgWinGuesses float64 // mean guesses over winning rounds; 0 when no wins
}

// Summary reads the running counters and the average guesses per win.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	var sum Summary
	if err := s.db.QueryRowContext(ctx,
		`SELECT played, wins, streak FROM stats WHERE id=1`,
	).Scan(&sum.Played, &sum.Wins, &sum.Streak); err != nil {
		return Summary{}, fmt.Errorf("read stats: %w", err)
	}
	if err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(AVG(guesses), 0) FROM rounds WHERE won=1`,
	).Scan(&sum.AvgWinGuesses); err != nil {
		return Summary{}, fmt.Errorf("read win average: %w", err)
	}
	return sum, nil
}

// randomID returns a compact 16-hex-char identifier for a ledger row.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
