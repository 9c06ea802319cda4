// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index records where every subject of a deck was placed in a
// SQLite database, so a subject can be found in a deck later by serial,
// image key or category.
package index

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/deckgen/internal/layout"
	"github.com/pdiddy/deckgen/pkg/types"
)

// Placement is one indexed subject.
type Placement struct {
	Deck     string `json:"deck" yaml:"deck"`
	Seq      int    `json:"seq" yaml:"seq"`
	Serial   string `json:"serial" yaml:"serial"`
	ImageKey string `json:"image_key" yaml:"image_key"`
	Category string `json:"category" yaml:"category"`
	Size     string `json:"size" yaml:"size"`
	Age      string `json:"age" yaml:"age"`

	// Slide and Column are 1-based, as a reader counts them in the deck.
	Slide  int `json:"slide" yaml:"slide"`
	Column int `json:"column" yaml:"column"`

	// Caption is the caption table text, cells joined row by row with " | ".
	Caption string `json:"caption" yaml:"caption"`

	RecordedAt time.Time `json:"recorded_at" yaml:"recorded_at"`
}

// Placements converts a plan into index rows. caption renders the caption
// text of a subject.
func Placements(deck string, plan layout.Plan, caption func(types.Subject) string) []Placement {
	entries := plan.Entries()
	out := make([]Placement, len(entries))
	for i, e := range entries {
		out[i] = Placement{
			Deck:     deck,
			Seq:      e.Placement.Index,
			Serial:   e.Subject.Serial,
			ImageKey: e.Subject.ImageKey,
			Category: e.Subject.Category,
			Size:     e.Subject.Size,
			Age:      e.Subject.Age,
			Slide:    e.Placement.Slide + 1,
			Column:   e.Placement.Column + 1,
			Caption:  caption(e.Subject),
		}
	}
	return out
}

// Store manages the placement database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the placement database at path and creates the
// schema if it does not exist.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating index directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS placements (
			deck TEXT NOT NULL,
			seq INTEGER NOT NULL,
			serial TEXT NOT NULL,
			image_key TEXT NOT NULL,
			category TEXT,
			size TEXT,
			age TEXT,
			slide INTEGER NOT NULL,
			col INTEGER NOT NULL,
			caption TEXT,
			recorded_at TEXT NOT NULL,
			PRIMARY KEY (deck, seq)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_placements_serial ON placements(serial)`,
		`CREATE INDEX IF NOT EXISTS idx_placements_image_key ON placements(image_key)`,
		`CREATE INDEX IF NOT EXISTS idx_placements_category ON placements(category)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record replaces every row of deck with rows in a single transaction.
func (s *Store) Record(ctx context.Context, deck string, rows []Placement) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM placements WHERE deck = ?`, deck); err != nil {
		return fmt.Errorf("deleting old placements: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO placements (deck, seq, serial, image_key, category, size, age, slide, col, caption, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	stamp := s.now().UTC().Format(time.RFC3339Nano)
	for _, r := range rows {
		_, err := stmt.ExecContext(ctx,
			deck, r.Seq, r.Serial, r.ImageKey, r.Category, r.Size, r.Age,
			r.Slide, r.Column, r.Caption, stamp,
		)
		if err != nil {
			return fmt.Errorf("inserting placement %s: %w", r.Serial, err)
		}
	}

	return tx.Commit()
}

// Find returns the placements whose serial, image key or category equals
// term, ordered by deck then sequence.
func (s *Store) Find(ctx context.Context, term string) ([]Placement, error) {
	return s.query(ctx,
		`WHERE serial = ? OR image_key = ? OR category = ? ORDER BY deck, seq`,
		term, term, term)
}

// Deck returns every placement of deck in sequence order.
func (s *Store) Deck(ctx context.Context, deck string) ([]Placement, error) {
	return s.query(ctx, `WHERE deck = ? ORDER BY seq`, deck)
}

// Decks returns the names of all recorded decks.
func (s *Store) Decks(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT deck FROM placements ORDER BY deck`)
	if err != nil {
		return nil, fmt.Errorf("listing decks: %w", err)
	}
	defer rows.Close()

	var decks []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scanning deck: %w", err)
		}
		decks = append(decks, d)
	}
	return decks, rows.Err()
}

func (s *Store) query(ctx context.Context, where string, args ...any) ([]Placement, error) {
	var qb strings.Builder
	qb.WriteString(
		`SELECT deck, seq, serial, image_key, category, size, age, slide, col, caption, recorded_at
		FROM placements `)
	qb.WriteString(where)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying placements: %w", err)
	}
	defer rows.Close()

	var out []Placement
	for rows.Next() {
		var (
			p                         Placement
			category, size, age, capt sql.NullString
			recorded                  string
		)
		if err := rows.Scan(&p.Deck, &p.Seq, &p.Serial, &p.ImageKey, &category, &size, &age,
			&p.Slide, &p.Column, &capt, &recorded); err != nil {
			return nil, fmt.Errorf("scanning placement: %w", err)
		}
		p.Category, p.Size, p.Age, p.Caption = category.String, size.String, age.String, capt.String
		if ts, err := time.Parse(time.RFC3339Nano, recorded); err == nil {
			p.RecordedAt = ts
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
