// Package store persists budget documents together with their computed
// totals. The engine itself never touches storage; callers compute first and
// hand both the definition and the result to the store.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Poldin/budgez-sub003/internal/engine"
)

// ErrNotFound is returned when a budget id does not exist.
var ErrNotFound = errors.New("budget not found")

// Store wraps the budgets table.
type Store struct {
	db *sql.DB
}

// New constructs a Store on top of an open database.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Budget is a persisted budget document with its stored breakdown.
type Budget struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Notes      string        `json:"notes,omitempty"`
	CreatedAt  string        `json:"createdAt"`
	Definition engine.Input  `json:"definition"`
	Totals     engine.Result `json:"totals"`
}

// Summary is the list-view projection of a budget.
type Summary struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	CreatedAt  string  `json:"createdAt"`
	Currency   string  `json:"currency"`
	GrandTotal float64 `json:"grandTotal"`
}

// Save inserts a new budget with its computed totals and returns the stored
// record.
func (s *Store) Save(ctx context.Context, title, notes string, def engine.Input, totals engine.Result) (Budget, error) {
	defJSON, err := json.Marshal(def)
	if err != nil {
		return Budget{}, fmt.Errorf("marshal budget definition: %w", err)
	}
	totalsJSON, err := json.Marshal(totals)
	if err != nil {
		return Budget{}, fmt.Errorf("marshal budget totals: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO budgets (id, title, notes, currency, definition_json, totals_json)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, title, notes, def.Currency, string(defJSON), string(totalsJSON))
	if err != nil {
		return Budget{}, fmt.Errorf("insert budget: %w", err)
	}

	return s.Get(ctx, id)
}

// Get fetches one budget by id.
func (s *Store) Get(ctx context.Context, id string) (Budget, error) {
	var b Budget
	var defJSON, totalsJSON string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, COALESCE(notes, ''), created_at, definition_json, totals_json
		FROM budgets
		WHERE id = ?
	`, id).Scan(&b.ID, &b.Title, &b.Notes, &b.CreatedAt, &defJSON, &totalsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return Budget{}, ErrNotFound
	}
	if err != nil {
		return Budget{}, fmt.Errorf("query budget: %w", err)
	}

	if err := json.Unmarshal([]byte(defJSON), &b.Definition); err != nil {
		return Budget{}, fmt.Errorf("decode budget definition: %w", err)
	}
	if err := json.Unmarshal([]byte(totalsJSON), &b.Totals); err != nil {
		return Budget{}, fmt.Errorf("decode budget totals: %w", err)
	}
	return b, nil
}

// List returns budget summaries, newest first, optionally filtered by a
// title/notes substring.
func (s *Store) List(ctx context.Context, query string) ([]Summary, error) {
	search := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, created_at, currency, totals_json
		FROM budgets
		WHERE (? = '' OR title LIKE ? OR COALESCE(notes, '') LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search)
	if err != nil {
		return nil, fmt.Errorf("query budgets: %w", err)
	}
	defer rows.Close()

	summaries := make([]Summary, 0)
	for rows.Next() {
		var item Summary
		var totalsJSON string
		if err := rows.Scan(&item.ID, &item.Title, &item.CreatedAt, &item.Currency, &totalsJSON); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		var totals engine.Result
		if err := json.Unmarshal([]byte(totalsJSON), &totals); err != nil {
			return nil, fmt.Errorf("decode budget totals: %w", err)
		}
		item.GrandTotal = totals.GrandTotal
		summaries = append(summaries, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate budgets: %w", err)
	}
	return summaries, nil
}

// Count returns the number of stored budgets.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM budgets`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count budgets: %w", err)
	}
	return count, nil
}
