// Package repository contains data access logic for the booking engine.
// This file covers nights. Nights are seeded out-of-band and never written
// by the HTTP service, so the repository only exposes lookups plus a
// Create used by the seed command.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"errors"       // errors for sentinel comparisons

	"github.com/tavolo/night-booking/internal/model"
)

// NightRepo manages persistence for nights.
type NightRepo struct {
	db *sql.DB
}

// NewNightRepo returns a new NightRepo bound to the given database.
func NewNightRepo(db *sql.DB) *NightRepo { return &NightRepo{db: db} }

const nightColumns = `id, short_id, title, date_label, time_label, color, hover_color, is_active, created_at`

// scanNight reads one night row from the given scanner, converting the
// nullable is_active column into the model's optional flag.
func scanNight(row interface{ Scan(...any) error }) (*model.Night, error) {
	var n model.Night
	var isActive sql.NullBool
	if err := row.Scan(
		&n.ID, &n.ShortID, &n.Title, &n.DateLabel, &n.TimeLabel,
		&n.Color, &n.HoverColor, &isActive, &n.CreatedAt,
	); err != nil {
		return nil, err
	}
	if isActive.Valid {
		v := isActive.Bool
		n.IsActive = &v
	}
	return &n, nil
}

// GetByID returns the night with the given primary key. It returns
// ErrNightNotFound when no such night exists.
func (r *NightRepo) GetByID(ctx context.Context, id uint64) (*model.Night, error) {
	const q = `SELECT ` + nightColumns + ` FROM nights WHERE id = ?`
	n, err := scanNight(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNightNotFound
	}
	return n, err
}

// GetByShortID returns the night with the given human-facing short id
// (the URL token, e.g. "1"). Short ids are unique across all nights. It
// returns ErrNightNotFound when no such night exists.
func (r *NightRepo) GetByShortID(ctx context.Context, shortID string) (*model.Night, error) {
	const q = `SELECT ` + nightColumns + ` FROM nights WHERE short_id = ?`
	n, err := scanNight(r.db.QueryRowContext(ctx, q, shortID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNightNotFound
	}
	return n, err
}

// ListAll returns every night, active nights first, then lexicographically
// by short id within each group. Nights without an is_active value count
// as active.
func (r *NightRepo) ListAll(ctx context.Context) ([]model.Night, error) {
	const q = `SELECT ` + nightColumns + ` FROM nights
	           ORDER BY COALESCE(is_active, TRUE) DESC, short_id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	nights := make([]model.Night, 0)
	for rows.Next() {
		n, err := scanNight(rows)
		if err != nil {
			return nil, err
		}
		nights = append(nights, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return nights, nil
}

// Create inserts a new night and populates the generated ID and DB-default
// fields on the provided struct. It exists for the seed command; the HTTP
// service never creates nights.
func (r *NightRepo) Create(ctx context.Context, n *model.Night) error {
	const q = `INSERT INTO nights (short_id, title, date_label, time_label, color, hover_color, is_active)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	var isActive any
	if n.IsActive != nil {
		isActive = *n.IsActive
	}
	res, err := r.db.ExecContext(ctx, q, n.ShortID, n.Title, n.DateLabel, n.TimeLabel, n.Color, n.HoverColor, isActive)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	n.ID = uint64(id)
	const sel = `SELECT ` + nightColumns + ` FROM nights WHERE id = ?`
	created, err := scanNight(r.db.QueryRowContext(ctx, sel, n.ID))
	if err != nil {
		return err
	}
	*n = *created
	return nil
}
