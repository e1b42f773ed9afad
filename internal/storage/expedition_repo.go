package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/summitworks/expedition/internal/sim"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusAbandoned = "abandoned"
)

// ExpeditionRepo persists engine snapshots. The engine stays persistence
// free; this repo is the collaborator that saves and restores the bundle.
type ExpeditionRepo struct {
	db *sql.DB
}

func NewExpeditionRepo(db *sql.DB) *ExpeditionRepo {
	return &ExpeditionRepo{db: db}
}

// Record is the queryable summary row kept alongside the snapshot blob.
type Record struct {
	ID             string
	MountainName   string
	Status         string
	TotalSteps     int
	TotalElevation float64
	StartedAt      time.Time
	CompletedAt    *time.Time
}

// SaveActive upserts the single active expedition row from a snapshot.
func (r *ExpeditionRepo) SaveActive(ctx context.Context, snap sim.Snapshot) error {
	if snap.Expedition == nil {
		return errors.New("snapshot has no expedition")
	}

	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	exp := snap.Expedition
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO expeditions (id, mountain_id, mountain_name, status, total_steps, total_elevation, started_at, updated_at, snapshot)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			total_steps = excluded.total_steps,
			total_elevation = excluded.total_elevation,
			updated_at = excluded.updated_at,
			snapshot = excluded.snapshot`,
		exp.ID.String(), exp.MountainID.String(), snap.Mountain.Name, StatusActive,
		exp.TotalSteps, exp.TotalElevation, exp.StartDate.UTC(), exp.LastUpdateDate.UTC(), blob)
	if err != nil {
		return fmt.Errorf("save expedition: %w", err)
	}
	return nil
}

// LoadActive restores the active snapshot, reporting false when none exists.
func (r *ExpeditionRepo) LoadActive(ctx context.Context) (sim.Snapshot, bool, error) {
	var blob []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT snapshot FROM expeditions WHERE status = ? ORDER BY updated_at DESC LIMIT 1`,
		StatusActive).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return sim.Snapshot{}, false, nil
	}
	if err != nil {
		return sim.Snapshot{}, false, fmt.Errorf("load expedition: %w", err)
	}

	var snap sim.Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return sim.Snapshot{}, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, true, nil
}

// Archive moves the active expedition to a terminal status.
func (r *ExpeditionRepo) Archive(ctx context.Context, snap sim.Snapshot, status string) error {
	if snap.Expedition == nil {
		return errors.New("snapshot has no expedition")
	}
	if status != StatusCompleted && status != StatusAbandoned {
		return fmt.Errorf("invalid archive status %q", status)
	}

	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	var completedAt any
	if snap.Expedition.CompletionDate != nil {
		completedAt = snap.Expedition.CompletionDate.UTC()
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE expeditions
		SET status = ?, total_steps = ?, total_elevation = ?, updated_at = ?, completed_at = ?, snapshot = ?
		WHERE id = ?`,
		status, snap.Expedition.TotalSteps, snap.Expedition.TotalElevation,
		snap.Expedition.LastUpdateDate.UTC(), completedAt, blob, snap.Expedition.ID.String())
	if err != nil {
		return fmt.Errorf("archive expedition: %w", err)
	}
	return nil
}

// Delete removes the active expedition row outright (abandon without history).
func (r *ExpeditionRepo) DeleteActive(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM expeditions WHERE status = ?`, StatusActive); err != nil {
		return fmt.Errorf("delete active expedition: %w", err)
	}
	return nil
}

// ListCompleted returns summary rows for finished expeditions, newest first.
func (r *ExpeditionRepo) ListCompleted(ctx context.Context) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, mountain_name, status, total_steps, total_elevation, started_at, completed_at
		FROM expeditions WHERE status = ? ORDER BY completed_at DESC`,
		StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("list completed: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var completedAt sql.NullTime
		if err := rows.Scan(&rec.ID, &rec.MountainName, &rec.Status, &rec.TotalSteps, &rec.TotalElevation, &rec.StartedAt, &completedAt); err != nil {
			return nil, fmt.Errorf("scan completed row: %w", err)
		}
		if completedAt.Valid {
			t := completedAt.Time
			rec.CompletedAt = &t
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Stats aggregates lifetime climbing totals over completed expeditions.
type Stats struct {
	Completed      int
	TotalSteps     int
	TotalElevation float64
}

func (r *ExpeditionRepo) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_steps), 0), COALESCE(SUM(total_elevation), 0)
		FROM expeditions WHERE status = ?`,
		StatusCompleted).Scan(&s.Completed, &s.TotalSteps, &s.TotalElevation)
	if err != nil {
		return Stats{}, fmt.Errorf("expedition stats: %w", err)
	}
	return s, nil
}
