package repository

import (
	"context"
	"fmt"

	"railway-planner/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HistoryRepository stores planned journeys in PostgreSQL
type HistoryRepository struct {
	db *pgxpool.Pool
}

// NewHistoryRepository creates a new PostgreSQL history repository
func NewHistoryRepository(db *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// EnsureSchema creates the search_history table if it does not exist
func (r *HistoryRepository) EnsureSchema(ctx context.Context) error {
	sql := `
		CREATE TABLE IF NOT EXISTS search_history (
			id BIGSERIAL PRIMARY KEY,
			from_lat DOUBLE PRECISION NOT NULL,
			from_lon DOUBLE PRECISION NOT NULL,
			to_lat DOUBLE PRECISION NOT NULL,
			to_lon DOUBLE PRECISION NOT NULL,
			radius_km DOUBLE PRECISION NOT NULL,
			outcome VARCHAR(16) NOT NULL,
			result_count INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS search_history_created_at_idx ON search_history (created_at DESC);
	`
	if _, err := r.db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("repository: failed to create search_history: %w", err)
	}
	return nil
}

// SaveSearch inserts rec and fills in its ID and CreatedAt
func (r *HistoryRepository) SaveSearch(ctx context.Context, rec *models.SearchRecord) error {
	sql := `
		INSERT INTO search_history (from_lat, from_lon, to_lat, to_lon, radius_km, outcome, result_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, sql,
		rec.FromLat,
		rec.FromLon,
		rec.ToLat,
		rec.ToLon,
		rec.RadiusKm,
		rec.Outcome,
		rec.ResultCount,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("repository: failed to insert search: %w", err)
	}
	return nil
}

// RecentSearches returns up to limit searches, newest first
func (r *HistoryRepository) RecentSearches(ctx context.Context, limit int) ([]models.SearchRecord, error) {
	sql := `
		SELECT
			id,
			from_lat,
			from_lon,
			to_lat,
			to_lon,
			radius_km,
			outcome,
			result_count,
			created_at
		FROM search_history
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute history query: %w", err)
	}
	defer rows.Close()

	records := []models.SearchRecord{}
	for rows.Next() {
		var rec models.SearchRecord
		err := rows.Scan(
			&rec.ID,
			&rec.FromLat,
			&rec.FromLon,
			&rec.ToLat,
			&rec.ToLon,
			&rec.RadiusKm,
			&rec.Outcome,
			&rec.ResultCount,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan search: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return records, nil
}
