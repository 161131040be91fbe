// Package storage provides SQLite-based persistence for battle outcomes.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/LilyAvelis/battle-arena/internal/battle"
)

// Store manages the SQLite database connection for outcome persistence.
type Store struct {
	db *sql.DB
}

// OutcomeEntry is a stored battle outcome.
type OutcomeEntry struct {
	ID int64
	battle.Outcome
	CreatedAt time.Time
}

// PlayerStats summarizes every stored battle for one player.
type PlayerStats struct {
	Player      string
	Battles     int
	DamageTaken int
	Defeats     int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS outcomes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			enemy_kind TEXT NOT NULL,
			damage INTEGER NOT NULL,
			health_before INTEGER NOT NULL,
			health_after INTEGER NOT NULL,
			healed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_outcomes_player ON outcomes(player);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveOutcome records a resolved attack.
// Returns the ID of the inserted record.
func (s *Store) SaveOutcome(o battle.Outcome) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO outcomes (player, enemy_kind, damage, health_before, health_after, healed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		o.Player, o.EnemyKind, o.Damage, o.HealthBefore, o.HealthAfter, o.Healed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save outcome: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentOutcomes retrieves the latest outcomes across all players, newest first.
func (s *Store) RecentOutcomes(limit int) ([]OutcomeEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryOutcomes(
		`SELECT id, player, enemy_kind, damage, health_before, health_after, healed, created_at
		 FROM outcomes
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// OutcomesForPlayer retrieves the latest outcomes for one player, newest first.
func (s *Store) OutcomesForPlayer(player string, limit int) ([]OutcomeEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryOutcomes(
		`SELECT id, player, enemy_kind, damage, health_before, health_after, healed, created_at
		 FROM outcomes
		 WHERE player = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		player, limit,
	)
}

func (s *Store) queryOutcomes(query string, args ...any) ([]OutcomeEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query outcomes: %w", err)
	}
	defer rows.Close()

	var entries []OutcomeEntry
	for rows.Next() {
		var e OutcomeEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID, &e.Player, &e.EnemyKind, &e.Damage,
			&e.HealthBefore, &e.HealthAfter, &e.Healed, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats aggregates all stored outcomes for the given player.
func (s *Store) Stats(player string) (PlayerStats, error) {
	stats := PlayerStats{Player: player}

	var taken, defeats sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        SUM(health_before - health_after + healed),
		        SUM(CASE WHEN health_after = 0 THEN 1 ELSE 0 END)
		 FROM outcomes
		 WHERE player = ?`,
		player,
	).Scan(&stats.Battles, &taken, &defeats)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	if taken.Valid {
		stats.DamageTaken = int(taken.Int64)
	}
	if defeats.Valid {
		stats.Defeats = int(defeats.Int64)
	}

	return stats, nil
}

// ClearOutcomes deletes all outcomes for the given player.
func (s *Store) ClearOutcomes(player string) error {
	_, err := s.db.Exec("DELETE FROM outcomes WHERE player = ?", player)
	if err != nil {
		return fmt.Errorf("storage: cannot clear outcomes: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
