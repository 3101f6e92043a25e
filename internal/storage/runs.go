package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/skyhop-dev/skyhop/internal/core"
)

// RunRecord is one finished run with its statistics.
type RunRecord struct {
	ID                int64     `json:"id"`
	GameID            string    `json:"game_id"`
	SessionID         string    `json:"session_id,omitempty"` // SSH session, empty for local play
	Score             int       `json:"score"`
	Distance          float64   `json:"distance"`
	Ticks             int       `json:"ticks"`
	Jumps             int       `json:"jumps"`
	EnemiesDefeated   int       `json:"enemies_defeated"`
	PowerUpsCollected int       `json:"powerups_collected"`
	Cause             string    `json:"cause"`
	CreatedAt         time.Time `json:"created_at"`
}

const runColumns = `id, game_id, session_id, score, distance, ticks, jumps,
	enemies_defeated, powerups_collected, cause, created_at`

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(gameID, sessionID string, sum core.RunSummary) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs
		 (game_id, session_id, score, distance, ticks, jumps, enemies_defeated, powerups_collected, cause)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		gameID,
		sessionID,
		sum.Score,
		sum.Distance,
		sum.Ticks,
		sum.Jumps,
		sum.EnemiesDefeated,
		sum.PowerUpsCollected,
		sum.Cause,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs across all sessions, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// SessionRuns retrieves run history for a specific session, newest first.
func (s *Store) SessionRuns(sessionID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE session_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]RunRecord, error) {
	defer rows.Close()

	var results []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.GameID,
			&r.SessionID,
			&r.Score,
			&r.Distance,
			&r.Ticks,
			&r.Jumps,
			&r.EnemiesDefeated,
			&r.PowerUpsCollected,
			&r.Cause,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}
