package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hoopstats/hoop-services/internal/playersvc/models"
)

type PlayerStore struct {
	db *sql.DB
}

func NewPlayerStore(db *sql.DB) *PlayerStore {
	return &PlayerStore{db: db}
}

// List returns every player in the store. No ORDER BY is applied,
// row order is whatever SQLite returns.
func (s *PlayerStore) List(ctx context.Context) ([]models.Player, error) {
	query := `
		SELECT id, name, team, position, points, assists, rebounds
		FROM players
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not list players: %v", err)
	}
	defer rows.Close()

	players := []models.Player{}
	for rows.Next() {
		var p models.Player
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Team,
			&p.Position,
			&p.Points,
			&p.Assists,
			&p.Rebounds,
		)
		if err != nil {
			return nil, fmt.Errorf("could not scan player row: %v", err)
		}
		players = append(players, p)
	}

	return players, rows.Err()
}

// Create inserts one player row and returns the id SQLite assigned.
func (s *PlayerStore) Create(ctx context.Context, player models.Player) (int64, error) {
	query := `
        INSERT INTO players (name, team, position, points, assists, rebounds)
        VALUES (?, ?, ?, ?, ?, ?);
    `

	res, err := s.db.ExecContext(ctx, query,
		player.Name, player.Team, player.Position,
		player.Points, player.Assists, player.Rebounds)
	if err != nil {
		return 0, fmt.Errorf("could not create player: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("could not read assigned player id: %v", err)
	}

	return id, nil
}

// SeedSample inserts the given players in one transaction. There is no
// deduplication, seeding twice doubles the rows with fresh ids.
func (s *PlayerStore) SeedSample(ctx context.Context, players []models.Player) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin seed transaction: %v", err)
	}

	query := `
        INSERT INTO players (name, team, position, points, assists, rebounds)
        VALUES (?, ?, ?, ?, ?, ?);
    `

	for _, p := range players {
		if _, err := tx.ExecContext(ctx, query,
			p.Name, p.Team, p.Position, p.Points, p.Assists, p.Rebounds); err != nil {
			tx.Rollback()
			return fmt.Errorf("could not seed player %q: %v", p.Name, err)
		}
	}

	return tx.Commit()
}
