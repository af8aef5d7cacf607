package service

import (
	"context"
	"fmt"

	"github.com/hoopstats/hoop-services/internal/playersvc/models"
	"github.com/hoopstats/hoop-services/internal/playersvc/store"
)

// PlayerService struct represents the player service layer
type PlayerService struct {
	playerStore *store.PlayerStore
}

// samplePlayers is the fixed demo roster inserted by SeedSampleData.
var samplePlayers = []models.Player{
	{Name: "Stephen Curry", Team: "GSW", Position: "PG", Points: 32.1, Assists: 7.1, Rebounds: 5.2},
	{Name: "LeBron James", Team: "LAL", Position: "SF", Points: 28.9, Assists: 8.3, Rebounds: 8.1},
	{Name: "Giannis Antetokounmpo", Team: "MIL", Position: "PF", Points: 29.7, Assists: 5.8, Rebounds: 11.5},
	{Name: "Luka Doncic", Team: "DAL", Position: "PG", Points: 32.4, Assists: 8.0, Rebounds: 8.6},
	{Name: "Nikola Jokic", Team: "DEN", Position: "C", Points: 26.4, Assists: 9.1, Rebounds: 11.8},
}

// NewPlayerService creates a new PlayerService instance
func NewPlayerService(playerStore *store.PlayerStore) *PlayerService {
	return &PlayerService{
		playerStore: playerStore,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]models.Player, error) {
	return s.playerStore.List(ctx)
}

// CreatePlayer persists a validated create request and returns the
// stored record with its assigned id.
func (s *PlayerService) CreatePlayer(ctx context.Context, req models.PlayerCreate) (*models.Player, error) {
	player := req.Player()

	id, err := s.playerStore.Create(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %v", err)
	}

	player.ID = id
	return &player, nil
}

// SeedSampleData inserts the fixed five-player demo roster.
func (s *PlayerService) SeedSampleData(ctx context.Context) error {
	return s.playerStore.SeedSample(ctx, samplePlayers)
}
