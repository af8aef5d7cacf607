package service

import (
	"math/rand"

	"github.com/hoopstats/hoop-services/internal/playersvc/models"
)

const (
	weightMin = 0.7
	weightMax = 1.0
)

// WeightFunc scores one pair of players. The default draws a random
// placeholder weight, a real relation model can be plugged in here
// without touching pair enumeration.
type WeightFunc func() float64

// NetworkService struct represents the relation generator layer
type NetworkService struct {
	weight WeightFunc
}

// NewNetworkService creates a NetworkService with the placeholder
// random weighting.
func NewNetworkService() *NetworkService {
	return &NetworkService{weight: randomWeight}
}

// Relations emits one weighted relation per unordered pair of input
// positions (i < j in list order). Duplicate ids are distinct positions
// and pair with each other. Fewer than two ids yields an empty list.
func (s *NetworkService) Relations(playerIDs []int64) []models.NetworkRelation {
	n := len(playerIDs)
	relations := make([]models.NetworkRelation, 0, n*(n-1)/2)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			relations = append(relations, models.NetworkRelation{
				Player1ID: playerIDs[i],
				Player2ID: playerIDs[j],
				Weight:    s.weight(),
			})
		}
	}

	return relations
}

// randomWeight stands in for a relation-scoring model that does not
// exist yet. Uniform over [0.7, 1.0).
func randomWeight() float64 {
	return weightMin + rand.Float64()*(weightMax-weightMin)
}
