package models

// NetworkRequest carries the player ids a relation set is requested for.
// Ids are not checked against the store, unknown ids pass through.
type NetworkRequest struct {
	PlayerIDs []int64 `json:"player_ids"`
}

// NetworkRelation is one weighted unordered pair of player ids.
// It is built fresh per request and never persisted.
type NetworkRelation struct {
	Player1ID int64   `json:"player1_id"`
	Player2ID int64   `json:"player2_id"`
	Weight    float64 `json:"weight"`
}
