package models

// Player represents the players table in the database.
type Player struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Team     string  `json:"team"`
	Position string  `json:"position"`
	Points   float64 `json:"points"`
	Assists  float64 `json:"assists"`
	Rebounds float64 `json:"rebounds"`
}

// PlayerCreate is the request body for creating a player. Fields are
// pointers so a missing key can be told apart from a zero value.
type PlayerCreate struct {
	Name     *string  `json:"name"`
	Team     *string  `json:"team"`
	Position *string  `json:"position"`
	Points   *float64 `json:"points"`
	Assists  *float64 `json:"assists"`
	Rebounds *float64 `json:"rebounds"`
}

// Validate reports every required field the request is missing.
// An empty map means the request is well formed.
func (p *PlayerCreate) Validate() map[string]string {
	fields := map[string]string{}
	if p.Name == nil {
		fields["name"] = "required"
	}
	if p.Team == nil {
		fields["team"] = "required"
	}
	if p.Position == nil {
		fields["position"] = "required"
	}
	if p.Points == nil {
		fields["points"] = "required"
	}
	if p.Assists == nil {
		fields["assists"] = "required"
	}
	if p.Rebounds == nil {
		fields["rebounds"] = "required"
	}
	return fields
}

// Player converts a validated request into the persisted shape.
// Call Validate first, dereferencing a missing field panics.
func (p *PlayerCreate) Player() Player {
	return Player{
		Name:     *p.Name,
		Team:     *p.Team,
		Position: *p.Position,
		Points:   *p.Points,
		Assists:  *p.Assists,
		Rebounds: *p.Rebounds,
	}
}
