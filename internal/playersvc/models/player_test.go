package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerCreateValidateReportsEveryMissingField(t *testing.T) {
	var req PlayerCreate
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))

	fields := req.Validate()
	assert.Len(t, fields, 6)
	for _, name := range []string{"name", "team", "position", "points", "assists", "rebounds"} {
		assert.Equal(t, "required", fields[name])
	}
}

func TestPlayerCreateValidateAcceptsFullBody(t *testing.T) {
	body := `{"name":"Luka Doncic","team":"DAL","position":"PG","points":32.4,"assists":8.0,"rebounds":8.6}`

	var req PlayerCreate
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Empty(t, req.Validate())

	p := req.Player()
	assert.Equal(t, "Luka Doncic", p.Name)
	assert.Equal(t, "DAL", p.Team)
	assert.Equal(t, "PG", p.Position)
	assert.Equal(t, 32.4, p.Points)
	assert.Equal(t, 8.0, p.Assists)
	assert.Equal(t, 8.6, p.Rebounds)
	assert.Equal(t, int64(0), p.ID)
}

func TestPlayerCreateNullFieldIsMissing(t *testing.T) {
	body := `{"name":null,"team":"DAL","position":"PG","points":32.4,"assists":8.0,"rebounds":8.6}`

	var req PlayerCreate
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, "required", req.Validate()["name"])
}

func TestPlayerCreateZeroValuesAreValid(t *testing.T) {
	body := `{"name":"","team":"","position":"","points":0,"assists":0,"rebounds":0}`

	var req PlayerCreate
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Empty(t, req.Validate())
}
