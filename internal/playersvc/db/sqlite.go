package db

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// schema holds the full relational shape of the store file.
// AUTOINCREMENT keeps assigned ids stable and never reused,
// even after rows are removed out of band.
const schema = `
CREATE TABLE IF NOT EXISTS players (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    team TEXT NOT NULL,
    position TEXT NOT NULL,
    points REAL NOT NULL,
    assists REAL NOT NULL,
    rebounds REAL NOT NULL
);
`

// Connect opens the SQLite store file, verifies it is reachable and
// makes sure the schema exists.
func Connect(path string) (*sql.DB, error) {
	database, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Try pinging to make sure it's valid
	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, err
	}

	if _, err := database.ExecContext(ctx, schema); err != nil {
		database.Close()
		return nil, err
	}

	return database, nil
}
