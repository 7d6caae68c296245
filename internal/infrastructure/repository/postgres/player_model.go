package postgres

import "database/sql"

type playerTableModel struct {
	ID           int64          `db:"player_id"`
	FullName     string         `db:"full_name"`
	Role         sql.NullString `db:"role"`
	BattingStyle sql.NullString `db:"batting_style"`
	BowlingStyle sql.NullString `db:"bowling_style"`
	TeamID       sql.NullInt64  `db:"team_id"`
}

// playerWriteModel leaves the identity column to the database on insert.
type playerWriteModel struct {
	FullName     string  `db:"full_name"`
	Role         *string `db:"role"`
	BattingStyle *string `db:"batting_style"`
	BowlingStyle *string `db:"bowling_style"`
	TeamID       *int64  `db:"team_id"`
}

type playerUpdateModel struct {
	ID           int64   `db:"player_id"`
	FullName     string  `db:"full_name"`
	Role         *string `db:"role"`
	BattingStyle *string `db:"batting_style"`
	BowlingStyle *string `db:"bowling_style"`
	TeamID       *int64  `db:"team_id"`
}
