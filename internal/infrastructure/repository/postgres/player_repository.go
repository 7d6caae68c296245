package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricbuzz-livestats/internal/domain/player"
	qb "github.com/riskibarqy/cricbuzz-livestats/internal/platform/querybuilder"
)

const playersTable = "players"

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"player_id",
	"full_name",
	"role",
	"batting_style",
	"bowling_style",
	"team_id",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	query, args, err := qb.InsertModel(playersTable, toPlayerWriteModel(item), "RETURNING player_id")
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}

	item.ID = id
	return item, nil
}

func (r *PlayerRepository) ListByFullName(ctx context.Context, fullName string) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From(playersTable).
		Where(qb.Eq("full_name", fullName)).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by name query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by name: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	w := toPlayerWriteModel(item)
	query, args, err := qb.UpdateModel(playersTable, "player_id", playerUpdateModel{
		ID:           item.ID,
		FullName:     w.FullName,
		Role:         w.Role,
		BattingStyle: w.BattingStyle,
		BowlingStyle: w.BowlingStyle,
		TeamID:       w.TeamID,
	})
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update player id=%d: %w", item.ID, err)
	}
	return ensureAffected(res, "update player", item.ID)
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID int64) error {
	query, args, err := qb.DeleteFrom(playersTable).Where(qb.Eq("player_id", playerID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete player id=%d: %w", playerID, err)
	}
	return ensureAffected(res, "delete player", playerID)
}

func toPlayerWriteModel(item player.Player) playerWriteModel {
	return playerWriteModel{
		FullName:     item.FullName,
		Role:         nullableString(string(item.Role)),
		BattingStyle: item.BattingStyle,
		BowlingStyle: item.BowlingStyle,
		TeamID:       item.TeamID,
	}
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:           m.ID,
		FullName:     m.FullName,
		Role:         player.Role(m.Role.String),
		BattingStyle: nullStringPtr(m.BattingStyle),
		BowlingStyle: nullStringPtr(m.BowlingStyle),
		TeamID:       nullInt64Ptr(m.TeamID),
	}
}
