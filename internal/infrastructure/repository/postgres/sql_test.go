package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/riskibarqy/cricbuzz-livestats/internal/domain/player"
)

type fakeResult struct {
	affected int64
	err      error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.affected, r.err }

func TestEnsureAffected(t *testing.T) {
	t.Run("one row", func(t *testing.T) {
		if err := ensureAffected(fakeResult{affected: 1}, "update player", 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no rows", func(t *testing.T) {
		err := ensureAffected(fakeResult{}, "delete player", 4)
		if !errors.Is(err, ErrRowNotFound) {
			t.Fatalf("expected ErrRowNotFound, got %v", err)
		}
	})

	t.Run("driver error", func(t *testing.T) {
		err := ensureAffected(fakeResult{err: errors.New("boom")}, "delete player", 4)
		if err == nil || errors.Is(err, ErrRowNotFound) {
			t.Fatalf("expected driver error, got %v", err)
		}
	})
}

func TestNullableString(t *testing.T) {
	if got := nullableString("  "); got != nil {
		t.Fatalf("expected nil for blank, got %q", *got)
	}
	if got := nullableString(" Bowler "); got == nil || *got != "Bowler" {
		t.Fatalf("unexpected value: %v", got)
	}
}

func TestNormalizeScanValue(t *testing.T) {
	if got := normalizeScanValue([]byte("12.50")); got != "12.50" {
		t.Fatalf("expected string, got %#v", got)
	}
	if got := normalizeScanValue(int64(3)); got != int64(3) {
		t.Fatalf("expected int64 passthrough, got %#v", got)
	}
	if got := normalizeScanValue(nil); got != nil {
		t.Fatalf("expected nil passthrough, got %#v", got)
	}
}

func TestPlayerModelMapping(t *testing.T) {
	row := playerTableModel{
		ID:           7,
		FullName:     "Rohit Sharma",
		Role:         sql.NullString{String: "Batsman", Valid: true},
		BattingStyle: sql.NullString{String: "Right-hand bat", Valid: true},
		TeamID:       sql.NullInt64{Int64: 1, Valid: true},
	}

	got := row.toDomain()
	if got.ID != 7 || got.Role != player.RoleBatsman {
		t.Fatalf("unexpected player: %+v", got)
	}
	if got.BattingStyle == nil || *got.BattingStyle != "Right-hand bat" {
		t.Fatalf("unexpected batting style: %v", got.BattingStyle)
	}
	if got.BowlingStyle != nil {
		t.Fatalf("expected nil bowling style")
	}
	if got.TeamID == nil || *got.TeamID != 1 {
		t.Fatalf("unexpected team id: %v", got.TeamID)
	}

	w := toPlayerWriteModel(player.Player{FullName: "X", Role: player.RoleNone})
	if w.Role != nil {
		t.Fatalf("expected empty role stored as NULL")
	}
}
