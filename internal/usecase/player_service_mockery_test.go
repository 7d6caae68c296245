package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/cricbuzz-livestats/internal/domain/player"
	playermock "github.com/riskibarqy/cricbuzz-livestats/internal/mocks/domain/player"
	"github.com/stretchr/testify/mock"
)

func ptr[T any](v T) *T {
	return &v
}

func TestPlayerService_Create_NormalizesOptionalFields(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo)

	repo.
		On("Create", mock.Anything, player.Player{
			FullName:     "Jasprit Bumrah",
			Role:         player.RoleBowler,
			BowlingStyle: ptr("Right-arm fast"),
		}).
		Return(player.Player{ID: 7, FullName: "Jasprit Bumrah", Role: player.RoleBowler}, nil).
		Once()

	got, err := service.Create(context.Background(), player.Player{
		FullName:     " Jasprit Bumrah ",
		Role:         player.RoleBowler,
		BattingStyle: ptr(""),
		BowlingStyle: ptr("Right-arm fast"),
		TeamID:       ptr(int64(0)),
	})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if got.ID != 7 {
		t.Fatalf("unexpected player id: got=%d want=7", got.ID)
	}
}

func TestPlayerService_Create_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(playermock.NewRepository(t))

	if _, err := service.Create(context.Background(), player.Player{FullName: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
	if _, err := service.Create(context.Background(), player.Player{FullName: "A", Role: "Captain"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad role, got %v", err)
	}
}

func TestPlayerService_GetByName(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		repo := playermock.NewRepository(t)
		repo.On("ListByFullName", mock.Anything, "Nobody").Return([]player.Player{}, nil).Once()

		_, err := NewPlayerService(repo).GetByName(context.Background(), " Nobody ")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ambiguous", func(t *testing.T) {
		t.Parallel()

		repo := playermock.NewRepository(t)
		matches := []player.Player{{ID: 1, FullName: "Ravi"}, {ID: 2, FullName: "Ravi"}}
		repo.On("ListByFullName", mock.Anything, "Ravi").Return(matches, nil).Once()

		_, err := NewPlayerService(repo).GetByName(context.Background(), "Ravi")
		if !errors.Is(err, ErrAmbiguous) {
			t.Fatalf("expected ErrAmbiguous, got %v", err)
		}
		var ambiguous *AmbiguousPlayersError
		if !errors.As(err, &ambiguous) || len(ambiguous.Matches) != 2 {
			t.Fatalf("expected matches on ambiguous error, got %v", err)
		}
		if err.Error() != "Found 2 players with the same name. Please refine the name." {
			t.Fatalf("unexpected message: %s", err.Error())
		}
	})

	t.Run("blank name", func(t *testing.T) {
		t.Parallel()

		_, err := NewPlayerService(playermock.NewRepository(t)).GetByName(context.Background(), "")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestPlayerService_UpdateByName_UsesMatchedRow(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	repo.
		On("ListByFullName", mock.Anything, "Virat Kohli").
		Return([]player.Player{{ID: 18, FullName: "Virat Kohli", TeamID: ptr(int64(1))}}, nil).
		Once()
	repo.
		On("Update", mock.Anything, player.Player{ID: 18, FullName: "V Kohli", Role: player.RoleBatsman}).
		Return(nil).
		Once()

	got, err := NewPlayerService(repo).UpdateByName(context.Background(), "Virat Kohli", player.Player{
		ID:       99,
		FullName: "V Kohli",
		Role:     player.RoleBatsman,
	})
	if err != nil {
		t.Fatalf("update player: %v", err)
	}
	if got.ID != 18 {
		t.Fatalf("unexpected player id: got=%d want=18", got.ID)
	}
}

func TestPlayerService_DeleteByName(t *testing.T) {
	t.Parallel()

	t.Run("requires confirmation", func(t *testing.T) {
		t.Parallel()

		_, err := NewPlayerService(playermock.NewRepository(t)).DeleteByName(context.Background(), "Ravi", false)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("refuses duplicates", func(t *testing.T) {
		t.Parallel()

		repo := playermock.NewRepository(t)
		repo.
			On("ListByFullName", mock.Anything, "Ravi").
			Return([]player.Player{{ID: 1}, {ID: 2}, {ID: 3}}, nil).
			Once()

		_, err := NewPlayerService(repo).DeleteByName(context.Background(), "Ravi", true)
		if !errors.Is(err, ErrAmbiguous) {
			t.Fatalf("expected ErrAmbiguous, got %v", err)
		}
		if err.Error() != "Refusing to delete: found 3 players with the same name. Please refine the name." {
			t.Fatalf("unexpected message: %s", err.Error())
		}
	})

	t.Run("deletes unique match", func(t *testing.T) {
		t.Parallel()

		repo := playermock.NewRepository(t)
		repo.On("ListByFullName", mock.Anything, "Ravi").Return([]player.Player{{ID: 4, FullName: "Ravi"}}, nil).Once()
		repo.On("Delete", mock.Anything, int64(4)).Return(nil).Once()

		got, err := NewPlayerService(repo).DeleteByName(context.Background(), "Ravi", true)
		if err != nil {
			t.Fatalf("delete player: %v", err)
		}
		if got.ID != 4 {
			t.Fatalf("unexpected deleted id: %d", got.ID)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		t.Parallel()

		repo := playermock.NewRepository(t)
		repo.On("ListByFullName", mock.Anything, "Ravi").Return(nil, errors.New("db down")).Once()

		_, err := NewPlayerService(repo).DeleteByName(context.Background(), "Ravi", true)
		if err == nil || errors.Is(err, ErrNotFound) {
			t.Fatalf("expected repository error, got %v", err)
		}
	})
}
