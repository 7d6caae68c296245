package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/cricbuzz-livestats/internal/domain/player"
)

// AmbiguousPlayersError reports a name lookup that matched several rows.
type AmbiguousPlayersError struct {
	Matches []player.Player
	message string
}

func (e *AmbiguousPlayersError) Error() string {
	return e.message
}

func (e *AmbiguousPlayersError) Unwrap() error {
	return ErrAmbiguous
}

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

func (s *PlayerService) Create(ctx context.Context, input player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	item := input.Normalize()
	item.ID = 0
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.playerRepo.Create(ctx, item)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	return created, nil
}

// GetByName returns the single player whose full name matches exactly.
func (s *PlayerService) GetByName(ctx context.Context, fullName string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetByName")
	defer span.End()

	return s.findUnique(ctx, fullName, "Found %d players with the same name. Please refine the name.")
}

// UpdateByName replaces every column of the player currently named
// currentName.
func (s *PlayerService) UpdateByName(ctx context.Context, currentName string, input player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdateByName")
	defer span.End()

	existing, err := s.findUnique(ctx, currentName, "Found %d players with the same name. Please refine the name.")
	if err != nil {
		return player.Player{}, err
	}

	item := input.Normalize()
	item.ID = existing.ID
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Update(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	return item, nil
}

// DeleteByName removes the single player with the given name. The caller
// must confirm, and several matches are refused.
func (s *PlayerService) DeleteByName(ctx context.Context, fullName string, confirm bool) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeleteByName")
	defer span.End()

	if strings.TrimSpace(fullName) == "" {
		return player.Player{}, fmt.Errorf("%w: Enter a name.", ErrInvalidInput)
	}
	if !confirm {
		return player.Player{}, fmt.Errorf("%w: Please confirm deletion.", ErrInvalidInput)
	}

	existing, err := s.findUnique(ctx, fullName, "Refusing to delete: found %d players with the same name. Please refine the name.")
	if err != nil {
		return player.Player{}, err
	}

	if err := s.playerRepo.Delete(ctx, existing.ID); err != nil {
		return player.Player{}, fmt.Errorf("delete player: %w", err)
	}
	return existing, nil
}

func (s *PlayerService) findUnique(ctx context.Context, fullName, ambiguousFormat string) (player.Player, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return player.Player{}, fmt.Errorf("%w: Enter a name.", ErrInvalidInput)
	}

	items, err := s.playerRepo.ListByFullName(ctx, fullName)
	if err != nil {
		return player.Player{}, fmt.Errorf("list players by name: %w", err)
	}

	switch len(items) {
	case 0:
		return player.Player{}, fmt.Errorf("%w: No player found.", ErrNotFound)
	case 1:
		return items[0], nil
	default:
		return player.Player{}, &AmbiguousPlayersError{
			Matches: items,
			message: fmt.Sprintf(ambiguousFormat, len(items)),
		}
	}
}
