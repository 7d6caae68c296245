package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Player) (Player, error)
	ListByFullName(ctx context.Context, fullName string) ([]Player, error)
	Update(ctx context.Context, item Player) error
	Delete(ctx context.Context, playerID int64) error
}
