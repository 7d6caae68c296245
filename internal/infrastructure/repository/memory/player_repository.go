package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/cricbuzz-livestats/internal/domain/player"
)

// PlayerRepository keeps players in process. It backs the service when no
// database is configured.
type PlayerRepository struct {
	mu      sync.RWMutex
	nextID  int64
	players map[int64]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	r := &PlayerRepository{players: make(map[int64]player.Player, len(players))}
	for _, p := range players {
		if p.ID <= 0 {
			r.nextID++
			p.ID = r.nextID
		}
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
		r.players[p.ID] = p
	}
	return r
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	r.players[item.ID] = item
	return item, nil
}

func (r *PlayerRepository) ListByFullName(_ context.Context, fullName string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, p := range r.players {
		if p.FullName == fullName {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[item.ID]; !ok {
		return fmt.Errorf("update player id=%d: not found", item.ID)
	}
	r.players[item.ID] = item
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[playerID]; !ok {
		return fmt.Errorf("delete player id=%d: not found", playerID)
	}
	delete(r.players, playerID)
	return nil
}
