package player

import (
	"fmt"
	"strings"
)

// Role is the playing role stored on a player row. The empty role is allowed.
type Role string

const (
	RoleNone         Role = ""
	RoleBatsman      Role = "Batsman"
	RoleBowler       Role = "Bowler"
	RoleAllRounder   Role = "All-rounder"
	RoleWicketKeeper Role = "Wicket-keeper"
)

var AllRoles = map[Role]struct{}{
	RoleNone:         {},
	RoleBatsman:      {},
	RoleBowler:       {},
	RoleAllRounder:   {},
	RoleWicketKeeper: {},
}

// Player is one row of the players table.
type Player struct {
	ID           int64
	FullName     string
	Role         Role
	BattingStyle *string
	BowlingStyle *string
	TeamID       *int64
}

// Normalize trims text fields and turns empty optional values into nil.
func (p Player) Normalize() Player {
	p.FullName = strings.TrimSpace(p.FullName)
	p.Role = Role(strings.TrimSpace(string(p.Role)))
	p.BattingStyle = optionalText(p.BattingStyle)
	p.BowlingStyle = optionalText(p.BowlingStyle)
	if p.TeamID != nil && *p.TeamID <= 0 {
		p.TeamID = nil
	}
	return p
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.FullName) == "" {
		return fmt.Errorf("full name is required")
	}
	if _, ok := AllRoles[p.Role]; !ok {
		return fmt.Errorf("invalid player role: %s", p.Role)
	}
	return nil
}

func optionalText(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
