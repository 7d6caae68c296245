package player

import "testing"

func TestPlayerNormalizeAndValidate(t *testing.T) {
	t.Parallel()

	blank := "  "
	style := " Right-hand bat "
	teamID := int64(0)

	got := Player{
		FullName:     "  Virat Kohli ",
		Role:         " Batsman",
		BattingStyle: &style,
		BowlingStyle: &blank,
		TeamID:       &teamID,
	}.Normalize()

	if got.FullName != "Virat Kohli" {
		t.Fatalf("unexpected full name %q", got.FullName)
	}
	if got.Role != RoleBatsman {
		t.Fatalf("unexpected role %q", got.Role)
	}
	if got.BattingStyle == nil || *got.BattingStyle != "Right-hand bat" {
		t.Fatalf("unexpected batting style %v", got.BattingStyle)
	}
	if got.BowlingStyle != nil {
		t.Fatalf("expected empty bowling style to be nil")
	}
	if got.TeamID != nil {
		t.Fatalf("expected team id 0 to be nil")
	}
	if err := got.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	if err := (Player{FullName: "X", Role: "Captain"}).Validate(); err == nil {
		t.Fatalf("expected invalid role error")
	}
	if err := (Player{FullName: " "}).Validate(); err == nil {
		t.Fatalf("expected missing name error")
	}
}
