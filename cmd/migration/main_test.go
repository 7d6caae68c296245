package main

import "testing"

func TestParseSteps(t *testing.T) {
	if got, err := parseSteps(nil); err != nil || got != 1 {
		t.Fatalf("expected default of 1 step, got %d (%v)", got, err)
	}
	if got, err := parseSteps([]string{" 3 "}); err != nil || got != 3 {
		t.Fatalf("expected 3 steps, got %d (%v)", got, err)
	}
	if _, err := parseSteps([]string{"0"}); err == nil {
		t.Fatalf("expected error for zero steps")
	}
	if _, err := parseSteps([]string{"all"}); err == nil {
		t.Fatalf("expected error for non-numeric steps")
	}
}

func TestParseVersion(t *testing.T) {
	if got, err := parseVersion("1"); err != nil || got != 1 {
		t.Fatalf("expected version 1, got %d (%v)", got, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
}

func TestConfirmed(t *testing.T) {
	if confirmed(nil) {
		t.Fatalf("drop must not run without --yes")
	}
	if !confirmed([]string{"--yes"}) {
		t.Fatalf("expected --yes to confirm")
	}
}
