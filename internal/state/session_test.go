package state

import (
	"testing"

	"github.com/atomicstack/claude-tmux/internal/session"
)

func TestSessionStoreClonesOnWriteAndRead(t *testing.T) {
	store := NewSessionStore()
	input := []session.Session{{Name: "alpha"}, {Name: "beta"}}
	store.SetSessions(input)

	input[0].Name = "mutated"
	got := store.Sessions()
	if got[0].Name != "alpha" {
		t.Fatalf("store shared caller slice: %q", got[0].Name)
	}

	got[1].Name = "mutated"
	again := store.Sessions()
	if again[1].Name != "beta" {
		t.Fatalf("store shared returned slice: %q", again[1].Name)
	}
}

func TestSessionStoreCurrent(t *testing.T) {
	store := NewSessionStore()
	if store.Current() != "" {
		t.Fatalf("expected empty current, got %q", store.Current())
	}
	store.SetCurrent("alpha")
	if store.Current() != "alpha" {
		t.Fatalf("expected alpha, got %q", store.Current())
	}
}

func TestSessionStoreEmpty(t *testing.T) {
	store := NewSessionStore()
	store.SetSessions(nil)
	if sessions := store.Sessions(); sessions != nil {
		t.Fatalf("expected nil sessions, got %v", sessions)
	}
}
