package trait

import (
	"errors"
	"testing"
)

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	d := Descriptor{TranslationKey: "ability.novagenetica.fire", Rarity: 4, CompletionCost: 2, Allowed: true, Color: 0xFF0000}

	if err := r.Register("fire", d); err != nil {
		t.Fatalf("register: %v", err)
	}
	got, err := r.Lookup("fire")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.TranslationKey != d.TranslationKey || got.Rarity != d.Rarity || got.Color != d.Color {
		t.Fatalf("unexpected descriptor %+v", got)
	}
}

func TestRegistryRejectsDuplicate(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("fire", Descriptor{Rarity: 4}); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := r.Register("fire", Descriptor{Rarity: 9})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	got, err := r.Lookup("fire")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.Rarity != 4 {
		t.Fatalf("expected first registration to survive, got rarity %d", got.Rarity)
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", r.Len())
	}
}

func TestRegistryLookupMissing(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Lookup("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRegistryIDsKeepRegistrationOrder(t *testing.T) {
	r := &Registry{}
	for _, id := range []ID{"c", "a", "b"} {
		if err := r.Register(id, Descriptor{}); err != nil {
			t.Fatalf("register %s: %v", id, err)
		}
	}
	ids := r.IDs()
	if len(ids) != 3 || ids[0] != "c" || ids[1] != "a" || ids[2] != "b" {
		t.Fatalf("unexpected order %v", ids)
	}
}
