package trait

import (
	"errors"
	"testing"
)

func TestValidateCompletionCostParity(t *testing.T) {
	tests := []struct {
		cost int
		want bool
	}{
		{cost: 0, want: true},
		{cost: 2, want: true},
		{cost: 8, want: true},
		{cost: 1, want: false},
		{cost: 3, want: false},
		{cost: -1, want: false},
		{cost: -2, want: true},
	}
	for _, tt := range tests {
		d := Descriptor{CompletionCost: tt.cost, Rarity: 4, Allowed: true, Color: 0xFF0000}
		if got := Validate(d); got != tt.want {
			t.Fatalf("Validate(cost=%d) = %v, want %v", tt.cost, got, tt.want)
		}
	}
}

func TestCheckReturnsInvalidDescriptor(t *testing.T) {
	err := Check(Descriptor{CompletionCost: 5})
	if !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("expected ErrInvalidDescriptor, got %v", err)
	}
}

func TestDropChance(t *testing.T) {
	if got := DropChance(0); got != 0 {
		t.Fatalf("expected rarity 0 to never drop, got %v", got)
	}
	if got := DropChance(-3); got != 0 {
		t.Fatalf("expected negative rarity to never drop, got %v", got)
	}
	if got := DropChance(4); got != 0.25 {
		t.Fatalf("expected 0.25, got %v", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{in: "#FF0000", want: 0xFF0000},
		{in: "0x112233", want: 0x112233},
		{in: " 16777215 ", want: 0xFFFFFF},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseColor(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "#", "#GG0000", "0x1000000"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestColorString(t *testing.T) {
	if got := Color(0x0a0b0c).String(); got != "#0A0B0C" {
		t.Fatalf("unexpected color string %q", got)
	}
}
