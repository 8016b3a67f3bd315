package trait

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// ID identifies a registered trait, e.g. "novagenetica:fire".
type ID string

// ClassID identifies a source class, the kind of actor that can yield traits.
type ClassID string

// Color is a 24-bit RGB value in 0xRRGGBB form.
type Color uint32

// String formats the color as #RRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

// ParseColor accepts "#RRGGBB", "0xRRGGBB" or a plain decimal value.
func ParseColor(value string) (Color, error) {
	trimmed := strings.TrimSpace(value)
	base := 10
	switch {
	case strings.HasPrefix(trimmed, "#"):
		trimmed = trimmed[1:]
		base = 16
	case strings.HasPrefix(trimmed, "0x"), strings.HasPrefix(trimmed, "0X"):
		trimmed = trimmed[2:]
		base = 16
	}
	if trimmed == "" {
		return 0, fmt.Errorf("color is required")
	}
	parsed, err := strconv.ParseUint(trimmed, base, 32)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", value, err)
	}
	if parsed > 0xFFFFFF {
		return 0, fmt.Errorf("color %q exceeds 24 bits", value)
	}
	return Color(parsed), nil
}

// Recipient receives the feedback of an applied trait. Apply always runs on
// the server, so the recipient is the player who injected the trait.
type Recipient interface {
	SendMessage(ctx context.Context, translationKey string) error
}

// Hooks are host lifecycle callbacks. Nil hooks are skipped.
type Hooks struct {
	// OnRegisterServer runs once during server initialisation; register event
	// callbacks and server packet receivers here.
	OnRegisterServer func(ctx context.Context) error
	// OnRegisterClient runs once during client initialisation.
	OnRegisterClient func(ctx context.Context) error
	// OnApply runs when a player injects the trait.
	OnApply func(ctx context.Context, recipient Recipient) error
}

// Descriptor describes one registrable trait. The id is assigned by the
// caller at registration time.
type Descriptor struct {
	TranslationKey string
	// Rarity weights drops: 0 never drops, otherwise the chance is 1/Rarity.
	Rarity int
	// CompletionCost is the number of partial genes needed to assemble one
	// completed gene. It must be even.
	CompletionCost int
	// Allowed gates whether players may currently obtain the trait.
	Allowed bool
	Color   Color
	Hooks   Hooks
}

// DropChance converts a rarity into a drop probability.
func DropChance(rarity int) float64 {
	if rarity <= 0 {
		return 0
	}
	return 1 / float64(rarity)
}
