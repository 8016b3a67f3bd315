// Package builtin provides the traits that ship with every install.
package builtin

import (
	"context"

	"github.com/louisbranch/novagenetica/internal/trait"
)

const (
	// NoneID is the id of the placeholder trait.
	NoneID trait.ID = "novagenetica:none"
	// NoneTranslationKey names the placeholder trait.
	NoneTranslationKey = "ability.novagenetica.none"
	// NoneMessageKey is sent to a player who injects the placeholder trait.
	NoneMessageKey = "message.novagenetica.ability.none"
)

// None returns the placeholder trait: it never drops, needs no genes and only
// tells the player nothing happened.
func None() trait.Descriptor {
	return trait.Descriptor{
		TranslationKey: NoneTranslationKey,
		Rarity:         0,
		CompletionCost: 0,
		Allowed:        true,
		Color:          0xFFFFFF,
		Hooks: trait.Hooks{
			OnApply: func(ctx context.Context, recipient trait.Recipient) error {
				return recipient.SendMessage(ctx, NoneMessageKey)
			},
		},
	}
}

// Register adds the builtin traits to c. None is yielded by no source class.
func Register[A any](c *trait.Coordinator[A]) error {
	return c.RegisterTrait(None(), NoneID, nil)
}
