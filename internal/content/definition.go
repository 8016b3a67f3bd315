package content

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/novagenetica/internal/platform/errors"
	"github.com/louisbranch/novagenetica/internal/trait"
)

// Definition is one trait declared by a content pack.
type Definition struct {
	ID             trait.ID
	TranslationKey string
	Rarity         int
	CompletionCost int
	Allowed        bool
	Color          trait.Color
	Sources        map[trait.ClassID]trait.Color
	// ApplyMessage, when set, is sent to the player who injects the trait.
	ApplyMessage string
	// File is the pack file the definition came from.
	File string
}

// Descriptor converts the definition into a registrable descriptor.
func (d Definition) Descriptor() trait.Descriptor {
	descriptor := trait.Descriptor{
		TranslationKey: d.TranslationKey,
		Rarity:         d.Rarity,
		CompletionCost: d.CompletionCost,
		Allowed:        d.Allowed,
		Color:          d.Color,
	}
	if message := d.ApplyMessage; message != "" {
		descriptor.Hooks.OnApply = func(ctx context.Context, recipient trait.Recipient) error {
			return recipient.SendMessage(ctx, message)
		}
	}
	return descriptor
}

func (d *Definition) normalize(file string) error {
	d.File = file
	d.ID = trait.ID(strings.TrimSpace(string(d.ID)))
	if d.ID == "" {
		return invalid(file, "trait id is required", nil)
	}
	d.TranslationKey = strings.TrimSpace(d.TranslationKey)
	if d.TranslationKey == "" {
		return invalid(file, fmt.Sprintf("trait %s: translation_key is required", d.ID), nil)
	}
	if d.Rarity < 0 {
		return invalid(file, fmt.Sprintf("trait %s: rarity must not be negative", d.ID), nil)
	}
	if d.CompletionCost < 0 {
		return invalid(file, fmt.Sprintf("trait %s: completion_cost must not be negative", d.ID), nil)
	}
	sources := make(map[trait.ClassID]trait.Color, len(d.Sources))
	for class, color := range d.Sources {
		trimmed := trait.ClassID(strings.TrimSpace(string(class)))
		if trimmed == "" {
			return invalid(file, fmt.Sprintf("trait %s: source class is blank", d.ID), nil)
		}
		sources[trimmed] = color
	}
	d.Sources = sources
	d.ApplyMessage = strings.TrimSpace(d.ApplyMessage)
	return nil
}

func invalid(file, message string, cause error) error {
	return apperrors.WrapWithMetadata(
		apperrors.CodeContentInvalid,
		fmt.Sprintf("%s: %s", file, message),
		map[string]string{"file": file},
		cause,
	)
}
