package traitctl

import (
	"time"

	"github.com/louisbranch/novagenetica/internal/item"
	"github.com/louisbranch/novagenetica/internal/storage"
	"github.com/louisbranch/novagenetica/internal/trait"
)

// BuildCatalog snapshots coord into an exportable catalog.
func BuildCatalog(coord *trait.Coordinator[item.Stack], locale string, now time.Time) storage.Catalog {
	out := storage.Catalog{
		ExportedAt: now.UTC(),
		Locale:     locale,
	}

	for _, id := range coord.IDs() {
		d, err := coord.Lookup(id)
		if err != nil {
			continue
		}
		out.Traits = append(out.Traits, storage.TraitRecord{
			ID:             id,
			TranslationKey: d.TranslationKey,
			Rarity:         d.Rarity,
			CompletionCost: d.CompletionCost,
			Allowed:        d.Allowed,
			Color:          d.Color,
			Classes:        coord.ClassesFor(id),
		})
	}

	for _, class := range coord.Classes() {
		color, err := coord.ColorOf(class)
		if err != nil {
			continue
		}
		out.Classes = append(out.Classes, storage.ClassRecord{
			ID:     class,
			Color:  color,
			Traits: coord.TraitsFor(class),
		})
	}

	for i, entry := range coord.Entries() {
		out.Presentation = append(out.Presentation, storage.PresentationRecord{
			Position: i,
			Bucket:   entry.Bucket,
			Kind:     string(entry.Artifact.Kind),
			TraitID:  entry.Artifact.TraitID,
			ClassID:  entry.Artifact.Class,
			Color:    entry.Artifact.Color,
		})
	}
	return out
}
