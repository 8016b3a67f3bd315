package content

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/louisbranch/novagenetica/internal/trait"
)

type yamlPack struct {
	Traits []yamlTrait `yaml:"traits"`
}

type yamlTrait struct {
	ID             string               `yaml:"id"`
	TranslationKey string               `yaml:"translation_key"`
	Rarity         int                  `yaml:"rarity"`
	CompletionCost int                  `yaml:"completion_cost"`
	Allowed        *bool                `yaml:"allowed"`
	Color          yaml.Node            `yaml:"color"`
	Sources        map[string]yaml.Node `yaml:"sources"`
	ApplyMessage   string               `yaml:"apply_message"`
}

// decodeColor reads a "#RRGGBB", 0xRRGGBB or decimal scalar. An unquoted
// #RRGGBB starts a YAML comment and arrives here as null, so null is rejected
// rather than read as black. An absent key (zero node) is black.
func decodeColor(node yaml.Node) (trait.Color, error) {
	if node.Kind == 0 {
		return 0, nil
	}
	if node.Kind != yaml.ScalarNode || node.ShortTag() == "!!null" {
		return 0, fmt.Errorf("color is required, quote #RRGGBB values")
	}
	return trait.ParseColor(node.Value)
}

func parseYAML(file string, data []byte) ([]Definition, error) {
	var pack yamlPack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, invalid(file, "decode yaml", err)
	}

	defs := make([]Definition, 0, len(pack.Traits))
	for _, raw := range pack.Traits {
		def := Definition{
			ID:             trait.ID(raw.ID),
			TranslationKey: raw.TranslationKey,
			Rarity:         raw.Rarity,
			CompletionCost: raw.CompletionCost,
			Allowed:        raw.Allowed == nil || *raw.Allowed,
			Sources:        make(map[trait.ClassID]trait.Color, len(raw.Sources)),
			ApplyMessage:   raw.ApplyMessage,
		}
		color, err := decodeColor(raw.Color)
		if err != nil {
			return nil, invalid(file, fmt.Sprintf("trait %s: color", raw.ID), err)
		}
		def.Color = color
		for class, node := range raw.Sources {
			if node.Kind == 0 {
				return nil, invalid(file, fmt.Sprintf("trait %s: sources.%s: color is required", raw.ID, class), nil)
			}
			color, err := decodeColor(node)
			if err != nil {
				return nil, invalid(file, fmt.Sprintf("trait %s: sources.%s", raw.ID, class), err)
			}
			def.Sources[trait.ClassID(class)] = color
		}
		if err := def.normalize(file); err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}
