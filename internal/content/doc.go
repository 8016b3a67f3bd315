// Package content loads trait definitions from a content pack directory and
// registers them with a trait coordinator.
//
// A pack is a flat directory of Lua scripts (*.lua) and YAML documents
// (*.yaml, *.yml), read in lexical file order. Scripts declare traits through
// the global Trait table:
//
//	Trait.define{
//	  id = "novagenetica:fire",
//	  translation_key = "ability.novagenetica.fire",
//	  rarity = 4,
//	  completion_cost = 2,
//	  color = 0xFF0000,
//	  sources = { ["minecraft:blaze"] = 0xFFAA00 },
//	  apply_message = "message.novagenetica.ability.fire",
//	}
//
// YAML documents hold the same fields under a top-level traits list. Colors
// in YAML must be quoted when written as "#RRGGBB".
package content
