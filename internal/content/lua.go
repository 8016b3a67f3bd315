package content

import (
	"math"

	"github.com/Shopify/go-lua"

	"github.com/louisbranch/novagenetica/internal/trait"
)

const traitTableName = "Trait"

// parseLua runs a pack script and collects every Trait.define call.
func parseLua(file string, data []byte) ([]Definition, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)

	var defs []Definition
	registerTraitTable(state, &defs)

	if err := lua.LoadBuffer(state, string(data), "@"+file, "text"); err != nil {
		return nil, invalid(file, "load lua", err)
	}
	if err := state.ProtectedCall(0, 0, 0); err != nil {
		return nil, invalid(file, "run lua", err)
	}

	for i := range defs {
		if err := defs[i].normalize(file); err != nil {
			return nil, err
		}
	}
	return defs, nil
}

func registerTraitTable(state *lua.State, defs *[]Definition) {
	state.NewTable()
	lua.SetFunctions(state, []lua.RegistryFunction{
		{Name: "define", Function: func(state *lua.State) int {
			*defs = append(*defs, defineTrait(state))
			return 0
		}},
	}, 0)
	state.SetGlobal(traitTableName)
}

func defineTrait(state *lua.State) Definition {
	lua.CheckType(state, 1, lua.TypeTable)

	def := Definition{
		ID:             trait.ID(stringField(state, "id")),
		TranslationKey: stringField(state, "translation_key"),
		Rarity:         intField(state, "rarity"),
		CompletionCost: intField(state, "completion_cost"),
		Allowed:        boolField(state, "allowed", true),
		Color:          colorAt(state, "color"),
		ApplyMessage:   stringField(state, "apply_message"),
	}

	def.Sources = map[trait.ClassID]trait.Color{}
	state.Field(1, "sources")
	switch state.TypeOf(-1) {
	case lua.TypeNil:
	case lua.TypeTable:
		state.PushNil()
		for state.Next(-2) {
			if state.TypeOf(-2) != lua.TypeString {
				lua.Errorf(state, "sources keys must be class ids")
			}
			class, _ := state.ToString(-2)
			def.Sources[trait.ClassID(class)] = colorValue(state, "sources."+class)
			state.Pop(1)
		}
	default:
		lua.Errorf(state, "sources must be a table")
	}
	state.Pop(1)

	return def
}

func stringField(state *lua.State, name string) string {
	state.Field(1, name)
	kind := state.TypeOf(-1)
	value, _ := state.ToString(-1)
	state.Pop(1)
	switch kind {
	case lua.TypeNil:
		return ""
	case lua.TypeString:
		return value
	default:
		lua.Errorf(state, "%s must be a string", name)
		return ""
	}
}

func intField(state *lua.State, name string) int {
	state.Field(1, name)
	kind := state.TypeOf(-1)
	value, _ := state.ToNumber(-1)
	state.Pop(1)
	switch kind {
	case lua.TypeNil:
		return 0
	case lua.TypeNumber:
		if !isInteger(value) || math.Abs(value) > math.MaxInt32 {
			lua.Errorf(state, "%s must be an integer", name)
		}
		return int(value)
	default:
		lua.Errorf(state, "%s must be an integer", name)
		return 0
	}
}

// isInteger reports whether a Lua number has no fractional part.
func isInteger(value float64) bool {
	return !math.IsInf(value, 0) && math.Trunc(value) == value
}

func boolField(state *lua.State, name string, fallback bool) bool {
	state.Field(1, name)
	kind := state.TypeOf(-1)
	value := state.ToBoolean(-1)
	state.Pop(1)
	switch kind {
	case lua.TypeNil:
		return fallback
	case lua.TypeBoolean:
		return value
	default:
		lua.Errorf(state, "%s must be a boolean", name)
		return fallback
	}
}

func colorAt(state *lua.State, name string) trait.Color {
	state.Field(1, name)
	if state.TypeOf(-1) == lua.TypeNil {
		state.Pop(1)
		return 0
	}
	color := colorValue(state, name)
	state.Pop(1)
	return color
}

// colorValue reads the color on top of the stack without popping it.
func colorValue(state *lua.State, name string) trait.Color {
	switch state.TypeOf(-1) {
	case lua.TypeNumber:
		value, _ := state.ToNumber(-1)
		if !isInteger(value) || value < 0 || value > 0xFFFFFF {
			lua.Errorf(state, "%s must be a 24-bit color", name)
		}
		return trait.Color(value)
	case lua.TypeString:
		raw, _ := state.ToString(-1)
		color, err := trait.ParseColor(raw)
		if err != nil {
			lua.Errorf(state, "%s: %s", name, err.Error())
		}
		return color
	default:
		lua.Errorf(state, "%s must be a number or color string", name)
		return 0
	}
}
