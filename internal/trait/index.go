package trait

import (
	"fmt"
	"sort"

	apperrors "github.com/louisbranch/novagenetica/internal/platform/errors"
)

// SourceIndex associates source classes with the traits they yield and the
// color of their class indicator.
//
// A class's color is fixed by its first association; later colors for the
// same class are ignored without error.
type SourceIndex struct {
	classTraits map[ClassID]map[ID]struct{}
	classColors map[ClassID]Color
}

// NewSourceIndex creates an empty index.
func NewSourceIndex() *SourceIndex {
	return &SourceIndex{
		classTraits: make(map[ClassID]map[ID]struct{}),
		classColors: make(map[ClassID]Color),
	}
}

// Associate adds traitID to class. It reports true when class had not been
// seen before, in which case color became the class color.
func (x *SourceIndex) Associate(class ClassID, traitID ID, color Color) bool {
	traits, seen := x.classTraits[class]
	if !seen {
		traits = make(map[ID]struct{})
		x.classTraits[class] = traits
		x.classColors[class] = color
	}
	traits[traitID] = struct{}{}
	return !seen
}

// TraitsFor returns the trait ids of class, sorted. Unseen classes yield an
// empty slice.
func (x *SourceIndex) TraitsFor(class ClassID) []ID {
	traits := x.classTraits[class]
	out := make([]ID, 0, len(traits))
	for id := range traits {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ColorOf returns the color recorded for class.
func (x *SourceIndex) ColorOf(class ClassID) (Color, error) {
	color, ok := x.classColors[class]
	if !ok {
		return 0, apperrors.WithMetadata(
			apperrors.CodeNotFound,
			fmt.Sprintf("source class not found: %s", class),
			map[string]string{"class": string(class)},
		)
	}
	return color, nil
}

// Classes returns every indexed class, sorted.
func (x *SourceIndex) Classes() []ClassID {
	out := make([]ClassID, 0, len(x.classColors))
	for class := range x.classColors {
		out = append(out, class)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
