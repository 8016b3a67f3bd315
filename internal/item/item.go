// Package item stands in for the host's item stacks: it is the artifact type
// the command-line tooling sequences for display.
package item

import (
	"fmt"

	"github.com/louisbranch/novagenetica/internal/trait"
)

// Kind identifies which item a stack holds.
type Kind string

const (
	KindEmptySyringe  Kind = "empty_syringe"
	KindFilledSyringe Kind = "filled_syringe"
	KindGene          Kind = "gene"
	KindCompleteGene  Kind = "complete_gene"
	KindMobFlakes     Kind = "mob_flakes"
	KindCentrifuge    Kind = "centrifuge"
)

// TranslationKey returns the display name key of the item kind.
func (k Kind) TranslationKey() string {
	return "item.novagenetica." + string(k)
}

// Stack is a single display item. TraitID is set for syringes and genes,
// Class and Color for mob flakes.
type Stack struct {
	Kind    Kind
	TraitID trait.ID
	Class   trait.ClassID
	Color   trait.Color
}

// String describes the stack for logs.
func (s Stack) String() string {
	switch {
	case s.TraitID != "":
		return fmt.Sprintf("%s[%s]", s.Kind, s.TraitID)
	case s.Class != "":
		return fmt.Sprintf("%s[%s %s]", s.Kind, s.Class, s.Color)
	default:
		return string(s.Kind)
	}
}

// Factory creates stacks for the trait coordinator.
type Factory struct{}

// CarrierItem returns a filled syringe holding the trait.
func (Factory) CarrierItem(id trait.ID) Stack {
	return Stack{Kind: KindFilledSyringe, TraitID: id}
}

// ClassIndicator returns mob flakes tinted for the class.
func (Factory) ClassIndicator(class trait.ClassID, color trait.Color) Stack {
	return Stack{Kind: KindMobFlakes, Class: class, Color: color}
}

// TraitItem returns a gene carrying the trait.
func (Factory) TraitItem(id trait.ID) Stack {
	return Stack{Kind: KindGene, TraitID: id}
}

// Fixtures returns the stacks listed around the trait items: the empty
// syringe first, the completed gene and centrifuge last.
func Fixtures() map[trait.Bucket][]Stack {
	return map[trait.Bucket][]Stack{
		trait.BucketStart: {{Kind: KindEmptySyringe}},
		trait.BucketEnd:   {{Kind: KindCompleteGene}, {Kind: KindCentrifuge}},
	}
}

var _ trait.Factory[Stack] = Factory{}
