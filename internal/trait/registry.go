package trait

import (
	"fmt"

	apperrors "github.com/louisbranch/novagenetica/internal/platform/errors"
)

// Registry stores admitted descriptors by id. Entries are never removed.
type Registry struct {
	descriptors map[ID]Descriptor
	order       []ID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[ID]Descriptor)}
}

// Register adds d under id. Callers validate d first; the registry does not.
func (r *Registry) Register(id ID, d Descriptor) error {
	if r.descriptors == nil {
		r.descriptors = make(map[ID]Descriptor)
	}
	if _, exists := r.descriptors[id]; exists {
		return apperrors.WithMetadata(
			apperrors.CodeTraitDuplicateKey,
			fmt.Sprintf("trait id already registered: %s", id),
			map[string]string{"id": string(id)},
		)
	}
	r.descriptors[id] = d
	r.order = append(r.order, id)
	return nil
}

// Lookup returns the descriptor registered under id.
func (r *Registry) Lookup(id ID) (Descriptor, error) {
	d, ok := r.descriptors[id]
	if !ok {
		return Descriptor{}, apperrors.WithMetadata(
			apperrors.CodeNotFound,
			fmt.Sprintf("trait not found: %s", id),
			map[string]string{"id": string(id)},
		)
	}
	return d, nil
}

// IDs returns registered ids in registration order.
func (r *Registry) IDs() []ID {
	out := make([]ID, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered traits.
func (r *Registry) Len() int {
	return len(r.order)
}
