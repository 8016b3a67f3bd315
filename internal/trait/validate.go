package trait

import (
	"fmt"
	"strconv"

	apperrors "github.com/louisbranch/novagenetica/internal/platform/errors"
)

// Validate reports whether d may be admitted to a Registry. Id uniqueness is
// enforced by the Registry, not here.
func Validate(d Descriptor) bool {
	return Check(d) == nil
}

// Check is Validate with the reason attached.
func Check(d Descriptor) error {
	if d.CompletionCost%2 != 0 {
		return apperrors.WithMetadata(
			apperrors.CodeTraitInvalidDescriptor,
			fmt.Sprintf("completion cost must be even, got %d", d.CompletionCost),
			map[string]string{"completion_cost": strconv.Itoa(d.CompletionCost)},
		)
	}
	return nil
}
