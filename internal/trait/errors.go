package trait

import apperrors "github.com/louisbranch/novagenetica/internal/platform/errors"

var (
	// ErrInvalidDescriptor indicates a descriptor failed validation.
	ErrInvalidDescriptor = apperrors.New(apperrors.CodeTraitInvalidDescriptor, "trait descriptor is invalid")
	// ErrDuplicateKey indicates a trait id is already registered.
	ErrDuplicateKey = apperrors.New(apperrors.CodeTraitDuplicateKey, "trait id already registered")
	// ErrUnknownBucket indicates an append to a bucket outside the fixed set.
	ErrUnknownBucket = apperrors.New(apperrors.CodePresentationUnknownBucket, "presentation bucket is unknown")
	// ErrNotFound indicates a missing trait or source class.
	ErrNotFound = apperrors.New(apperrors.CodeNotFound, "not found")
	// ErrNotAllowed indicates a trait that may not currently be granted.
	ErrNotAllowed = apperrors.New(apperrors.CodeTraitNotAllowed, "trait is not allowed")
)
