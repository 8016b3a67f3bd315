// Package errors provides structured error handling for trait registration.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Trait errors
	CodeTraitInvalidDescriptor Code = "TRAIT_INVALID_DESCRIPTOR"
	CodeTraitDuplicateKey      Code = "TRAIT_DUPLICATE_KEY"
	CodeTraitNotAllowed        Code = "TRAIT_NOT_ALLOWED"

	// Presentation errors
	CodePresentationUnknownBucket Code = "PRESENTATION_UNKNOWN_BUCKET"

	// Content pack errors
	CodeContentInvalid Code = "CONTENT_INVALID"

	// Lookup errors
	CodeNotFound Code = "NOT_FOUND"
)

// Fatal reports whether an error with this code must abort a bulk load.
//
// Invalid descriptors are skipped by the loader; duplicate ids, unknown
// buckets and malformed content point at an authoring or calling defect.
func (c Code) Fatal() bool {
	switch c {
	case CodeTraitDuplicateKey,
		CodePresentationUnknownBucket,
		CodeContentInvalid,
		CodeUnknown:
		return true
	default:
		return false
	}
}
