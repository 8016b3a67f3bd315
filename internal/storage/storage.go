package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/novagenetica/internal/trait"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// TraitRecord is one registered trait.
type TraitRecord struct {
	ID             trait.ID
	TranslationKey string
	Rarity         int
	CompletionCost int
	Allowed        bool
	Color          trait.Color
	Classes        []trait.ClassID
}

// ClassRecord is one source class with the traits it yields.
type ClassRecord struct {
	ID     trait.ClassID
	Color  trait.Color
	Traits []trait.ID
}

// PresentationRecord is one artifact of the flattened display sequence.
type PresentationRecord struct {
	Position int
	Bucket   trait.Bucket
	Kind     string
	TraitID  trait.ID
	ClassID  trait.ClassID
	Color    trait.Color
}

// Catalog is a complete export.
type Catalog struct {
	ExportedAt   time.Time
	Locale       string
	Traits       []TraitRecord
	Classes      []ClassRecord
	Presentation []PresentationRecord
}

// CatalogStore persists exported catalogs. PutCatalog replaces any previous
// export.
type CatalogStore interface {
	PutCatalog(ctx context.Context, catalog Catalog) error
	GetCatalog(ctx context.Context) (Catalog, error)
}
