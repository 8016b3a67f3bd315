// Package sqlite stores exported trait catalogs in SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/novagenetica/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/novagenetica/internal/storage"
	"github.com/louisbranch/novagenetica/internal/storage/sqlite/migrations"
	"github.com/louisbranch/novagenetica/internal/trait"
	_ "modernc.org/sqlite"
)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

// Store provides SQLite-backed persistence for catalog exports.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store at the provided path and applies migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutCatalog replaces the stored catalog in a single transaction.
func (s *Store) PutCatalog(ctx context.Context, catalog storage.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"presentation_items", "source_class_traits", "source_classes", "traits", "catalog_exports"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO catalog_exports (id, locale, exported_at) VALUES (1, ?, ?)",
		catalog.Locale, toMillis(catalog.ExportedAt),
	); err != nil {
		return fmt.Errorf("insert export: %w", err)
	}

	for i, rec := range catalog.Traits {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO traits (id, translation_key, rarity, completion_cost, allowed, color, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			string(rec.ID), rec.TranslationKey, rec.Rarity, rec.CompletionCost, boolToInt(rec.Allowed), int64(rec.Color), i,
		); err != nil {
			return fmt.Errorf("insert trait %s: %w", rec.ID, err)
		}
	}

	for _, rec := range catalog.Classes {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO source_classes (id, color) VALUES (?, ?)",
			string(rec.ID), int64(rec.Color),
		); err != nil {
			return fmt.Errorf("insert class %s: %w", rec.ID, err)
		}
		for _, traitID := range rec.Traits {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO source_class_traits (class_id, trait_id) VALUES (?, ?)",
				string(rec.ID), string(traitID),
			); err != nil {
				return fmt.Errorf("link class %s to trait %s: %w", rec.ID, traitID, err)
			}
		}
	}

	for _, rec := range catalog.Presentation {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO presentation_items (position, bucket, kind, trait_id, class_id, color)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			rec.Position, string(rec.Bucket), rec.Kind, string(rec.TraitID), string(rec.ClassID), int64(rec.Color),
		); err != nil {
			return fmt.Errorf("insert presentation item %d: %w", rec.Position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog: %w", err)
	}
	return nil
}

// GetCatalog reads the stored catalog.
func (s *Store) GetCatalog(ctx context.Context) (storage.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return storage.Catalog{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Catalog{}, fmt.Errorf("storage is not configured")
	}

	var (
		catalog    storage.Catalog
		exportedAt int64
	)
	err := s.sqlDB.QueryRowContext(ctx,
		"SELECT locale, exported_at FROM catalog_exports WHERE id = 1",
	).Scan(&catalog.Locale, &exportedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Catalog{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Catalog{}, fmt.Errorf("get export: %w", err)
	}
	catalog.ExportedAt = fromMillis(exportedAt)

	links, err := s.classLinks(ctx)
	if err != nil {
		return storage.Catalog{}, err
	}
	if catalog.Traits, err = s.listTraits(ctx, links); err != nil {
		return storage.Catalog{}, err
	}
	if catalog.Classes, err = s.listClasses(ctx, links); err != nil {
		return storage.Catalog{}, err
	}
	if catalog.Presentation, err = s.listPresentation(ctx); err != nil {
		return storage.Catalog{}, err
	}
	return catalog, nil
}

type classLink struct {
	classID trait.ClassID
	traitID trait.ID
}

func (s *Store) classLinks(ctx context.Context) ([]classLink, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT class_id, trait_id FROM source_class_traits ORDER BY class_id, trait_id",
	)
	if err != nil {
		return nil, fmt.Errorf("list class links: %w", err)
	}
	defer rows.Close()

	var links []classLink
	for rows.Next() {
		var classID, traitID string
		if err := rows.Scan(&classID, &traitID); err != nil {
			return nil, fmt.Errorf("scan class link: %w", err)
		}
		links = append(links, classLink{classID: trait.ClassID(classID), traitID: trait.ID(traitID)})
	}
	return links, rows.Err()
}

func (s *Store) listTraits(ctx context.Context, links []classLink) ([]storage.TraitRecord, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, translation_key, rarity, completion_cost, allowed, color
		 FROM traits ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("list traits: %w", err)
	}
	defer rows.Close()

	var out []storage.TraitRecord
	for rows.Next() {
		var (
			rec     storage.TraitRecord
			id      string
			allowed int
			color   int64
		)
		if err := rows.Scan(&id, &rec.TranslationKey, &rec.Rarity, &rec.CompletionCost, &allowed, &color); err != nil {
			return nil, fmt.Errorf("scan trait: %w", err)
		}
		rec.ID = trait.ID(id)
		rec.Allowed = allowed != 0
		rec.Color = trait.Color(color)
		for _, link := range links {
			if link.traitID == rec.ID {
				rec.Classes = append(rec.Classes, link.classID)
			}
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *Store) listClasses(ctx context.Context, links []classLink) ([]storage.ClassRecord, error) {
	rows, err := s.sqlDB.QueryContext(ctx, "SELECT id, color FROM source_classes ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()

	var out []storage.ClassRecord
	for rows.Next() {
		var (
			id    string
			color int64
		)
		if err := rows.Scan(&id, &color); err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		rec := storage.ClassRecord{ID: trait.ClassID(id), Color: trait.Color(color)}
		for _, link := range links {
			if link.classID == rec.ID {
				rec.Traits = append(rec.Traits, link.traitID)
			}
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *Store) listPresentation(ctx context.Context) ([]storage.PresentationRecord, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT position, bucket, kind, trait_id, class_id, color
		 FROM presentation_items ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("list presentation: %w", err)
	}
	defer rows.Close()

	var out []storage.PresentationRecord
	for rows.Next() {
		var (
			rec              storage.PresentationRecord
			bucket, tid, cid string
			color            int64
		)
		if err := rows.Scan(&rec.Position, &bucket, &rec.Kind, &tid, &cid, &color); err != nil {
			return nil, fmt.Errorf("scan presentation item: %w", err)
		}
		rec.Bucket = trait.Bucket(bucket)
		rec.TraitID = trait.ID(tid)
		rec.ClassID = trait.ClassID(cid)
		rec.Color = trait.Color(color)
		out = append(out, rec)
	}
	return out, rows.Err()
}

var _ storage.CatalogStore = (*Store)(nil)
