package content

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/novagenetica/internal/platform/errors"
	"github.com/louisbranch/novagenetica/internal/trait"
)

const instrumentationName = "github.com/louisbranch/novagenetica/internal/content"

type parser func(file string, data []byte) ([]Definition, error)

var parsers = map[string]parser{
	".lua":  parseLua,
	".yaml": parseYAML,
	".yml":  parseYAML,
}

// LoadDir loads every pack file in dir.
func LoadDir(ctx context.Context, dir string) ([]Definition, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("content dir is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat content dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %s is not a directory", dir)
	}
	return Load(ctx, os.DirFS(dir))
}

// Load reads the pack files at the root of fsys in lexical order. Files with
// other extensions are ignored.
func Load(ctx context.Context, fsys fs.FS) ([]Definition, error) {
	_, span := otel.Tracer(instrumentationName).Start(ctx, "content.Load")
	defer span.End()

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read content dir")
		return nil, fmt.Errorf("read content dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := parsers[strings.ToLower(path.Ext(entry.Name()))]; ok {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	var defs []Definition
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		parsed, err := parsers[strings.ToLower(path.Ext(file))](file, data)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "parse content file")
			return nil, err
		}
		defs = append(defs, parsed...)
	}

	span.SetAttributes(
		attribute.Int("content.files", len(files)),
		attribute.Int("content.traits", len(defs)),
	)
	return defs, nil
}

// Report summarises a Register call.
type Report struct {
	Registered int
	Skipped    int
}

// Register admits defs into c in order. Definitions that fail validation are
// skipped (c logs them); any fatal error stops the load and is returned.
func Register[A any](ctx context.Context, c *trait.Coordinator[A], defs []Definition) (Report, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "content.Register")
	defer span.End()

	var report Report
	for _, def := range defs {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		err := c.RegisterTrait(def.Descriptor(), def.ID, def.Sources)
		switch {
		case err == nil:
			report.Registered++
		case apperrors.IsFatal(err):
			span.RecordError(err)
			span.SetStatus(codes.Error, "register trait")
			return report, fmt.Errorf("%s: %w", def.File, err)
		default:
			report.Skipped++
			span.AddEvent("trait.skipped", trace.WithAttributes(
				attribute.String("trait.id", string(def.ID)),
				attribute.String("content.file", def.File),
			))
		}
	}

	span.SetAttributes(
		attribute.Int("traits.registered", report.Registered),
		attribute.Int("traits.skipped", report.Skipped),
	)
	return report, nil
}
