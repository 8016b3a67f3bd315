package traitctl

import (
	"context"
	"fmt"
	"log"
	"strings"

	"go.opentelemetry.io/otel"

	"github.com/louisbranch/novagenetica/internal/content"
	"github.com/louisbranch/novagenetica/internal/item"
	"github.com/louisbranch/novagenetica/internal/trait"
	"github.com/louisbranch/novagenetica/internal/trait/builtin"
)

// Loaded is a fully built coordinator and what the content pack contributed.
type Loaded struct {
	Coordinator *trait.Coordinator[item.Stack]
	Report      content.Report
}

// Build registers the builtin traits, then the content pack in contentDir
// when one is given, and frames the listing with the fixed items.
func Build(ctx context.Context, contentDir string, logger *log.Logger) (Loaded, error) {
	ctx, span := otel.Tracer("github.com/louisbranch/novagenetica/internal/cmd/traitctl").Start(ctx, "traitctl.Build")
	defer span.End()

	coord, err := trait.NewCoordinator[item.Stack](item.Factory{}, logger)
	if err != nil {
		return Loaded{}, err
	}
	for bucket, stacks := range item.Fixtures() {
		for _, stack := range stacks {
			if err := coord.Append(bucket, stack); err != nil {
				return Loaded{}, err
			}
		}
	}
	if err := builtin.Register(coord); err != nil {
		return Loaded{}, fmt.Errorf("register builtin traits: %w", err)
	}

	loaded := Loaded{Coordinator: coord}
	if strings.TrimSpace(contentDir) == "" {
		return loaded, nil
	}

	defs, err := content.LoadDir(ctx, contentDir)
	if err != nil {
		return Loaded{}, fmt.Errorf("load content: %w", err)
	}
	report, err := content.Register(ctx, coord, defs)
	if err != nil {
		return Loaded{}, fmt.Errorf("register content: %w", err)
	}
	loaded.Report = report
	return loaded, nil
}
