package trait

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	apperrors "github.com/louisbranch/novagenetica/internal/platform/errors"
)

// Factory creates the host artifacts the coordinator sequences. The
// coordinator never inspects what it receives.
type Factory[A any] interface {
	// CarrierItem creates the filled carrier (syringe) for a trait.
	CarrierItem(id ID) A
	// ClassIndicator creates the indicator (mob flakes) for a source class.
	ClassIndicator(class ClassID, color Color) A
	// TraitItem creates the trait item (gene) for a trait.
	TraitItem(id ID) A
}

// Drop is one entry of a source class drop table.
type Drop struct {
	TraitID ID
	Chance  float64
}

// Coordinator validates and registers traits, indexes their source classes
// and sequences their artifacts. Build one per process at startup and pass it
// to whatever needs lookups.
type Coordinator[A any] struct {
	registry     *Registry
	sources      *SourceIndex
	sequencer    *Sequencer[A]
	factory      Factory[A]
	traitClasses map[ID][]ClassID
	logger       *log.Logger
}

// NewCoordinator creates an empty coordinator. A nil logger uses log.Default.
func NewCoordinator[A any](factory Factory[A], logger *log.Logger) (*Coordinator[A], error) {
	if factory == nil {
		return nil, errors.New("artifact factory is required")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Coordinator[A]{
		registry:     NewRegistry(),
		sources:      NewSourceIndex(),
		sequencer:    NewSequencer[A](),
		factory:      factory,
		traitClasses: make(map[ID][]ClassID),
		logger:       logger,
	}, nil
}

// RegisterTrait admits d under id and indexes every class in classColors.
//
// An invalid descriptor is logged and skipped: the returned error matches
// ErrInvalidDescriptor and nothing is committed. A duplicate id returns an
// error matching ErrDuplicateKey, also without committing anything.
func (c *Coordinator[A]) RegisterTrait(d Descriptor, id ID, classColors map[ClassID]Color) error {
	if err := Check(d); err != nil {
		c.logger.Printf("trait %q failed a check and was skipped: %v", id, err)
		return apperrors.WrapWithMetadata(
			apperrors.CodeTraitInvalidDescriptor,
			fmt.Sprintf("register trait %s", id),
			map[string]string{"id": string(id)},
			err,
		)
	}
	if err := c.registry.Register(id, d); err != nil {
		return err
	}

	if err := c.sequencer.Append(BucketSyringe, c.factory.CarrierItem(id)); err != nil {
		return err
	}

	classes := make([]ClassID, 0, len(classColors))
	for class := range classColors {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })

	for _, class := range classes {
		color := classColors[class]
		if c.sources.Associate(class, id, color) {
			if err := c.sequencer.Append(BucketMobFlakes, c.factory.ClassIndicator(class, color)); err != nil {
				return err
			}
		}
	}

	if err := c.sequencer.Append(BucketGene, c.factory.TraitItem(id)); err != nil {
		return err
	}

	c.traitClasses[id] = classes
	return nil
}

// Append adds a host artifact outside the trait flow, e.g. the empty syringe
// at the START of the listing.
func (c *Coordinator[A]) Append(bucket Bucket, artifact A) error {
	return c.sequencer.Append(bucket, artifact)
}

// Lookup returns the descriptor registered under id.
func (c *Coordinator[A]) Lookup(id ID) (Descriptor, error) {
	return c.registry.Lookup(id)
}

// IDs returns registered trait ids in registration order.
func (c *Coordinator[A]) IDs() []ID {
	return c.registry.IDs()
}

// Len returns the number of registered traits.
func (c *Coordinator[A]) Len() int {
	return c.registry.Len()
}

// TraitsFor returns the traits class can yield.
func (c *Coordinator[A]) TraitsFor(class ClassID) []ID {
	return c.sources.TraitsFor(class)
}

// ColorOf returns the indicator color of class.
func (c *Coordinator[A]) ColorOf(class ClassID) (Color, error) {
	return c.sources.ColorOf(class)
}

// Classes returns every indexed source class.
func (c *Coordinator[A]) Classes() []ClassID {
	return c.sources.Classes()
}

// ClassesFor returns the classes declared when id was registered.
func (c *Coordinator[A]) ClassesFor(id ID) []ClassID {
	classes := c.traitClasses[id]
	out := make([]ClassID, len(classes))
	copy(out, classes)
	return out
}

// Flatten returns the artifacts in display order.
func (c *Coordinator[A]) Flatten() []A {
	return c.sequencer.Flatten()
}

// Bucket returns the artifacts of a single bucket in append order.
func (c *Coordinator[A]) Bucket(bucket Bucket) ([]A, error) {
	return c.sequencer.Bucket(bucket)
}

// Entries returns the artifacts in display order with their buckets.
func (c *Coordinator[A]) Entries() []Entry[A] {
	return c.sequencer.Entries()
}

// DropTable lists the allowed traits of class that can drop, sorted by id.
func (c *Coordinator[A]) DropTable(class ClassID) []Drop {
	var drops []Drop
	for _, id := range c.sources.TraitsFor(class) {
		d, err := c.registry.Lookup(id)
		if err != nil || !d.Allowed {
			continue
		}
		chance := DropChance(d.Rarity)
		if chance == 0 {
			continue
		}
		drops = append(drops, Drop{TraitID: id, Chance: chance})
	}
	return drops
}

// RunServerHooks runs every OnRegisterServer hook in registration order.
func (c *Coordinator[A]) RunServerHooks(ctx context.Context) error {
	return c.runHooks(ctx, "server", func(h Hooks) func(context.Context) error { return h.OnRegisterServer })
}

// RunClientHooks runs every OnRegisterClient hook in registration order.
func (c *Coordinator[A]) RunClientHooks(ctx context.Context) error {
	return c.runHooks(ctx, "client", func(h Hooks) func(context.Context) error { return h.OnRegisterClient })
}

func (c *Coordinator[A]) runHooks(ctx context.Context, side string, pick func(Hooks) func(context.Context) error) error {
	for _, id := range c.registry.IDs() {
		if err := ctx.Err(); err != nil {
			return err
		}
		d, err := c.registry.Lookup(id)
		if err != nil {
			return err
		}
		hook := pick(d.Hooks)
		if hook == nil {
			continue
		}
		if err := hook(ctx); err != nil {
			return fmt.Errorf("%s hook for %s: %w", side, id, err)
		}
	}
	return nil
}

// Apply runs the OnApply hook of id for recipient.
func (c *Coordinator[A]) Apply(ctx context.Context, id ID, recipient Recipient) error {
	d, err := c.registry.Lookup(id)
	if err != nil {
		return err
	}
	if !d.Allowed {
		return apperrors.WithMetadata(
			apperrors.CodeTraitNotAllowed,
			fmt.Sprintf("trait is not allowed: %s", id),
			map[string]string{"id": string(id)},
		)
	}
	if d.Hooks.OnApply == nil {
		return nil
	}
	if recipient == nil {
		return errors.New("recipient is required")
	}
	return d.Hooks.OnApply(ctx, recipient)
}
