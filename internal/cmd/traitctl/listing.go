package traitctl

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/louisbranch/novagenetica/internal/item"
	"github.com/louisbranch/novagenetica/internal/platform/i18n/catalog"
	"github.com/louisbranch/novagenetica/internal/trait"
)

// WriteListing prints the presentation sequence with localized names. A
// non-empty bucket limits the listing to that bucket.
func WriteListing(out io.Writer, coord *trait.Coordinator[item.Stack], bundle *catalog.Bundle, locale string, bucket trait.Bucket) error {
	entries := coord.Entries()
	if bucket != "" {
		stacks, err := coord.Bucket(bucket)
		if err != nil {
			return err
		}
		entries = make([]trait.Entry[item.Stack], 0, len(stacks))
		for _, stack := range stacks {
			entries = append(entries, trait.Entry[item.Stack]{Bucket: bucket, Artifact: stack})
		}
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, entry := range entries {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", entry.Bucket, displayName(coord, bundle, locale, entry.Artifact)); err != nil {
			return err
		}
	}
	return w.Flush()
}

// WriteDropTable prints the drop chances of class.
func WriteDropTable(out io.Writer, coord *trait.Coordinator[item.Stack], bundle *catalog.Bundle, locale string, class trait.ClassID) error {
	color, err := coord.ColorOf(class)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "drops for %s (%s):\n", class, color); err != nil {
		return err
	}
	drops := coord.DropTable(class)
	if len(drops) == 0 {
		_, err := fmt.Fprintln(out, "  none")
		return err
	}
	printer := bundle.Printer(locale)
	for _, drop := range drops {
		if _, err := printer.Fprintf(out, "  %s\t%.2f%%\n", traitName(coord, bundle, locale, drop.TraitID), drop.Chance*100); err != nil {
			return err
		}
	}
	return nil
}

func displayName(coord *trait.Coordinator[item.Stack], bundle *catalog.Bundle, locale string, stack item.Stack) string {
	name := bundle.Translate(locale, stack.Kind.TranslationKey())
	switch {
	case stack.TraitID != "":
		return fmt.Sprintf("%s (%s)", name, traitName(coord, bundle, locale, stack.TraitID))
	case stack.Class != "":
		return fmt.Sprintf("%s (%s %s)", name, stack.Class, stack.Color)
	default:
		return name
	}
}

func traitName(coord *trait.Coordinator[item.Stack], bundle *catalog.Bundle, locale string, id trait.ID) string {
	d, err := coord.Lookup(id)
	if err != nil {
		return string(id)
	}
	return bundle.Translate(locale, d.TranslationKey)
}
