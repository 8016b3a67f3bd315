// Package catalog loads localized display strings for traits and items and
// exposes them through golang.org/x/text printers.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	xcatalog "golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

const (
	// BaseLocale is the canonical source locale for catalogs. Messages
	// missing from another locale fall back to it.
	BaseLocale = "en-US"
)

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle contains all locale catalogs and the x/text catalog built from them.
type Bundle struct {
	messages map[string]map[string]string
	tags     map[string]language.Tag
	builder  *xcatalog.Builder
	matcher  language.Matcher
	ordered  []string
}

//go:embed locales/*/*.yaml
var embeddedCatalogFS embed.FS

// LoadEmbedded loads catalog files embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedCatalogFS)
}

// LoadFromFS loads locales/<locale>/<namespace>.yaml files from catalogFS.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{
		messages: map[string]map[string]string{},
		tags:     map[string]language.Tag{},
	}
	for _, p := range paths {
		data, err := fs.ReadFile(catalogFS, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := b.addFile(p, file); err != nil {
			return nil, err
		}
	}
	if _, ok := b.messages[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	if err := b.build(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) addFile(p string, file catalogFile) error {
	localeFromPath := path.Base(path.Dir(p))
	namespaceFromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))

	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", p)
	}
	if locale != localeFromPath {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, locale, localeFromPath)
	}
	if strings.TrimSpace(file.Namespace) != namespaceFromPath {
		return fmt.Errorf("catalog %s: namespace %q must match filename namespace %q", p, file.Namespace, namespaceFromPath)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages are required", p)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("catalog %s: parse locale tag %q: %w", p, locale, err)
	}
	b.tags[locale] = tag

	messages, ok := b.messages[locale]
	if !ok {
		messages = map[string]string{}
		b.messages[locale] = messages
	}
	for key, value := range file.Messages {
		trimmedKey := strings.TrimSpace(key)
		if trimmedKey == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if _, exists := messages[trimmedKey]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, trimmedKey, locale)
		}
		messages[trimmedKey] = value
	}
	return nil
}

// build registers every locale with an x/text catalog, layering each locale
// over the base locale so missing keys fall back.
func (b *Bundle) build() error {
	b.ordered = make([]string, 0, len(b.messages))
	for locale := range b.messages {
		if locale != BaseLocale {
			b.ordered = append(b.ordered, locale)
		}
	}
	sort.Strings(b.ordered)
	b.ordered = append([]string{BaseLocale}, b.ordered...)

	b.builder = xcatalog.NewBuilder(xcatalog.Fallback(b.tags[BaseLocale]))
	tags := make([]language.Tag, 0, len(b.ordered))
	for _, locale := range b.ordered {
		tag := b.tags[locale]
		tags = append(tags, tag)
		for key, value := range b.Messages(locale) {
			if err := b.builder.SetString(tag, key, escapeFormat(value)); err != nil {
				return fmt.Errorf("register %s message %q: %w", locale, key, err)
			}
		}
	}
	b.matcher = language.NewMatcher(tags)
	return nil
}

// Locales returns all available locales, base locale first.
func (b *Bundle) Locales() []string {
	out := make([]string, len(b.ordered))
	copy(out, b.ordered)
	return out
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	_, ok := b.messages[strings.TrimSpace(locale)]
	return ok
}

// Match returns the supported locale closest to requested, or the base
// locale when nothing is close.
func (b *Bundle) Match(requested string) string {
	tag, err := language.Parse(strings.TrimSpace(requested))
	if err != nil {
		return BaseLocale
	}
	_, index, confidence := b.matcher.Match(tag)
	if confidence == language.No {
		return BaseLocale
	}
	return b.ordered[index]
}

// Messages returns the messages of locale merged over the base locale.
func (b *Bundle) Messages(locale string) map[string]string {
	out := map[string]string{}
	for key, value := range b.messages[BaseLocale] {
		out[key] = value
	}
	for key, value := range b.messages[strings.TrimSpace(locale)] {
		out[key] = value
	}
	return out
}

// Printer returns an x/text printer for the closest supported locale.
func (b *Bundle) Printer(locale string) *message.Printer {
	return message.NewPrinter(b.tags[b.Match(locale)], message.Catalog(b.builder))
}

// Translate resolves key for locale. Unknown keys are returned unchanged.
// Messages are display text, never format strings.
func (b *Bundle) Translate(locale, key string) string {
	return b.Printer(locale).Sprintf(message.Key(key, escapeFormat(key)))
}

func escapeFormat(value string) string {
	return strings.ReplaceAll(value, "%", "%%")
}
