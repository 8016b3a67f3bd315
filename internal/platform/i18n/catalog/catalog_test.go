package catalog

import (
	"testing"
	"testing/fstest"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("pt-BR") {
		t.Fatal("expected locale pt-BR")
	}
	locales := bundle.Locales()
	if len(locales) == 0 || locales[0] != BaseLocale {
		t.Fatalf("expected base locale first, got %v", locales)
	}
}

func TestTranslateWithFallback(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}

	if got := bundle.Translate("en-US", "ability.novagenetica.none"); got != "None" {
		t.Fatalf("unexpected en-US translation %q", got)
	}
	if got := bundle.Translate("pt-BR", "ability.novagenetica.none"); got != "Nenhuma" {
		t.Fatalf("unexpected pt-BR translation %q", got)
	}
	if got := bundle.Translate("pt-BR", "item.novagenetica.centrifuge"); got != "Centrifuge" {
		t.Fatalf("expected base locale fallback, got %q", got)
	}
	if got := bundle.Translate("en-US", "ability.unknown"); got != "ability.unknown" {
		t.Fatalf("expected unknown key unchanged, got %q", got)
	}
}

func TestMatch(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	tests := map[string]string{
		"pt-BR":   "pt-BR",
		"en-US":   "en-US",
		"not a $": BaseLocale,
	}
	for requested, want := range tests {
		if got := bundle.Match(requested); got != want {
			t.Fatalf("Match(%q) = %q, want %q", requested, got, want)
		}
	}
}

func TestLoadFromFSRejectsLocaleMismatch(t *testing.T) {
	_, err := LoadFromFS(fstest.MapFS{
		"locales/en-US/traits.yaml": &fstest.MapFile{Data: []byte(`locale: "pt-BR"
namespace: "traits"
messages:
  "a": "b"
`)},
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	_, err := LoadFromFS(fstest.MapFS{
		"locales/en-US/items.yaml": &fstest.MapFile{Data: []byte(`locale: "en-US"
namespace: "items"
messages:
  "a.key": "a"
`)},
		"locales/en-US/traits.yaml": &fstest.MapFile{Data: []byte(`locale: "en-US"
namespace: "traits"
messages:
  "a.key": "b"
`)},
	})
	if err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	_, err := LoadFromFS(fstest.MapFS{
		"locales/pt-BR/traits.yaml": &fstest.MapFile{Data: []byte(`locale: "pt-BR"
namespace: "traits"
messages:
  "a": "b"
`)},
	})
	if err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestTranslateKeepsPercentSigns(t *testing.T) {
	bundle, err := LoadFromFS(fstest.MapFS{
		"locales/en-US/traits.yaml": &fstest.MapFile{Data: []byte(`locale: "en-US"
namespace: "traits"
messages:
  "ability.pure": "100% pure %s"
`)},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := bundle.Translate("en-US", "ability.pure"); got != "100% pure %s" {
		t.Fatalf("unexpected translation %q", got)
	}
	if got := bundle.Translate("en-US", "ability.50%"); got != "ability.50%" {
		t.Fatalf("expected unknown key unchanged, got %q", got)
	}
}
