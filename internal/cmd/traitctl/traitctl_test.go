package traitctl

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	storagesqlite "github.com/louisbranch/novagenetica/internal/storage/sqlite"
	"github.com/louisbranch/novagenetica/internal/trait"
)

const packYAML = `
traits:
  - id: novagenetica:fire
    translation_key: ability.novagenetica.fire
    rarity: 4
    completion_cost: 2
    color: "#FF0000"
    sources:
      wolf: "#112233"
  - id: novagenetica:odd
    translation_key: ability.novagenetica.odd
    rarity: 1
    completion_cost: 3
    color: "#000000"
    sources:
      bat: "#010101"
`

func writePack(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pack.yaml"), []byte(packYAML), 0o644); err != nil {
		t.Fatalf("write pack: %v", err)
	}
	return dir
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"NOVAGENETICA_CONTENT_DIR",
		"NOVAGENETICA_LOCALE",
		"NOVAGENETICA_DB_PATH",
		"NOVAGENETICA_EXPORT",
		"NOVAGENETICA_DROP_CLASS",
		"NOVAGENETICA_BUCKET",
		"NOVAGENETICA_TIMEOUT",
		"NOVAGENETICA_OTEL_ENDPOINT",
		"NOVAGENETICA_OTEL_ENABLED",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseConfig(flag.NewFlagSet("traitctl", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Locale != "en-US" || cfg.DBPath != "data/traits.db" || cfg.Export || cfg.ContentDir != "" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("timeout = %v, want 30s", cfg.Timeout)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("NOVAGENETICA_LOCALE", "pt-BR")
	t.Setenv("NOVAGENETICA_CONTENT_DIR", "/env/content")

	cfg, err := ParseConfig(flag.NewFlagSet("traitctl", flag.ContinueOnError), []string{"-content", "/flag/content", "-export", "-class", "wolf"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Locale != "pt-BR" {
		t.Fatalf("locale = %q, want pt-BR", cfg.Locale)
	}
	if cfg.ContentDir != "/flag/content" || !cfg.Export || cfg.Class != "wolf" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestParseConfigRequiresDBPathForExport(t *testing.T) {
	clearEnv(t)

	_, err := ParseConfig(flag.NewFlagSet("traitctl", flag.ContinueOnError), []string{"-export", "-db-path", " "})
	if err == nil {
		t.Fatal("expected error for blank db path")
	}
}

func TestBuildWithoutContentRegistersBuiltinOnly(t *testing.T) {
	loaded, err := Build(context.Background(), "", nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	ids := loaded.Coordinator.IDs()
	if len(ids) != 1 || ids[0] != "novagenetica:none" {
		t.Fatalf("ids = %v, want [novagenetica:none]", ids)
	}
	if loaded.Report.Registered != 0 || loaded.Report.Skipped != 0 {
		t.Fatalf("unexpected report %+v", loaded.Report)
	}
}

func TestBuildLoadsContentPack(t *testing.T) {
	var logs bytes.Buffer
	loaded, err := Build(context.Background(), writePack(t), log.New(&logs, "", 0))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if loaded.Report.Registered != 1 || loaded.Report.Skipped != 1 {
		t.Fatalf("report = %+v, want 1 registered and 1 skipped", loaded.Report)
	}
	if _, err := loaded.Coordinator.Lookup("novagenetica:odd"); err == nil {
		t.Fatal("expected odd-cost trait to be skipped")
	}
	if got := loaded.Coordinator.TraitsFor("wolf"); len(got) != 1 || got[0] != "novagenetica:fire" {
		t.Fatalf("wolf traits = %v", got)
	}
	if !strings.Contains(logs.String(), "novagenetica:odd") {
		t.Fatalf("expected skip to be logged, got %q", logs.String())
	}
}

func TestRunPrintsLocalizedListing(t *testing.T) {
	clearEnv(t)
	var out bytes.Buffer
	cfg := Config{ContentDir: writePack(t), Locale: "en-US", Class: "wolf"}

	if err := Run(context.Background(), cfg, &out, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	text := out.String()
	for _, want := range []string{
		"Syringe",
		"Filled Syringe (None)",
		"Filled Syringe (Fire Breath)",
		"Gene (Fire Breath)",
		"Mob Flakes (wolf #112233)",
		"Centrifuge",
		"drops for wolf (#112233):",
		"Fire Breath",
		"25.00%",
		"registered 2 trait(s), 1 from content, skipped 1",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
	if first, last := strings.Index(text, "Filled Syringe (None)"), strings.Index(text, "Centrifuge"); first > last {
		t.Fatalf("expected syringes before end fixtures:\n%s", text)
	}
}

func TestRunUsesRequestedLocale(t *testing.T) {
	clearEnv(t)
	var out bytes.Buffer
	cfg := Config{Locale: "pt-BR"}

	if err := Run(context.Background(), cfg, &out, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Seringa") {
		t.Fatalf("expected pt-BR names, got:\n%s", out.String())
	}
}

func TestRunUnknownDropClass(t *testing.T) {
	clearEnv(t)
	cfg := Config{Locale: "en-US", Class: "dragon"}

	if err := Run(context.Background(), cfg, io.Discard, io.Discard); err == nil {
		t.Fatal("expected error for unknown class")
	}
}

func TestRunExportsCatalog(t *testing.T) {
	clearEnv(t)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	prev := timeNow
	timeNow = func() time.Time { return fixed }
	t.Cleanup(func() { timeNow = prev })

	dbPath := filepath.Join(t.TempDir(), "traits.db")
	cfg := Config{ContentDir: writePack(t), Locale: "en-US", DBPath: dbPath, Export: true}
	if err := Run(context.Background(), cfg, io.Discard, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}

	store, err := storagesqlite.Open(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	got, err := store.GetCatalog(context.Background())
	if err != nil {
		t.Fatalf("get catalog: %v", err)
	}
	if !got.ExportedAt.Equal(fixed) {
		t.Fatalf("exported at = %v, want %v", got.ExportedAt, fixed)
	}
	if len(got.Traits) != 2 {
		t.Fatalf("traits = %d, want 2", len(got.Traits))
	}
	if len(got.Classes) != 1 || got.Classes[0].ID != "wolf" || got.Classes[0].Color != trait.Color(0x112233) {
		t.Fatalf("unexpected classes %+v", got.Classes)
	}
	// START, 2 syringes, 2 genes, 1 flakes, 2 END.
	if len(got.Presentation) != 8 {
		t.Fatalf("presentation = %d entries, want 8", len(got.Presentation))
	}
	if got.Presentation[0].Bucket != trait.BucketStart || got.Presentation[7].Kind != "centrifuge" {
		t.Fatalf("unexpected presentation order %+v", got.Presentation)
	}
}

func TestParseConfigBucket(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseConfig(flag.NewFlagSet("traitctl", flag.ContinueOnError), []string{"-bucket", "mob_flakes"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Bucket != string(trait.BucketMobFlakes) {
		t.Fatalf("bucket = %q, want %q", cfg.Bucket, trait.BucketMobFlakes)
	}

	_, err = ParseConfig(flag.NewFlagSet("traitctl", flag.ContinueOnError), []string{"-bucket", "sidebar"})
	if !errors.Is(err, trait.ErrUnknownBucket) {
		t.Fatalf("expected ErrUnknownBucket, got %v", err)
	}
}

func TestRunListsSingleBucket(t *testing.T) {
	clearEnv(t)
	var out bytes.Buffer
	cfg := Config{ContentDir: writePack(t), Locale: "en-US", Bucket: string(trait.BucketGene)}

	if err := Run(context.Background(), cfg, &out, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Gene (Fire Breath)") || !strings.Contains(text, "Gene (None)") {
		t.Fatalf("expected gene entries:\n%s", text)
	}
	for _, unwanted := range []string{"Syringe", "Mob Flakes", "Centrifuge"} {
		if strings.Contains(text, unwanted) {
			t.Fatalf("unexpected %q in single bucket listing:\n%s", unwanted, text)
		}
	}
}

func TestRunLogsEachSkipOnce(t *testing.T) {
	clearEnv(t)
	var logs bytes.Buffer
	cfg := Config{ContentDir: writePack(t), Locale: "en-US"}

	if err := Run(context.Background(), cfg, io.Discard, &logs); err != nil {
		t.Fatalf("run: %v", err)
	}
	if n := strings.Count(logs.String(), "novagenetica:odd"); n != 1 {
		t.Fatalf("expected one skip line, got %d:\n%s", n, logs.String())
	}
}

func TestRunLogsLocaleFallback(t *testing.T) {
	clearEnv(t)
	var out, logs bytes.Buffer
	cfg := Config{Locale: "fr-FR"}

	if err := Run(context.Background(), cfg, &out, &logs); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(logs.String(), `locale "fr-FR" is not available (have en-US, pt-BR), using en-US`) {
		t.Fatalf("expected fallback notice, got %q", logs.String())
	}
	if !strings.Contains(out.String(), "Filled Syringe (None)") {
		t.Fatalf("expected base locale names:\n%s", out.String())
	}
}
