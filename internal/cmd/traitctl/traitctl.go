// Package traitctl loads the trait registry the way the game does at startup
// and reports or exports the result.
package traitctl

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	platformcmd "github.com/louisbranch/novagenetica/internal/platform/cmd"
	"github.com/louisbranch/novagenetica/internal/platform/i18n/catalog"
	"github.com/louisbranch/novagenetica/internal/platform/otel"
	"github.com/louisbranch/novagenetica/internal/platform/timeouts"
	storagesqlite "github.com/louisbranch/novagenetica/internal/storage/sqlite"
	"github.com/louisbranch/novagenetica/internal/trait"
)

var timeNow = time.Now

// Config holds traitctl configuration.
type Config struct {
	ContentDir string        `env:"NOVAGENETICA_CONTENT_DIR"`
	Locale     string        `env:"NOVAGENETICA_LOCALE"      envDefault:"en-US"`
	DBPath     string        `env:"NOVAGENETICA_DB_PATH"     envDefault:"data/traits.db"`
	Export     bool          `env:"NOVAGENETICA_EXPORT"`
	Class      string        `env:"NOVAGENETICA_DROP_CLASS"`
	Bucket     string        `env:"NOVAGENETICA_BUCKET"`
	Timeout    time.Duration `env:"NOVAGENETICA_TIMEOUT"     envDefault:"30s"`
	Telemetry  otel.Settings
}

// ParseConfig loads env defaults and then parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.ContentDir, "content", cfg.ContentDir, "content pack directory (*.lua, *.yaml)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for display names")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "catalog export database path")
	fs.BoolVar(&cfg.Export, "export", cfg.Export, "export the loaded catalog to the database")
	fs.StringVar(&cfg.Class, "class", cfg.Class, "print the drop table of a source class")
	fs.StringVar(&cfg.Bucket, "bucket", cfg.Bucket, "only list one presentation bucket (START, SYRINGE, GENE, MOB_FLAKES, END)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if cfg.Export && strings.TrimSpace(cfg.DBPath) == "" {
		return Config{}, errors.New("db-path is required when exporting")
	}
	if strings.TrimSpace(cfg.Bucket) != "" {
		bucket, err := trait.ParseBucket(cfg.Bucket)
		if err != nil {
			return Config{}, err
		}
		cfg.Bucket = string(bucket)
	}
	return cfg, nil
}

// Run loads the registry, prints the presentation listing and optionally
// exports the catalog.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := log.New(errOut, platformcmd.LogPrefix(platformcmd.ServiceTraitctl), 0)

	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceTraitctl, platformcmd.RunOptions{
		Telemetry: cfg.Telemetry,
		Logger:    logger,
	}, func(ctx context.Context) error {
		if cfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()
		}
		return run(ctx, cfg, out, logger)
	})
}

func run(ctx context.Context, cfg Config, out io.Writer, logger *log.Logger) error {
	bundle, err := catalog.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("load catalogs: %w", err)
	}
	locale := bundle.Match(cfg.Locale)
	if !bundle.HasLocale(cfg.Locale) {
		logger.Printf("locale %q is not available (have %s), using %s", cfg.Locale, strings.Join(bundle.Locales(), ", "), locale)
	}

	loaded, err := Build(ctx, cfg.ContentDir, logger)
	if err != nil {
		return err
	}
	if err := loaded.Coordinator.RunServerHooks(ctx); err != nil {
		return fmt.Errorf("run server hooks: %w", err)
	}

	if err := WriteListing(out, loaded.Coordinator, bundle, locale, trait.Bucket(cfg.Bucket)); err != nil {
		return err
	}
	if class := strings.TrimSpace(cfg.Class); class != "" {
		if err := WriteDropTable(out, loaded.Coordinator, bundle, locale, trait.ClassID(class)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(out, "registered %d trait(s), %d from content, skipped %d\n",
		loaded.Coordinator.Len(), loaded.Report.Registered, loaded.Report.Skipped); err != nil {
		return err
	}

	if !cfg.Export {
		return nil
	}
	store, err := storagesqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open catalog store: %w", err)
	}
	defer store.Close()

	exported := BuildCatalog(loaded.Coordinator, locale, timeNow())
	exportCtx, cancel := context.WithTimeout(ctx, timeouts.Export)
	defer cancel()
	if err := store.PutCatalog(exportCtx, exported); err != nil {
		return fmt.Errorf("export catalog: %w", err)
	}
	logger.Printf("exported %d trait(s) and %d class(es) to %s", len(exported.Traits), len(exported.Classes), cfg.DBPath)
	return nil
}
