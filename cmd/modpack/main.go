package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/modpack/asset"
	"github.com/lixenwraith/modpack/config"
	"github.com/lixenwraith/modpack/engine"
	"github.com/lixenwraith/modpack/entity"
	"github.com/lixenwraith/modpack/host"
	"github.com/lixenwraith/modpack/locale"
	"github.com/lixenwraith/modpack/logging"
	"github.com/lixenwraith/modpack/manifest"
	"github.com/lixenwraith/modpack/mod"
	"github.com/lixenwraith/modpack/mods/descriptions"
	"github.com/lixenwraith/modpack/registry"
	"github.com/lixenwraith/modpack/status"
)

var (
	configFlag   = flag.String("config", "", "Settings file (TOML); default ~/.config/modpack/config.toml")
	catalogFlag  = flag.String("catalog", "", "Entity catalog file (TOML); default built-in")
	localeFlag   = flag.String("locale", "", "String table file (TOML); default built-in English")
	entitiesFlag = flag.String("entities", "", "Comma-separated entity ids to describe once delayed mods are ready")
	detailsFlag  = flag.String("details", "", "Override descriptions.details, e.g. all or vitals|needs")
	presetFlag   = flag.String("preset", "", "Apply a settings preset: "+config.PresetPreferredUI)
	ticksFlag    = flag.Int("ticks", -1, "Stop after N ticks; -1 uses host.max_ticks")
	statsFlag    = flag.Bool("stats", false, "Print runtime metrics on exit")
	verboseFlag  = flag.Bool("v", false, "Debug logging")
)

func main() {
	flag.Parse()

	opts := logging.Defaults(logging.ProfileRuntime)
	if *verboseFlag {
		opts.Level = zerolog.DebugLevel
	}
	log := logging.New(opts)

	if err := run(log); err != nil {
		log.Error().Err(err).Msg("Exiting")
		os.Exit(1)
	}
}

func run(log zerolog.Logger) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	ids, err := parseIDs(*entitiesFlag)
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(*catalogFlag)
	if err != nil {
		return err
	}
	table, err := loadLocale(*localeFlag)
	if err != nil {
		return err
	}
	log.Info().Int("entities", catalog.Len()).Str("language", table.Language).Msg("Data loaded")

	reg := registry.New()
	if err := manifest.RegisterMods(reg); err != nil {
		return fmt.Errorf("register mods: %w", err)
	}
	for _, m := range reg.Unmatched(settings.Whitelist) {
		ev := log.Warn().Str("name", m.Name)
		if m.Suggestion != "" {
			ev = ev.Str("did_you_mean", m.Suggestion)
		}
		ev.Msg("Whitelisted mod not found")
	}
	descs := reg.Discover(settings.Whitelist...)

	metrics := status.NewRegistry()
	signals := &host.Signals{}
	mctx := &mod.Context{
		Log:      log,
		Settings: &settings,
		Source:   catalog,
		Locale:   table,
		Metrics:  metrics,
	}
	sched := engine.NewScheduler(descs, signals, mctx)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sched.Start(ctx); err != nil {
		return err
	}

	maxTicks := settings.Host.MaxTicks
	if *ticksFlag >= 0 {
		maxTicks = *ticksFlag
	}
	if maxTicks == 0 && len(ids) > 0 {
		maxTicks = settings.Host.ReadyAfter + 1
	}
	if settings.Host.ReadyAfter == 0 {
		setReady(signals)
	}

	ticker := time.NewTicker(settings.Host.TickInterval)
	defer ticker.Stop()
	ticks := relayTicks(ctx, ticker.C, signals, settings.Host.ReadyAfter, maxTicks)

	if err := sched.Run(ctx, ticks); err != nil {
		return err
	}
	log.Info().Str("state", string(sched.State())).Msg("Scheduler stopped")

	if len(ids) > 0 {
		if d, ok := engine.Lookup[*descriptions.Mod](sched, descriptions.Name); ok {
			printEntities(os.Stdout, d, catalog, ids)
		} else {
			log.Warn().Msg("Descriptions mod is not live; nothing to describe")
		}
	}
	if *statsFlag {
		for _, line := range metrics.Snapshot() {
			fmt.Println(line)
		}
	}
	return nil
}

func loadSettings() (config.Settings, error) {
	settings, err := config.Load(*configFlag)
	if err != nil {
		return config.Settings{}, err
	}
	if *presetFlag != "" {
		if err := settings.ApplyPreset(*presetFlag); err != nil {
			return config.Settings{}, err
		}
	}
	if *detailsFlag != "" {
		settings.Descriptions.DetailsText = *detailsFlag
	}
	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

func loadCatalog(path string) (*entity.Catalog, error) {
	doc := asset.DefaultCatalog
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		doc = string(data)
	}
	return entity.DecodeCatalog(doc)
}

func loadLocale(path string) (*locale.Table, error) {
	doc := asset.DefaultLocale
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read locale: %w", err)
		}
		doc = string(data)
	}
	return locale.Decode(doc)
}

func parseIDs(raw string) ([]entity.ID, error) {
	var ids []entity.ID
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("entity id %q: %w", part, err)
		}
		ids = append(ids, entity.ID(n))
	}
	return ids, nil
}

func setReady(s *host.Signals) {
	s.SetResourcesLoaded(true)
	s.SetSessionPresent(true)
}

// relayTicks forwards ticker ticks, flipping readiness after readyAfter ticks
// and closing the channel after maxTicks (never when zero)
func relayTicks(ctx context.Context, src <-chan time.Time, signals *host.Signals, readyAfter, maxTicks int) <-chan time.Time {
	out := make(chan time.Time)
	go func() {
		defer close(out)
		n := 0
		for {
			select {
			case <-ctx.Done():
				return
			case t := <-src:
				n++
				if n == readyAfter {
					setReady(signals)
				}
				select {
				case out <- t:
				case <-ctx.Done():
					return
				}
				if maxTicks > 0 && n >= maxTicks {
					return
				}
			}
		}
	}()
	return out
}
