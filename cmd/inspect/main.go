package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
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
	detailsFlag = flag.String("details", "all", "Details to show, e.g. all or vitals|needs")
	presetFlag  = flag.String("preset", "", "Apply a settings preset: "+config.PresetPreferredUI)
	soundFlag   = flag.Bool("sound", false, "Click on selection changes")
	logFlag     = flag.String("log", "", "Write logs to this file; discarded when empty")
)

func main() {
	flag.Parse()

	logOut := io.Discard
	if *logFlag != "" {
		f, err := os.Create(*logFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	opts := logging.Defaults(logging.ProfileRuntime)
	opts.Out = logOut
	opts.NoColor = true
	log := logging.New(opts)

	v, err := newViewer(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	defer func() {
		if r := recover(); r != nil {
			v.cleanup()
			fmt.Fprintf(os.Stderr, "inspect crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer v.cleanup()

	if err := v.run(context.Background()); err != nil {
		v.cleanup()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// session is the in-process host the viewer drives
type session struct {
	sched   *engine.Scheduler
	clock   *engine.PausableClock
	catalog *entity.Catalog
	metrics *status.Registry
}

func buildRuntime(log zerolog.Logger) (*session, error) {
	settings := config.Default()
	if *presetFlag != "" {
		if err := settings.ApplyPreset(*presetFlag); err != nil {
			return nil, err
		}
	}
	settings.Descriptions.DetailsText = *detailsFlag
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	catalog, err := entity.DecodeCatalog(asset.DefaultCatalog)
	if err != nil {
		return nil, err
	}
	table, err := locale.Decode(asset.DefaultLocale)
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	if err := manifest.RegisterMods(reg); err != nil {
		return nil, err
	}

	// Data is in memory before the first tick, so delayed mods build right away
	signals := &host.Signals{}
	signals.SetResourcesLoaded(true)
	signals.SetSessionPresent(true)

	rt := &session{
		clock:   engine.NewPausableClock(nil),
		catalog: catalog,
		metrics: status.NewRegistry(),
	}
	rt.sched = engine.NewScheduler(reg.Discover(), signals, &mod.Context{
		Log:      log,
		Settings: &settings,
		Source:   catalog,
		Locale:   table,
		Metrics:  rt.metrics,
	}, engine.WithClock(rt.clock))

	ctx := context.Background()
	if err := rt.sched.Start(ctx); err != nil {
		return nil, err
	}
	if err := rt.sched.Tick(ctx); err != nil {
		return nil, err
	}
	return rt, nil
}

func (v *viewer) run(ctx context.Context) error {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	v.draw()
	for {
		select {
		case ev := <-eventChan:
			if !v.handleEvent(ev) {
				return nil
			}
			v.draw()
		case <-ticker.C:
			if err := v.rt.sched.Tick(ctx); err != nil {
				return err
			}
			v.drawStatus()
			v.screen.Show()
		}
	}
}
