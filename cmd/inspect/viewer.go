package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/modpack/display"
	"github.com/lixenwraith/modpack/engine"
	"github.com/lixenwraith/modpack/entity"
	"github.com/lixenwraith/modpack/mods/descriptions"
	"github.com/lixenwraith/modpack/status"
)

const (
	listWidth   = 30
	detailWidth = 48
	detailLines = 12
)

var (
	styleList     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHint     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

type viewer struct {
	screen  tcell.Screen
	rt      *session
	desc    *descriptions.Mod
	catalog *entity.Catalog
	sink    *display.ScreenSink
	sound   *tone
	log     zerolog.Logger

	ids      []entity.ID
	selected int
	lastID   entity.ID
	closed   bool
}

func newViewer(log zerolog.Logger) (*viewer, error) {
	rt, err := buildRuntime(log)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return newViewerOn(screen, rt, log), nil
}

func newViewerOn(screen tcell.Screen, rt *session, log zerolog.Logger) *viewer {
	v := &viewer{
		screen:  screen,
		rt:      rt,
		desc:    engine.MustLookup[*descriptions.Mod](rt.sched, descriptions.Name),
		catalog: rt.catalog,
		sink:    display.NewScreenSink(screen, listWidth+2, 2, detailWidth, detailLines),
		log:     log,
		ids:     rt.catalog.IDs(),
	}
	if *soundFlag {
		t, err := newTone()
		if err != nil {
			// Non-fatal, the viewer works without sound
			log.Warn().Err(err).Msg("Audio initialization failed")
		} else {
			v.sound = t
		}
	}
	return v
}

func (v *viewer) cleanup() {
	if v.closed {
		return
	}
	v.closed = true
	v.sound.close()
	v.screen.Fini()
}

// handleEvent returns false when the viewer should exit
func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.move(-1)
		case tcell.KeyDown:
			v.move(1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'k':
				v.move(-1)
			case 'j':
				v.move(1)
			case 'p':
				paused := v.rt.clock.Toggle()
				v.log.Debug().Bool("paused", paused).Msg("Clock toggled")
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) move(delta int) {
	if len(v.ids) == 0 {
		return
	}
	next := v.selected + delta
	if next < 0 || next >= len(v.ids) {
		return
	}
	v.selected = next
	v.log.Debug().Int("id", int(v.ids[next])).Msg("Selected")
}

func (v *viewer) draw() {
	v.screen.Clear()
	v.drawText(0, 0, listWidth, "Entities", styleTitle)

	for i, id := range v.ids {
		e, _ := v.catalog.Entity(id)
		style := styleList
		if i == v.selected {
			style = styleSelected
		}
		v.drawText(0, i+2, listWidth, fmt.Sprintf("%-8d %s", id, e.Name), style)
	}

	if len(v.ids) > 0 {
		v.drawDetails(v.ids[v.selected])
	}
	v.drawStatus()
	v.screen.Show()
}

func (v *viewer) drawDetails(id entity.ID) {
	e, _ := v.catalog.Entity(id)
	v.drawText(listWidth+2, 0, detailWidth, e.Name, styleTitle)

	shown := v.desc.ShowDetails(id, v.sink)
	if !shown {
		for i := 0; i < v.sink.Cap(); i++ {
			v.sink.Hide(i)
		}
		v.drawText(listWidth+2, 2, detailWidth, "host details", styleHint)
	}
	if id != v.lastID {
		freq := float64(toneHost)
		if shown {
			freq = toneShown
		}
		v.sound.play(freq)
		v.lastID = id
	}

	y := 2 + detailLines + 1
	if size, ok := v.desc.BarSize(id); ok {
		bar := strings.Repeat("█", size*detailWidth/100)
		v.drawText(listWidth+2, y, detailWidth, bar, tcell.StyleDefault.Foreground(tcell.ColorGreen))
		y++
	}
	if slot, ok := v.desc.AttackSpeedRow(id); ok {
		v.drawText(listWidth+2, y, detailWidth, slot.Label+": "+slot.Content, tcell.StyleDefault.Foreground(slot.Color))
	}
}

func (v *viewer) drawStatus() {
	_, h := v.screen.Size()
	clock := "running"
	if v.rt.clock.IsPaused() {
		clock = "paused"
	}
	played := time.Duration(v.rt.metrics.Ints.Get(status.PlaytimeMillis).Load()) * time.Millisecond
	line := fmt.Sprintf("%s  %s  played=%s  ticks=%d  rows=%d  j/k move  p pause  q quit",
		v.rt.sched.State(),
		clock,
		played.Truncate(time.Second),
		v.rt.metrics.Ints.Get(status.SchedulerTicks).Load(),
		v.rt.metrics.Ints.Get(status.RowsEntries).Load())
	v.drawText(0, h-1, listWidth+2+detailWidth, line, styleHint)
}

func (v *viewer) drawText(x, y, width int, text string, style tcell.Style) {
	col := 0
	for _, r := range text {
		if col >= width {
			break
		}
		v.screen.SetContent(x+col, y, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		v.screen.SetContent(x+col, y, ' ', nil, style)
	}
}
