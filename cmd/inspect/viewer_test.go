package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViewer(t *testing.T) *viewer {
	t.Helper()
	rt, err := buildRuntime(zerolog.Nop())
	require.NoError(t, err)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(100, 30)

	v := newViewerOn(screen, rt, zerolog.Nop())
	t.Cleanup(v.cleanup)
	return v
}

func screenLine(s tcell.Screen, x, y, width int) string {
	var sb strings.Builder
	for i := 0; i < width; i++ {
		r, _, _, _ := s.GetContent(x+i, y)
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestViewerNavigation(t *testing.T) {
	v := newTestViewer(t)
	v.draw()
	assert.Contains(t, screenLine(v.screen, listWidth+2, 2, detailWidth), "host details", "equipment keeps host details")

	for i := 0; i < 4; i++ {
		require.True(t, v.handleEvent(key(tcell.KeyRune, 'j')))
	}
	v.draw()

	e, ok := v.catalog.Entity(v.ids[v.selected])
	require.True(t, ok)
	assert.Equal(t, "Gaberry Jam", e.Name)

	row := screenLine(v.screen, listWidth+2, 2, detailWidth)
	assert.Contains(t, row, "Food")
	assert.Contains(t, row, "+8%")

	require.True(t, v.handleEvent(key(tcell.KeyUp, 0)))
	assert.Equal(t, 3, v.selected)

	for i := 0; i < 10; i++ {
		v.handleEvent(key(tcell.KeyUp, 0))
	}
	assert.Equal(t, 0, v.selected, "selection stops at the top")
}

func TestViewerQuit(t *testing.T) {
	v := newTestViewer(t)
	assert.False(t, v.handleEvent(key(tcell.KeyRune, 'q')))
	assert.False(t, v.handleEvent(key(tcell.KeyEscape, 0)))
}

func TestViewerPauseToggle(t *testing.T) {
	v := newTestViewer(t)
	assert.False(t, v.rt.clock.IsPaused())

	require.True(t, v.handleEvent(key(tcell.KeyRune, 'p')))
	assert.True(t, v.rt.clock.IsPaused())
	v.drawStatus()
	_, h := v.screen.Size()
	assert.Contains(t, screenLine(v.screen, 0, h-1, 100), "paused")

	require.True(t, v.handleEvent(key(tcell.KeyRune, 'p')))
	assert.False(t, v.rt.clock.IsPaused())
}

func TestRuntimeBuildsAllComponents(t *testing.T) {
	v := newTestViewer(t)
	names := make([]string, 0)
	for _, inst := range v.rt.sched.Instances() {
		names = append(names, inst.Name)
	}
	assert.ElementsMatch(t, []string{"Playtime", "Descriptions"}, names, "sandbox stays out of builds")
}
