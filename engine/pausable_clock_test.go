package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/modpack/registry"
)

func TestPausableClockFreezes(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	base := NewMockTimeProvider(start)
	pc := NewPausableClock(base)

	base.Advance(time.Second)
	assert.Equal(t, start.Add(time.Second), pc.Now())

	pc.Pause()
	pc.Pause()
	base.Advance(5 * time.Second)
	assert.True(t, pc.IsPaused())
	assert.Equal(t, start.Add(time.Second), pc.Now(), "frozen while paused")
	assert.Equal(t, 5*time.Second, pc.PausedDuration())

	pc.Resume()
	pc.Resume()
	base.Advance(2 * time.Second)
	assert.Equal(t, start.Add(3*time.Second), pc.Now())
	assert.Equal(t, 5*time.Second, pc.PausedDuration())

	assert.True(t, pc.Toggle())
	assert.False(t, pc.Toggle())
}

func TestSchedulerDeltaExcludesPause(t *testing.T) {
	f := newFixture()
	base := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	pc := NewPausableClock(base)

	s := f.scheduler(f.desc("A", registry.Immediate, true))
	WithClock(pc)(s)
	ctx := context.Background()
	require.NoError(t, s.Start(ctx))

	base.Advance(time.Second)
	pc.Pause()
	base.Advance(time.Minute)
	require.NoError(t, s.Tick(ctx))
	pc.Resume()
	base.Advance(time.Second)
	require.NoError(t, s.Tick(ctx))

	assert.Equal(t, []time.Duration{time.Second, time.Second}, f.mods["A"].dts)
}
