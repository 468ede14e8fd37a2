package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/modpack/asset"
	"github.com/lixenwraith/modpack/config"
	"github.com/lixenwraith/modpack/description"
	"github.com/lixenwraith/modpack/entity"
	"github.com/lixenwraith/modpack/host"
	"github.com/lixenwraith/modpack/locale"
	"github.com/lixenwraith/modpack/mod"
	"github.com/lixenwraith/modpack/mods/descriptions"
)

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs(" 4300010, 8200180 ,,")
	require.NoError(t, err)
	assert.Equal(t, []entity.ID{4300010, 8200180}, ids)

	ids, err = parseIDs("")
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = parseIDs("12,potion")
	assert.Error(t, err)
}

func TestRelayTicksFlipsReadinessAndStops(t *testing.T) {
	src := make(chan time.Time)
	signals := &host.Signals{}
	out := relayTicks(context.Background(), src, signals, 2, 3)

	tick := func() {
		src <- time.Time{}
		<-out
	}

	tick()
	assert.False(t, host.Ready(signals))
	tick()
	assert.True(t, host.Ready(signals))
	tick()

	_, open := <-out
	assert.False(t, open, "closed after max ticks")
}

func TestPrintEntities(t *testing.T) {
	catalog, err := entity.DecodeCatalog(asset.DefaultCatalog)
	require.NoError(t, err)
	table, err := locale.Decode(asset.DefaultLocale)
	require.NoError(t, err)

	settings := config.Default()
	settings.Descriptions.Details = description.DetailAll
	d := descriptions.New()
	require.NoError(t, d.Init(&mod.Context{Log: zerolog.Nop(), Settings: &settings, Source: catalog, Locale: table}))

	var buf bytes.Buffer
	printEntities(&buf, d, catalog, []entity.ID{4300010, 2000010, 1})

	out := buf.String()
	assert.Contains(t, out, "Life Potion")
	assert.Contains(t, out, "+72 / 3min")
	assert.Contains(t, out, "host details")
	assert.Contains(t, out, "unknown entity 1")
}
