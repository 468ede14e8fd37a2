package registry

import "strings"

// Capability tags an entry with what the scheduler may do with it
type Capability uint8

const (
	// CapComponent marks a discoverable mod; untagged entries are never discovered
	CapComponent Capability = 1 << iota
	// CapDelayedInit defers construction until the host is ready
	CapDelayedInit
	// CapUpdatable declares a per-tick hook
	CapUpdatable
	// CapExcludeFromBuild hides the entry from discovery
	CapExcludeFromBuild
)

// Has reports whether every bit of c is set
func (caps Capability) Has(c Capability) bool {
	return caps&c == c
}

func (caps Capability) String() string {
	var parts []string
	for _, c := range []struct {
		bit  Capability
		name string
	}{
		{CapComponent, "component"},
		{CapDelayedInit, "delayed"},
		{CapUpdatable, "updatable"},
		{CapExcludeFromBuild, "excluded"},
	} {
		if caps&c.bit != 0 {
			parts = append(parts, c.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Timing is the construction bucket of a discovered mod
type Timing uint8

const (
	Immediate Timing = iota
	Delayed
)

func (t Timing) String() string {
	if t == Delayed {
		return "delayed"
	}
	return "immediate"
}
