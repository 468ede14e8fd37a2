package registry

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Descriptor is an immutable discovery record
type Descriptor struct {
	Name      string
	Timing    Timing
	Updatable bool
	Factory   Factory
}

// Discover returns the component entries in registration order, minus excluded ones,
// limited to whitelist when it is non-empty
func (r *Registry) Discover(whitelist ...string) []Descriptor {
	allowed := make(map[string]struct{}, len(whitelist))
	for _, name := range whitelist {
		allowed[name] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	descs := make([]Descriptor, 0, len(r.entries))
	for _, e := range r.entries {
		if !e.Caps.Has(CapComponent) || e.Caps.Has(CapExcludeFromBuild) {
			continue
		}
		if len(allowed) > 0 {
			if _, ok := allowed[e.Name]; !ok {
				continue
			}
		}
		timing := Immediate
		if e.Caps.Has(CapDelayedInit) {
			timing = Delayed
		}
		descs = append(descs, Descriptor{
			Name:      e.Name,
			Timing:    timing,
			Updatable: e.Caps.Has(CapUpdatable),
			Factory:   e.Factory,
		})
	}
	return descs
}

// Split partitions descriptors by timing, preserving order in both buckets
func Split(descs []Descriptor) (immediate, delayed []Descriptor) {
	for _, d := range descs {
		if d.Timing == Delayed {
			delayed = append(delayed, d)
		} else {
			immediate = append(immediate, d)
		}
	}
	return immediate, delayed
}

// Mismatch is a whitelist name no discoverable entry carries
type Mismatch struct {
	Name string
	// Suggestion is the closest discoverable name, empty when nothing is close
	Suggestion string
}

// maxSuggestDistance bounds suggestions to plausible typos
const maxSuggestDistance = 3

// Unmatched reports whitelist names that discovery would never match
func (r *Registry) Unmatched(whitelist []string) []Mismatch {
	if len(whitelist) == 0 {
		return nil
	}
	known := make(map[string]struct{})
	var names []string
	for _, d := range r.Discover() {
		known[d.Name] = struct{}{}
		names = append(names, d.Name)
	}

	var out []Mismatch
	for _, w := range whitelist {
		if _, ok := known[w]; ok {
			continue
		}
		m := Mismatch{Name: w}
		best := maxSuggestDistance + 1
		for _, n := range names {
			d := levenshtein.ComputeDistance(strings.ToLower(w), strings.ToLower(n))
			if d < best {
				best = d
				m.Suggestion = n
			}
		}
		out = append(out, m)
	}
	return out
}
