package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys written by the runtime
const (
	SchedulerTicks        = "scheduler.ticks"
	SchedulerInstances    = "scheduler.instances"
	SchedulerUpdates      = "scheduler.updates"
	SchedulerState        = "scheduler.state"
	SchedulerDelayedReady = "scheduler.delayed_ready"
	RowsHits              = "rows.hits"
	RowsMisses            = "rows.misses"
	RowsEntries           = "rows.entries"
	PlaytimeMillis        = "playtime.ms"
	PlaytimeSessions      = "playtime.sessions"
)

// Registry is the metrics facade shared by the scheduler, the row cache and mods
// Components cache metric pointers at construction; hot paths write the atomics directly
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Strings.Count()
}

// Snapshot renders every metric as "key=value", grouped by type and sorted by key
func (r *Registry) Snapshot() []string {
	out := make([]string, 0, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, fmt.Sprintf("%s=%t", k, v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, fmt.Sprintf("%s=%s", k, v.Load()))
	})
	return out
}
