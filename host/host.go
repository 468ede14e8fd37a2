// Package host describes the readiness signals the embedding application exposes
package host

import "sync/atomic"

// Readiness gates delayed mod construction
type Readiness interface {
	// ResourcesLoaded reports whether the host finished loading its data
	ResourcesLoaded() bool
	// SessionPresent reports whether a play session is active
	SessionPresent() bool
}

// Signals is a settable Readiness; safe to flip from another goroutine
type Signals struct {
	resources atomic.Bool
	session   atomic.Bool
}

// SetResourcesLoaded updates the resources signal
func (s *Signals) SetResourcesLoaded(v bool) {
	s.resources.Store(v)
}

// SetSessionPresent updates the session signal
func (s *Signals) SetSessionPresent(v bool) {
	s.session.Store(v)
}

// ResourcesLoaded implements Readiness
func (s *Signals) ResourcesLoaded() bool {
	return s.resources.Load()
}

// SessionPresent implements Readiness
func (s *Signals) SessionPresent() bool {
	return s.session.Load()
}

// Ready reports whether both signals are set
func Ready(r Readiness) bool {
	return r.ResourcesLoaded() && r.SessionPresent()
}
