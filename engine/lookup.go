package engine

import "fmt"

// Lookup returns the live mod named name as T
func Lookup[T any](s *Scheduler, name string) (T, bool) {
	var zero T
	inst, ok := s.byName[name]
	if !ok {
		return zero, false
	}
	typed, ok := inst.Mod.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// MustLookup returns the live mod named name as T
// Panics if the mod is not live or has another type
func MustLookup[T any](s *Scheduler, name string) T {
	inst, ok := s.byName[name]
	if !ok {
		panic(fmt.Sprintf("mod not live: %s", name))
	}
	typed, ok := inst.Mod.(T)
	if !ok {
		panic(fmt.Sprintf("mod %s: type mismatch, got %T", name, inst.Mod))
	}
	return typed
}
