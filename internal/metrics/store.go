// SPDX-License-Identifier: MIT
/*
Package metrics defines the per-buffer analysis snapshot and the store
that hands it from the realtime audio callback to the display loop.

Thread Safety:
- Exactly one producer (the capture callback) and one consumer (the display loop)
- Publish is a single atomic pointer swap; the producer never blocks
- A reader always observes a fully formed snapshot, never a torn mix
*/
package metrics

import "sync/atomic"

// Store is the sole synchronization point between the capture callback
// and the display loop. It wraps one Snapshot behind an atomic pointer;
// each Publish replaces the previous value wholesale.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore returns a Store holding the all-zero snapshot.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(&Snapshot{})
	return s
}

// Publish replaces the held snapshot. Called once per delivered audio
// buffer from the capture callback.
func (s *Store) Publish(snap Snapshot) {
	s.current.Store(&snap)
}

// Snapshot returns the most recently published value. Called from the
// display loop on its own cadence; never blocks the producer.
func (s *Store) Snapshot() Snapshot {
	if p := s.current.Load(); p != nil {
		return *p
	}
	return Snapshot{}
}
