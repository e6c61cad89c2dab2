// Package episode freezes a board's current rank order into an immutable
// snapshot.
package episode

import "time"

// Option applies a configuration option to a capture.
type Option func(*capture)

// WithEpisodeNumber sets the episode number. Callers normally pass the
// store's next number; the default is 1.
func WithEpisodeNumber(n int) Option {
	return func(c *capture) {
		if n >= 1 {
			c.episodeNumber = n
		}
	}
}

// WithLabel sets the snapshot label. Empty keeps the "Episode N" default.
func WithLabel(label string) Option {
	return func(c *capture) {
		c.label = label
	}
}

// WithNotes sets free-form notes on the snapshot.
func WithNotes(notes string) Option {
	return func(c *capture) {
		c.notes = notes
	}
}

// WithClock sets the timestamp source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(c *capture) {
		if now != nil {
			c.now = now
		}
	}
}

// WithIDFunc sets the snapshot ID generator. Used by tests.
func WithIDFunc(newID func() string) Option {
	return func(c *capture) {
		if newID != nil {
			c.newID = newID
		}
	}
}
