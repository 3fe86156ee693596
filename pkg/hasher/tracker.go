package hasher

import (
	"log/slog"

	"github.com/dmitrymomot/strkit/pkg/cache"
	"github.com/dmitrymomot/strkit/pkg/logger"
)

// DefaultTrackerCapacity bounds the number of keys a Tracker remembers when
// no capacity is given.
const DefaultTrackerCapacity = 1024

// Tracker detects whether a numeric array changed between observations.
// It keeps the last fingerprint per key in an LRU store, so the least
// recently observed keys are forgotten once the capacity is reached.
type Tracker struct {
	seen   *cache.LRU[string, string]
	length int
	log    *slog.Logger
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithFingerprintLength sets the fingerprint length (default 12).
func WithFingerprintLength(n int) TrackerOption {
	return func(t *Tracker) {
		if n > 0 {
			t.length = n
		}
	}
}

// WithTrackerLogger sets the logger used to report evicted keys.
func WithTrackerLogger(l *slog.Logger) TrackerOption {
	return func(t *Tracker) {
		if l != nil {
			t.log = l
		}
	}
}

// NewTracker creates a Tracker remembering up to capacity keys.
// A non-positive capacity selects DefaultTrackerCapacity.
func NewTracker(capacity int, opts ...TrackerOption) *Tracker {
	if capacity <= 0 {
		capacity = DefaultTrackerCapacity
	}
	t := &Tracker{
		seen:   cache.NewLRU[string, string](capacity),
		length: DefaultArrayHashLength,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.seen.OnEvict(func(key, fp string) {
		t.log.Debug("fingerprint evicted",
			logger.Component("hasher.tracker"), logger.Name(key), logger.Fingerprint(fp))
	})
	return t
}

// Changed records the fingerprint of values under key and reports whether it
// differs from the previous one. The first observation of a key counts as a
// change.
func (t *Tracker) Changed(key string, values []float64) bool {
	fp := ArrayHash(values, t.length)
	prev, existed := t.seen.Put(key, fp)
	return !existed || prev != fp
}

// Fingerprint returns the last fingerprint recorded for key.
func (t *Tracker) Fingerprint(key string) (string, bool) {
	return t.seen.Peek(key)
}

// Forget drops the fingerprint stored for key.
func (t *Tracker) Forget(key string) {
	t.seen.Remove(key)
}
