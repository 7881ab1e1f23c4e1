package prefilter

// Tracker wraps a Prefilter with effectiveness tracking for one search.
//
// It counts candidates returned by the prefilter and matches confirmed by
// the caller. Once enough candidates have been seen and the share that
// confirms drops below the configured minimum, the tracker retires itself
// and the caller should fall back to trying every offset.
//
// A Tracker is not safe for concurrent use; create one per search.
//
// Example usage:
//
//	tracker := prefilter.NewTracker(pf)
//	for tracker.IsActive() {
//	    pos := tracker.Find(haystack, start)
//	    if pos == -1 {
//	        break
//	    }
//	    if matchesAt(haystack, pos) {
//	        tracker.ConfirmMatch()
//	        return pos
//	    }
//	    start = pos + 1
//	}
type Tracker struct {
	inner  Prefilter
	config TrackerConfig

	candidates     uint64
	confirms       uint64
	lastCheckpoint uint64
	active         bool
}

// TrackerConfig holds configuration for the effectiveness tracker.
type TrackerConfig struct {
	// CheckInterval is how often to check effectiveness, in candidates.
	CheckInterval uint64

	// MinEfficiency is the minimum acceptable confirms/candidates ratio.
	MinEfficiency float64

	// WarmupPeriod is the number of candidates seen before any check.
	WarmupPeriod uint64
}

// DefaultTrackerConfig returns the default tracker configuration:
// check every 64 candidates after 128, retire below 10% efficiency.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		CheckInterval: 64,
		MinEfficiency: 0.1,
		WarmupPeriod:  128,
	}
}

// NewTracker creates a tracker with the default config.
// Returns nil if inner is nil.
func NewTracker(inner Prefilter) *Tracker {
	return NewTrackerWithConfig(inner, DefaultTrackerConfig())
}

// NewTrackerWithConfig creates a tracker with a custom config.
// Returns nil if inner is nil.
func NewTrackerWithConfig(inner Prefilter, config TrackerConfig) *Tracker {
	if inner == nil {
		return nil
	}
	return &Tracker{inner: inner, config: config, active: true}
}

// Find returns the next candidate position, or -1 if there is none or the
// tracker has been retired.
func (t *Tracker) Find(haystack []byte, start int) int {
	if !t.active {
		return -1
	}
	pos := t.inner.Find(haystack, start)
	if pos >= 0 {
		t.candidates++
		t.check()
	}
	return pos
}

// ConfirmMatch records that the last candidate was a real match.
func (t *Tracker) ConfirmMatch() {
	t.confirms++
}

// IsActive reports whether the prefilter is still worth using.
func (t *Tracker) IsActive() bool {
	return t.active
}

// Stats returns candidates, confirms and the efficiency ratio so far.
func (t *Tracker) Stats() (candidates, confirms uint64, efficiency float64) {
	if t.candidates > 0 {
		efficiency = float64(t.confirms) / float64(t.candidates)
	}
	return t.candidates, t.confirms, efficiency
}

func (t *Tracker) check() {
	if t.candidates < t.config.WarmupPeriod {
		return
	}
	if t.candidates-t.lastCheckpoint < t.config.CheckInterval {
		return
	}
	t.lastCheckpoint = t.candidates
	if float64(t.confirms)/float64(t.candidates) < t.config.MinEfficiency {
		t.active = false
	}
}
