package validation

import (
	"sync"
	"time"

	"designzone/internal/design"

	"golang.org/x/time/rate"
)

// Live validation defaults: 4 runs per second per design, burst of 2
const (
	DefaultThrottleEvery = 250 * time.Millisecond
	DefaultThrottleBurst = 2
)

// throttleEntry: tracks a rate limiter and its last use time
type throttleEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Throttle rate limits repeated ValidateDesign calls per design while the
// user keeps editing. A suppressed call returns ok=false; results are never
// cached, since node geometry can change between calls.
type Throttle struct {
	limiters map[string]*throttleEntry
	every    time.Duration
	burst    int
	now      func() time.Time
	mu       sync.Mutex
}

// NewThrottle: at most one validation per `every` for each design key,
// with bursts of up to burst. Non-positive values fall back to the defaults.
func NewThrottle(every time.Duration, burst int) *Throttle {
	if every <= 0 {
		every = DefaultThrottleEvery
	}
	if burst <= 0 {
		burst = DefaultThrottleBurst
	}
	return &Throttle{
		limiters: make(map[string]*throttleEntry),
		every:    every,
		burst:    burst,
		now:      time.Now,
	}
}

// Allow: reports whether designKey may be validated now
func (t *Throttle) Allow(designKey string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	entry, exists := t.limiters[designKey]
	if !exists {
		entry = &throttleEntry{limiter: rate.NewLimiter(rate.Every(t.every), t.burst)}
		t.limiters[designKey] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// Validate: ValidateDesign if designKey is within its rate, else ok=false
func (t *Throttle) Validate(designKey string, nodes []design.Node, settings Settings) (Result, bool) {
	if !t.Allow(designKey) {
		return Result{}, false
	}
	return ValidateDesign(nodes, settings), true
}

// Cleanup: forgets designs not validated within idle
func (t *Throttle) Cleanup(idle time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	for key, entry := range t.limiters {
		if now.Sub(entry.lastSeen) > idle {
			delete(t.limiters, key)
		}
	}
}

// Len: number of designs currently tracked
func (t *Throttle) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.limiters)
}
