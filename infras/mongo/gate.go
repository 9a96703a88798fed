package mongo

import (
	"sync"
	"time"
)

// Gate is the circuit breaker deciding whether the database should be
// attempted for a given operation. It has two states: closed (attempt the
// database) and open (skip it until a fixed cooldown elapses). The state is
// evaluated lazily against the wall clock on each call; nothing probes the
// database while the gate is open.
type Gate struct {
	mu        sync.Mutex
	cooldown  time.Duration
	openUntil time.Time
	now       func() time.Time
}

func NewGate(cooldown time.Duration) *Gate {
	return &Gate{
		cooldown: cooldown,
		now:      time.Now,
	}
}

// NewGateWithClock is NewGate with an injectable clock for tests.
func NewGateWithClock(cooldown time.Duration, now func() time.Time) *Gate {
	return &Gate{
		cooldown: cooldown,
		now:      now,
	}
}

// Allow reports whether the database may be attempted. An open gate closes
// again once the cooldown window has elapsed.
func (g *Gate) Allow() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return !g.now().Before(g.openUntil)
}

// MarkFailure opens the gate for the cooldown window.
func (g *Gate) MarkFailure() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.openUntil = g.now().Add(g.cooldown)
}

// MarkSuccess closes the gate immediately.
func (g *Gate) MarkSuccess() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.openUntil = time.Time{}
}
