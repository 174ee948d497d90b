package engine

import "time"

// Clock creates the tickers that drive an Engine. Tests substitute a fake to
// control the passage of time.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// Ticker is a repeating timer.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// RealClock is a Clock backed by the time package.
type RealClock struct{}

func (RealClock) NewTicker(d time.Duration) Ticker {
	return &realTicker{inner: time.NewTicker(d)}
}

type realTicker struct {
	inner *time.Ticker
}

func (t *realTicker) C() <-chan time.Time { return t.inner.C }
func (t *realTicker) Stop()               { t.inner.Stop() }
