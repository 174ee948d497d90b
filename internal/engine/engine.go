// Package engine runs an interval routine: it counts down one second at a time
// through the active, rest and round-rest phases of every round and reports
// when the routine is complete
package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/intervals/internal/routine"
)

// tickInterval is the fixed rate at which a running engine counts down.
const tickInterval = time.Second

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock that drives the engine.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithLogger sets the logger used for phase transitions.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// driver delivers ticks to the engine until it is disarmed.
type driver struct {
	ticker Ticker
	stop   chan struct{}
}

// Engine is the timer for a single run of a routine. Its methods are safe to
// call from any goroutine.
type Engine struct {
	clock      Clock
	log        *slog.Logger
	onComplete func()
	driver     *driver
	routine    routine.Routine
	state      State
	status     Status
	// runs counts Start and Cancel calls so that a completion is only
	// delivered to the run that produced it
	runs uint64
	mu   sync.Mutex
}

// New creates an idle engine for r. onComplete is called once each time a
// run reaches the end of the routine, but never after Cancel. The engine keeps
// its own copy of r.
func New(r *routine.Routine, onComplete func(), opts ...Option) *Engine {
	e := &Engine{
		routine:    r.Clone(),
		onComplete: onComplete,
		clock:      RealClock{},
		log:        slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.state = initialState(routine.TotalTime(&e.routine))

	return e
}

// State returns a snapshot of the current run state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// Status returns the lifecycle stage of the engine.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.status
}

// Routine returns the routine the engine runs.
func (e *Engine) Routine() routine.Routine {
	return e.routine.Clone()
}

// Start begins a run from the first set of the first round. It fails with
// ErrMalformedRoutine if the routine cannot be run, and does nothing if a run
// is already in progress or has completed.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != StatusIdle {
		return nil
	}

	if err := e.routine.Validate(); err != nil {
		return ErrMalformedRoutine.Wrap(err)
	}

	e.state.Running = true
	e.state.Paused = false
	e.state.Round = 1
	e.state.Set = 1
	e.state.Phase = PhaseActive
	e.state.Remaining = e.routine.Rounds[0].Sets[0].ActiveDuration
	e.status = StatusRunning
	e.runs++

	e.log.Debug(
		"routine started",
		slog.String("routine", e.routine.Name),
		slog.Int("total", e.state.Total),
	)

	e.armLocked()

	return nil
}

// Pause suspends a running countdown without losing its position.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != StatusRunning {
		return
	}

	e.disarmLocked()
	e.state.Paused = true
	e.status = StatusPaused

	e.log.Debug("routine paused", slog.Int("remaining", e.state.Remaining))
}

// Resume continues a paused countdown from where it stopped.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != StatusPaused {
		return
	}

	e.state.Paused = false
	e.status = StatusRunning

	e.log.Debug("routine resumed", slog.Int("remaining", e.state.Remaining))

	e.armLocked()
}

// Cancel stops the countdown and resets the engine to idle. No tick is
// applied after Cancel returns.
func (e *Engine) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.disarmLocked()

	if e.status != StatusIdle {
		e.log.Debug("routine cancelled", slog.String("status", e.status.String()))
	}

	e.state = initialState(e.state.Total)
	e.status = StatusIdle
	e.runs++
}

func (e *Engine) armLocked() {
	e.disarmLocked()

	d := &driver{
		ticker: e.clock.NewTicker(tickInterval),
		stop:   make(chan struct{}),
	}

	e.driver = d

	go e.run(d)
}

func (e *Engine) disarmLocked() {
	if e.driver == nil {
		return
	}

	e.driver.ticker.Stop()
	close(e.driver.stop)
	e.driver = nil
}

func (e *Engine) run(d *driver) {
	for {
		select {
		case <-d.stop:
			return
		case <-d.ticker.C():
			if !e.tick(d) {
				return
			}
		}
	}
}

// tick advances the countdown by one second on behalf of driver d. It
// reports whether d should keep ticking. Ticks from a driver that has been
// disarmed are ignored.
func (e *Engine) tick(d *driver) bool {
	e.mu.Lock()

	if d == nil || e.driver != d {
		e.mu.Unlock()
		return false
	}

	if e.state.Remaining > 0 {
		e.state.Remaining--
	}

	var completed bool

	if e.state.Remaining == 0 {
		prev := e.state

		e.state, completed = Advance(&e.routine, e.state)

		if e.state.Phase != prev.Phase || e.state.Set != prev.Set ||
			e.state.Round != prev.Round {
			e.log.Debug(
				"phase changed",
				slog.String("phase", e.state.Phase.String()),
				slog.Int("round", e.state.Round),
				slog.Int("set", e.state.Set),
				slog.Int("remaining", e.state.Remaining),
			)
		}
	}

	if completed {
		e.disarmLocked()
		e.status = StatusCompleted

		e.log.Debug("routine completed", slog.String("routine", e.routine.Name))
	}

	run := e.runs

	e.mu.Unlock()

	if completed {
		e.deliver(run)
	}

	return !completed
}

// deliver calls the completion callback for run unless a Cancel or a new
// Start has happened since it completed. The callback runs without the lock
// held.
func (e *Engine) deliver(run uint64) {
	e.mu.Lock()
	current := e.runs == run && e.status == StatusCompleted
	onComplete := e.onComplete
	e.mu.Unlock()

	if current && onComplete != nil {
		onComplete()
	}
}
