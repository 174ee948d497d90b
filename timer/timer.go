// Package timer runs an interval routine in the terminal and records the
// result
package timer

import (
	"log/slog"
	"os/exec"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/intervals/internal/config"
	"github.com/ayoisaiah/intervals/internal/engine"
	"github.com/ayoisaiah/intervals/internal/models"
	"github.com/ayoisaiah/intervals/internal/routine"
	"github.com/ayoisaiah/intervals/store"
)

const (
	padding  = 2
	maxWidth = 80

	// pollInterval is how often the view samples the engine state.
	pollInterval = 250 * time.Millisecond
)

type (
	pollMsg      time.Time
	completedMsg struct{}
)

// Timer is the bubbletea model for a single run of a routine.
type Timer struct {
	db         store.DB
	engine     *engine.Engine
	opts       *config.Config
	done       chan struct{}
	now        func() time.Time
	beep       func()
	notify     func(title, msg string) error
	StartTime  time.Time
	statusPath string
	style      Style
	routine    routine.Routine
	progress   progress.Model
	help       help.Model
	state      engine.State
	completed  bool
	quitting   bool
}

// Option configures a Timer.
type Option func(*Timer)

// WithEngineOptions passes options through to the underlying engine.
func WithEngineOptions(opts ...engine.Option) Option {
	return func(t *Timer) {
		t.engine = engine.New(&t.routine, t.onComplete, opts...)
	}
}

// WithStatusFile sets the file the current phase is written to while the
// routine runs.
func WithStatusFile(path string) Option {
	return func(t *Timer) {
		t.statusPath = path
	}
}

// New creates a timer for r.
func New(
	db store.DB,
	r *routine.Routine,
	cfg *config.Config,
	opts ...Option,
) *Timer {
	t := &Timer{
		db:       db,
		opts:     cfg,
		routine:  r.Clone(),
		done:     make(chan struct{}, 1),
		now:      time.Now,
		style:    newStyle(cfg.Display),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		beep: func() {
			_ = beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
		},
		notify: func(title, msg string) error {
			return beeep.Notify(title, msg, "")
		},
	}

	t.engine = engine.New(&t.routine, t.onComplete)

	for _, opt := range opts {
		opt(t)
	}

	t.state = t.engine.State()

	return t
}

func (t *Timer) onComplete() {
	select {
	case t.done <- struct{}{}:
	default:
	}
}

// Start begins the routine. It fails if the routine cannot be run.
func (t *Timer) Start() error {
	if err := t.engine.Start(); err != nil {
		return err
	}

	t.StartTime = t.now()
	t.state = t.engine.State()

	slog.Info(
		"run started",
		slog.String("routine", t.routine.Name),
		slog.Int("total", t.state.Total),
	)

	return nil
}

// Run starts the routine and blocks until it completes or the user quits.
func (t *Timer) Run() error {
	if err := t.Start(); err != nil {
		return err
	}

	_, err := tea.NewProgram(t).Run()

	return err
}

func (t *Timer) Init() tea.Cmd {
	return tea.Batch(t.poll(), t.waitForCompletion())
}

func (t *Timer) poll() tea.Cmd {
	return tea.Tick(pollInterval, func(now time.Time) tea.Msg {
		return pollMsg(now)
	})
}

func (t *Timer) waitForCompletion() tea.Cmd {
	return func() tea.Msg {
		<-t.done
		return completedMsg{}
	}
}

// alert sounds the phase change alert unless the timer is muted.
func (t *Timer) alert() {
	if t.opts.Settings.Muted || t.opts.Settings.Volume == 0 {
		return
	}

	go t.beep()
}

// finish records the run and performs the completion side effects. It is
// safe to call more than once.
func (t *Timer) finish() error {
	if t.quitting {
		return nil
	}

	t.quitting = true

	t.removeStatusFile()

	if t.completed {
		t.notifyCompletion()

		if err := t.runCmd(t.opts.System.Cmd); err != nil {
			slog.Error("post-run command failed", slog.Any("error", err))
		}
	}

	if t.StartTime.IsZero() {
		return nil
	}

	run := &models.Run{
		StartTime:   t.StartTime,
		EndTime:     t.now(),
		RoutineID:   t.routine.ID,
		RoutineName: t.routine.Name,
		TotalTime:   t.state.Total,
		Completed:   t.completed,
	}

	if err := t.db.SaveRun(run); err != nil {
		return errSaveRun.Wrap(err)
	}

	slog.Info(
		"run saved",
		slog.String("routine", run.RoutineName),
		slog.Bool("completed", run.Completed),
		slog.Duration("duration", run.Duration()),
	)

	return nil
}

// notifyCompletion sends a desktop notification.
func (t *Timer) notifyCompletion() {
	if !t.opts.Notifications.Enabled {
		return
	}

	title := t.routine.Name + " is complete"
	msg := "Great work! Take a moment to recover."

	if err := t.notify(title, msg); err != nil {
		slog.Error("unable to display notification", slog.Any("error", err))
	}
}

// runCmd executes the specified command.
func (t *Timer) runCmd(cmdStr string) error {
	if cmdStr == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(cmdStr)
	if err != nil {
		return errParseCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}

// phaseDuration is the full length of the phase s is in.
func phaseDuration(r *routine.Routine, s engine.State) int {
	ri, si := s.Round-1, s.Set-1
	if ri < 0 || ri >= len(r.Rounds) || si < 0 || si >= len(r.Rounds[ri].Sets) {
		return 0
	}

	switch s.Phase {
	case engine.PhaseActive:
		return r.Rounds[ri].Sets[si].ActiveDuration
	case engine.PhaseRest:
		return r.Rounds[ri].Sets[si].RestDuration
	case engine.PhaseRoundRest:
		return r.Rounds[ri].RestDuration
	default:
		return 0
	}
}

// phaseChanged reports whether b is in a different phase, set or round
// from a.
func phaseChanged(a, b engine.State) bool {
	return a.Phase != b.Phase || a.Set != b.Set || a.Round != b.Round
}

// timeLeft is the number of seconds until the run completes from state s.
func timeLeft(r *routine.Routine, s engine.State) int {
	ri, si := s.Round-1, s.Set-1
	if ri < 0 || ri >= len(r.Rounds) || si < 0 || si >= len(r.Rounds[ri].Sets) {
		return 0
	}

	last := len(r.Rounds) - 1
	round := r.Rounds[ri]
	left := s.Remaining

	if s.Phase == engine.PhaseActive {
		left += round.Sets[si].RestDuration
	}

	if s.Phase != engine.PhaseRoundRest {
		for _, set := range round.Sets[si+1:] {
			left += set.ActiveDuration + set.RestDuration
		}

		if ri < last {
			left += round.RestDuration
		}
	}

	// the run ends without the rest of its final round
	for i := ri + 1; i <= last; i++ {
		left += routine.RoundTime(r.Rounds[i])

		if i < last {
			left += r.Rounds[i].RestDuration
		}
	}

	return left
}
