package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/intervals/internal/engine"
	"github.com/ayoisaiah/intervals/report"
)

// handlePoll samples the engine and reacts to phase changes.
func (t *Timer) handlePoll() (tea.Model, tea.Cmd) {
	prev := t.state
	t.state = t.engine.State()

	if t.state.Running && phaseChanged(prev, t.state) {
		t.alert()
	}

	if t.state != prev {
		if err := t.writeStatusFile(); err != nil {
			slog.Debug("unable to write status file", slog.Any("error", err))
		}
	}

	return t, t.poll()
}

// handleCompletion wraps up a run that reached the end of its routine.
func (t *Timer) handleCompletion() (tea.Model, tea.Cmd) {
	t.state = t.engine.State()
	t.completed = true

	t.alert()

	if err := t.finish(); err != nil {
		return t, report.Fatal(err)
	}

	return t, tea.Quit
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		switch t.engine.Status() {
		case engine.StatusRunning:
			t.engine.Pause()
		case engine.StatusPaused:
			t.engine.Resume()
		default:
		}

		t.state = t.engine.State()

		if err := t.writeStatusFile(); err != nil {
			slog.Debug("unable to write status file", slog.Any("error", err))
		}

		return t, nil

	case key.Matches(msg, defaultKeymap.quit):
		if t.engine.Status() == engine.StatusCompleted {
			t.completed = true
		} else {
			t.engine.Cancel()
		}

		if err := t.finish(); err != nil {
			return t, report.Fatal(err)
		}

		return t, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case pollMsg:
		if t.quitting {
			return t, nil
		}

		return t.handlePoll()

	case completedMsg:
		return t.handleCompletion()

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		var progressModel tea.Model

		progressModel, cmd = t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	slog.Debug(spew.Sdump(msg))

	return t, nil
}
