package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/intervals/internal/engine"
	"github.com/ayoisaiah/intervals/internal/timeutil"
)

func phaseLabel(p engine.Phase) string {
	switch p {
	case engine.PhaseActive:
		return "Work"
	case engine.PhaseRest:
		return "Rest"
	case engine.PhaseRoundRest:
		return "Round rest"
	case engine.PhaseCountdown:
		return "Get ready"
	default:
		return string(p)
	}
}

// progressPercent is the share of the current phase that has elapsed.
func (t *Timer) progressPercent() float64 {
	d := phaseDuration(&t.routine, t.state)
	if d <= 0 {
		return 1
	}

	return 1 - float64(t.state.Remaining)/float64(d)
}

func (t *Timer) positionView() string {
	sets := 0
	if t.state.Round >= 1 && t.state.Round <= len(t.routine.Rounds) {
		sets = len(t.routine.Rounds[t.state.Round-1].Sets)
	}

	return fmt.Sprintf(
		"Round %d/%d · Set %d/%d",
		t.state.Round,
		len(t.routine.Rounds),
		t.state.Set,
		sets,
	)
}

func (t *Timer) timerView() string {
	var s strings.Builder

	s.WriteString(t.style.Phase[t.state.Phase].Render(phaseLabel(t.state.Phase)))
	s.WriteString(t.style.Secondary.Render(t.positionView()))

	if t.state.Paused {
		s.WriteString(t.style.Hint.Render(" [Paused]"))
	} else {
		var timeFormat string
		if t.opts.Display.TwentyFourHour {
			timeFormat = "15:04:05"
		} else {
			timeFormat = "03:04:05 PM"
		}

		left := time.Duration(timeLeft(&t.routine, t.state)) * time.Second
		end := t.now().Add(left)

		s.WriteString(t.style.Hint.Render(" until " + end.Format(timeFormat)))
	}

	s.WriteString("\n\n")
	s.WriteString(t.style.Main.Render(timeutil.MMSS(t.state.Remaining)))
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(t.progressPercent()))
	s.WriteString("\n\n")
	s.WriteString(t.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Timer) View() string {
	if t.quitting {
		return ""
	}

	title := t.style.Main.Render(t.routine.Name) + "\n\n"

	return t.style.Base.Render(title + t.timerView())
}
