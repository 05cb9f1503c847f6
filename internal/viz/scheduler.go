package viz

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sortviz/internal/playback"
)

type tickMsg struct {
	ticket playback.Ticket
}

// teaScheduler turns controller schedules into tea.Tick commands. The
// pending command is handed to Bubble Tea by the next Update.
type teaScheduler struct {
	pending tea.Cmd
}

func (s *teaScheduler) Schedule(delay time.Duration, t playback.Ticket) {
	s.pending = tea.Tick(delay, func(time.Time) tea.Msg { return tickMsg{ticket: t} })
}

func (s *teaScheduler) Cancel() { s.pending = nil }

func (s *teaScheduler) take() tea.Cmd {
	cmd := s.pending
	s.pending = nil
	return cmd
}
