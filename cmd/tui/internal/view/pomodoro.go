package view

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/dailyhub/internal/pomodoro"
)

type tickMsg time.Time

// PomodoroModel drives the countdown itself: every second a tick
// message advances the shared timer, so no background goroutine is
// needed while the view is open.
type PomodoroModel struct {
	CommonModel
	svc   *pomodoro.Service
	timer *pomodoro.Timer
}

func NewPomodoroModel(svc *pomodoro.Service, timer *pomodoro.Timer) PomodoroModel {
	return PomodoroModel{svc: svc, timer: timer}
}

func (m PomodoroModel) Title() string { return "Pomodoro" }
func (m PomodoroModel) ShortHelp() string {
	return "Esc: back | w: work | s: short break | l: long break | space: pause/resume | r: reset"
}

func (m PomodoroModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m PomodoroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.timer.Tick()
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "w":
			m.timer.Start(pomodoro.TypeWork, 0)
		case "s":
			m.timer.Start(pomodoro.TypeShortBreak, 0)
		case "l":
			m.timer.Start(pomodoro.TypeLongBreak, 0)
		case " ":
			if m.timer.State().Running {
				m.timer.Pause()
			} else {
				m.timer.Resume()
			}
		case "r":
			m.timer.Reset()
		}
	}

	return m, nil
}

func (m PomodoroModel) View() string {
	state := m.timer.State()

	label := "Work"
	switch state.Type {
	case pomodoro.TypeShortBreak:
		label = "Short Break"
	case pomodoro.TypeLongBreak:
		label = "Long Break"
	}

	status := "paused"
	if state.Running {
		status = "running"
	}

	clock := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		Render(fmt.Sprintf("%02d:%02d", state.SecondsLeft/60, state.SecondsLeft%60))

	stats := m.svc.Stats()
	footer := fmt.Sprintf("%d sessions · %s focused hours", stats.TotalSessions, stats.FocusedHours)

	panel := lipgloss.NewStyle().
		Padding(1, 4).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(fmt.Sprintf("%s (%s)\n\n%s", label, status, clock))

	content := lipgloss.JoinVertical(lipgloss.Left,
		panel,
		lipgloss.NewStyle().Faint(true).PaddingTop(1).Render(footer),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}
