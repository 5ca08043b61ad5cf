package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/dailyhub/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/dailyhub/internal/config"
	"github.com/MrJamesThe3rd/dailyhub/internal/expense"
	"github.com/MrJamesThe3rd/dailyhub/internal/pomodoro"
	"github.com/MrJamesThe3rd/dailyhub/internal/storage"
	"github.com/MrJamesThe3rd/dailyhub/internal/todo"
)

type model struct {
	expenseService  *expense.Service
	todoService     *todo.Service
	pomodoroService *pomodoro.Service
	timer           *pomodoro.Timer

	currentView View

	todoView     view.TodoModel
	pomodoroView view.PomodoroModel
	expenseView  view.ExpenseModel
}

type View int

const (
	ViewMenu     View = 0
	ViewTodos    View = 1
	ViewPomodoro View = 2
	ViewExpenses View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dbPath, err := cfg.StoragePath()
	if err != nil {
		slog.Error("failed to resolve storage path", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		slog.Error("failed to create storage dir", "error", err)
		os.Exit(1)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		slog.Error("failed to open storage", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	expenseSvc, err := expense.NewService(ctx, store)
	if err != nil {
		slog.Error("failed to load expenses", "error", err)
		os.Exit(1)
	}

	todoSvc, err := todo.NewService(ctx, store)
	if err != nil {
		slog.Error("failed to load todos", "error", err)
		os.Exit(1)
	}

	pomodoroSvc, err := pomodoro.NewService(ctx, store, cfg.Pomodoro.WorkSeconds)
	if err != nil {
		slog.Error("failed to load pomodoro sessions", "error", err)
		os.Exit(1)
	}

	timer := pomodoro.NewTimer(pomodoroSvc, pomodoro.Durations{
		Work:       cfg.Pomodoro.WorkSeconds,
		ShortBreak: cfg.Pomodoro.ShortBreakSeconds,
		LongBreak:  cfg.Pomodoro.LongBreakSeconds,
	})

	return model{
		expenseService:  expenseSvc,
		todoService:     todoSvc,
		pomodoroService: pomodoroSvc,
		timer:           timer,
		currentView:     ViewMenu,
		todoView:        view.NewTodoModel(todoSvc),
		pomodoroView:    view.NewPomodoroModel(pomodoroSvc, timer),
		expenseView:     view.NewExpenseModel(expenseSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewTodos
				m.todoView = view.NewTodoModel(m.todoService)

				return m, m.todoView.Init()
			case "2":
				m.currentView = ViewPomodoro
				m.pomodoroView = view.NewPomodoroModel(m.pomodoroService, m.timer)

				return m, m.pomodoroView.Init()
			case "3":
				m.currentView = ViewExpenses
				m.expenseView = view.NewExpenseModel(m.expenseService)

				return m, m.expenseView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewTodos:
		var newModel tea.Model
		newModel, cmd = m.todoView.Update(msg)
		m.todoView = newModel.(view.TodoModel)
	case ViewPomodoro:
		var newModel tea.Model
		newModel, cmd = m.pomodoroView.Update(msg)
		m.pomodoroView = newModel.(view.PomodoroModel)
	case ViewExpenses:
		var newModel tea.Model
		newModel, cmd = m.expenseView.Update(msg)
		m.expenseView = newModel.(view.ExpenseModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"DailyHub TUI\n\n" +
				"1. Todos\n" +
				"2. Pomodoro\n" +
				"3. Expenses\n\n" +
				"q. Quit",
		)
	case ViewTodos:
		return m.todoView.View()
	case ViewPomodoro:
		return m.pomodoroView.View()
	case ViewExpenses:
		return m.expenseView.View()
	}

	return "Unknown View"
}

func main() {
	m := initialModel()

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	_ = m.expenseService.Flush(ctx)
	_ = m.todoService.Flush(ctx)
	_ = m.pomodoroService.Flush(ctx)
}
