package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/dailyhub/internal/todo"
)

type todoState int

const (
	todoStateBrowse todoState = iota
	todoStateAdd
)

type TodoModel struct {
	CommonModel
	svc *todo.Service

	state todoState
	table table.Model
	todos []todo.Todo
	form  *huh.Form

	status string

	// Form bindings
	formTitle    string
	formPriority string
	formCategory string
	formDueDate  string
}

func NewTodoModel(svc *todo.Service) TodoModel {
	columns := []table.Column{
		{Title: "Done", Width: 6},
		{Title: "Title", Width: 40},
		{Title: "Priority", Width: 10},
		{Title: "Category", Width: 14},
		{Title: "Due", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := TodoModel{
		svc:   svc,
		table: t,
	}
	m.refresh()

	return m
}

func (m TodoModel) Title() string { return "Todos" }
func (m TodoModel) ShortHelp() string {
	if m.state == todoStateAdd {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | a: add | t: toggle | x: delete | c: clear completed"
}

func (m TodoModel) Init() tea.Cmd {
	return nil
}

func (m TodoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case todoStateBrowse:
		return m.updateBrowse(msg)
	case todoStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m TodoModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "a":
			return m.enterAddMode()
		case "t":
			if t, ok := m.selected(); ok {
				if err := m.svc.Toggle(t.ID); err != nil {
					m.status = fmt.Sprintf("Error: %v", err)
				}
				m.refresh()
			}

			return m, nil
		case "x":
			if t, ok := m.selected(); ok {
				m.svc.Delete(t.ID)
				m.refresh()
			}

			return m, nil
		case "c":
			removed := m.svc.ClearCompleted()
			m.status = fmt.Sprintf("Cleared %d completed", removed)
			m.refresh()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m TodoModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.formTitle = ""
	m.formPriority = string(todo.PriorityMedium)
	m.formCategory = ""
	m.formDueDate = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Title").
				Value(&m.formTitle).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("priority").
				Title("Priority").
				Options(
					huh.NewOption("Low", string(todo.PriorityLow)),
					huh.NewOption("Medium", string(todo.PriorityMedium)),
					huh.NewOption("High", string(todo.PriorityHigh)),
				).
				Value(&m.formPriority),

			huh.NewInput().
				Key("category").
				Title("Category").
				Placeholder("general").
				Value(&m.formCategory),

			huh.NewInput().
				Key("due").
				Title("Due Date").
				Placeholder("2026-01-31").
				Value(&m.formDueDate),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = todoStateAdd
	m.table.Blur()
	return m, m.form.Init()
}

func (m TodoModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = todoStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	_, err := m.svc.Add(todo.CreateParams{
		Title:    m.formTitle,
		Priority: todo.Priority(m.formPriority),
		Category: m.formCategory,
		DueDate:  m.formDueDate,
	})
	if err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
	}

	m.state = todoStateBrowse
	m.form = nil
	m.table.Focus()
	m.refresh()

	return m, nil
}

func (m TodoModel) View() string {
	total, completed, pending := m.svc.Counts()
	header := fmt.Sprintf("%d total | %d pending | %d completed", total, pending, completed)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == todoStateAdd && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("New Todo\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *TodoModel) selected() (todo.Todo, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.todos) {
		return todo.Todo{}, false
	}

	return m.todos[idx], true
}

func (m *TodoModel) refresh() {
	m.todos = m.svc.List()

	rows := make([]table.Row, len(m.todos))
	for i, t := range m.todos {
		done := " "
		if t.Completed {
			done = "✓"
		}

		rows[i] = table.Row{done, t.Title, string(t.Priority), t.Category, t.DueDate}
	}

	m.table.SetRows(rows)
}
