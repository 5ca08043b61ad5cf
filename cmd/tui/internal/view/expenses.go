package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/dailyhub/internal/expense"
)

type expenseState int

const (
	expenseStateBrowse expenseState = iota
	expenseStateAdd
)

type ExpenseModel struct {
	CommonModel
	svc *expense.Service

	state    expenseState
	table    table.Model
	expenses []expense.Expense
	form     *huh.Form

	status string

	// Form bindings
	formDesc     string
	formAmount   string
	formCategory string
	formDate     string
}

func NewExpenseModel(svc *expense.Service) ExpenseModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Description", Width: 36},
		{Title: "Amount", Width: 10},
		{Title: "Category", Width: 16},
		{Title: "Method", Width: 8},
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

	m := ExpenseModel{
		svc:   svc,
		table: t,
	}
	m.refresh()

	return m
}

func (m ExpenseModel) Title() string { return "Expenses" }
func (m ExpenseModel) ShortHelp() string {
	if m.state == expenseStateAdd {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | a: add | x: delete"
}

func (m ExpenseModel) Init() tea.Cmd {
	return nil
}

func (m ExpenseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case expenseStateBrowse:
		return m.updateBrowse(msg)
	case expenseStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m ExpenseModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "a":
			return m.enterAddMode()
		case "x":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.expenses) {
				m.svc.Delete(m.expenses[idx].ID)
				m.refresh()
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ExpenseModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.formDesc = ""
	m.formAmount = ""
	m.formCategory = ""
	m.formDate = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("12.50").
				Value(&m.formAmount).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil || v <= 0 {
						return fmt.Errorf("amount must be a positive number")
					}
					return nil
				}),

			huh.NewInput().
				Key("category").
				Title("Category").
				Placeholder("Uncategorized").
				Value(&m.formCategory),

			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("today").
				Value(&m.formDate),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = expenseStateAdd
	m.table.Blur()
	return m, m.form.Init()
}

func (m ExpenseModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = expenseStateBrowse
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

	amount, _ := strconv.ParseFloat(m.formAmount, 64)

	date := m.formDate
	if date == "today" {
		date = ""
	}

	_, err := m.svc.Add(expense.CreateParams{
		Date:        date,
		Description: m.formDesc,
		Amount:      amount,
		Category:    m.formCategory,
	})
	if err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
	}

	m.state = expenseStateBrowse
	m.form = nil
	m.table.Focus()
	m.refresh()

	return m, nil
}

func (m ExpenseModel) View() string {
	header := fmt.Sprintf("Total: %.2f", m.svc.Total())

	if byCat := m.svc.TotalByCategory(); len(byCat) > 0 {
		parts := make([]string, 0, len(byCat))
		for cat, sum := range byCat {
			parts = append(parts, fmt.Sprintf("%s %.2f", cat, sum))
		}

		header += " | " + strings.Join(parts, " · ")
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == expenseStateAdd && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("New Expense\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *ExpenseModel) refresh() {
	m.expenses = m.svc.List()

	rows := make([]table.Row, len(m.expenses))
	for i, e := range m.expenses {
		rows[i] = table.Row{e.Date, e.Description, fmt.Sprintf("%.2f", e.Amount), e.Category, string(e.Method)}
	}

	m.table.SetRows(rows)
}
