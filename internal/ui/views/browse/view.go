package browse

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bikeshare/internal/ui/components"
	"bikeshare/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Rows is the read side of a filtered dataset.
type Rows interface {
	Len() int
	Columns() []string
	Rows(from, to int) [][]string
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
	Quit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:  key.NewBinding(key.WithKeys("n", "right", " "), key.WithHelp("n/→", "next")),
		Prev:  key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p/←", "prev")),
		First: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "first")),
		Last:  key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "last")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.First, k.Last, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model pages through rows a fixed number at a time. Unlike the console row
// viewer it can always reach the last, possibly partial, page.
type Model struct {
	title    string
	rows     Rows
	pageSize int
	page     int
	keys     keyMap
	help     help.Model
	width    int
	height   int
}

func New(title string, rows Rows, pageSize int) Model {
	if pageSize <= 0 {
		pageSize = 5
	}
	return Model{
		title:    title,
		rows:     rows,
		pageSize: pageSize,
		keys:     defaultKeys(),
		help:     help.New(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			if m.page < m.lastPage() {
				m.page++
			}
		case key.Matches(msg, m.keys.Prev):
			if m.page > 0 {
				m.page--
			}
		case key.Matches(msg, m.keys.First):
			m.page = 0
		case key.Matches(msg, m.keys.Last):
			m.page = m.lastPage()
		}
	}
	return m, nil
}

func (m Model) View() string {
	header := theme.Title.Render(m.title)
	if m.rows.Len() == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			theme.Muted.Render("No data found with your search criteria"),
			m.help.View(m.keys),
		)
	}
	from, to := m.Bounds()
	status := theme.Muted.Render(fmt.Sprintf("rows %d-%d of %d  page %d/%d",
		from+1, to, m.rows.Len(), m.page+1, m.lastPage()+1))
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		components.Table(m.rows.Columns(), m.rows.Rows(from, to)),
		status,
		m.help.View(m.keys),
	)
}

// Page is the zero-based page currently shown.
func (m Model) Page() int { return m.page }

// Bounds returns the half-open row range of the current page.
func (m Model) Bounds() (int, int) {
	from := m.page * m.pageSize
	return from, min(from+m.pageSize, m.rows.Len())
}

func (m Model) lastPage() int {
	n := m.rows.Len()
	if n == 0 {
		return 0
	}
	return (n - 1) / m.pageSize
}
