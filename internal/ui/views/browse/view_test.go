package browse_test

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"bikeshare/internal/ui/views/browse"
)

type stubRows int

func (s stubRows) Len() int          { return int(s) }
func (s stubRows) Columns() []string { return []string{"Start Station"} }

func (s stubRows) Rows(from, to int) [][]string {
	out := make([][]string, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, []string{fmt.Sprintf("Station %02d", i+1)})
	}
	return out
}

func press(m tea.Model, keys ...string) tea.Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func TestBrowseReachesFinalPartialPage(t *testing.T) {
	t.Parallel()
	m := press(browse.New("chicago", stubRows(12), 5), "n", "right", "n").(browse.Model)
	if m.Page() != 2 {
		t.Fatalf("expected to stop on page 2, got %d", m.Page())
	}
	from, to := m.Bounds()
	if from != 10 || to != 12 {
		t.Fatalf("expected rows [10,12), got [%d,%d)", from, to)
	}
	view := m.View()
	if !strings.Contains(view, "Station 12") || strings.Contains(view, "Station 10 ") {
		t.Fatalf("unexpected last page view:\n%s", view)
	}
	if !strings.Contains(view, "rows 11-12 of 12") {
		t.Fatalf("missing status line:\n%s", view)
	}
}

func TestBrowseFirstLastAndPrev(t *testing.T) {
	t.Parallel()
	m := press(browse.New("chicago", stubRows(23), 5), "G").(browse.Model)
	if m.Page() != 4 {
		t.Fatalf("G: expected page 4, got %d", m.Page())
	}
	m = press(m, "p", "left").(browse.Model)
	if m.Page() != 2 {
		t.Fatalf("prev: expected page 2, got %d", m.Page())
	}
	m = press(m, "g", "p").(browse.Model)
	if m.Page() != 0 {
		t.Fatalf("g: expected page 0, got %d", m.Page())
	}
}

func TestBrowseQuitKeys(t *testing.T) {
	t.Parallel()
	for _, k := range []string{"q", "esc"} {
		var msg tea.KeyMsg
		if k == "esc" {
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd := browse.New("chicago", stubRows(3), 5).Update(msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", k)
		}
	}
}

func TestBrowseEmptyDataset(t *testing.T) {
	t.Parallel()
	m := press(browse.New("washington", stubRows(0), 5), "n", "G").(browse.Model)
	if m.Page() != 0 {
		t.Fatalf("expected page 0, got %d", m.Page())
	}
	if !strings.Contains(m.View(), "No data found with your search criteria") {
		t.Fatalf("missing empty notice:\n%s", m.View())
	}
}
