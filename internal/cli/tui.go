package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/stackdeck/internal/decks"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorFaint)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorLabel).Bold(true)
)

// =============================================================================
// DeckListModel - Interactive deck selection
// =============================================================================

// DeckListModel is the bubbletea model for interactive deck selection.
type DeckListModel struct {
	Decks    []decks.Entry
	Cursor   int
	Selected *decks.Entry
}

// NewDeckListModel creates a new deck list model.
func NewDeckListModel(entries []decks.Entry) DeckListModel {
	return DeckListModel{Decks: entries}
}

func (m DeckListModel) Init() tea.Cmd {
	return nil
}

func (m DeckListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Decks)-1 {
				m.Cursor++
			}
		case "enter":
			if len(m.Decks) == 0 {
				return m, tea.Quit
			}
			e := m.Decks[m.Cursor]
			m.Selected = &e
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m DeckListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Deck"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(m.Decks))
	for i, e := range m.Decks {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows[i] = []string{cursor, e.Name, e.Title, e.Description}
	}

	t := deckTable(rows).
		Headers("", "Name", "Title", "Description").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return listHeaderStyle
			case row == m.Cursor:
				return lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
			case col == 3:
				return listDimStyle
			}
			return lipgloss.NewStyle().Foreground(colorText)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Decks))))

	return b.String()
}

// deckTable returns a rounded table holding rows.
func deckTable(rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorFaint)).
		Rows(rows...)
}
