package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/scattering-central/pawsdoc/internal/domain"
)

// Model is the subpackage picker model. It shows the discovered
// packages and lets the user select which ones to generate docs for.
// Fields are ordered to minimize memory padding.
type Model struct {
	packages  []domain.Package
	selected  map[int]bool
	keys      KeyMap
	styles    Styles
	cursor    int
	confirmed bool
	quitting  bool
}

// NewModel creates a picker over the given packages.
func NewModel(packages []domain.Package) *Model {
	return &Model{
		packages: packages,
		selected: make(map[int]bool),
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.packages)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Toggle):
		m.selected[m.cursor] = !m.selected[m.cursor]

	case key.Matches(keyMsg, m.keys.All):
		for i := range m.packages {
			m.selected[i] = true
		}

	case key.Matches(keyMsg, m.keys.None):
		m.selected = make(map[int]bool)

	case key.Matches(keyMsg, m.keys.Confirm):
		m.confirmed = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the picker.
func (m *Model) View() string {
	if m.quitting || m.confirmed {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Select subpackages to document"))
	b.WriteString("\n\n")

	for i, pkg := range m.packages {
		mark := "[ ]"
		markStyle := m.styles.Row
		if m.selected[i] {
			mark = "[x]"
			markStyle = m.styles.Checked
		}

		row := fmt.Sprintf("%s %s", markStyle.Render(mark), pkg.Name)
		if i == m.cursor {
			row = "> " + m.styles.RowFocus.Render(row)
		} else {
			row = "  " + m.styles.Row.Render(row)
		}
		b.WriteString(row)
		b.WriteString(" " + m.styles.Path.Render(pkg.Path))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("space: toggle  a: all  n: none  enter: generate  q: quit"))
	b.WriteString("\n")
	return b.String()
}

// Confirmed reports whether the user confirmed the selection.
func (m *Model) Confirmed() bool {
	return m.confirmed
}

// Selected returns the packages chosen by the user, in display order.
func (m *Model) Selected() []domain.Package {
	var picked []domain.Package
	for i, pkg := range m.packages {
		if m.selected[i] {
			picked = append(picked, pkg)
		}
	}
	return picked
}

// Run launches the picker and returns the selection. A nil slice with
// no error means the user quit without confirming.
func Run(packages []domain.Package) ([]domain.Package, error) {
	model := NewModel(packages)
	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(*Model)
	if !ok || !m.Confirmed() {
		return nil, nil
	}
	return m.Selected(), nil
}
