// Package filepicker is a bubbletea program that lets the user choose
// a proof document to open, grounded on the teacher's configtool list
// panes (internal/configtool/strings/components.go's bubbles/list
// usage) rather than the original_source editor's own menu, which was
// filtered out of the retrieved prototype along with its termwiz
// polling loop.
package filepicker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// entry is one selectable document in the list.
type entry struct {
	name string
}

func (e entry) FilterValue() string { return e.name }
func (e entry) Title() string       { return e.name }
func (e entry) Description() string { return "" }

var titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

// Model is the bubbletea program that lists the contents of Dir and
// reports the chosen file's full path back through Selected once the
// program exits.
type Model struct {
	Dir      string
	list     list.Model
	Selected string
	quit     bool
}

// New scans dir for regular files and builds the list model.
func New(dir string) (*Model, error) {
	names, err := listDocuments(dir)
	if err != nil {
		return nil, err
	}
	items := make([]list.Item, len(names))
	for i, n := range names {
		items[i] = entry{name: n}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("Open a proof document (%s)", dir)
	l.SetShowStatusBar(true)
	return &Model{Dir: dir, list: l}, nil
}

func listDocuments(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		names = append(names, de.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit
		case "enter":
			if it, ok := m.list.SelectedItem().(entry); ok {
				m.Selected = filepath.Join(m.Dir, it.name)
			}
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	if m.quit {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("proofedit"))
	b.WriteString("\n")
	b.WriteString(m.list.View())
	return b.String()
}
