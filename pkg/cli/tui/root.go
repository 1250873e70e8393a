package tui

import (
	"strings"

	"photo-vault-go/pkg/cli/store"

	tea "github.com/charmbracelet/bubbletea"
)

// rootModel is the Bubble Tea model that acts as an app shell for multiple flows.
// It presents a simple menu and then hands control to a specific flow model.
type rootModel struct {
	// Shared dependencies
	store *store.Store
	sink  *StatusSink

	// Current active flow (when nil, we are in the main menu)
	current tea.Model
}

// NewRootModel constructs the root app-shell model that can launch multiple flows.
func NewRootModel(st *store.Store, sink *StatusSink) tea.Model {
	return &rootModel{
		store: st,
		sink:  sink,
	}
}

func (m *rootModel) Init() tea.Cmd {
	// No async work on start; just render the menu.
	return nil
}

func (m *rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// If we have an active flow, delegate all messages to it.
	if m.current != nil {
		var cmd tea.Cmd
		m.current, cmd = m.current.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "1":
			// Upload flow.
			m.sink.Clear()
			m.current = NewUploadForm(m.store, m.sink)
			if initer, ok := m.current.(interface{ Init() tea.Cmd }); ok {
				return m, initer.Init()
			}
			return m, nil

		case "2":
			// Combined manage photos flow (list, view, delete, share).
			m.sink.Clear()
			m.current = NewManagePhotosModel(m.store, m.sink)
			if initer, ok := m.current.(interface{ Init() tea.Cmd }); ok {
				return m, initer.Init()
			}
			return m, nil

		case "3":
			// Recycle bin flow (restore, empty).
			m.sink.Clear()
			m.current = NewRecycleBinModel(m.store, m.sink)
			if initer, ok := m.current.(interface{ Init() tea.Cmd }); ok {
				return m, initer.Init()
			}
			return m, nil
		}
	}

	return m, nil
}

func (m *rootModel) View() string {
	// When a flow is active, defer to its view.
	if m.current != nil {
		return m.current.View()
	}

	var b strings.Builder

	b.WriteString(renderTitle("Photo Vault"))
	b.WriteString(renderDivider(60))
	b.WriteString("\n\n")
	b.WriteString(boldStyle.Render("Select an action:") + "\n\n")
	b.WriteString("  " + selectedMarkerStyle.Render("1)") + " Upload photo\n")
	b.WriteString("  " + selectedMarkerStyle.Render("2)") + " Manage photos (list, view, delete, share)\n")
	b.WriteString("  " + selectedMarkerStyle.Render("3)") + " Recycle bin (restore, empty)\n")
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Press the number of an option, or 'q' / Esc to quit.") + "\n")

	return b.String()
}
