package tui

import (
	"fmt"
	"strings"

	"photo-vault-go/pkg/cli/store"
	"photo-vault-go/pkg/cli/tui/managephotos"
	"photo-vault-go/pkg/models"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// recycleBinModel lists soft-deleted photos and lets the user restore
// individual photos or permanently empty the bin.
type recycleBinModel struct {
	store *store.Store
	sink  *StatusSink

	photos   []models.Photo
	selected int
	step     int // 0=list, 1=empty confirm
	err      error
	ready    bool

	confirm textinput.Model
}

// NewRecycleBinModel creates a new recycle bin flow.
func NewRecycleBinModel(st *store.Store, sink *StatusSink) tea.Model {
	confirm := textinput.New()
	confirm.Placeholder = "y/N"
	confirm.CharLimit = 1
	confirm.Width = 10

	return &recycleBinModel{
		store:   st,
		sink:    sink,
		confirm: confirm,
	}
}

func (m *recycleBinModel) Init() tea.Cmd {
	return m.reloadPhotos()
}

func (m *recycleBinModel) reloadPhotos() tea.Cmd {
	return func() tea.Msg {
		err := m.store.Refresh()
		return managephotos.PhotosLoadedMsg{Photos: m.store.DeletedPhotos(), Err: err}
	}
}

func (m *recycleBinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case managephotos.PhotosLoadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			m.ready = true
			return m, nil
		}
		m.photos = msg.Photos
		m.ready = true
		if m.selected >= len(m.photos) {
			m.selected = 0
		}
		return m, nil

	case managephotos.MutationDoneMsg:
		m.step = 0
		// Reload regardless of outcome; the sink carries the message
		return m, m.reloadPhotos()

	case tea.KeyMsg:
		switch m.step {
		case 0:
			return m.handleListKeys(msg)
		case 1:
			return m.handleEmptyConfirmKeys(msg)
		}
	}

	if m.step == 1 {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *recycleBinModel) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handleQuitKeys(msg.String()) {
		return m, tea.Quit
	}
	if newSelected, handled := handleListNavigation(msg.String(), m.selected, len(m.photos)); handled {
		m.selected = newSelected
		return m, nil
	}
	switch msg.String() {
	case "r":
		if m.selected < 0 || m.selected >= len(m.photos) {
			return m, nil
		}
		m.sink.Clear()
		return m, m.restorePhoto()
	case "e":
		if len(m.photos) == 0 {
			return m, nil
		}
		m.step = 1
		m.confirm.SetValue("")
		m.confirm.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *recycleBinModel) handleEmptyConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.step = 0
		return m, nil
	case "enter":
		answer := strings.ToLower(strings.TrimSpace(m.confirm.Value()))
		if answer == "y" || answer == "yes" {
			m.sink.Clear()
			return m, m.emptyBin()
		}
		m.step = 0
		return m, nil
	default:
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	}
}

func (m *recycleBinModel) View() string {
	if !m.ready {
		return renderLoadingState("Loading recycle bin...")
	}

	if m.err != nil {
		return renderErrorView(m.err)
	}

	if m.step == 1 {
		return m.renderEmptyConfirm()
	}

	if len(m.photos) == 0 {
		var b strings.Builder
		b.WriteString(renderTitle("Recycle Bin"))
		b.WriteString(mutedStyle.Render("The recycle bin is empty.") + "\n\n")
		b.WriteString(renderStatusLine(m.sink))
		b.WriteString(helpStyle.Render("(Press Esc or q to quit)") + "\n")
		return b.String()
	}

	s := renderPhotoList(m.photos, m.selected, "Recycle Bin", "Deleted photos:")
	s += renderStatusLine(m.sink)
	s += helpStyle.Render("(Use ↑/↓ or j/k to navigate, 'r' to restore, 'e' to empty the bin, Esc to quit)") + "\n"
	return s
}

func (m *recycleBinModel) renderEmptyConfirm() string {
	var b strings.Builder
	b.WriteString(renderTitle("Empty Recycle Bin"))
	b.WriteString(renderWarning("This permanently deletes every photo in the bin.") + "\n\n")

	b.WriteString(boldStyle.Render(fmt.Sprintf("Permanently delete %d photo(s)?", len(m.photos))) + "\n\n")
	b.WriteString(boldStyle.Render("Confirm (y/N):"))
	b.WriteString(" ")
	b.WriteString(m.confirm.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("(Press Enter to confirm, Esc to cancel)") + "\n")

	return b.String()
}

func (m *recycleBinModel) restorePhoto() tea.Cmd {
	return func() tea.Msg {
		if m.selected >= len(m.photos) {
			return managephotos.MutationDoneMsg{OK: false}
		}
		ok := m.store.Restore(m.photos[m.selected].PhotoID)
		return managephotos.MutationDoneMsg{OK: ok}
	}
}

func (m *recycleBinModel) emptyBin() tea.Cmd {
	return func() tea.Msg {
		ok := m.store.EmptyRecycleBin()
		return managephotos.MutationDoneMsg{OK: ok}
	}
}
