package tui

import (
	"fmt"
	"strings"

	"photo-vault-go/pkg/cli/logger"
	"photo-vault-go/pkg/cli/store"
	"photo-vault-go/pkg/cli/tui/managephotos"
	"photo-vault-go/pkg/models"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// managePhotosModel is a combined Bubble Tea model that allows listing,
// viewing, deleting, and sharing active photos in a single unified flow.
type managePhotosModel struct {
	store *store.Store
	sink  *StatusSink

	photos   []models.Photo
	selected int
	step     int
	err      error
	ready    bool

	// For delete confirmation
	confirm textinput.Model

	// Share result
	shareURL string

	// Terminal dimensions for proper rendering
	width int
}

// NewManagePhotosModel creates a new combined manage photos flow.
func NewManagePhotosModel(st *store.Store, sink *StatusSink) tea.Model {
	confirm := textinput.New()
	confirm.Placeholder = "y/N"
	confirm.CharLimit = 1
	confirm.Width = 10

	return &managePhotosModel{
		store:   st,
		sink:    sink,
		step:    managephotos.StepListPhotos,
		confirm: confirm,
	}
}

func (m *managePhotosModel) Init() tea.Cmd {
	return m.reloadPhotos()
}

// reloadPhotos refreshes the store snapshot and projects the active set
func (m *managePhotosModel) reloadPhotos() tea.Cmd {
	return func() tea.Msg {
		err := m.store.Refresh()
		return managephotos.PhotosLoadedMsg{Photos: m.store.ActivePhotos(), Err: err}
	}
}

func (m *managePhotosModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	logger.Log("managePhotosModel.Update() called: msg_type=%T, step=%d, ready=%v", msg, m.step, m.ready)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.width == 0 {
			m.width = managephotos.DefaultWidth
		}
		return m, nil

	case managephotos.PhotosLoadedMsg:
		logger.Log("managePhotosModel.Update: received PhotosLoadedMsg, photos_count=%d, err=%v", len(msg.Photos), msg.Err != nil)
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
		if !msg.OK {
			m.step = managephotos.StepActionMenu
			return m, nil
		}
		m.step = managephotos.StepDone
		// Reload photos after deletion
		return m, m.reloadPhotos()

	case managephotos.ShareDoneMsg:
		m.shareURL = msg.URL
		m.step = managephotos.StepShareDone
		return m, nil

	case tea.KeyMsg:
		logger.Log("managePhotosModel.Update: received KeyMsg, key=%q, step=%d", msg.String(), m.step)
		switch m.step {
		case managephotos.StepListPhotos:
			return m.handleListKeys(msg)
		case managephotos.StepActionMenu:
			return m.handleActionMenuKeys(msg)
		case managephotos.StepViewDetails:
			return m.handleViewDetailsKeys(msg)
		case managephotos.StepDeleteConfirm:
			return m.handleDeleteConfirmKeys(msg)
		case managephotos.StepShareDone:
			// Any key goes back to the action menu after sharing
			m.step = managephotos.StepActionMenu
			return m, nil
		case managephotos.StepDone:
			// Any key exits after deletion success
			return m, tea.Quit
		}
	}

	// Handle text input updates for delete confirmation
	if m.step == managephotos.StepDeleteConfirm {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *managePhotosModel) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handleQuitKeys(msg.String()) {
		return m, tea.Quit
	}
	if newSelected, handled := handleListNavigation(msg.String(), m.selected, len(m.photos)); handled {
		m.selected = newSelected
		return m, nil
	}
	if msg.String() == "enter" {
		if len(m.photos) == 0 {
			return m, nil
		}
		if m.selected < len(m.photos) {
			m.step = managephotos.StepActionMenu
			return m, nil
		}
	}
	return m, nil
}

func (m *managePhotosModel) handleActionMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handleQuitKeys(msg.String()) {
		return m, tea.Quit
	}
	switch msg.String() {
	case "esc", "b":
		m.step = managephotos.StepListPhotos
		return m, nil
	case "1", "v":
		m.step = managephotos.StepViewDetails
		return m, nil
	case "2", "d":
		m.step = managephotos.StepDeleteConfirm
		m.confirm.SetValue("")
		m.confirm.Focus()
		return m, textinput.Blink
	case "3", "s":
		if m.selected < 0 || m.selected >= len(m.photos) {
			return m, nil
		}
		m.sink.Clear()
		return m, m.sharePhoto()
	}
	return m, nil
}

func (m *managePhotosModel) handleViewDetailsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handleQuitKeys(msg.String()) {
		return m, tea.Quit
	}
	switch msg.String() {
	case "esc", "b", "enter":
		m.step = managephotos.StepActionMenu
		return m, nil
	}
	return m, nil
}

func (m *managePhotosModel) handleDeleteConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.step = managephotos.StepActionMenu
		return m, nil
	case "enter":
		answer := strings.ToLower(strings.TrimSpace(m.confirm.Value()))
		if answer == "y" || answer == "yes" {
			m.sink.Clear()
			return m, m.deletePhoto()
		}
		// Cancelled - go back to action menu
		m.step = managephotos.StepActionMenu
		return m, nil
	default:
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	}
}

func (m *managePhotosModel) View() string {
	if !m.ready {
		return renderLoadingState("Loading photos...")
	}

	if m.err != nil && m.step != managephotos.StepDone {
		logger.LogError(m.err, "managePhotosModel.View: error view, step=%d", m.step)
		return renderErrorView(m.err)
	}

	switch m.step {
	case managephotos.StepListPhotos:
		return m.renderList()
	case managephotos.StepActionMenu:
		return m.renderActionMenu()
	case managephotos.StepViewDetails:
		return m.renderViewDetails()
	case managephotos.StepDeleteConfirm:
		return m.renderDeleteConfirm()
	case managephotos.StepShareDone:
		return m.renderShareDone()
	case managephotos.StepDone:
		return "\n" + renderStatusLine(m.sink) + "\n" +
			helpStyle.Render("Press any key to exit...") + "\n"
	default:
		return ""
	}
}

func (m *managePhotosModel) getMaxWidth() int {
	if m.width > 0 {
		return m.width
	}
	return managephotos.DefaultWidth
}

func (m *managePhotosModel) renderList() string {
	if len(m.photos) == 0 {
		return renderEmptyState("No photos found.")
	}

	s := renderPhotoList(m.photos, m.selected, "Manage Photos", "Select a photo:")
	s += helpStyle.Render("(Use ↑/↓ or j/k to navigate, Enter to select, Esc to quit)") + "\n"
	return s
}

func (m *managePhotosModel) renderActionMenu() string {
	if m.selected >= len(m.photos) {
		return renderErrorView(fmt.Errorf("invalid selection"))
	}

	photo := m.photos[m.selected]

	var b strings.Builder
	b.WriteString(renderTitle("Photo Actions"))
	b.WriteString(renderDivider(m.getMaxWidth()))
	b.WriteString("\n\n")

	b.WriteString(boldStyle.Render("Selected Photo:") + "\n")
	b.WriteString(fmt.Sprintf("  %s\n", photoTitleStyle.Render(formatPhotoTitle(photo))))
	b.WriteString(fmt.Sprintf("  %s\n\n", photoMetaStyle.Render(photo.UploadedAt.Format("2006-01-02 15:04"))))

	b.WriteString(boldStyle.Render("Choose an action:") + "\n\n")
	b.WriteString("  " + selectedMarkerStyle.Render("1)") + " View details\n")
	b.WriteString("  " + selectedMarkerStyle.Render("2)") + " Move to recycle bin\n")
	b.WriteString("  " + selectedMarkerStyle.Render("3)") + " Create share link\n")
	b.WriteString("\n")
	b.WriteString(renderStatusLine(m.sink))
	b.WriteString(helpStyle.Render("(Press 1/v to view, 2/d to delete, 3/s to share, Esc/b to go back, q to quit)") + "\n")

	return b.String()
}

func (m *managePhotosModel) renderViewDetails() string {
	if m.selected >= len(m.photos) {
		return renderErrorView(fmt.Errorf("invalid selection"))
	}

	photo := m.photos[m.selected]

	var b strings.Builder
	b.WriteString(renderTitle("Photo Details"))
	b.WriteString(renderDivider(m.getMaxWidth()))
	b.WriteString("\n\n")
	b.WriteString(renderPhotoDetails(&photo))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("(Press Enter, 'b', Esc, or 'q' to go back)") + "\n")

	return b.String()
}

func (m *managePhotosModel) renderDeleteConfirm() string {
	if m.selected >= len(m.photos) {
		return renderErrorView(fmt.Errorf("invalid selection"))
	}

	photo := m.photos[m.selected]

	var b strings.Builder
	b.WriteString(renderTitle("Move to Recycle Bin"))
	b.WriteString(renderWarning("The photo can be restored from the recycle bin later.") + "\n\n")

	b.WriteString(boldStyle.Render("Move this photo to the recycle bin?") + "\n")
	b.WriteString(fmt.Sprintf("  %s\n\n", photoTitleStyle.Render(formatPhotoTitle(photo))))

	b.WriteString(boldStyle.Render("Confirm (y/N):"))
	b.WriteString(" ")
	b.WriteString(m.confirm.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("(Press Enter to confirm, Esc to cancel)") + "\n")

	return b.String()
}

func (m *managePhotosModel) renderShareDone() string {
	var b strings.Builder
	b.WriteString(renderTitle("Share Photo"))
	b.WriteString(renderStatusLine(m.sink))
	if m.shareURL != "" {
		b.WriteString("\n")
		b.WriteString(fieldLabelStyle.Render("Link:"))
		b.WriteString(fmt.Sprintf(" %s\n", m.shareURL))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Press any key to go back...") + "\n")
	return b.String()
}

func (m *managePhotosModel) deletePhoto() tea.Cmd {
	return func() tea.Msg {
		if m.selected >= len(m.photos) {
			return managephotos.MutationDoneMsg{OK: false}
		}
		ok := m.store.SoftDelete(m.photos[m.selected].PhotoID)
		return managephotos.MutationDoneMsg{OK: ok}
	}
}

func (m *managePhotosModel) sharePhoto() tea.Cmd {
	return func() tea.Msg {
		if m.selected >= len(m.photos) {
			return managephotos.ShareDoneMsg{OK: false}
		}
		url, ok := m.store.CreateShareLink(m.photos[m.selected].PhotoID)
		return managephotos.ShareDoneMsg{URL: url, OK: ok}
	}
}
