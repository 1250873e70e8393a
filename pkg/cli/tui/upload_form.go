package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"photo-vault-go/pkg/cli/store"
	"photo-vault-go/pkg/utils"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// uploadForm collects a local file path plus metadata and runs the
// two-phase upload through the store.
type uploadForm struct {
	store *store.Store
	sink  *StatusSink

	pathInput  textinput.Model
	titleInput textinput.Model
	descInput  textarea.Model
	step       int // 0=Path, 1=Title, 2=Description, 3=Uploading, 4=Done
	err        error
	ok         bool
}

// NewUploadForm creates a new photo upload form.
func NewUploadForm(st *store.Store, sink *StatusSink) tea.Model {
	pathInput := textinput.New()
	pathInput.Placeholder = "~/Pictures/sunset.jpg"
	pathInput.Focus()
	pathInput.CharLimit = 1024
	pathInput.Width = 60

	titleInput := textinput.New()
	titleInput.Placeholder = "Photo title"
	titleInput.CharLimit = 255
	titleInput.Width = 60

	descInput := textarea.New()
	descInput.Placeholder = "Optional description (multi-line)"
	descInput.SetWidth(60)
	descInput.SetHeight(5)
	descInput.CharLimit = 2000

	return &uploadForm{
		store:      st,
		sink:       sink,
		pathInput:  pathInput,
		titleInput: titleInput,
		descInput:  descInput,
		step:       0,
	}
}

func (m *uploadForm) Init() tea.Cmd {
	return textinput.Blink
}

func (m *uploadForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.step == 4 {
			// Any key exits after the upload has settled.
			return m, tea.Quit
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			switch m.step {
			case 0:
				// Validate that the file exists and looks like an image
				path := expandPath(m.pathInput.Value())
				if _, err := utils.ContentTypeForFile(path); err != nil {
					m.err = err
					return m, nil
				}
				if _, err := os.Stat(path); err != nil {
					m.err = fmt.Errorf("cannot read file: %s", path)
					return m, nil
				}
				m.err = nil
				m.step = 1
				m.titleInput.Focus()
				return m, textinput.Blink
			case 1:
				// Title is required
				if _, err := utils.ValidateTitle(m.titleInput.Value()); err != nil {
					m.err = err
					return m, nil
				}
				m.err = nil
				m.step = 2
				m.descInput.Focus()
				return m, textarea.Blink
			case 2:
				// Description is optional, submit the form
				m.step = 3
				return m, m.submit()
			}
		}

	case uploadDoneMsg:
		m.ok = msg.ok
		m.step = 4
		return m, nil
	}

	var cmd tea.Cmd
	switch m.step {
	case 0:
		m.pathInput, cmd = m.pathInput.Update(msg)
	case 1:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case 2:
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return m, cmd
}

func (m *uploadForm) View() string {
	switch m.step {
	case 3:
		return renderLoadingState("Uploading photo...")
	case 4:
		// The store already produced the outcome notification; show it.
		return "\n" + renderStatusLine(m.sink) + "\n" +
			helpStyle.Render("Press any key to exit...") + "\n"
	default:
		var s strings.Builder
		s.WriteString(renderTitle("Upload Photo"))

		switch m.step {
		case 0:
			s.WriteString("File path (required):\n")
			s.WriteString(m.pathInput.View())
			if m.err != nil {
				s.WriteString("\n\n" + renderError(m.err.Error()))
			}
			s.WriteString("\n\n" + helpStyle.Render("(Press Enter to continue, Esc to cancel)"))
		case 1:
			s.WriteString("✓ File: " + m.pathInput.Value() + "\n\n")
			s.WriteString("Title (required):\n")
			s.WriteString(m.titleInput.View())
			if m.err != nil {
				s.WriteString("\n\n" + renderError(m.err.Error()))
			}
			s.WriteString("\n\n" + helpStyle.Render("(Press Enter to continue, Esc to cancel)"))
		case 2:
			s.WriteString("✓ File: " + m.pathInput.Value() + "\n")
			s.WriteString("✓ Title: " + m.titleInput.Value() + "\n")
			s.WriteString("\nDescription (optional):\n")
			s.WriteString(m.descInput.View())
			s.WriteString("\n\n" + helpStyle.Render("(Press Enter to upload, Esc to cancel)"))
		}
		return s.String()
	}
}

type uploadDoneMsg struct {
	ok bool
}

func (m *uploadForm) submit() tea.Cmd {
	return func() tea.Msg {
		path := expandPath(m.pathInput.Value())

		contentType, err := utils.ContentTypeForFile(path)
		if err != nil {
			m.sink.Notify("Unable to upload photo", store.SeverityError)
			return uploadDoneMsg{ok: false}
		}

		f, err := os.Open(path)
		if err != nil {
			m.sink.Notify("Unable to upload photo", store.SeverityError)
			return uploadDoneMsg{ok: false}
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			m.sink.Notify("Unable to upload photo", store.SeverityError)
			return uploadDoneMsg{ok: false}
		}

		ok := m.store.Upload(
			f,
			info.Size(),
			filepath.Base(path),
			contentType,
			strings.TrimSpace(m.titleInput.Value()),
			strings.TrimSpace(m.descInput.Value()),
		)
		return uploadDoneMsg{ok: ok}
	}
}

// expandPath resolves a leading ~ to the user's home directory
func expandPath(path string) string {
	path = strings.TrimSpace(path)
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
