package cli

import (
	"fmt"
	"time"

	"photo-vault-go/pkg/cli/client"
	"photo-vault-go/pkg/cli/session"
	"photo-vault-go/pkg/cli/store"
	"photo-vault-go/pkg/cli/tui"
	"photo-vault-go/pkg/config"

	tea "github.com/charmbracelet/bubbletea"
)

type App struct {
	cfg     *config.Config
	client  *client.Client
	session *session.Session
	store   *store.Store
}

func NewApp(cfg *config.Config) *App {
	return &App{
		cfg: cfg,
	}
}

// getClient returns the HTTP client, creating it if necessary
func (a *App) getClient() (*client.Client, error) {
	if a.client != nil {
		return a.client, nil
	}

	if a.cfg.CLI.BaseURL == "" {
		return nil, fmt.Errorf("API base URL not configured")
	}
	if a.cfg.CLI.APIKey == "" {
		return nil, fmt.Errorf("API key not configured (run -register first)")
	}

	a.client = client.NewClient(a.cfg.CLI.BaseURL, a.cfg.CLI.APIKey)
	return a.client, nil
}

// getClientForRegistration returns an HTTP client without API key (for registration)
func (a *App) getClientForRegistration() (*client.Client, error) {
	if a.cfg.CLI.BaseURL == "" {
		return nil, fmt.Errorf("API base URL not configured")
	}
	// Use empty API key for registration endpoint (doesn't require auth)
	return client.NewClient(a.cfg.CLI.BaseURL, ""), nil
}

// openStore wires the photo collection store on top of an authenticated
// session. The session is established by verifying the configured API key
// against the server before any photo data is requested.
func (a *App) openStore(sink store.NotificationSink) (*store.Store, error) {
	if a.store != nil {
		return a.store, nil
	}

	apiClient, err := a.getClient()
	if err != nil {
		return nil, err
	}

	user, err := apiClient.GetCurrentUser()
	if err != nil {
		return nil, fmt.Errorf("failed to verify API key: %w", err)
	}

	a.session = session.New()

	st := store.New(apiClient, a.session, sink, SystemClipboard{}, a.cfg.CLI.ShareBaseURL)
	a.session.OnChange(st.HandleSessionChange)
	a.session.Establish(user, a.cfg.CLI.APIKey)

	a.store = st
	return st, nil
}

// closeStore stops background work and clears the session
func (a *App) closeStore() {
	if a.store != nil {
		a.store.Close()
	}
	if a.session != nil {
		a.session.Clear()
	}
}

// Run starts the interactive TUI
func (a *App) Run() error {
	sink := tui.NewStatusSink()
	st, err := a.openStore(sink)
	if err != nil {
		return err
	}
	defer a.closeStore()

	if a.cfg.CLI.PollInterval > 0 {
		st.StartPolling(time.Duration(a.cfg.CLI.PollInterval) * time.Second)
	}

	p := tea.NewProgram(tui.NewRootModel(st, sink))
	_, err = p.Run()
	return err
}
