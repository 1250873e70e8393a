package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"photo-vault-go/pkg/cli/photos"
	"photo-vault-go/pkg/cli/store"
	"photo-vault-go/pkg/utils"

	"github.com/google/uuid"
)

// ListPhotos prints the active photo collection as a table
func (a *App) ListPhotos() {
	st := a.mustOpenStore()
	defer a.closeStore()

	if st.State() == store.StateError {
		photos.WriteToStderr(photos.FormatErrorMessage(fmt.Errorf("could not load photos from server")))
		os.Exit(1)
	}

	photos.WriteToStdout(photos.FormatTableOutput("Your Photos", st.ActivePhotos()))
}

// ListRecycleBin prints the soft-deleted photos as a table
func (a *App) ListRecycleBin() {
	st := a.mustOpenStore()
	defer a.closeStore()

	if st.State() == store.StateError {
		photos.WriteToStderr(photos.FormatErrorMessage(fmt.Errorf("could not load photos from server")))
		os.Exit(1)
	}

	photos.WriteToStdout(photos.FormatTableOutput("Recycle Bin", st.DeletedPhotos()))
}

// UploadPhoto uploads a local file with the given title and description
func (a *App) UploadPhoto(path, title, description string) {
	st := a.mustOpenStore()
	defer a.closeStore()

	contentType, err := utils.ContentTypeForFile(path)
	if err != nil {
		photos.WriteToStderr(photos.FormatErrorMessage(err))
		os.Exit(1)
	}

	f, err := os.Open(path)
	if err != nil {
		photos.WriteToStderr(photos.FormatErrorMessage(err))
		os.Exit(1)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		photos.WriteToStderr(photos.FormatErrorMessage(err))
		os.Exit(1)
	}

	if !st.Upload(f, info.Size(), filepath.Base(path), contentType, title, description) {
		os.Exit(1)
	}
}

// DeletePhoto moves a photo to the recycle bin
func (a *App) DeletePhoto(idStr string) {
	a.runMutation(idStr, func(st *store.Store, id uuid.UUID) bool {
		return st.SoftDelete(id)
	})
}

// RestorePhoto moves a photo out of the recycle bin
func (a *App) RestorePhoto(idStr string) {
	a.runMutation(idStr, func(st *store.Store, id uuid.UUID) bool {
		return st.Restore(id)
	})
}

// SharePhoto creates a share link and copies it to the clipboard
func (a *App) SharePhoto(idStr string) {
	a.runMutation(idStr, func(st *store.Store, id uuid.UUID) bool {
		url, ok := st.CreateShareLink(id)
		if ok {
			fmt.Printf("  %s\n", url)
		}
		return ok
	})
}

// EmptyRecycleBin permanently deletes every photo in the recycle bin,
// after an interactive confirmation
func (a *App) EmptyRecycleBin() {
	st := a.mustOpenStore()
	defer a.closeStore()

	deleted := st.DeletedPhotos()
	if len(deleted) == 0 {
		fmt.Println("Recycle bin is already empty.")
		return
	}

	fmt.Printf("Permanently delete %d photo(s)? This cannot be undone. [y/N]: ", len(deleted))
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer != "y" && answer != "yes" {
		fmt.Println("Cancelled.")
		return
	}

	if !st.EmptyRecycleBin() {
		os.Exit(1)
	}
}

// ShowSharedPhoto resolves a share token against the public endpoint.
// This works without an API key, matching the server route.
func (a *App) ShowSharedPhoto(token string) {
	apiClient, err := a.getClientForRegistration()
	if err != nil {
		photos.WriteToStderr(photos.FormatErrorMessage(err))
		os.Exit(1)
	}

	photo, err := apiClient.GetSharedPhoto(token)
	if err != nil {
		photos.WriteToStderr(photos.FormatErrorMessage(err))
		os.Exit(1)
	}

	photos.WriteToStdout(photos.FormatPhotoDetails(photo))
}

// runMutation parses the photo id, opens the store, and runs a single
// store mutation. Outcome messages arrive through the console sink.
func (a *App) runMutation(idStr string, fn func(*store.Store, uuid.UUID) bool) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		photos.WriteToStderr(photos.FormatErrorMessage(fmt.Errorf("invalid photo id: %s", idStr)))
		os.Exit(1)
	}

	st := a.mustOpenStore()
	defer a.closeStore()

	if !fn(st, id) {
		os.Exit(1)
	}
}

func (a *App) mustOpenStore() *store.Store {
	st, err := a.openStore(consoleSink{})
	if err != nil {
		photos.WriteToStderr(photos.FormatErrorMessage(err))
		os.Exit(1)
	}
	return st
}
