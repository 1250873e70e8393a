package managephotos

import "photo-vault-go/pkg/models"

// PhotosLoadedMsg is emitted when the store snapshot has been refreshed
type PhotosLoadedMsg struct {
	Photos []models.Photo
	Err    error
}

// MutationDoneMsg is emitted when a delete or restore has finished
type MutationDoneMsg struct {
	OK bool
}

// ShareDoneMsg is emitted when share link creation has finished
type ShareDoneMsg struct {
	URL string
	OK  bool
}
