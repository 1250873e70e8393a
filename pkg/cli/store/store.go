package store

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"photo-vault-go/pkg/cli/client"
	"photo-vault-go/pkg/models"

	"github.com/google/uuid"
)

// Store is the client-side photo collection cache. It holds one
// authoritative in-memory snapshot of the signed-in user's photos,
// exposes filtered projections over it, and resynchronizes with the
// server after every mutation by refetching the full collection.
//
// The snapshot lives in a single mutex-guarded slot that is replaced
// atomically on each successful fetch: the last fetch to complete wins,
// and a fetch that started before the session was cleared is discarded so
// a late response can never resurrect stale data under a new session.
// A failed refresh keeps the last known-good snapshot.
type Store struct {
	client       *client.Client
	session      AuthSession
	notify       NotificationSink
	clipboard    Clipboard
	shareBaseURL string

	mu     sync.Mutex
	photos []models.Photo
	state  State
	epoch  uint64

	pollCancel context.CancelFunc
	pollDone   chan struct{}
}

// New creates a photo collection store. All collaborators are injected;
// the store reads no ambient globals.
func New(c *client.Client, sess AuthSession, sink NotificationSink, clip Clipboard, shareBaseURL string) *Store {
	return &Store{
		client:       c,
		session:      sess,
		notify:       sink,
		clipboard:    clip,
		shareBaseURL: strings.TrimSuffix(shareBaseURL, "/"),
		state:        StateUninitialized,
	}
}

// Refresh replaces the cached snapshot with the server's current
// collection. Without a session it resets to the unauthenticated state
// and issues no request. On failure the previous snapshot is retained and
// the state moves to StateError; read failures are not notified.
func (s *Store) Refresh() error {
	if !s.session.Authenticated() {
		s.mu.Lock()
		s.photos = nil
		s.state = StateUninitialized
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	epoch := s.epoch
	s.state = StateLoading
	s.mu.Unlock()

	photos, err := s.client.ListPhotos()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch {
		// Session rolled over while the fetch was in flight; drop it.
		return nil
	}
	if err != nil {
		s.state = StateError
		return err
	}

	s.photos = photos
	s.state = StateReady
	return nil
}

// List returns the current cached snapshot. It never blocks and may be
// stale relative to a mutation still in flight.
func (s *Store) List() []models.Photo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Photo(nil), s.photos...)
}

// ActivePhotos returns the cached photos not in the recycle bin, in
// server order.
func (s *Store) ActivePhotos() []models.Photo {
	return s.filter(false)
}

// DeletedPhotos returns the cached photos in the recycle bin, in server
// order.
func (s *Store) DeletedPhotos() []models.Photo {
	return s.filter(true)
}

func (s *Store) filter(deleted bool) []models.Photo {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Photo
	for _, p := range s.photos {
		if p.IsDeleted == deleted {
			out = append(out, p)
		}
	}
	return out
}

// FindByID looks a photo up in the cached snapshot.
func (s *Store) FindByID(id uuid.UUID) (models.Photo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.photos {
		if p.PhotoID == id {
			return p, true
		}
	}
	return models.Photo{}, false
}

// State reports the collection cache state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Upload performs the two-phase upload: request an upload slot, then PUT
// the bytes to the returned destination. Either phase failing leaves the
// cache untouched and produces exactly one failure notification; no
// partial record is fabricated client-side.
func (s *Store) Upload(file io.Reader, size int64, fileName, contentType, title string, description string) bool {
	if !s.session.Authenticated() {
		return false
	}

	create := models.PhotoCreate{
		FileName:    fileName,
		ContentType: contentType,
		Title:       strings.TrimSpace(title),
	}
	if d := strings.TrimSpace(description); d != "" {
		create.Description = &d
	}

	slot, err := s.client.RequestUploadURL(create)
	if err != nil {
		s.notify.Notify("Unable to upload photo", SeverityError)
		return false
	}

	if err := s.client.UploadBytes(slot.UploadURL, contentType, file, size); err != nil {
		s.notify.Notify("Unable to upload photo", SeverityError)
		return false
	}

	s.refreshAfterMutation()
	s.notify.Notify("Photo uploaded successfully", SeveritySuccess)
	return true
}

// SoftDelete moves a photo to the recycle bin. Safe to call for an id not
// in the cached snapshot; the server is authoritative and a not-found is
// reported as a failure.
func (s *Store) SoftDelete(id uuid.UUID) bool {
	if !s.session.Authenticated() {
		return false
	}

	if err := s.client.DeletePhoto(id); err != nil {
		s.notify.Notify("Unable to move photo to recycle bin", SeverityError)
		return false
	}

	s.refreshAfterMutation()
	s.notify.Notify("Photo moved to recycle bin", SeverityInfo)
	return true
}

// Restore moves a photo out of the recycle bin.
func (s *Store) Restore(id uuid.UUID) bool {
	if !s.session.Authenticated() {
		return false
	}

	if err := s.client.RestorePhoto(id); err != nil {
		s.notify.Notify("Photo restore unsuccessful", SeverityError)
		return false
	}

	s.refreshAfterMutation()
	s.notify.Notify("Photo restored successfully", SeveritySuccess)
	return true
}

// EmptyRecycleBin irreversibly removes every soft-deleted photo.
// Confirmation is the caller's responsibility; emptying an already-empty
// bin reports success.
func (s *Store) EmptyRecycleBin() bool {
	if !s.session.Authenticated() {
		return false
	}

	if err := s.client.EmptyRecycleBin(); err != nil {
		s.notify.Notify("Unable to empty recycle bin", SeverityError)
		return false
	}

	s.refreshAfterMutation()
	s.notify.Notify("Recycle bin emptied successfully", SeveritySuccess)
	return true
}

// CreateShareLink requests a share token, composes the public URL, and
// hands it to the clipboard. The photo cache is not touched.
func (s *Store) CreateShareLink(id uuid.UUID) (string, bool) {
	if !s.session.Authenticated() {
		return "", false
	}

	token, err := s.client.CreateShare(id)
	if err != nil {
		s.notify.Notify("Unable to create share link", SeverityError)
		return "", false
	}

	link := fmt.Sprintf("%s/shared/%s", s.shareBaseURL, token)
	if err := s.clipboard.Copy(link); err != nil {
		s.notify.Notify("Could not copy to clipboard", SeverityError)
		return link, false
	}

	s.notify.Notify("Share link created and copied to clipboard", SeveritySuccess)
	return link, true
}

// refreshAfterMutation resynchronizes the cache after a successful
// mutation. A refresh failure here keeps the stale snapshot and stays
// silent; the mutation already produced its terminal notification.
func (s *Store) refreshAfterMutation() {
	_ = s.Refresh()
}

// HandleSessionChange reacts to the session being established or
// cleared. On clear the cache is discarded and the epoch advances so
// in-flight fetches from the old session are ignored on completion.
func (s *Store) HandleSessionChange(established bool) {
	if !established {
		s.mu.Lock()
		s.epoch++
		s.photos = nil
		s.state = StateUninitialized
		s.mu.Unlock()
		return
	}
	_ = s.Refresh()
}

// StartPolling refreshes the collection on a fixed interval to converge
// with changes made elsewhere (another device). Ticks without an active
// session are skipped so no unauthenticated requests go out.
func (s *Store) StartPolling(interval time.Duration) {
	if interval <= 0 {
		return
	}
	s.StopPolling()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s.pollCancel = cancel
	s.pollDone = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if s.session.Authenticated() {
					_ = s.Refresh()
				}
			}
		}
	}()
}

// StopPolling stops the background refresh loop and waits for it to exit.
func (s *Store) StopPolling() {
	if s.pollCancel != nil {
		s.pollCancel()
		<-s.pollDone
		s.pollCancel = nil
		s.pollDone = nil
	}
}

// Close stops background work. In-flight responses arriving afterwards
// are discarded by the epoch check.
func (s *Store) Close() {
	s.StopPolling()
}
