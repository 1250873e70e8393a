package store

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"photo-vault-go/pkg/cli/client"
	"photo-vault-go/pkg/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	mu            sync.Mutex
	authenticated bool
}

func (f *fakeSession) Authenticated() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.authenticated
}

func (f *fakeSession) Token() string {
	if f.Authenticated() {
		return "test-key"
	}
	return ""
}

func (f *fakeSession) set(v bool) {
	f.mu.Lock()
	f.authenticated = v
	f.mu.Unlock()
}

type recordedNotification struct {
	Message  string
	Severity Severity
}

type fakeSink struct {
	mu    sync.Mutex
	notes []recordedNotification
}

func (f *fakeSink) Notify(message string, severity Severity) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes = append(f.notes, recordedNotification{message, severity})
}

func (f *fakeSink) all() []recordedNotification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedNotification(nil), f.notes...)
}

type fakeClipboard struct {
	mu     sync.Mutex
	copied []string
	fail   bool
}

func (f *fakeClipboard) Copy(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return fmt.Errorf("clipboard unavailable")
	}
	f.copied = append(f.copied, text)
	return nil
}

// fakeBackend is an in-memory server honoring the photo API wire
// contract, including the presigned-style upload destination.
type fakeBackend struct {
	mu          sync.Mutex
	photos      []models.Photo
	listCalls   int
	totalCalls  int
	failList    bool
	failUpload  bool
	failPut     bool
	listStarted chan struct{} // closed when a list request arrives, if set
	listRelease chan struct{} // list requests block on this, if set

	srv *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{}
	b.srv = httptest.NewServer(http.HandlerFunc(b.handle))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) addPhoto(title string, deleted bool) models.Photo {
	b.mu.Lock()
	defer b.mu.Unlock()
	p := models.Photo{
		PhotoID:    uuid.New(),
		UserID:     uuid.New(),
		Title:      title,
		PhotoURL:   b.srv.URL + "/objects/" + title,
		IsDeleted:  deleted,
		UploadedAt: time.Now().UTC(),
	}
	b.photos = append(b.photos, p)
	return p
}

func (b *fakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.totalCalls++
	b.mu.Unlock()

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/photos":
		b.handleList(w)
	case r.Method == http.MethodPost && r.URL.Path == "/photos/upload-url":
		b.handleUploadURL(w, r)
	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/upload/"):
		b.handlePut(w)
	case r.Method == http.MethodDelete && r.URL.Path == "/photos/recycle-bin/empty":
		b.handleEmptyBin(w)
	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/photos/"):
		b.handleSetDeleted(w, strings.TrimPrefix(r.URL.Path, "/photos/"), true)
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/restore"):
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/photos/"), "/restore")
		b.handleSetDeleted(w, id, false)
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/share"):
		json.NewEncoder(w).Encode(models.ShareResponse{ShareToken: "tok123"})
	default:
		http.NotFound(w, r)
	}
}

func (b *fakeBackend) handleList(w http.ResponseWriter) {
	b.mu.Lock()
	started := b.listStarted
	release := b.listRelease
	b.listCalls++
	b.mu.Unlock()

	if started != nil {
		close(started)
		b.mu.Lock()
		b.listStarted = nil
		b.mu.Unlock()
	}
	if release != nil {
		<-release
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failList {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(models.PhotoList{Photos: b.photos})
}

func (b *fakeBackend) handleUploadURL(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failUpload {
		http.Error(w, `{"error":"storage unavailable"}`, http.StatusInternalServerError)
		return
	}

	var create models.PhotoCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		http.Error(w, `{"error":"bad request"}`, http.StatusBadRequest)
		return
	}

	p := models.Photo{
		PhotoID:     uuid.New(),
		UserID:      uuid.New(),
		Title:       create.Title,
		Description: create.Description,
		ContentType: create.ContentType,
		UploadedAt:  time.Now().UTC(),
	}
	b.photos = append(b.photos, p)

	json.NewEncoder(w).Encode(models.UploadSlot{
		UploadURL: b.srv.URL + "/upload/" + p.PhotoID.String(),
		Photo:     p,
	})
}

func (b *fakeBackend) handlePut(w http.ResponseWriter) {
	b.mu.Lock()
	fail := b.failPut
	b.mu.Unlock()
	if fail {
		http.Error(w, "denied", http.StatusForbidden)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (b *fakeBackend) handleSetDeleted(w http.ResponseWriter, id string, deleted bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.photos {
		if b.photos[i].PhotoID.String() == id {
			b.photos[i].IsDeleted = deleted
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, `{"message":"ok"}`)
			return
		}
	}
	http.Error(w, `{"error":"photo not found"}`, http.StatusNotFound)
}

func (b *fakeBackend) handleEmptyBin(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var kept []models.Photo
	for _, p := range b.photos {
		if !p.IsDeleted {
			kept = append(kept, p)
		}
	}
	b.photos = kept
	fmt.Fprint(w, `{"message":"recycle bin emptied"}`)
}

func newTestStore(t *testing.T, backend *fakeBackend) (*Store, *fakeSession, *fakeSink, *fakeClipboard) {
	t.Helper()
	sess := &fakeSession{authenticated: true}
	sink := &fakeSink{}
	clip := &fakeClipboard{}
	s := New(client.NewClient(backend.srv.URL, "test-key"), sess, sink, clip, "https://photos.example.com")
	return s, sess, sink, clip
}

func TestProjectionsPartitionTheSnapshot(t *testing.T) {
	backend := newFakeBackend(t)
	for i := 0; i < 3; i++ {
		backend.addPhoto(fmt.Sprintf("active-%d", i), false)
	}
	for i := 0; i < 2; i++ {
		backend.addPhoto(fmt.Sprintf("binned-%d", i), true)
	}

	s, _, _, _ := newTestStore(t, backend)
	require.NoError(t, s.Refresh())
	assert.Equal(t, StateReady, s.State())

	all := s.List()
	active := s.ActivePhotos()
	deleted := s.DeletedPhotos()

	assert.Len(t, all, 5)
	assert.Len(t, active, 3)
	assert.Len(t, deleted, 2)

	// Active and deleted partition the full list: together they cover it
	// and no photo appears in both.
	seen := make(map[uuid.UUID]bool)
	for _, p := range active {
		assert.False(t, p.IsDeleted)
		seen[p.PhotoID] = true
	}
	for _, p := range deleted {
		assert.True(t, p.IsDeleted)
		assert.False(t, seen[p.PhotoID], "photo in both projections")
		seen[p.PhotoID] = true
	}
	for _, p := range all {
		assert.True(t, seen[p.PhotoID], "photo missing from projections")
	}
}

func TestSoftDeleteFlipsOnlyTheTargetFlag(t *testing.T) {
	backend := newFakeBackend(t)
	target := backend.addPhoto("target", false)
	other := backend.addPhoto("other", false)

	s, _, sink, _ := newTestStore(t, backend)
	require.NoError(t, s.Refresh())

	require.True(t, s.SoftDelete(target.PhotoID))

	got, ok := s.FindByID(target.PhotoID)
	require.True(t, ok)
	assert.True(t, got.IsDeleted)
	assert.Equal(t, target.Title, got.Title)

	untouched, ok := s.FindByID(other.PhotoID)
	require.True(t, ok)
	assert.False(t, untouched.IsDeleted)

	notes := sink.all()
	require.Len(t, notes, 1)
	assert.Equal(t, "Photo moved to recycle bin", notes[0].Message)
	assert.Equal(t, SeverityInfo, notes[0].Severity)
}

func TestRestoreIsTheInverseOfSoftDelete(t *testing.T) {
	backend := newFakeBackend(t)
	target := backend.addPhoto("target", false)

	s, _, sink, _ := newTestStore(t, backend)
	require.NoError(t, s.Refresh())
	before, ok := s.FindByID(target.PhotoID)
	require.True(t, ok)

	require.True(t, s.SoftDelete(target.PhotoID))
	require.True(t, s.Restore(target.PhotoID))

	after, ok := s.FindByID(target.PhotoID)
	require.True(t, ok)
	assert.Equal(t, before, after)

	notes := sink.all()
	require.Len(t, notes, 2)
	assert.Equal(t, "Photo restored successfully", notes[1].Message)
	assert.Equal(t, SeveritySuccess, notes[1].Severity)
}

func TestEmptyRecycleBinRemovesExactlyTheDeletedSet(t *testing.T) {
	backend := newFakeBackend(t)
	for i := 0; i < 3; i++ {
		backend.addPhoto(fmt.Sprintf("active-%d", i), false)
	}
	backend.addPhoto("binned-0", true)
	backend.addPhoto("binned-1", true)

	s, _, sink, _ := newTestStore(t, backend)
	require.NoError(t, s.Refresh())

	require.True(t, s.EmptyRecycleBin())
	assert.Len(t, s.DeletedPhotos(), 0)
	assert.Len(t, s.ActivePhotos(), 3)

	// Emptying an already-empty bin is a no-op that still reports success.
	require.True(t, s.EmptyRecycleBin())
	assert.Len(t, s.ActivePhotos(), 3)

	notes := sink.all()
	require.Len(t, notes, 2)
	for _, n := range notes {
		assert.Equal(t, "Recycle bin emptied successfully", n.Message)
		assert.Equal(t, SeveritySuccess, n.Severity)
	}
}

func TestFindByIDNotFoundIsExplicit(t *testing.T) {
	backend := newFakeBackend(t)
	known := backend.addPhoto("known", false)

	s, _, _, _ := newTestStore(t, backend)
	require.NoError(t, s.Refresh())

	got, ok := s.FindByID(known.PhotoID)
	assert.True(t, ok)
	assert.Equal(t, known.PhotoID, got.PhotoID)

	_, ok = s.FindByID(uuid.New())
	assert.False(t, ok)
}

func TestUploadSuccess(t *testing.T) {
	backend := newFakeBackend(t)
	s, _, sink, _ := newTestStore(t, backend)
	require.NoError(t, s.Refresh())
	require.Len(t, s.List(), 0)

	body := strings.NewReader("jpeg bytes")
	ok := s.Upload(body, int64(body.Len()), "sunset.jpg", "image/jpeg", "Sunset", "")
	require.True(t, ok)

	active := s.ActivePhotos()
	require.Len(t, active, 1)
	assert.Equal(t, "Sunset", active[0].Title)

	notes := sink.all()
	require.Len(t, notes, 1)
	assert.Equal(t, SeveritySuccess, notes[0].Severity)
}

func TestUploadFailureLeavesCacheUntouched(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *fakeBackend)
	}{
		{
			name:  "slot request fails",
			setup: func(b *fakeBackend) { b.failUpload = true },
		},
		{
			name:  "byte transfer fails",
			setup: func(b *fakeBackend) { b.failPut = true },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newFakeBackend(t)
			existing := backend.addPhoto("existing", false)

			s, _, sink, _ := newTestStore(t, backend)
			require.NoError(t, s.Refresh())
			tt.setup(backend)

			body := strings.NewReader("bytes")
			ok := s.Upload(body, int64(body.Len()), "x.jpg", "image/jpeg", "X", "")
			assert.False(t, ok)

			// Cache unchanged: still exactly the pre-upload snapshot.
			all := s.List()
			require.Len(t, all, 1)
			assert.Equal(t, existing.PhotoID, all[0].PhotoID)

			notes := sink.all()
			require.Len(t, notes, 1)
			assert.Equal(t, "Unable to upload photo", notes[0].Message)
			assert.Equal(t, SeverityError, notes[0].Severity)
		})
	}
}

func TestSoftDeleteUnknownIDNotifiesFailure(t *testing.T) {
	backend := newFakeBackend(t)
	backend.addPhoto("existing", false)

	s, _, sink, _ := newTestStore(t, backend)
	require.NoError(t, s.Refresh())
	before := s.List()

	ok := s.SoftDelete(uuid.New())
	assert.False(t, ok)
	assert.Equal(t, before, s.List())

	notes := sink.all()
	require.Len(t, notes, 1)
	assert.Equal(t, "Unable to move photo to recycle bin", notes[0].Message)
	assert.Equal(t, SeverityError, notes[0].Severity)
}

func TestFailedRefreshRetainsLastSnapshot(t *testing.T) {
	backend := newFakeBackend(t)
	backend.addPhoto("kept", false)

	s, _, _, _ := newTestStore(t, backend)
	require.NoError(t, s.Refresh())
	require.Len(t, s.List(), 1)

	backend.mu.Lock()
	backend.failList = true
	backend.mu.Unlock()

	err := s.Refresh()
	require.Error(t, err)
	assert.Equal(t, StateError, s.State())

	// Stale-but-available beats empty.
	assert.Len(t, s.List(), 1)
}

func TestNoSessionShortCircuitsWithoutRequests(t *testing.T) {
	backend := newFakeBackend(t)
	backend.addPhoto("hidden", false)

	s, sess, sink, _ := newTestStore(t, backend)
	sess.set(false)

	require.NoError(t, s.Refresh())
	assert.Equal(t, StateUninitialized, s.State())
	assert.Len(t, s.List(), 0)

	assert.False(t, s.SoftDelete(uuid.New()))
	assert.False(t, s.EmptyRecycleBin())
	_, shared := s.CreateShareLink(uuid.New())
	assert.False(t, shared)

	backend.mu.Lock()
	calls := backend.totalCalls
	backend.mu.Unlock()
	assert.Equal(t, 0, calls)
	assert.Len(t, sink.all(), 0)
}

func TestLateResponseAfterSessionClearIsDiscarded(t *testing.T) {
	backend := newFakeBackend(t)
	backend.addPhoto("stale", false)

	s, sess, _, _ := newTestStore(t, backend)

	started := make(chan struct{})
	release := make(chan struct{})
	backend.mu.Lock()
	backend.listStarted = started
	backend.listRelease = release
	backend.mu.Unlock()

	done := make(chan error, 1)
	go func() { done <- s.Refresh() }()

	<-started
	// The session is cleared while the fetch is in flight.
	sess.set(false)
	s.HandleSessionChange(false)
	close(release)
	require.NoError(t, <-done)

	// The late response must not resurrect the old snapshot.
	assert.Len(t, s.List(), 0)
	assert.Equal(t, StateUninitialized, s.State())
}

func TestCreateShareLinkComposesURLAndCopies(t *testing.T) {
	backend := newFakeBackend(t)
	photo := backend.addPhoto("shared", false)

	s, _, sink, clip := newTestStore(t, backend)
	require.NoError(t, s.Refresh())

	backend.mu.Lock()
	listCallsBefore := backend.listCalls
	backend.mu.Unlock()

	link, ok := s.CreateShareLink(photo.PhotoID)
	require.True(t, ok)
	assert.Equal(t, "https://photos.example.com/shared/tok123", link)

	require.Len(t, clip.copied, 1)
	assert.Equal(t, link, clip.copied[0])

	notes := sink.all()
	require.Len(t, notes, 1)
	assert.Equal(t, "Share link created and copied to clipboard", notes[0].Message)

	// Sharing does not touch the photo cache.
	backend.mu.Lock()
	assert.Equal(t, listCallsBefore, backend.listCalls)
	backend.mu.Unlock()
}

func TestCreateShareLinkClipboardFailure(t *testing.T) {
	backend := newFakeBackend(t)
	photo := backend.addPhoto("shared", false)

	s, _, sink, clip := newTestStore(t, backend)
	clip.fail = true
	require.NoError(t, s.Refresh())

	link, ok := s.CreateShareLink(photo.PhotoID)
	assert.False(t, ok)
	assert.NotEmpty(t, link)

	notes := sink.all()
	require.Len(t, notes, 1)
	assert.Equal(t, "Could not copy to clipboard", notes[0].Message)
	assert.Equal(t, SeverityError, notes[0].Severity)
}

func TestPollingRefreshesAndStops(t *testing.T) {
	backend := newFakeBackend(t)
	s, _, _, _ := newTestStore(t, backend)

	s.StartPolling(10 * time.Millisecond)
	assert.Eventually(t, func() bool {
		backend.mu.Lock()
		defer backend.mu.Unlock()
		return backend.listCalls >= 2
	}, time.Second, 5*time.Millisecond)
	s.StopPolling()

	backend.mu.Lock()
	after := backend.listCalls
	backend.mu.Unlock()
	time.Sleep(50 * time.Millisecond)

	backend.mu.Lock()
	assert.Equal(t, after, backend.listCalls)
	backend.mu.Unlock()
}
