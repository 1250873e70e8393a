package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"photo-vault-go/pkg/db"
	"photo-vault-go/pkg/models"
	"photo-vault-go/pkg/storage"

	"github.com/google/uuid"
)

// shareTTL is the server-side share-link lifetime. Clients never encode
// this; they only see the expiresAt the server hands back.
const shareTTL = 7 * 24 * time.Hour

// PhotoService handles business logic for photo operations
type PhotoService struct {
	db      *db.DB
	storage *storage.Client
}

// NewPhotoService creates a new photo service
func NewPhotoService(db *db.DB, storageClient *storage.Client) *PhotoService {
	return &PhotoService{
		db:      db,
		storage: storageClient,
	}
}

// ListPhotos retrieves all photos for a user, active and soft-deleted
func (s *PhotoService) ListPhotos(ctx context.Context, userID uuid.UUID) ([]models.Photo, error) {
	return s.db.GetPhotosByUserID(ctx, userID)
}

// GetPhoto retrieves a single photo by ID
func (s *PhotoService) GetPhoto(ctx context.Context, photoID, userID uuid.UUID) (*models.Photo, error) {
	return s.db.GetPhotoByID(ctx, photoID, userID)
}

// RequestUpload creates the photo record and issues a presigned upload
// URL. The record exists before any bytes arrive; the id and timestamp
// are server-generated.
func (s *PhotoService) RequestUpload(ctx context.Context, userID uuid.UUID, create models.PhotoCreate) (*models.UploadSlot, error) {
	if strings.TrimSpace(create.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(create.FileName) == "" {
		return nil, fmt.Errorf("file name is required")
	}

	objectKey := storage.NewObjectKey(userID, create.FileName)
	photoURL := s.storage.ObjectURL(objectKey)

	photo, err := s.db.CreatePhoto(ctx, userID, create, photoURL, objectKey)
	if err != nil {
		return nil, err
	}

	uploadURL, err := s.storage.PresignPut(ctx, objectKey, create.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to issue upload URL: %w", err)
	}

	return &models.UploadSlot{
		UploadURL: uploadURL,
		Photo:     *photo,
	}, nil
}

// SoftDelete moves a photo to the recycle bin
func (s *PhotoService) SoftDelete(ctx context.Context, photoID, userID uuid.UUID) error {
	return s.db.SetPhotoDeleted(ctx, photoID, userID, true)
}

// Restore moves a photo out of the recycle bin
func (s *PhotoService) Restore(ctx context.Context, photoID, userID uuid.UUID) error {
	return s.db.SetPhotoDeleted(ctx, photoID, userID, false)
}

// EmptyRecycleBin permanently removes all soft-deleted photos for the
// user, including the stored objects. Emptying an empty bin succeeds.
func (s *PhotoService) EmptyRecycleBin(ctx context.Context, userID uuid.UUID) error {
	keys, err := s.db.EmptyRecycleBin(ctx, userID)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.storage.DeleteObjects(ctx, keys)
}

// CreateShare issues a time-bounded share token for an active photo
func (s *PhotoService) CreateShare(ctx context.Context, photoID, userID uuid.UUID) (*models.ShareLink, error) {
	token, err := generateShareToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate share token: %w", err)
	}

	return s.db.CreateShareLink(ctx, photoID, userID, token, time.Now().Add(shareTTL))
}

// ResolveShare returns the photo behind an unexpired share token
func (s *PhotoService) ResolveShare(ctx context.Context, token string) (*models.Photo, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("share link not found")
	}
	return s.db.GetSharedPhoto(ctx, token)
}

// generateShareToken generates a random 32-byte hex string
func generateShareToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
