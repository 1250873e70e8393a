package db

import (
	"context"
	"fmt"
	"time"

	"photo-vault-go/pkg/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateShareLink stores a share token for a photo. Only active photos
// owned by the user can be shared; the subquery enforces both.
func (db *DB) CreateShareLink(ctx context.Context, photoID, userID uuid.UUID, token string, expiresAt time.Time) (*models.ShareLink, error) {
	var share models.ShareLink
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO shares (photo_id, share_token, expires_at)
		 SELECT photo_id, $3, $4
		 FROM photos
		 WHERE photo_id = $1 AND user_id = $2 AND is_deleted = FALSE
		 RETURNING id, photo_id, share_token, expires_at, created_at`,
		photoID, userID, token, expiresAt,
	).Scan(
		&share.ID,
		&share.PhotoID,
		&share.ShareToken,
		&share.ExpiresAt,
		&share.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("photo not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create share link: %w", err)
	}

	return &share, nil
}

// GetSharedPhoto resolves an unexpired share token to its photo. Tokens
// pointing at photos moved to the recycle bin stop resolving.
func (db *DB) GetSharedPhoto(ctx context.Context, token string) (*models.Photo, error) {
	photo, err := scanPhoto(db.Pool.QueryRow(ctx,
		`SELECT p.photo_id, p.user_id, p.title, p.description, p.photo_url, p.object_key, p.content_type, p.is_deleted, p.uploaded_at
		 FROM photos p
		 JOIN shares s ON s.photo_id = p.photo_id
		 WHERE s.share_token = $1
		   AND s.expires_at > NOW()
		   AND p.is_deleted = FALSE`,
		token,
	))

	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("share link not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve share link: %w", err)
	}

	return photo, nil
}
