package db

import (
	"context"
	"fmt"

	"photo-vault-go/pkg/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const photoColumns = `photo_id, user_id, title, description, photo_url, object_key, content_type, is_deleted, uploaded_at`

func scanPhoto(row pgx.Row) (*models.Photo, error) {
	var p models.Photo
	err := row.Scan(
		&p.PhotoID,
		&p.UserID,
		&p.Title,
		&p.Description,
		&p.PhotoURL,
		&p.ObjectKey,
		&p.ContentType,
		&p.IsDeleted,
		&p.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPhotosByUserID retrieves every photo (active and soft-deleted) owned
// by a user, in insertion order.
func (db *DB) GetPhotosByUserID(ctx context.Context, userID uuid.UUID) ([]models.Photo, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT `+photoColumns+`
		 FROM photos
		 WHERE user_id = $1
		 ORDER BY uploaded_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query photos: %w", err)
	}
	defer rows.Close()

	var photos []models.Photo
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		photos = append(photos, *p)
	}

	return photos, rows.Err()
}

// CreatePhoto inserts a new photo record, created when an upload slot is
// issued. The id and uploaded_at come from the database.
func (db *DB) CreatePhoto(ctx context.Context, userID uuid.UUID, create models.PhotoCreate, photoURL, objectKey string) (*models.Photo, error) {
	photo, err := scanPhoto(db.Pool.QueryRow(ctx,
		`INSERT INTO photos (user_id, title, description, photo_url, object_key, content_type)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+photoColumns,
		userID, create.Title, create.Description, photoURL, objectKey, create.ContentType,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create photo: %w", err)
	}

	return photo, nil
}

// GetPhotoByID retrieves a photo owned by the given user.
func (db *DB) GetPhotoByID(ctx context.Context, photoID, userID uuid.UUID) (*models.Photo, error) {
	photo, err := scanPhoto(db.Pool.QueryRow(ctx,
		`SELECT `+photoColumns+`
		 FROM photos
		 WHERE photo_id = $1 AND user_id = $2`,
		photoID, userID,
	))

	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("photo not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}

	return photo, nil
}

// SetPhotoDeleted flips the soft-delete flag. The update is idempotent:
// marking an already-deleted photo deleted again succeeds.
func (db *DB) SetPhotoDeleted(ctx context.Context, photoID, userID uuid.UUID, deleted bool) error {
	result, err := db.Pool.Exec(ctx,
		`UPDATE photos SET is_deleted = $3
		 WHERE photo_id = $1 AND user_id = $2`,
		photoID, userID, deleted,
	)
	if err != nil {
		return fmt.Errorf("failed to update photo: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("photo not found")
	}

	return nil
}

// EmptyRecycleBin permanently removes every soft-deleted photo owned by
// the user and returns the storage keys of the removed objects so the
// caller can delete the underlying files.
func (db *DB) EmptyRecycleBin(ctx context.Context, userID uuid.UUID) ([]string, error) {
	rows, err := db.Pool.Query(ctx,
		`DELETE FROM photos
		 WHERE user_id = $1 AND is_deleted = TRUE
		 RETURNING object_key`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to empty recycle bin: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan object key: %w", err)
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}
