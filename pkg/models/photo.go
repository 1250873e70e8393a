package models

import (
	"time"

	"github.com/google/uuid"
)

type Photo struct {
	PhotoID     uuid.UUID `db:"photo_id" json:"photoId"`
	UserID      uuid.UUID `db:"user_id" json:"userId"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description,omitempty"`
	PhotoURL    string    `db:"photo_url" json:"photoUrl"`
	ObjectKey   string    `db:"object_key" json:"-"`
	ContentType string    `db:"content_type" json:"-"`
	IsDeleted   bool      `db:"is_deleted" json:"isDeleted"`
	UploadedAt  time.Time `db:"uploaded_at" json:"uploadedAt"`
}

// PhotoCreate represents the metadata sent when requesting an upload slot.
// The file bytes themselves go directly to the returned upload URL.
type PhotoCreate struct {
	FileName    string  `json:"fileName" binding:"required"`
	ContentType string  `json:"contentType" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description,omitempty"`
}

// UploadSlot is the response to an upload-slot request: the created photo
// record plus a presigned URL the client PUTs the raw bytes to.
type UploadSlot struct {
	UploadURL string `json:"uploadUrl"`
	Photo     Photo  `json:"photo"`
}

// PhotoList is the envelope returned by the photo listing endpoint.
type PhotoList struct {
	Photos []Photo `json:"photos"`
}
