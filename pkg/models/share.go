package models

import (
	"time"

	"github.com/google/uuid"
)

// ShareLink is a time-bounded public handle for a single photo. The
// expiration window is decided server-side; clients only compose the
// public URL from the token.
type ShareLink struct {
	ID         uuid.UUID `db:"id" json:"id"`
	PhotoID    uuid.UUID `db:"photo_id" json:"photoId"`
	ShareToken string    `db:"share_token" json:"shareToken"`
	ExpiresAt  time.Time `db:"expires_at" json:"expiresAt"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

// ShareResponse is the wire response to a share request.
type ShareResponse struct {
	ShareToken string `json:"shareToken"`
}
