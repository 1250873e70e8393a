package client

import (
	"fmt"
	"io"
	"net/http"

	"photo-vault-go/pkg/models"

	"github.com/google/uuid"
)

// ListPhotos retrieves all photos for the authenticated user
func (c *Client) ListPhotos() ([]models.Photo, error) {
	var list models.PhotoList
	if err := c.doGetRequest("/photos", &list); err != nil {
		return nil, err
	}
	return list.Photos, nil
}

// RequestUploadURL asks the server for an upload slot: the created photo
// record plus a presigned destination for the bytes
func (c *Client) RequestUploadURL(create models.PhotoCreate) (*models.UploadSlot, error) {
	var slot models.UploadSlot
	if err := c.doJSONRequest(http.MethodPost, "/photos/upload-url", create, &slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

// UploadBytes transfers the raw file to the presigned upload URL. This is
// phase two of an upload; it bypasses the API base entirely.
func (c *Client) UploadBytes(uploadURL, contentType string, body io.Reader, size int64) error {
	req, err := http.NewRequest(http.MethodPut, uploadURL, body)
	if err != nil {
		return fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if size > 0 {
		req.ContentLength = size
	}

	resp, err := c.uploadClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("upload failed: status %d", resp.StatusCode)
	}

	return nil
}

// DeletePhoto soft-deletes a photo (moves it to the recycle bin)
func (c *Client) DeletePhoto(id uuid.UUID) error {
	path := fmt.Sprintf("/photos/%s", id.String())
	return c.doDeleteRequest(path)
}

// RestorePhoto moves a photo out of the recycle bin
func (c *Client) RestorePhoto(id uuid.UUID) error {
	path := fmt.Sprintf("/photos/%s/restore", id.String())
	return c.doJSONRequest(http.MethodPost, path, nil, nil)
}

// EmptyRecycleBin permanently removes all soft-deleted photos
func (c *Client) EmptyRecycleBin() error {
	return c.doDeleteRequest("/photos/recycle-bin/empty")
}

// CreateShare requests a time-bounded share token for a photo
func (c *Client) CreateShare(id uuid.UUID) (string, error) {
	var resp models.ShareResponse
	path := fmt.Sprintf("/photos/%s/share", id.String())
	if err := c.doJSONRequest(http.MethodPost, path, nil, &resp); err != nil {
		return "", err
	}
	return resp.ShareToken, nil
}

// GetSharedPhoto resolves a public share token (no auth required)
func (c *Client) GetSharedPhoto(token string) (*models.Photo, error) {
	var photo models.Photo
	path := fmt.Sprintf("/shared/%s", token)
	if err := c.doGetRequest(path, &photo); err != nil {
		return nil, err
	}
	return &photo, nil
}
