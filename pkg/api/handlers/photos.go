package handlers

import (
	"net/http"

	"photo-vault-go/pkg/models"
	"photo-vault-go/pkg/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListPhotos lists every photo for the authenticated user, active and
// soft-deleted alike; clients project the two views locally.
func ListPhotos(service *services.PhotoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uuid.UUID)

		photos, err := service.ListPhotos(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if photos == nil {
			photos = []models.Photo{}
		}

		c.JSON(http.StatusOK, models.PhotoList{Photos: photos})
	}
}

// RequestUpload creates the photo record and returns a presigned URL for
// the byte transfer
func RequestUpload(service *services.PhotoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uuid.UUID)

		var create models.PhotoCreate
		if err := c.ShouldBindJSON(&create); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		slot, err := service.RequestUpload(c.Request.Context(), userID, create)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, slot)
	}
}

// SoftDeletePhoto moves a photo to the recycle bin
func SoftDeletePhoto(service *services.PhotoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uuid.UUID)

		photoID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo ID"})
			return
		}

		if err := service.SoftDelete(c.Request.Context(), photoID, userID); err != nil {
			if err.Error() == "photo not found" {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "photo moved to recycle bin"})
	}
}

// RestorePhoto clears the soft-delete flag
func RestorePhoto(service *services.PhotoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uuid.UUID)

		photoID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo ID"})
			return
		}

		if err := service.Restore(c.Request.Context(), photoID, userID); err != nil {
			if err.Error() == "photo not found" {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "photo restored"})
	}
}

// EmptyRecycleBin permanently removes all soft-deleted photos. Calling it
// with an empty bin still succeeds.
func EmptyRecycleBin(service *services.PhotoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uuid.UUID)

		if err := service.EmptyRecycleBin(c.Request.Context(), userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "recycle bin emptied"})
	}
}

// SharePhoto issues a time-bounded share token for a photo
func SharePhoto(service *services.PhotoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userID").(uuid.UUID)

		photoID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo ID"})
			return
		}

		share, err := service.CreateShare(c.Request.Context(), photoID, userID)
		if err != nil {
			if err.Error() == "photo not found" {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, models.ShareResponse{ShareToken: share.ShareToken})
	}
}
