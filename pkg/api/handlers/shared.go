package handlers

import (
	"net/http"

	"photo-vault-go/pkg/services"

	"github.com/gin-gonic/gin"
)

// GetSharedPhoto resolves a public share token to a single photo. No
// authentication: the token is the capability.
func GetSharedPhoto(service *services.PhotoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		photo, err := service.ResolveShare(c.Request.Context(), c.Param("token"))
		if err != nil {
			if err.Error() == "share link not found" {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, photo)
	}
}

// HealthCheck reports service liveness
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
