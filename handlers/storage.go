// File: handlers/storage.go
package handlers

import (
	"net/http"

	"bookify/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler hands out signed upload URLs for profile media.
type StorageHandler struct {
	Service storage.StorageService
}

func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Service: svc}
}

// UploadURLHandler returns a signed direct-upload URL for the caller.
// The ?type= query selects profile or cover imagery.
func (h *StorageHandler) UploadURLHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := currentUserID(c)

	uploadType := c.DefaultQuery("type", storage.UploadTypeProfile)

	resp, err := h.Service.GenerateSignedUploadURL(userID, uploadType)
	if err != nil {
		logger.Warn("Signed upload URL generation failed",
			zap.String("userID", userID),
			zap.String("type", uploadType),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
