// File: handlers/catalog.go
package handlers

import (
	"net/http"

	"bookify/models"
	"bookify/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes service catalog endpoints.
type CatalogHandler struct {
	Service catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// CreateServiceHandler adds a bookable service to the caller's catalog.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := currentUserID(c)

	var req models.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid service payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	svc, err := h.Service.CreateService(c.Request.Context(), userID, req)
	if err != nil {
		logger.Error("Service creation failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// ListOwnServicesHandler lists the caller's full catalog, active or not.
func (h *CatalogHandler) ListOwnServicesHandler(c *gin.Context) {
	userID := currentUserID(c)

	services, err := h.Service.ListServices(c.Request.Context(), userID)
	if err != nil {
		getLogger(c).Error("Failed to list services", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// ListPublicServicesHandler lists a business's active services for its
// public booking page.
func (h *CatalogHandler) ListPublicServicesHandler(c *gin.Context) {
	services, err := h.Service.ListServices(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list services"})
		return
	}

	active := make([]models.Service, 0, len(services))
	for _, svc := range services {
		if svc.Active {
			active = append(active, svc)
		}
	}
	c.JSON(http.StatusOK, active)
}

// UpdateServiceHandler applies a partial update to one of the caller's
// services.
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := currentUserID(c)

	var req models.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	svc, err := h.Service.UpdateService(c.Request.Context(), userID, c.Param("serviceId"), req)
	if err != nil {
		logger.Error("Service update failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Update failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler removes a service from the caller's catalog.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	userID := currentUserID(c)

	if err := h.Service.DeleteService(c.Request.Context(), userID, c.Param("serviceId")); err != nil {
		getLogger(c).Error("Service deletion failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Deletion failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
