// File: services/storage/interface.go
package storage

import "bookify/models"

// Upload types accepted by the signed-upload endpoint.
const (
	UploadTypeProfile = "profile"
	UploadTypeCover   = "cover"
)

// StorageService hands out short-lived signed upload URLs so clients can
// push images directly to the CDN without the API proxying bytes.
type StorageService interface {
	GenerateSignedUploadURL(userID, uploadType string) (*models.UploadResponse, error)
}
