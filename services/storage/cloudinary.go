// File: services/storage/cloudinary.go
package storage

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"bookify/config"
	"bookify/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
)

type cloudinaryStorage struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiKey    string
	apiSecret string
}

// NewCloudinaryStorage initializes a Cloudinary-backed StorageService from
// the application configuration.
func NewCloudinaryStorage() (StorageService, error) {
	cloudName := config.AppConfig.CloudinaryCloudName
	apiKey := config.AppConfig.CloudinaryAPIKey
	apiSecret := config.AppConfig.CloudinaryAPISecret

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &cloudinaryStorage{
		cld:       cld,
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
	}, nil
}

// GenerateSignedUploadURL builds a signed direct-upload URL for a user's
// profile or cover image. The public ID is deterministic per user and
// type, so re-uploads replace the previous image.
func (s *cloudinaryStorage) GenerateSignedUploadURL(userID, uploadType string) (*models.UploadResponse, error) {
	if uploadType != UploadTypeProfile && uploadType != UploadTypeCover {
		return nil, fmt.Errorf("invalid upload type %q: expected %q or %q",
			uploadType, UploadTypeProfile, UploadTypeCover)
	}

	publicID := fmt.Sprintf("users/%s/%s", userID, uploadType)
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	params := url.Values{}
	params.Set("public_id", publicID)
	params.Set("timestamp", timestamp)
	params.Set("overwrite", "true")

	signature, err := api.SignParameters(params, s.apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign upload parameters: %w", err)
	}

	params.Set("api_key", s.apiKey)
	params.Set("signature", signature)

	uploadURL := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload?%s",
		s.cloudName, params.Encode())
	publicURL := fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/%s",
		s.cloudName, publicID)

	return &models.UploadResponse{
		SignedUploadURL: uploadURL,
		PublicURL:       publicURL,
	}, nil
}
