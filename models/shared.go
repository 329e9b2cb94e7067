// File: models/shared.go
package models

// UploadResponse is returned by the signed-upload endpoint. The client
// PUTs the file to SignedUploadURL and stores PublicURL on its profile.
type UploadResponse struct {
	SignedUploadURL string `json:"signed_upload_url"`
	PublicURL       string `json:"public_url"`
}
