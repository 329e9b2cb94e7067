// File: models/userRegistration.go
package models

// UserRegistrationData is the payload for creating a business account.
type UserRegistrationData struct {
	Username              string `json:"username" binding:"required"`
	BusinessName          string `json:"business_name" binding:"required"`
	Email                 string `json:"email" binding:"required,email"`
	Password              string `json:"password" binding:"required,min=8"`
	Location              string `json:"location"`
	PhoneNumber           string `json:"phone_number"`
	Description           string `json:"description"`
	PhoneNumberIsWhatsapp bool   `json:"phone_number_is_whatsapp"`
}

// UserUpdateRequest carries a partial profile update. Nil pointers leave
// the stored value untouched.
type UserUpdateRequest struct {
	ID                    string  `json:"-"`
	BusinessName          *string `json:"business_name"`
	Location              *string `json:"location"`
	PhoneNumber           *string `json:"phone_number"`
	Description           *string `json:"description"`
	PhoneNumberIsWhatsapp *bool   `json:"phone_number_is_whatsapp"`
	ProfileImageURL       *string `json:"profile_image_url"`
	CoverImageURL         *string `json:"cover_image_url"`
}
