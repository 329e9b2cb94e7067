// File: models/user.go
package models

import "time"

// User represents a business owner account.
type User struct {
	ID                    string             `bson:"id" json:"id"`
	Username              string             `bson:"username" json:"username"`
	BusinessName          string             `bson:"businessName" json:"business_name"`
	Email                 string             `bson:"email" json:"email"`
	PasswordHash          string             `bson:"passwordHash" json:"-"`
	Location              string             `bson:"location,omitempty" json:"location,omitempty"`
	PhoneNumber           string             `bson:"phoneNumber,omitempty" json:"phone_number,omitempty"`
	PhoneNumberIsWhatsapp bool               `bson:"phoneNumberIsWhatsapp" json:"phone_number_is_whatsapp"`
	Description           string             `bson:"description,omitempty" json:"description,omitempty"`
	CoverImageURL         string             `bson:"coverImageUrl,omitempty" json:"cover_image_url,omitempty"`
	ProfileImageURL       string             `bson:"profileImageUrl,omitempty" json:"profile_image_url,omitempty"`
	IsVerified            bool               `bson:"isVerified" json:"is_verified"`
	TokenHash             string             `bson:"tokenHash,omitempty" json:"-"`
	Google                *GoogleCredentials `bson:"google,omitempty" json:"-"`
	GoogleIsConnected     bool               `bson:"googleIsConnected" json:"google_is_connected"`
	CreatedAt             time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt             time.Time          `bson:"updatedAt" json:"updated_at"`
	LastLogin             time.Time          `bson:"lastLogin,omitempty" json:"last_login,omitempty"`
}

// GoogleCredentials holds the OAuth token material for calendar access.
// Never serialized to API clients.
type GoogleCredentials struct {
	AccessToken  string    `bson:"accessToken"`
	RefreshToken string    `bson:"refreshToken"`
	TokenType    string    `bson:"tokenType"`
	Expiry       time.Time `bson:"expiry"`
}

// PublicProfile strips fields that must not leak to unauthenticated
// callers of the public profile endpoint.
func (u *User) PublicProfile() *User {
	pub := *u
	pub.Email = ""
	pub.TokenHash = ""
	pub.Google = nil
	return &pub
}
