package domain

import "time"

// Account is the finalized record handed to the user store at the end of the
// registration flow. Nothing is persisted before the complete stage.
type Account struct {
	AccountID       string    `json:"id" dynamodbav:"account_id"`
	Identifier      string    `json:"identifier" dynamodbav:"identifier"`
	Password        string    `json:"-" dynamodbav:"password"` // TODO: hash with bcrypt once hashing lands product-side
	DisplayName     string    `json:"display_name" dynamodbav:"display_name"`
	Email           string    `json:"email" dynamodbav:"email"`
	PreferredGenres []string  `json:"preferred_genres" dynamodbav:"preferred_genres"`
	OwnedServices   []string  `json:"owned_services" dynamodbav:"owned_services"`
	CreatedAt       time.Time `json:"created" dynamodbav:"created_at"`
}

// RegisterIdentity is the identity echo returned by the basic stage.
type RegisterIdentity struct {
	Identifier  string `json:"identifier"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// RegisterPreferences is the echo returned by the preferences stage.
type RegisterPreferences struct {
	PreferredGenres []string `json:"preferred_genres"`
	OwnedServices   []string `json:"owned_services"`
}

type RegisterBasicRequest struct {
	Identifier      string `json:"identifier" validate:"required"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
	DisplayName     string `json:"display_name" validate:"required"`
	Email           string `json:"email" validate:"required"`
}

type RegisterEmailRequest struct {
	Email string `json:"email" validate:"required"`
}

type RegisterVerifyCodeRequest struct {
	Email string `json:"email" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

type RegisterPreferencesRequest struct {
	PreferredGenres []string `json:"preferred_genres"`
	OwnedServices   []string `json:"owned_services"`
}

// RegisterCompleteRequest resupplies the full payload; the flow keeps no
// session state between stages.
type RegisterCompleteRequest struct {
	Identifier      string   `json:"identifier" validate:"required"`
	Password        string   `json:"password" validate:"required"`
	DisplayName     string   `json:"display_name" validate:"required"`
	Email           string   `json:"email" validate:"required"`
	PreferredGenres []string `json:"preferred_genres"`
	OwnedServices   []string `json:"owned_services"`
}
