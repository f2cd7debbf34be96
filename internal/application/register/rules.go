package register

import (
	"regexp"

	"github.com/moviesir-api/internal/domain"
)

// Syntactic account rules. These are deliberately hand-rolled patterns rather
// than validate tags: each failure must carry its own kind and reason so the
// client can point at the offending field.
var (
	identifierRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	digitRe      = regexp.MustCompile(`[0-9]`)
	letterRe     = regexp.MustCompile(`[A-Za-z]`)
	emailRe      = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
)

// ValidateIdentifier checks length and the allowed character set.
func ValidateIdentifier(identifier string) error {
	if len(identifier) < 4 {
		return &domain.ValidationError{Kind: domain.ValidationIdentifier, Reason: "identifier must be at least 4 characters"}
	}
	if !identifierRe.MatchString(identifier) {
		return &domain.ValidationError{Kind: domain.ValidationIdentifier, Reason: "identifier may only contain letters, digits and underscores"}
	}
	return nil
}

// ValidatePassword checks length and requires at least one digit and one letter.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return &domain.ValidationError{Kind: domain.ValidationPassword, Reason: "password must be at least 6 characters"}
	}
	if !digitRe.MatchString(password) {
		return &domain.ValidationError{Kind: domain.ValidationPassword, Reason: "password must contain a digit"}
	}
	if !letterRe.MatchString(password) {
		return &domain.ValidationError{Kind: domain.ValidationPassword, Reason: "password must contain a letter"}
	}
	return nil
}

// ValidateEmail is a syntactic check only, not a deliverability check.
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return &domain.ValidationError{Kind: domain.ValidationEmail, Reason: "email address is malformed"}
	}
	return nil
}
