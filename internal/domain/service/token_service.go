package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims of an access token. The account ID travels in
// the registered "sub" claim.
type Claims struct {
	Email string `json:"email"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

// AccountID parses the subject claim.
func (c *Claims) AccountID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenSigner turns a claim set into an opaque bearer token and back.
type TokenSigner interface {
	// Sign issues a signed access token for subject and email.
	Sign(subject uuid.UUID, email string) (string, error)

	// Validate parses and verifies a token produced by Sign.
	Validate(token string) (*Claims, error)
}
