package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT with the accessors the notes API needs.
//
// The notes server never issues tokens itself. It only validates them and
// reads the owner identifier from the "sub" claim.
type Token struct {
	// Token is the underlying parsed JWT.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// OwnerID caches the "sub" claim.
	OwnerID string `json:"-"`
}

// GetOwnerID returns the "sub" claim of the token.
//
// Returns an error if the claim is missing or empty.
func (t *Token) GetOwnerID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting OwnerID from token: %w", err)
	}
	if sub == "" {
		return "", fmt.Errorf("error extracting OwnerID from token: empty subject")
	}

	return sub, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
