package token

import (
	"errors"

	"github.com/anonto42/photofeed/backend/internal/models"
	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken is returned when a credential is missing, malformed or
// fails signature verification.
var ErrInvalidToken = errors.New("invalid authentication token")

// Service mints and verifies the signed credentials carried in the
// x-auth-token header. It holds only the signing secret; verification is a
// pure function of token and secret, with no server-side session state.
type Service struct {
	secret []byte
}

// NewService creates a credential service signing with the given secret.
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue signs an HS256 token embedding the user's identifier.
// Tokens carry no expiry: clients hold them until they sign out, and the
// server has no revocation list. A stolen token stays valid until the
// signing secret rotates.
func (s *Service) Issue(userID string) (string, error) {
	claims := &models.AuthClaims{UserID: userID}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks the token's signature and returns the embedded user ID.
func (s *Service) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrInvalidToken
	}

	claims := &models.AuthClaims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !t.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
