// FILE: internal/pkg/token/token.go
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verification failure kinds. The authentication gate maps these to the
// diagnostic messages the API contract promises.
var (
	ErrMalformed        = errors.New("jwt malformed")
	ErrExpired          = errors.New("jwt expired")
	ErrInvalidSignature = errors.New("invalid signature")
)

// Claims is the verified content of an access token.
type Claims struct {
	SubjectId uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Service issues and verifies stateless HS256 bearer tokens. There is no
// revocation list; expiry is the only termination mechanism.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *Service) Issue(subjectId uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectId.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

func (s *Service) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrMalformed
		}
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, ErrMalformed
	}
	subjectId, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrMalformed
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, ErrMalformed
	}

	return &Claims{
		SubjectId: subjectId,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
