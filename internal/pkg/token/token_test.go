package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signRaw(t *testing.T, secret, subject string) string {
	t.Helper()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tokenStr
}

func TestIssueVerifyRoundtrip(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	subject := uuid.New()

	tokenStr, err := svc.Issue(subject)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := svc.Verify(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, subject, claims.SubjectId)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt, 5*time.Second)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestVerifyExpired(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)

	tokenStr, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(tokenStr)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewService("secret-a", time.Hour)
	verifier := NewService("secret-b", time.Hour)

	tokenStr, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyMalformed(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	for _, tokenStr := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Verify(tokenStr)
		assert.ErrorIs(t, err, ErrMalformed, "token %q", tokenStr)
	}
}

func TestVerifyRejectsNonUUIDSubject(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	// Signed with the right secret but the subject is not an id we issue.
	claims, err := svc.Verify(signRaw(t, "test-secret", "not-a-uuid"))
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrMalformed)
}
