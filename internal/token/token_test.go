package token

import (
	"testing"
	"time"

	"oracao/internal/config"
	"oracao/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(secret string) *Service {
	return NewService(&config.Config{JWTSecret: secret})
}

func TestIssueAndValidate(t *testing.T) {
	svc := testService("test_secret")
	user := &models.User{ID: 42, Username: "maria", IsAdmin: true}

	raw, err := svc.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := svc.Validate(raw)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, "maria", claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.NotEmpty(t, claims.ID, "token should carry a jti")
}

func TestValidateExpired(t *testing.T) {
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	svc := testService("test_secret").WithClock(func() time.Time { return issued })
	raw, err := svc.Issue(&models.User{ID: 1, Username: "maria"})
	require.NoError(t, err)

	// Just inside the lifetime.
	svc.WithClock(func() time.Time { return issued.Add(TTL - time.Minute) })
	_, err = svc.Validate(raw)
	assert.NoError(t, err)

	// Just past the lifetime.
	svc.WithClock(func() time.Time { return issued.Add(TTL + time.Minute) })
	_, err = svc.Validate(raw)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateForgedSignature(t *testing.T) {
	raw, err := testService("other_secret").Issue(&models.User{ID: 1, Username: "maria"})
	require.NoError(t, err)

	_, err = testService("test_secret").Validate(raw)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestValidateMalformed(t *testing.T) {
	svc := testService("test_secret")

	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrTokenMalformed)

	_, err = svc.Validate("")
	assert.ErrorIs(t, err, ErrTokenMissing)
}

func TestValidateTamperedClaims(t *testing.T) {
	svc := testService("test_secret")
	raw, err := svc.Issue(&models.User{ID: 7, Username: "carlos"})
	require.NoError(t, err)

	// Flip a character in the payload segment.
	tampered := []byte(raw)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	_, err = svc.Validate(string(tampered))
	assert.Error(t, err)
}
