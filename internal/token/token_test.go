package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibrantyoga/api/internal/models"
)

func sampleUser() *models.User {
	return &models.User{
		ID:    uuid.New(),
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  models.RoleUser,
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	user := sampleUser()

	signed, err := svc.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestVerify_Expired(t *testing.T) {
	svc := NewService("test-secret", time.Millisecond)

	signed, err := svc.Issue(sampleUser())
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	signed, err := NewService("secret-a", time.Hour).Issue(sampleUser())
	require.NoError(t, err)

	_, err = NewService("secret-b", time.Hour).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Tampered(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	signed, err := svc.Issue(sampleUser())
	require.NoError(t, err)

	_, err = svc.Verify(signed + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	_, err := svc.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewService_DefaultTTL(t *testing.T) {
	svc := NewService("test-secret", 0)
	assert.Equal(t, DefaultTTL, svc.ttl)
}
