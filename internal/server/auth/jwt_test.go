package auth

import (
	"testing"
	"time"

	"github.com/commboard/commboard/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func testUser() *models.User {
	return &models.User{ID: 1, Email: "a@b.com", Name: "tester"}
}

func TestAccessToken_RoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(testUser(), testSecret, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAccessToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "tester", claims.Name)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken(42, testSecret, 7*24*time.Hour)
	require.NoError(t, err)

	claims, err := ParseRefreshToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := GenerateRefreshToken(1, testSecret, time.Minute)
	require.NoError(t, err)

	_, err = ParseRefreshToken(token, []byte("other-secret"))
	require.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	token, err := GenerateAccessToken(testUser(), testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken(token, testSecret)
	require.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	_, err := ParseAccessToken("not.a.jwt", testSecret)
	require.Error(t, err)

	_, err = ParseRefreshToken("", testSecret)
	require.Error(t, err)
}
