package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-post-service/internal/custom_errors"
)

var testSecret = []byte("test-signing-secret")

func TestIssueAndVerifyToken(t *testing.T) {
	token, err := IssueToken(testSecret, time.Now())
	require.NoError(t, err)

	claims, err := VerifyToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Greater(t, claims.ExpiresAt, claims.IssuedAt)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := IssueToken(testSecret, time.Now())
	require.NoError(t, err)

	claims, err := VerifyToken([]byte("another-secret"), token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, custom_errors.ErrTokenInvalid)
}

func TestVerifyToken_Expired(t *testing.T) {
	token, err := IssueToken(testSecret, time.Now().Add(-TokenTTL-time.Minute))
	require.NoError(t, err)

	claims, err := VerifyToken(testSecret, token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, custom_errors.ErrTokenExpired)
}

func TestVerifyToken_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a token", token: "garbage"},
		{name: "two segments", token: "a.b"},
		{name: "bad base64 signature", token: "a.b.###"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := VerifyToken(testSecret, tt.token)
			assert.Nil(t, claims)
			assert.Error(t, err)
		})
	}
}

func TestVerifyToken_TamperedPayload(t *testing.T) {
	token, err := IssueToken(testSecret, time.Now())
	require.NoError(t, err)

	tampered := token[:len(token)-8] + "AAAAAAAA"
	claims, err := VerifyToken(testSecret, tampered)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, custom_errors.ErrTokenInvalid)
}

func TestSessionCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	SetSessionCookie(rec, "admin-token", "tok", true)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "admin-token", c.Name)
	assert.Equal(t, "tok", c.Value)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, int(TokenTTL.Seconds()), c.MaxAge)

	rec = httptest.NewRecorder()
	ClearSessionCookie(rec, "admin-token")
	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
