// Package auth implements the admin session credential: an HS256-signed,
// time-limited token carried in an http-only cookie.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"blog-post-service/internal/custom_errors"
)

const (
	// TokenTTL is the validity window of an issued admin token.
	TokenTTL = 24 * time.Hour

	RoleAdmin = "admin"
)

type Claims struct {
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// IssueToken builds and signs an admin session token.
func IssueToken(secret []byte, now time.Time) (string, error) {
	claims := Claims{
		Role:      RoleAdmin,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(TokenTTL).Unix(),
	}
	return sign(secret, claims)
}

// VerifyToken checks signature and expiry. Any malformed, tampered or expired
// token yields an error; the caller treats every error as "unauthenticated".
func VerifyToken(secret []byte, token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, custom_errors.ErrTokenInvalid
	}

	enc := base64.RawURLEncoding
	unsigned := parts[0] + "." + parts[1]

	sig, err := enc.DecodeString(parts[2])
	if err != nil {
		return nil, custom_errors.ErrTokenInvalid
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(unsigned))
	if !hmac.Equal(sig, mac.Sum(nil)) {
		return nil, custom_errors.ErrTokenInvalid
	}

	payload, err := enc.DecodeString(parts[1])
	if err != nil {
		return nil, custom_errors.ErrTokenInvalid
	}
	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, custom_errors.ErrTokenInvalid
	}
	if claims.ExpiresAt <= time.Now().Unix() {
		return nil, custom_errors.ErrTokenExpired
	}

	return &claims, nil
}

func sign(secret []byte, claims Claims) (string, error) {
	header := map[string]string{"alg": "HS256", "typ": "JWT"}
	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", err
	}
	payloadJSON, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	enc := base64.RawURLEncoding
	unsigned := enc.EncodeToString(headerJSON) + "." + enc.EncodeToString(payloadJSON)

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(unsigned))
	return unsigned + "." + enc.EncodeToString(mac.Sum(nil)), nil
}

// SetSessionCookie attaches the signed token to the response.
func SetSessionCookie(w http.ResponseWriter, name, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearSessionCookie expires the session cookie regardless of its contents.
func ClearSessionCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
