// Package scope issues and verifies the signed bearer tokens that carry an
// authenticated principal between the auth boundary and this service.
package scope

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Manager signs and verifies principal tokens.
type Manager interface {
	Sign(userID string, ttl time.Duration) string
	Verify(token string) (string, error)
}

type hmacManager struct {
	secret []byte
}

// NewManager creates an HMAC-SHA256 token manager with the given secret.
func NewManager(secret string) Manager {
	return &hmacManager{secret: []byte(secret)}
}

// Sign produces a token of the form "userID.expiryUnix.signature".
func (m *hmacManager) Sign(userID string, ttl time.Duration) string {
	expiry := time.Now().Add(ttl).Unix()
	payload := fmt.Sprintf("%s.%d", userID, expiry)
	return payload + "." + m.signature(payload)
}

// Verify checks the signature and expiry and returns the embedded user ID.
func (m *hmacManager) Verify(token string) (string, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", ErrInvalidToken
	}

	payload := parts[0] + "." + parts[1]
	if !hmac.Equal([]byte(m.signature(payload)), []byte(parts[2])) {
		return "", ErrInvalidToken
	}

	expiry, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", ErrInvalidToken
	}
	if time.Now().Unix() > expiry {
		return "", ErrExpiredToken
	}

	return parts[0], nil
}

func (m *hmacManager) signature(payload string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
