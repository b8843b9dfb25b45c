package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-todo-api/internal/config"
)

// ErrInvalidToken is the only failure Verify ever returns. Tampered, malformed
// and expired tokens are indistinguishable at this layer.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims holds the token payload fields.
type Claims struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

type header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// Provider signs and verifies compact three-part tokens
// (header.payload.signature, base64url without padding, HMAC-SHA256).
// The payload carries only user identity and expiry; this is an internal
// format, not an interoperability contract.
type Provider struct {
	secret []byte
	expiry time.Duration
}

func NewProvider(cfg *config.Config) *Provider {
	return &Provider{
		secret: []byte(cfg.JWTSecret),
		expiry: time.Duration(cfg.TokenExpiryHours) * time.Hour,
	}
}

// Sign issues a token for the given identity, valid for the configured expiry.
func (p *Provider) Sign(userID, email string) (string, error) {
	now := time.Now().Unix()
	claims := Claims{
		UserID:    userID,
		Email:     email,
		IssuedAt:  now,
		ExpiresAt: now + int64(p.expiry.Seconds()),
	}

	headerJSON, err := json.Marshal(header{Alg: "HS256", Typ: "JWT"})
	if err != nil {
		return "", err
	}
	payloadJSON, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	encodedHeader := base64.RawURLEncoding.EncodeToString(headerJSON)
	encodedPayload := base64.RawURLEncoding.EncodeToString(payloadJSON)
	signature := p.sign(encodedHeader + "." + encodedPayload)

	return encodedHeader + "." + encodedPayload + "." + signature, nil
}

// Verify checks the signature and expiry of a token and returns its claims.
// Any failure mode normalizes to ErrInvalidToken.
func (p *Provider) Verify(tokenStr string) (*Claims, error) {
	parts := strings.Split(tokenStr, ".")
	if len(parts) != 3 {
		return nil, ErrInvalidToken
	}

	expected := p.sign(parts[0] + "." + parts[1])
	if !hmac.Equal([]byte(expected), []byte(parts[2])) {
		return nil, ErrInvalidToken
	}

	payloadJSON, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrInvalidToken
	}
	var claims Claims
	if err := json.Unmarshal(payloadJSON, &claims); err != nil {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt <= time.Now().Unix() {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

func (p *Provider) sign(signingInput string) string {
	mac := hmac.New(sha256.New, p.secret)
	mac.Write([]byte(signingInput))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
