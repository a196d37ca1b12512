// Package oauthstate carries the OAuth handshake state nonce and PKCE
// verifier between the login initiation request and the provider callback.
package oauthstate

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieName holds the signed handshake state for the duration of the
// login flow.
const CookieName = "oauth_state"

// Carrier stashes handshake state on initiation and consumes it exactly
// once on callback.
type Carrier interface {
	Stash(c *gin.Context, state, codeVerifier string) error
	// Consume validates the stored state against the callback's state
	// parameter and returns the PKCE code verifier.
	Consume(c *gin.Context, state string) (codeVerifier string, err error)
}

type cookiePayload struct {
	State        string    `json:"state"`
	CodeVerifier string    `json:"code_verifier"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// CookieCarrier keeps the handshake state in an HMAC-signed, short-lived
// cookie. No server-side storage is involved, so it works on a single
// instance and behind sticky routing alike.
type CookieCarrier struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewCookieCarrier(secret string, ttl time.Duration, secure bool) *CookieCarrier {
	return &CookieCarrier{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
	}
}

func (cc *CookieCarrier) Stash(c *gin.Context, state, codeVerifier string) error {
	payload := cookiePayload{
		State:        state,
		CodeVerifier: codeVerifier,
		ExpiresAt:    time.Now().UTC().Add(cc.ttl),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal state payload: %w", err)
	}

	encoded := base64.RawURLEncoding.EncodeToString(data)
	value := encoded + "." + cc.sign(encoded)

	// SameSite=Lax so the cookie survives the top-level redirect back from
	// the provider.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, int(cc.ttl.Seconds()), "/", "", cc.secure, true)
	return nil
}

func (cc *CookieCarrier) Consume(c *gin.Context, state string) (string, error) {
	value, err := c.Cookie(CookieName)
	if err != nil {
		return "", errors.New("handshake state cookie is missing")
	}

	// Single use: clear the cookie regardless of the outcome.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", cc.secure, true)

	encoded, sig, ok := strings.Cut(value, ".")
	if !ok {
		return "", errors.New("handshake state cookie is malformed")
	}

	if subtle.ConstantTimeCompare([]byte(cc.sign(encoded)), []byte(sig)) != 1 {
		return "", errors.New("handshake state signature mismatch")
	}

	data, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", errors.New("handshake state cookie is malformed")
	}

	var payload cookiePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", errors.New("handshake state cookie is malformed")
	}

	if time.Now().UTC().After(payload.ExpiresAt) {
		return "", errors.New("handshake state expired")
	}

	if subtle.ConstantTimeCompare([]byte(payload.State), []byte(state)) != 1 {
		return "", errors.New("handshake state mismatch")
	}

	return payload.CodeVerifier, nil
}

func (cc *CookieCarrier) sign(encoded string) string {
	mac := hmac.New(sha256.New, cc.secret)
	mac.Write([]byte(encoded))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
