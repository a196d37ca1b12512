package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumen/internal/shared/config"
)

func testMetadata() *ProviderMetadata {
	return &ProviderMetadata{
		Issuer:                "https://accounts.google.com",
		AuthorizationEndpoint: "https://accounts.google.com/o/oauth2/v2/auth",
		TokenEndpoint:         "https://oauth2.googleapis.com/token",
		UserinfoEndpoint:      "https://openidconnect.googleapis.com/v1/userinfo",
	}
}

func testOAuthConfig() config.GoogleOAuthConfig {
	return config.GoogleOAuthConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:8080/api/auth/google",
	}
}

func TestGoogleOAuthClient_GetAuthURL(t *testing.T) {
	client := NewGoogleOAuthClient(testOAuthConfig(), testMetadata())

	authURL, codeVerifier, err := client.GetAuthURL("state-nonce")
	require.NoError(t, err)
	require.NotEmpty(t, codeVerifier)

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", parsed.Host)
	assert.Equal(t, "/o/oauth2/v2/auth", parsed.Path)

	q := parsed.Query()
	assert.Equal(t, "state-nonce", q.Get("state"))
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
	assert.NotEmpty(t, q.Get("code_challenge"))
	assert.Contains(t, q.Get("scope"), "openid")
}

func TestGoogleOAuthClient_GetAuthURL_FreshVerifierPerCall(t *testing.T) {
	client := NewGoogleOAuthClient(testOAuthConfig(), testMetadata())

	_, first, err := client.GetAuthURL("state-a")
	require.NoError(t, err)
	_, second, err := client.GetAuthURL("state-b")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGoogleOAuthClient_ExchangeCode(t *testing.T) {
	var gotVerifier, gotCode string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotCode = r.FormValue("code")
		gotVerifier = r.FormValue("code_verifier")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"provider-token","token_type":"Bearer"}`))
	}))
	defer ts.Close()

	md := testMetadata()
	md.TokenEndpoint = ts.URL
	client := NewGoogleOAuthClient(testOAuthConfig(), md)

	token, err := client.ExchangeCode(context.Background(), "auth-code", "verifier-value")
	require.NoError(t, err)
	assert.Equal(t, "provider-token", token)
	assert.Equal(t, "auth-code", gotCode)
	assert.Equal(t, "verifier-value", gotVerifier)
}

func TestGoogleOAuthClient_GetUserInfo(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer provider-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sub":"google-sub-123","email":"user@example.com","email_verified":true,"name":"Test User","picture":"https://example.com/p.jpg"}`))
	}))
	defer ts.Close()

	md := testMetadata()
	md.UserinfoEndpoint = ts.URL
	client := NewGoogleOAuthClient(testOAuthConfig(), md)

	info, err := client.GetUserInfo(context.Background(), "provider-token")
	require.NoError(t, err)
	assert.Equal(t, "google-sub-123", info.Subject)
	assert.Equal(t, "user@example.com", info.Email)
	assert.Equal(t, "Test User", info.Name)
	assert.Equal(t, "https://example.com/p.jpg", info.Picture)
}

func TestGoogleOAuthClient_GetUserInfo_MissingSubject(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"email":"user@example.com"}`))
	}))
	defer ts.Close()

	md := testMetadata()
	md.UserinfoEndpoint = ts.URL
	client := NewGoogleOAuthClient(testOAuthConfig(), md)

	info, err := client.GetUserInfo(context.Background(), "provider-token")
	assert.Nil(t, info)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing subject")
}

func TestGoogleOAuthClient_GetUserInfo_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_token"}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	md := testMetadata()
	md.UserinfoEndpoint = ts.URL
	client := NewGoogleOAuthClient(testOAuthConfig(), md)

	info, err := client.GetUserInfo(context.Background(), "bad-token")
	assert.Nil(t, info)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "status 401"))
}

func TestDiscoverProvider(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"issuer": "https://accounts.google.com",
			"authorization_endpoint": "https://accounts.google.com/o/oauth2/v2/auth",
			"token_endpoint": "https://oauth2.googleapis.com/token",
			"userinfo_endpoint": "https://openidconnect.googleapis.com/v1/userinfo"
		}`))
	}))
	defer ts.Close()

	md, err := DiscoverProvider(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/v2/auth", md.AuthorizationEndpoint)
	assert.Equal(t, "https://oauth2.googleapis.com/token", md.TokenEndpoint)
	assert.Equal(t, "https://openidconnect.googleapis.com/v1/userinfo", md.UserinfoEndpoint)
}

func TestDiscoverProvider_MissingEndpoints(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"issuer": "https://accounts.google.com"}`))
	}))
	defer ts.Close()

	md, err := DiscoverProvider(context.Background(), ts.URL)
	assert.Nil(t, md)
	require.Error(t, err)
}
