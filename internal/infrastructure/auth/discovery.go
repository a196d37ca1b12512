package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultGoogleDiscoveryURL is Google's well-known OpenID configuration
// document.
const DefaultGoogleDiscoveryURL = "https://accounts.google.com/.well-known/openid-configuration"

const discoveryTimeout = 10 * time.Second

// ProviderMetadata is the subset of the OpenID discovery document the
// handshake needs. It is fetched once at startup and held for the process
// lifetime.
type ProviderMetadata struct {
	Issuer                string `json:"issuer"`
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	TokenEndpoint         string `json:"token_endpoint"`
	UserinfoEndpoint      string `json:"userinfo_endpoint"`
}

// DiscoverProvider fetches and parses the provider's well-known
// configuration document.
func DiscoverProvider(ctx context.Context, discoveryURL string) (*ProviderMetadata, error) {
	if discoveryURL == "" {
		discoveryURL = DefaultGoogleDiscoveryURL
	}

	reqCtx, cancel := context.WithTimeout(ctx, discoveryTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, discoveryURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create discovery request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch discovery document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("discovery document fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read discovery document: %w", err)
	}

	var md ProviderMetadata
	if err := json.Unmarshal(body, &md); err != nil {
		return nil, fmt.Errorf("failed to parse discovery document: %w", err)
	}

	if md.AuthorizationEndpoint == "" || md.TokenEndpoint == "" || md.UserinfoEndpoint == "" {
		return nil, fmt.Errorf("discovery document is missing required endpoints")
	}

	return &md, nil
}
