package oidc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prioriza/prioriza/internal/database"
	"github.com/prioriza/prioriza/internal/models"
)

// Provider manages OIDC provider configuration stored in the database.
type Provider struct {
	repo *database.OIDCConfigRepository
}

// NewProvider creates a new OIDC provider manager.
func NewProvider(repo *database.OIDCConfigRepository) *Provider {
	return &Provider{repo: repo}
}

// GetConfig retrieves OIDC configuration for a provider.
func (p *Provider) GetConfig(ctx context.Context, providerName string) (*models.OIDCConfig, error) {
	config, err := p.repo.GetByProvider(ctx, providerName)
	if err != nil {
		return nil, fmt.Errorf("failed to get OIDC config: %w", err)
	}
	return config, nil
}

// LoginConfig contains the OIDC login configuration handed to the frontend.
type LoginConfig struct {
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	TokenEndpoint         string `json:"token_endpoint"`
	ClientID              string `json:"client_id"`
	RedirectURI           string `json:"redirect_uri"`
	Scope                 string `json:"scope"`
}

// GetLoginConfig resolves the endpoints the frontend needs to start a
// login. The discovery document is preferred; when it is unreachable the
// endpoints are derived from the issuer or the configured OAuth2 domain.
func (p *Provider) GetLoginConfig(ctx context.Context, providerName string) (*LoginConfig, error) {
	config, err := p.GetConfig(ctx, providerName)
	if err != nil {
		return nil, err
	}

	authEndpoint, tokenEndpoint := p.discoverEndpoints(ctx, config.Issuer)

	// Cognito OAuth2 flows require domain-based endpoints, not issuer-based
	// ones, so a configured domain overrides discovery.
	if config.Domain != nil && *config.Domain != "" && strings.Contains(config.Issuer, "cognito-idp.") {
		baseURL := *config.Domain
		if !strings.HasPrefix(baseURL, "https://") {
			baseURL = "https://" + baseURL
		}
		authEndpoint = baseURL + "/oauth2/authorize"
		tokenEndpoint = baseURL + "/oauth2/token"
	}

	if authEndpoint == "" {
		authEndpoint = joinIssuerPath(config.Issuer, "oauth2/authorize")
	}
	if tokenEndpoint == "" {
		tokenEndpoint = joinIssuerPath(config.Issuer, "oauth2/token")
	}

	return &LoginConfig{
		AuthorizationEndpoint: authEndpoint,
		TokenEndpoint:         tokenEndpoint,
		ClientID:              config.ClientID,
		RedirectURI:           config.RedirectURI,
		Scope:                 "openid email profile",
	}, nil
}

// discoverEndpoints reads the OIDC discovery document. Failures are not
// errors; the caller falls back to issuer-derived endpoints.
func (p *Provider) discoverEndpoints(ctx context.Context, issuer string) (string, string) {
	discoveryURL := strings.TrimSuffix(issuer, "/") + "/.well-known/openid-configuration"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, discoveryURL, nil)
	if err != nil {
		return "", ""
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		if resp != nil {
			resp.Body.Close()
		}
		return "", ""
	}
	defer resp.Body.Close()

	var discovery struct {
		AuthorizationEndpoint string `json:"authorization_endpoint"`
		TokenEndpoint         string `json:"token_endpoint"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&discovery); err != nil {
		return "", ""
	}

	return discovery.AuthorizationEndpoint, discovery.TokenEndpoint
}

func joinIssuerPath(issuer, path string) string {
	return strings.TrimSuffix(issuer, "/") + "/" + path
}
