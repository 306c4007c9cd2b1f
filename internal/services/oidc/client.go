package oidc

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/prioriza/prioriza/internal/models"
)

// Client wraps the OAuth2 authorization-code exchange.
type Client struct {
	config *oauth2.Config
}

// NewClient creates a new OAuth2 client from OIDC config.
func NewClient(oidcConfig *models.OIDCConfig) *Client {
	clientSecret := ""
	if oidcConfig.ClientSecret != nil {
		clientSecret = *oidcConfig.ClientSecret
	}

	config := &oauth2.Config{
		ClientID:     oidcConfig.ClientID,
		ClientSecret: clientSecret,
		RedirectURL:  oidcConfig.RedirectURI,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  joinIssuerPath(oidcConfig.Issuer, "oauth2/authorize"),
			TokenURL: joinIssuerPath(oidcConfig.Issuer, "oauth2/token"),
		},
	}

	return &Client{config: config}
}

// ExchangeCode exchanges an authorization code for tokens.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	return c.config.Exchange(ctx, code)
}

// AuthCodeURL returns the authorization URL for the given state.
func (c *Client) AuthCodeURL(state string) string {
	return c.config.AuthCodeURL(state)
}
