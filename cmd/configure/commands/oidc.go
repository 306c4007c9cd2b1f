package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/prioriza/prioriza/internal/database"
	"github.com/prioriza/prioriza/internal/models"
	"github.com/prioriza/prioriza/internal/validation"
	"github.com/spf13/cobra"
)

// NewOIDCCmd creates the OIDC configuration command
func NewOIDCCmd() *cobra.Command {
	var issuer, domain, clientID, clientSecret, redirectURI string

	cmd := &cobra.Command{
		Use:   "oidc <provider-name>",
		Short: "Configure OIDC provider",
		Long:  "Configure an OIDC provider for authentication. Provider name can be any identifier (e.g., 'cognito', 'okta', 'auth0')",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := args[0]
			if provider == "" {
				return fmt.Errorf("provider name cannot be empty")
			}
			if issuer == "" || clientID == "" || redirectURI == "" {
				return fmt.Errorf("required flags: --issuer, --client-id, --redirect-uri (--client-secret is optional for public clients)")
			}
			if err := validation.ValidateURL(issuer); err != nil {
				return fmt.Errorf("invalid --issuer: %w", err)
			}
			if err := validation.ValidateURL(redirectURI); err != nil {
				return fmt.Errorf("invalid --redirect-uri: %w", err)
			}

			db, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			oidcRepo := database.NewOIDCConfigRepository(db)
			ctx := context.Background()

			jwksURL := issuer + "/.well-known/jwks.json"

			existing, err := oidcRepo.GetByProvider(ctx, provider)
			if err == nil && existing != nil {
				existing.Issuer = issuer
				if domain != "" {
					existing.Domain = &domain
				}
				existing.ClientID = clientID
				if clientSecret != "" {
					existing.ClientSecret = &clientSecret
				} else {
					existing.ClientSecret = nil
				}
				existing.RedirectURI = redirectURI
				existing.JWKSUrl = &jwksURL

				if err := oidcRepo.Update(ctx, existing); err != nil {
					return fmt.Errorf("failed to update OIDC config: %w", err)
				}
				fmt.Printf("Updated OIDC configuration for provider: %s\n", provider)
			} else {
				oidcConfig := &models.OIDCConfig{
					ID:          uuid.New(),
					Provider:    provider,
					Issuer:      issuer,
					ClientID:    clientID,
					RedirectURI: redirectURI,
					JWKSUrl:     &jwksURL,
				}
				if domain != "" {
					oidcConfig.Domain = &domain
				}
				if clientSecret != "" {
					oidcConfig.ClientSecret = &clientSecret
				}

				if err := oidcRepo.Create(ctx, oidcConfig); err != nil {
					return fmt.Errorf("failed to create OIDC config: %w", err)
				}
				fmt.Printf("Created OIDC configuration for provider: %s\n", provider)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&issuer, "issuer", "", "OIDC issuer URL (required)")
	cmd.Flags().StringVar(&domain, "domain", "", "OAuth2 domain (optional, e.g., for Cognito custom domains)")
	cmd.Flags().StringVar(&clientID, "client-id", "", "OAuth2 client ID (required)")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "OAuth2 client secret (optional for public clients)")
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "OAuth2 redirect URI (required)")

	return cmd
}
