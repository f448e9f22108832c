package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/siteforge-dev/siteforge/internal/cms/auth"
	"github.com/siteforge-dev/siteforge/internal/cms/config"
)

var (
	tokenTenant string
	tokenRole   string
	tokenTTL    time.Duration
)

var TokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a tenant API token",
	Long:  `Issues a signed API token scoped to one tenant, using the configured JWT secret.`,
	RunE:  runToken,
}

func init() {
	TokenCmd.Flags().StringVar(&tokenTenant, "tenant", "", "tenant the token is scoped to (required)")
	TokenCmd.Flags().StringVar(&tokenRole, "role", "editor", "role claim")
	TokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
	_ = TokenCmd.MarkFlagRequired("tenant")
}

func runToken(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	manager := auth.NewManager(cfg.JWTSecret)
	if !manager.Enabled() {
		return fmt.Errorf("SITEFORGE_JWT_SECRET is not set")
	}

	token, err := manager.Issue(tokenTenant, tokenRole, tokenTTL)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
