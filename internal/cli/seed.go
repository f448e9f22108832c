package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	v0 "github.com/siteforge-dev/siteforge/internal/cms/api/handlers/v0"
	"github.com/siteforge-dev/siteforge/internal/cms/config"
	"github.com/siteforge-dev/siteforge/internal/cms/database"
	"github.com/siteforge-dev/siteforge/internal/cms/logging"
	"github.com/siteforge-dev/siteforge/internal/cms/seed"
	"github.com/siteforge-dev/siteforge/internal/cms/service"
)

var seedTenant string

var SeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Import the built-in content templates",
	Long:  `Imports the built-in content templates for a tenant. Existing templates are left untouched.`,
	RunE:  runSeed,
}

func init() {
	SeedCmd.Flags().StringVar(&seedTenant, "tenant", v0.DefaultTenant, "tenant to seed")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	db, err := database.NewPostgreSQL(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	content := service.NewContentService(db)
	if err := seed.ImportBuiltinTemplates(ctx, content, seedTenant, logging.NewLogger("seed")); err != nil {
		return err
	}

	fmt.Printf("Seeded built-in templates for tenant %q\n", seedTenant)
	return nil
}
