package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/siteforge-dev/siteforge/internal/cms/api"
	v0 "github.com/siteforge-dev/siteforge/internal/cms/api/handlers/v0"
	"github.com/siteforge-dev/siteforge/internal/cms/auth"
	"github.com/siteforge-dev/siteforge/internal/cms/config"
	"github.com/siteforge-dev/siteforge/internal/cms/database"
	"github.com/siteforge-dev/siteforge/internal/cms/generation"
	"github.com/siteforge-dev/siteforge/internal/cms/logging"
	"github.com/siteforge-dev/siteforge/internal/cms/seed"
	"github.com/siteforge-dev/siteforge/internal/cms/service"
	"github.com/siteforge-dev/siteforge/internal/cms/telemetry"
	"github.com/siteforge-dev/siteforge/internal/infra/caching"
	"github.com/siteforge-dev/siteforge/internal/infra/cdn"
	"github.com/siteforge-dev/siteforge/internal/infra/gateway"
	"github.com/siteforge-dev/siteforge/internal/infra/monitoring"
	"github.com/siteforge-dev/siteforge/internal/infra/orchestration"
	"github.com/siteforge-dev/siteforge/internal/infra/security"
)

// scheduleSweepInterval is how often due publish transitions are applied.
const scheduleSweepInterval = time.Minute

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API server",
	Long:  `Starts the CMS API server, the publish schedule sweeper and, when configured, the template directory watcher.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewLogger("serve")
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics, err := telemetry.New()
	if err != nil {
		return err
	}
	defer func() { _ = metrics.Shutdown(context.Background()) }()

	db, err := database.NewPostgreSQL(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	content := service.NewContentService(db)
	tokens := auth.NewManager(cfg.JWTSecret)
	pipeline := generation.NewService(content, providerFromConfig(cfg), logging.NewLogger("generation"))

	if cfg.SeedBuiltins {
		if err := seed.ImportBuiltinTemplates(ctx, content, v0.DefaultTenant, logging.NewLogger("seed")); err != nil {
			return err
		}
	}
	if cfg.TemplateDir != "" {
		watcher := seed.NewWatcher(content, v0.DefaultTenant, cfg.TemplateDir, logging.NewLogger("seed"))
		go func() {
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("template watcher stopped", zap.Error(err))
			}
		}()
	}

	go sweepSchedules(ctx, content, metrics, logger)

	server := api.NewServer(cfg, content, infraServicesFromConfig(cfg), pipeline, tokens)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// sweepSchedules applies due publish transitions until the context ends.
func sweepSchedules(ctx context.Context, content service.ContentService, metrics *telemetry.Metrics, logger *zap.Logger) {
	ticker := time.NewTicker(scheduleSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			applied, err := content.ApplyDueSchedules(ctx)
			if err != nil {
				logger.Warn("schedule sweep failed", zap.Error(err))
				continue
			}
			metrics.ScheduleSweeps.Add(ctx, 1)
			if applied > 0 {
				metrics.ScheduleApplied.Add(ctx, int64(applied))
				logger.Info("applied due schedules", zap.Int("applied", applied))
			}
		}
	}
}

func infraServicesFromConfig(cfg *config.Config) v0.InfraServices {
	return v0.InfraServices{
		CDN: cdn.NewService(cdn.Config{
			Provider:       cdn.Provider(cfg.CDN.Provider),
			Region:         cfg.CDN.Region,
			ZoneID:         cfg.CDN.ZoneID,
			APIToken:       cfg.CDN.APIToken,
			DistributionID: cfg.CDN.DistributionID,
			Endpoint:       cfg.CDN.Endpoint,
		}),
		Security: security.NewService(security.Config{
			Provider:       security.Provider(cfg.Security.Provider),
			Region:         cfg.Security.Region,
			ZoneID:         cfg.Security.ZoneID,
			APIToken:       cfg.Security.APIToken,
			WebACLID:       cfg.Security.WebACLID,
			PolicyName:     cfg.Security.PolicyName,
			SubscriptionID: cfg.Security.SubscriptionID,
			Endpoint:       cfg.Security.Endpoint,
		}),
		Orchestration: orchestration.NewService(orchestration.Config{
			Provider:    orchestration.Provider(cfg.Orchestration.Provider),
			ClusterName: cfg.Orchestration.ClusterName,
			Endpoint:    cfg.Orchestration.Endpoint,
			Namespace:   cfg.Orchestration.Namespace,
			Token:       cfg.Orchestration.Token,
		}),
		Gateway: gateway.NewService(gateway.Config{
			Provider: gateway.Provider(cfg.Gateway.Provider),
			APIID:    cfg.Gateway.APIID,
			Region:   cfg.Gateway.Region,
			Stage:    cfg.Gateway.Stage,
			Endpoint: cfg.Gateway.Endpoint,
		}),
		Caching: caching.NewService(caching.Config{
			Provider:  caching.Provider(cfg.Caching.Provider),
			Endpoint:  cfg.Caching.Endpoint,
			ClusterID: cfg.Caching.ClusterID,
			Region:    cfg.Caching.Region,
			AuthToken: cfg.Caching.AuthToken,
		}),
		Monitoring: monitoring.NewService(monitoring.Config{
			Provider: monitoring.Provider(cfg.Monitoring.Provider),
			Endpoint: cfg.Monitoring.Endpoint,
			APIKey:   cfg.Monitoring.APIKey,
			AppName:  cfg.Monitoring.AppName,
		}),
	}
}

func providerFromConfig(cfg *config.Config) generation.AIProvider {
	if cfg.Generation.Provider == "" {
		return nil
	}
	return generation.NewTemplateFiller(cfg.Generation.Model)
}
