package v0

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/siteforge-dev/siteforge/internal/infra"
	"github.com/siteforge-dev/siteforge/internal/infra/caching"
	"github.com/siteforge-dev/siteforge/internal/infra/cdn"
	"github.com/siteforge-dev/siteforge/internal/infra/gateway"
	"github.com/siteforge-dev/siteforge/internal/infra/monitoring"
	"github.com/siteforge-dev/siteforge/internal/infra/orchestration"
	"github.com/siteforge-dev/siteforge/internal/infra/security"
	"github.com/siteforge-dev/siteforge/pkg/types"
)

// InfraServices bundles the six provider wrapper services exposed to the
// dashboards.
type InfraServices struct {
	CDN           *cdn.Service
	Security      *security.Service
	Orchestration *orchestration.Service
	Gateway       *gateway.Service
	Caching       *caching.Service
	Monitoring    *monitoring.Service
}

// SetupBody reports the outcome of a provider setup call. Configuration
// problems surface as success:false, never as HTTP errors.
type SetupBody struct {
	Success bool   `json:"success" doc:"Whether the provider accepted the configuration"`
	Domain  string `json:"domain" doc:"Infrastructure domain"`
}

func setupResponse(domain string, ok bool) *types.Response[SetupBody] {
	return &types.Response[SetupBody]{Body: SetupBody{Success: ok, Domain: domain}}
}

// RegisterInfraEndpoints registers the dashboard surface of the six
// infrastructure wrapper services.
func RegisterInfraEndpoints(api huma.API, basePath string, services InfraServices) {
	registerCDNEndpoints(api, basePath, services.CDN)
	registerSecurityEndpoints(api, basePath, services.Security)
	registerOrchestrationEndpoints(api, basePath, services.Orchestration)
	registerGatewayEndpoints(api, basePath, services.Gateway)
	registerCachingEndpoints(api, basePath, services.Caching)
	registerMonitoringEndpoints(api, basePath, services.Monitoring)
}

type invalidateInput struct {
	Body struct {
		Paths []string `json:"paths" doc:"Edge paths to purge"`
	}
}

type analyticsInput struct {
	Hours int `query:"hours" default:"24" minimum:"1" maximum:"168" doc:"Trailing window in hours"`
}

func registerCDNEndpoints(api huma.API, basePath string, svc *cdn.Service) {
	prefix := basePath + "/infra/cdn"

	huma.Register(api, huma.Operation{
		OperationID: "setup-cdn",
		Method:      http.MethodPost,
		Path:        prefix + "/setup",
		Summary:     "Configure CDN",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[SetupBody], error) {
		return setupResponse("cdn", svc.Configure(ctx)), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "invalidate-cdn-cache",
		Method:      http.MethodPost,
		Path:        prefix + "/invalidate",
		Summary:     "Invalidate CDN cache paths",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, input *invalidateInput) (*types.Response[SetupBody], error) {
		return setupResponse("cdn", svc.InvalidateCache(ctx, input.Body.Paths)), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-cdn-cache-rules",
		Method:      http.MethodGet,
		Path:        prefix + "/rules",
		Summary:     "CDN cache rules",
		Tags:        []string{"infra"},
	}, func(_ context.Context, _ *struct{}) (*types.Response[[]cdn.CacheRule], error) {
		return &types.Response[[]cdn.CacheRule]{Body: svc.CreateCacheRules()}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-cdn-analytics",
		Method:      http.MethodGet,
		Path:        prefix + "/analytics",
		Summary:     "CDN traffic analytics",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, input *analyticsInput) (*types.Response[[]cdn.AnalyticsPoint], error) {
		window := time.Duration(input.Hours) * time.Hour
		return &types.Response[[]cdn.AnalyticsPoint]{Body: svc.Analytics(ctx, window)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-cdn-metrics",
		Method:      http.MethodGet,
		Path:        prefix + "/metrics",
		Summary:     "CDN metrics snapshot",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[cdn.Metrics], error) {
		return &types.Response[cdn.Metrics]{Body: svc.Metrics(ctx)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-cdn-health",
		Method:      http.MethodGet,
		Path:        prefix + "/health",
		Summary:     "CDN health report",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[infra.HealthReport], error) {
		return &types.Response[infra.HealthReport]{Body: svc.Health(ctx)}, nil
	})
}

func registerSecurityEndpoints(api huma.API, basePath string, svc *security.Service) {
	prefix := basePath + "/infra/security"

	huma.Register(api, huma.Operation{
		OperationID: "setup-security",
		Method:      http.MethodPost,
		Path:        prefix + "/setup",
		Summary:     "Provision security stack",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[SetupBody], error) {
		return setupResponse("security", svc.Setup(ctx)), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-waf-config",
		Method:      http.MethodGet,
		Path:        prefix + "/waf",
		Summary:     "WAF ruleset",
		Tags:        []string{"infra"},
	}, func(_ context.Context, _ *struct{}) (*types.Response[security.WAFConfig], error) {
		return &types.Response[security.WAFConfig]{Body: svc.ConfigureWAF()}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-security-headers",
		Method:      http.MethodGet,
		Path:        prefix + "/headers",
		Summary:     "Security header policy",
		Tags:        []string{"infra"},
	}, func(_ context.Context, _ *struct{}) (*types.Response[security.SecurityHeaders], error) {
		return &types.Response[security.SecurityHeaders]{Body: svc.ConfigureSecurityHeaders()}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-rate-limit-policy",
		Method:      http.MethodGet,
		Path:        prefix + "/rate-limit",
		Summary:     "Rate limit policy",
		Tags:        []string{"infra"},
	}, func(_ context.Context, _ *struct{}) (*types.Response[security.RateLimitPolicy], error) {
		return &types.Response[security.RateLimitPolicy]{Body: svc.ConfigureRateLimiting()}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-ssl-certificates",
		Method:      http.MethodGet,
		Path:        prefix + "/certificates",
		Summary:     "Edge TLS certificates",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[[]security.Certificate], error) {
		return &types.Response[[]security.Certificate]{Body: svc.SSLCertificates(ctx)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-security-incidents",
		Method:      http.MethodGet,
		Path:        prefix + "/incidents",
		Summary:     "Recent security incidents",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[[]security.Incident], error) {
		return &types.Response[[]security.Incident]{Body: svc.Incidents(ctx)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-incident-procedures",
		Method:      http.MethodGet,
		Path:        prefix + "/procedures",
		Summary:     "Incident response runbook",
		Tags:        []string{"infra"},
	}, func(_ context.Context, _ *struct{}) (*types.Response[[]security.Procedure], error) {
		return &types.Response[[]security.Procedure]{Body: svc.IncidentResponseProcedures()}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-security-health",
		Method:      http.MethodGet,
		Path:        prefix + "/health",
		Summary:     "Security health report",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[infra.HealthReport], error) {
		return &types.Response[infra.HealthReport]{Body: svc.Health(ctx)}, nil
	})
}

func registerOrchestrationEndpoints(api huma.API, basePath string, svc *orchestration.Service) {
	prefix := basePath + "/infra/orchestration"

	huma.Register(api, huma.Operation{
		OperationID: "setup-cluster",
		Method:      http.MethodPost,
		Path:        prefix + "/setup",
		Summary:     "Register the cluster",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[SetupBody], error) {
		return setupResponse("orchestration", svc.SetupCluster(ctx)), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-cluster-metrics",
		Method:      http.MethodGet,
		Path:        prefix + "/metrics",
		Summary:     "Cluster metrics snapshot",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[orchestration.ClusterMetrics], error) {
		return &types.Response[orchestration.ClusterMetrics]{Body: svc.ClusterMetrics(ctx)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-cluster-health",
		Method:      http.MethodGet,
		Path:        prefix + "/health",
		Summary:     "Cluster health report",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[infra.HealthReport], error) {
		return &types.Response[infra.HealthReport]{Body: svc.ClusterHealth(ctx)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-autoscale-policy",
		Method:      http.MethodGet,
		Path:        prefix + "/autoscaling",
		Summary:     "Autoscaling policy",
		Tags:        []string{"infra"},
	}, func(_ context.Context, _ *struct{}) (*types.Response[orchestration.AutoscalePolicy], error) {
		return &types.Response[orchestration.AutoscalePolicy]{Body: svc.ConfigureAutoscaling()}, nil
	})
}

func registerGatewayEndpoints(api huma.API, basePath string, svc *gateway.Service) {
	prefix := basePath + "/infra/gateway"

	huma.Register(api, huma.Operation{
		OperationID: "setup-gateway",
		Method:      http.MethodPost,
		Path:        prefix + "/setup",
		Summary:     "Provision the API gateway",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[SetupBody], error) {
		return setupResponse("gateway", svc.Setup(ctx)), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-gateway-documentation",
		Method:      http.MethodGet,
		Path:        prefix + "/documentation",
		Summary:     "Published API catalog",
		Tags:        []string{"infra"},
	}, func(_ context.Context, _ *struct{}) (*types.Response[gateway.Documentation], error) {
		return &types.Response[gateway.Documentation]{Body: svc.CreateAPIDocumentation()}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-gateway-keys",
		Method:      http.MethodGet,
		Path:        prefix + "/keys",
		Summary:     "Issued gateway keys",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[[]gateway.APIKey], error) {
		return &types.Response[[]gateway.APIKey]{Body: svc.APIKeys(ctx)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-gateway-versions",
		Method:      http.MethodGet,
		Path:        prefix + "/versions",
		Summary:     "Published API versions",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[[]gateway.Version], error) {
		return &types.Response[[]gateway.Version]{Body: svc.APIVersions(ctx)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-gateway-metrics",
		Method:      http.MethodGet,
		Path:        prefix + "/metrics",
		Summary:     "Gateway traffic snapshot",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[gateway.Metrics], error) {
		return &types.Response[gateway.Metrics]{Body: svc.Metrics(ctx)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-gateway-health",
		Method:      http.MethodGet,
		Path:        prefix + "/health",
		Summary:     "Gateway health report",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[infra.HealthReport], error) {
		return &types.Response[infra.HealthReport]{Body: svc.Health(ctx)}, nil
	})
}

func registerCachingEndpoints(api huma.API, basePath string, svc *caching.Service) {
	prefix := basePath + "/infra/caching"

	huma.Register(api, huma.Operation{
		OperationID: "setup-caching",
		Method:      http.MethodPost,
		Path:        prefix + "/setup",
		Summary:     "Apply the caching strategy",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[SetupBody], error) {
		return setupResponse("caching", svc.Implement(ctx)), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-eviction-policy",
		Method:      http.MethodGet,
		Path:        prefix + "/policy",
		Summary:     "Cache eviction policy",
		Tags:        []string{"infra"},
	}, func(_ context.Context, _ *struct{}) (*types.Response[caching.EvictionPolicy], error) {
		return &types.Response[caching.EvictionPolicy]{Body: svc.CreateEvictionPolicy()}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-cache-metrics",
		Method:      http.MethodGet,
		Path:        prefix + "/metrics",
		Summary:     "Cache tier snapshot",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[caching.Metrics], error) {
		return &types.Response[caching.Metrics]{Body: svc.Metrics(ctx)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-cache-health",
		Method:      http.MethodGet,
		Path:        prefix + "/health",
		Summary:     "Cache health report",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[infra.HealthReport], error) {
		return &types.Response[infra.HealthReport]{Body: svc.Health(ctx)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-cache-recommendations",
		Method:      http.MethodGet,
		Path:        prefix + "/recommendations",
		Summary:     "Cache tuning recommendations",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[[]caching.Recommendation], error) {
		return &types.Response[[]caching.Recommendation]{Body: svc.Recommendations(ctx)}, nil
	})
}

func registerMonitoringEndpoints(api huma.API, basePath string, svc *monitoring.Service) {
	prefix := basePath + "/infra/monitoring"

	huma.Register(api, huma.Operation{
		OperationID: "setup-monitoring",
		Method:      http.MethodPost,
		Path:        prefix + "/setup",
		Summary:     "Register with the monitoring backend",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[SetupBody], error) {
		return setupResponse("monitoring", svc.Setup(ctx)), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-performance-metrics",
		Method:      http.MethodGet,
		Path:        prefix + "/metrics",
		Summary:     "Application performance snapshot",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[monitoring.PerformanceMetrics], error) {
		return &types.Response[monitoring.PerformanceMetrics]{Body: svc.PerformanceMetrics(ctx)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-monitoring-dashboards",
		Method:      http.MethodGet,
		Path:        prefix + "/dashboards",
		Summary:     "Provisioned dashboards",
		Tags:        []string{"infra"},
	}, func(_ context.Context, _ *struct{}) (*types.Response[[]monitoring.Dashboard], error) {
		return &types.Response[[]monitoring.Dashboard]{Body: svc.CreateDashboards()}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-alert-rules",
		Method:      http.MethodGet,
		Path:        prefix + "/alerts",
		Summary:     "Configured alert rules",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[[]monitoring.AlertRule], error) {
		return &types.Response[[]monitoring.AlertRule]{Body: svc.AlertRules(ctx)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-monitoring-health",
		Method:      http.MethodGet,
		Path:        prefix + "/health",
		Summary:     "Monitoring health report",
		Tags:        []string{"infra"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[infra.HealthReport], error) {
		return &types.Response[infra.HealthReport]{Body: svc.Health(ctx)}, nil
	})
}
