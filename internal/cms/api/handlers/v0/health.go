package v0

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/siteforge-dev/siteforge/internal/infra"
	"github.com/siteforge-dev/siteforge/pkg/types"
)

// HealthBody is the aggregated health of the platform: the worst status
// across every infrastructure domain, with the per-domain reports attached.
type HealthBody struct {
	Status  infra.HealthStatus            `json:"status" doc:"Worst status across all domains"`
	Domains map[string]infra.HealthReport `json:"domains" doc:"Per-domain health reports"`
}

// RegisterHealthEndpoint registers the aggregated health endpoint.
func RegisterHealthEndpoint(api huma.API, pathPrefix string, services InfraServices) {
	huma.Register(api, huma.Operation{
		OperationID: "get-health",
		Method:      http.MethodGet,
		Path:        pathPrefix + "/health",
		Summary:     "Platform health",
		Description: "Aggregated health across the infrastructure domains",
		Tags:        []string{"health"},
	}, func(ctx context.Context, _ *struct{}) (*types.Response[HealthBody], error) {
		domains := map[string]infra.HealthReport{
			"cdn":           services.CDN.Health(ctx),
			"security":      services.Security.Health(ctx),
			"orchestration": services.Orchestration.ClusterHealth(ctx),
			"gateway":       services.Gateway.Health(ctx),
			"caching":       services.Caching.Health(ctx),
			"monitoring":    services.Monitoring.Health(ctx),
		}

		status := infra.HealthHealthy
		for _, report := range domains {
			switch report.Status {
			case infra.HealthCritical:
				status = infra.HealthCritical
			case infra.HealthWarning:
				if status == infra.HealthHealthy {
					status = infra.HealthWarning
				}
			}
		}

		return &types.Response[HealthBody]{Body: HealthBody{
			Status:  status,
			Domains: domains,
		}}, nil
	})
}
