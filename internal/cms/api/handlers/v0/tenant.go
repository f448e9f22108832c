package v0

import (
	"context"

	"github.com/siteforge-dev/siteforge/internal/cms/auth"
)

// DefaultTenant is the tenant used for anonymous requests when token
// verification is disabled.
const DefaultTenant = "default"

// requestTenant resolves the tenant the request operates on. Anonymous
// requests fall back to the default tenant.
func requestTenant(ctx context.Context) string {
	if tenantID, ok := auth.TenantFrom(ctx); ok {
		return tenantID
	}
	return DefaultTenant
}
