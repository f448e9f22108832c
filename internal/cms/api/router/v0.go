// Package router contains API routing logic
package router

import (
	"github.com/danielgtaylor/huma/v2"

	v0 "github.com/siteforge-dev/siteforge/internal/cms/api/handlers/v0"
	"github.com/siteforge-dev/siteforge/internal/cms/generation"
	"github.com/siteforge-dev/siteforge/internal/cms/service"
)

// RouteOptions contains optional services for route registration.
type RouteOptions struct {
	// Pipeline enables the generation endpoints when set.
	Pipeline *generation.Service

	// ExtraRoutes allows integration-owned route registration.
	ExtraRoutes func(api huma.API, pathPrefix string)
}

// RegisterRoutes registers all API routes under /v0.
func RegisterRoutes(
	api huma.API,
	content service.ContentService,
	infraServices v0.InfraServices,
	versionInfo *v0.VersionBody,
	opts *RouteOptions,
) {
	pathPrefix := "/v0"

	v0.RegisterPingEndpoint(api, pathPrefix)
	v0.RegisterHealthEndpoint(api, pathPrefix, infraServices)
	v0.RegisterVersionEndpoint(api, pathPrefix, versionInfo)
	v0.RegisterTemplatesEndpoints(api, pathPrefix, content)
	v0.RegisterContentEndpoints(api, pathPrefix, content)
	v0.RegisterSchedulesEndpoints(api, pathPrefix, content)
	v0.RegisterInfraEndpoints(api, pathPrefix, infraServices)

	if opts != nil && opts.Pipeline != nil {
		v0.RegisterGenerationEndpoints(api, pathPrefix, content, opts.Pipeline)
	}
	if opts != nil && opts.ExtraRoutes != nil {
		opts.ExtraRoutes(api, pathPrefix)
	}
}
