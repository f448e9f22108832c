package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"gopkg.in/yaml.v3"

	v0 "github.com/siteforge-dev/siteforge/internal/cms/api/handlers/v0"
	"github.com/siteforge-dev/siteforge/internal/cms/api/router"
	"github.com/siteforge-dev/siteforge/internal/cms/generation"
	"github.com/siteforge-dev/siteforge/internal/infra/caching"
	"github.com/siteforge-dev/siteforge/internal/infra/cdn"
	"github.com/siteforge-dev/siteforge/internal/infra/gateway"
	"github.com/siteforge-dev/siteforge/internal/infra/monitoring"
	"github.com/siteforge-dev/siteforge/internal/infra/orchestration"
	"github.com/siteforge-dev/siteforge/internal/infra/security"
	"github.com/siteforge-dev/siteforge/internal/version"
)

func main() {
	outputPath := flag.String("output", "openapi.yaml", "Output path for OpenAPI spec")
	versionOverride := flag.String("version", "", "Override the API version (defaults to version.Version)")
	flag.Parse()

	apiVersion := version.Version
	if *versionOverride != "" {
		apiVersion = *versionOverride
	}

	spec := generateSpec(apiVersion)

	yamlData, err := yaml.Marshal(spec)
	if err != nil {
		log.Fatalf("Failed to marshal OpenAPI spec to YAML: %v", err)
	}

	if err := os.WriteFile(*outputPath, yamlData, 0644); err != nil {
		log.Fatalf("Failed to write OpenAPI spec to %s: %v", *outputPath, err)
	}

	absPath, err := filepath.Abs(*outputPath)
	if err != nil {
		absPath = *outputPath
	}
	fmt.Printf("OpenAPI spec generated: %s\n", absPath)
}

// generateSpec creates a Huma API, registers all routes, and returns the
// OpenAPI spec.
func generateSpec(apiVersion string) *huma.OpenAPI {
	mux := http.NewServeMux()

	humaConfig := huma.DefaultConfig("Siteforge", apiVersion)
	humaConfig.Info.Description = "Siteforge API for managing templates, content, generation sessions and infrastructure providers."
	// Disable $schema property injection in responses
	humaConfig.CreateHooks = []func(huma.Config) huma.Config{}

	api := humago.New(mux, humaConfig)

	// The infra services are cheap value wrappers, so real instances are
	// used; the content service is nil because it is only captured in
	// handler closures and invoked at request time, not during route
	// registration.
	infraServices := v0.InfraServices{
		CDN:           cdn.NewService(cdn.Config{}),
		Security:      security.NewService(security.Config{}),
		Orchestration: orchestration.NewService(orchestration.Config{}),
		Gateway:       gateway.NewService(gateway.Config{}),
		Caching:       caching.NewService(caching.Config{}),
		Monitoring:    monitoring.NewService(monitoring.Config{}),
	}
	versionInfo := &v0.VersionBody{
		Version:   apiVersion,
		GitCommit: version.GitCommit,
		BuildDate: version.BuildDate,
	}

	router.RegisterRoutes(api, nil, infraServices, versionInfo, &router.RouteOptions{
		Pipeline: &generation.Service{},
	})

	return api.OpenAPI()
}
