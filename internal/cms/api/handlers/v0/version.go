package v0

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/siteforge-dev/siteforge/pkg/types"
)

// VersionBody carries build metadata for the running server.
type VersionBody struct {
	Version   string `json:"version" doc:"Server version"`
	GitCommit string `json:"gitCommit" doc:"Git commit the server was built from"`
	BuildDate string `json:"buildDate" doc:"Build timestamp"`
}

// RegisterVersionEndpoint registers the version endpoint.
func RegisterVersionEndpoint(api huma.API, pathPrefix string, versionInfo *VersionBody) {
	huma.Register(api, huma.Operation{
		OperationID: "get-version",
		Method:      http.MethodGet,
		Path:        pathPrefix + "/version",
		Summary:     "Version",
		Description: "Build metadata of the running server",
		Tags:        []string{"version"},
	}, func(_ context.Context, _ *struct{}) (*types.Response[VersionBody], error) {
		return &types.Response[VersionBody]{Body: *versionInfo}, nil
	})
}
