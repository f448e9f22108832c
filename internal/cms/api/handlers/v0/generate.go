package v0

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/siteforge-dev/siteforge/internal/cms/generation"
	"github.com/siteforge-dev/siteforge/internal/cms/metrics"
	"github.com/siteforge-dev/siteforge/internal/cms/service"
	"github.com/siteforge-dev/siteforge/pkg/models"
)

type GenerateRequest struct {
	Body models.GenerateInput
}

type SessionByIDInput struct {
	SessionID string `path:"sessionId" json:"sessionId" doc:"Generation session ID"`
}

type SessionListInput struct {
	Limit int `query:"limit" default:"30" minimum:"1" maximum:"100" doc:"Page size"`
}

type SessionResponse struct {
	Body models.GenerationSession
}

type SessionsListResponse struct {
	Body struct {
		Sessions []models.GenerationSession `json:"sessions"`
		Count    int                        `json:"count"`
	}
}

// RegisterGenerationEndpoints registers the generation pipeline and session
// history endpoints.
func RegisterGenerationEndpoints(api huma.API, basePath string, content service.ContentService, pipeline *generation.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "generate-content",
		Method:      http.MethodPost,
		Path:        basePath + "/generate",
		Summary:     "Generate content",
		Description: "Run the generation pipeline. A provider failure is recorded on the returned session, not surfaced as an HTTP error.",
		Tags:        []string{"generation"},
	}, func(ctx context.Context, input *GenerateRequest) (*SessionResponse, error) {
		session, err := pipeline.Run(ctx, requestTenant(ctx), &input.Body)
		if session != nil {
			metrics.CountSession(string(session.State))
			return &SessionResponse{Body: *session}, nil
		}
		return nil, mapStoreError(err, "generation session")
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-generation-session",
		Method:      http.MethodGet,
		Path:        basePath + "/sessions/{sessionId}",
		Summary:     "Get generation session",
		Tags:        []string{"generation"},
	}, func(ctx context.Context, input *SessionByIDInput) (*SessionResponse, error) {
		session, err := content.GetSession(ctx, requestTenant(ctx), input.SessionID)
		if err != nil {
			return nil, mapStoreError(err, "generation session")
		}
		return &SessionResponse{Body: *session}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-generation-sessions",
		Method:      http.MethodGet,
		Path:        basePath + "/sessions",
		Summary:     "List generation sessions",
		Tags:        []string{"generation"},
	}, func(ctx context.Context, input *SessionListInput) (*SessionsListResponse, error) {
		sessions, err := content.ListSessions(ctx, requestTenant(ctx), input.Limit)
		if err != nil {
			return nil, mapStoreError(err, "generation session")
		}
		resp := &SessionsListResponse{}
		resp.Body.Sessions = make([]models.GenerationSession, 0, len(sessions))
		for _, s := range sessions {
			resp.Body.Sessions = append(resp.Body.Sessions, *s)
		}
		resp.Body.Count = len(resp.Body.Sessions)
		return resp, nil
	})
}
