package v0

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/siteforge-dev/siteforge/internal/cms/database"
	"github.com/siteforge-dev/siteforge/internal/cms/service"
	"github.com/siteforge-dev/siteforge/pkg/models"
)

type TemplateListInput struct {
	Category string `query:"category" json:"category,omitempty" doc:"Filter templates by category"`
	Search   string `query:"search" json:"search,omitempty" doc:"Substring match on template name"`
	Cursor   string `query:"cursor" json:"cursor,omitempty" doc:"Pagination cursor"`
	Limit    int    `query:"limit" default:"30" minimum:"1" maximum:"100" doc:"Page size"`
}

type TemplateByIDInput struct {
	TemplateID string `path:"templateId" json:"templateId" doc:"Template ID"`
}

type CreateTemplateRequest struct {
	Body models.CreateTemplateInput
}

type TemplatesListResponse struct {
	Body struct {
		Templates  []models.ContentTemplate `json:"templates"`
		NextCursor string                   `json:"nextCursor,omitempty"`
		Count      int                      `json:"count"`
	}
}

type TemplateResponse struct {
	Body models.ContentTemplate
}

// RegisterTemplatesEndpoints registers content template CRUD endpoints.
func RegisterTemplatesEndpoints(api huma.API, basePath string, content service.ContentService) {
	huma.Register(api, huma.Operation{
		OperationID: "list-templates",
		Method:      http.MethodGet,
		Path:        basePath + "/templates",
		Summary:     "List templates",
		Description: "List content templates for the request tenant.",
		Tags:        []string{"templates"},
	}, func(ctx context.Context, input *TemplateListInput) (*TemplatesListResponse, error) {
		filter := &database.TemplateFilter{}
		if c := strings.TrimSpace(input.Category); c != "" {
			filter.Category = &c
		}
		if s := strings.TrimSpace(input.Search); s != "" {
			filter.SubstringName = &s
		}

		templates, next, err := content.ListTemplates(ctx, requestTenant(ctx), filter, input.Cursor, input.Limit)
		if err != nil {
			return nil, mapStoreError(err, "template")
		}

		resp := &TemplatesListResponse{}
		resp.Body.Templates = make([]models.ContentTemplate, 0, len(templates))
		for _, t := range templates {
			resp.Body.Templates = append(resp.Body.Templates, *t)
		}
		resp.Body.NextCursor = next
		resp.Body.Count = len(resp.Body.Templates)
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "create-template",
		Method:      http.MethodPost,
		Path:        basePath + "/templates",
		Summary:     "Create template",
		Description: "Create a content template. The slug is derived from the name.",
		Tags:        []string{"templates"},
	}, func(ctx context.Context, input *CreateTemplateRequest) (*TemplateResponse, error) {
		template, err := content.CreateTemplate(ctx, requestTenant(ctx), &input.Body)
		if err != nil {
			return nil, mapStoreError(err, "template")
		}
		return &TemplateResponse{Body: *template}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-template",
		Method:      http.MethodGet,
		Path:        basePath + "/templates/{templateId}",
		Summary:     "Get template",
		Tags:        []string{"templates"},
	}, func(ctx context.Context, input *TemplateByIDInput) (*TemplateResponse, error) {
		template, err := content.GetTemplate(ctx, requestTenant(ctx), input.TemplateID)
		if err != nil {
			return nil, mapStoreError(err, "template")
		}
		return &TemplateResponse{Body: *template}, nil
	})
}
