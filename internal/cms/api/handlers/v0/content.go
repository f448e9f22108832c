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

type ContentListInput struct {
	Status     string `query:"status" json:"status,omitempty" doc:"Filter by lifecycle status (draft, review, published, archived)"`
	TemplateID string `query:"templateId" json:"templateId,omitempty" doc:"Filter by source template"`
	Search     string `query:"search" json:"search,omitempty" doc:"Substring match on title"`
	Cursor     string `query:"cursor" json:"cursor,omitempty" doc:"Pagination cursor"`
	Limit      int    `query:"limit" default:"30" minimum:"1" maximum:"100" doc:"Page size"`
}

type ContentByIDInput struct {
	ContentID string `path:"contentId" json:"contentId" doc:"Content item ID"`
}

type ContentBySlugInput struct {
	Slug string `path:"slug" json:"slug" doc:"Content item slug"`
}

type CreateContentRequest struct {
	Body models.CreateContentInput
}

type UpdateContentRequest struct {
	ContentID string `path:"contentId" json:"contentId" doc:"Content item ID"`
	Body      models.UpdateContentInput
}

type ContentListResponse struct {
	Body struct {
		Content    []models.ContentItem `json:"content"`
		NextCursor string               `json:"nextCursor,omitempty"`
		Count      int                  `json:"count"`
	}
}

type ContentResponse struct {
	Body models.ContentItem
}

type VersionsListResponse struct {
	Body struct {
		Versions []models.ContentVersion `json:"versions"`
		Count    int                     `json:"count"`
	}
}

// RegisterContentEndpoints registers content item CRUD and version history
// endpoints.
func RegisterContentEndpoints(api huma.API, basePath string, content service.ContentService) {
	huma.Register(api, huma.Operation{
		OperationID: "list-content",
		Method:      http.MethodGet,
		Path:        basePath + "/content",
		Summary:     "List content",
		Description: "List content items for the request tenant.",
		Tags:        []string{"content"},
	}, func(ctx context.Context, input *ContentListInput) (*ContentListResponse, error) {
		filter := &database.ContentFilter{}
		if s := strings.TrimSpace(input.Status); s != "" {
			status := models.ContentStatus(s)
			if !status.Valid() {
				return nil, huma.Error400BadRequest("Unknown content status: " + s)
			}
			filter.Status = &status
		}
		if tid := strings.TrimSpace(input.TemplateID); tid != "" {
			filter.TemplateID = &tid
		}
		if s := strings.TrimSpace(input.Search); s != "" {
			filter.SubstringName = &s
		}

		items, next, err := content.ListContent(ctx, requestTenant(ctx), filter, input.Cursor, input.Limit)
		if err != nil {
			return nil, mapStoreError(err, "content")
		}

		resp := &ContentListResponse{}
		resp.Body.Content = make([]models.ContentItem, 0, len(items))
		for _, item := range items {
			resp.Body.Content = append(resp.Body.Content, *item)
		}
		resp.Body.NextCursor = next
		resp.Body.Count = len(resp.Body.Content)
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "create-content",
		Method:      http.MethodPost,
		Path:        basePath + "/content",
		Summary:     "Create content",
		Description: "Create a draft content item with its initial version.",
		Tags:        []string{"content"},
	}, func(ctx context.Context, input *CreateContentRequest) (*ContentResponse, error) {
		item, err := content.CreateContent(ctx, requestTenant(ctx), &input.Body)
		if err != nil {
			return nil, mapStoreError(err, "content")
		}
		return &ContentResponse{Body: *item}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-content",
		Method:      http.MethodGet,
		Path:        basePath + "/content/{contentId}",
		Summary:     "Get content",
		Tags:        []string{"content"},
	}, func(ctx context.Context, input *ContentByIDInput) (*ContentResponse, error) {
		item, err := content.GetContent(ctx, requestTenant(ctx), input.ContentID)
		if err != nil {
			return nil, mapStoreError(err, "content")
		}
		return &ContentResponse{Body: *item}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-content-by-slug",
		Method:      http.MethodGet,
		Path:        basePath + "/content/slug/{slug}",
		Summary:     "Get content by slug",
		Tags:        []string{"content"},
	}, func(ctx context.Context, input *ContentBySlugInput) (*ContentResponse, error) {
		item, err := content.GetContentBySlug(ctx, requestTenant(ctx), input.Slug)
		if err != nil {
			return nil, mapStoreError(err, "content")
		}
		return &ContentResponse{Body: *item}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-content",
		Method:      http.MethodPut,
		Path:        basePath + "/content/{contentId}",
		Summary:     "Update content",
		Description: "Apply a partial update. A body change records a new immutable version.",
		Tags:        []string{"content"},
	}, func(ctx context.Context, input *UpdateContentRequest) (*ContentResponse, error) {
		if input.Body.Status != nil && !input.Body.Status.Valid() {
			return nil, huma.Error400BadRequest("Unknown content status: " + string(*input.Body.Status))
		}
		item, err := content.UpdateContent(ctx, requestTenant(ctx), input.ContentID, &input.Body)
		if err != nil {
			return nil, mapStoreError(err, "content")
		}
		return &ContentResponse{Body: *item}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-content-versions",
		Method:      http.MethodGet,
		Path:        basePath + "/content/{contentId}/versions",
		Summary:     "List content versions",
		Description: "List the immutable version history of a content item.",
		Tags:        []string{"content"},
	}, func(ctx context.Context, input *ContentByIDInput) (*VersionsListResponse, error) {
		versions, err := content.ListVersions(ctx, requestTenant(ctx), input.ContentID)
		if err != nil {
			return nil, mapStoreError(err, "content")
		}
		resp := &VersionsListResponse{}
		resp.Body.Versions = make([]models.ContentVersion, 0, len(versions))
		for _, v := range versions {
			resp.Body.Versions = append(resp.Body.Versions, *v)
		}
		resp.Body.Count = len(resp.Body.Versions)
		return resp, nil
	})
}
