package v0

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/siteforge-dev/siteforge/internal/cms/service"
	"github.com/siteforge-dev/siteforge/pkg/models"
)

type CreateScheduleRequest struct {
	Body models.CreateScheduleInput
}

type ScheduleListInput struct {
	Limit int `query:"limit" default:"30" minimum:"1" maximum:"100" doc:"Page size"`
}

type ScheduleResponse struct {
	Body models.PublishSchedule
}

type SchedulesListResponse struct {
	Body struct {
		Schedules []models.PublishSchedule `json:"schedules"`
		Count     int                      `json:"count"`
	}
}

type ApplySchedulesResponse struct {
	Body struct {
		Applied int `json:"applied" doc:"Number of transitions applied"`
	}
}

// RegisterSchedulesEndpoints registers publish schedule endpoints.
func RegisterSchedulesEndpoints(api huma.API, basePath string, content service.ContentService) {
	huma.Register(api, huma.Operation{
		OperationID: "create-schedule",
		Method:      http.MethodPost,
		Path:        basePath + "/schedules",
		Summary:     "Schedule a publish transition",
		Description: "Schedule a future status transition for a content item.",
		Tags:        []string{"schedules"},
	}, func(ctx context.Context, input *CreateScheduleRequest) (*ScheduleResponse, error) {
		schedule, err := content.CreateSchedule(ctx, requestTenant(ctx), &input.Body)
		if err != nil {
			return nil, mapStoreError(err, "schedule")
		}
		return &ScheduleResponse{Body: *schedule}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-schedules",
		Method:      http.MethodGet,
		Path:        basePath + "/schedules",
		Summary:     "List schedules",
		Tags:        []string{"schedules"},
	}, func(ctx context.Context, input *ScheduleListInput) (*SchedulesListResponse, error) {
		schedules, err := content.ListSchedules(ctx, requestTenant(ctx), input.Limit)
		if err != nil {
			return nil, mapStoreError(err, "schedule")
		}
		resp := &SchedulesListResponse{}
		resp.Body.Schedules = make([]models.PublishSchedule, 0, len(schedules))
		for _, s := range schedules {
			resp.Body.Schedules = append(resp.Body.Schedules, *s)
		}
		resp.Body.Count = len(resp.Body.Schedules)
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "apply-due-schedules",
		Method:      http.MethodPost,
		Path:        basePath + "/schedules/apply",
		Summary:     "Apply due schedules",
		Description: "Apply every due transition across all tenants. Normally driven by the background sweeper; exposed for operators.",
		Tags:        []string{"schedules"},
	}, func(ctx context.Context, _ *struct{}) (*ApplySchedulesResponse, error) {
		applied, err := content.ApplyDueSchedules(ctx)
		if err != nil {
			return nil, mapStoreError(err, "schedule")
		}
		resp := &ApplySchedulesResponse{}
		resp.Body.Applied = applied
		return resp, nil
	})
}
