package service

import (
	"context"

	"github.com/siteforge-dev/siteforge/internal/cms/database"
	"github.com/siteforge-dev/siteforge/pkg/models"
)

// ContentService defines the interface for content store operations. Every
// operation is scoped to one tenant except ApplyDueSchedules, which sweeps
// all tenants.
type ContentService interface {
	// Templates
	ListTemplates(ctx context.Context, tenantID string, filter *database.TemplateFilter, cursor string, limit int) ([]*models.ContentTemplate, string, error)
	GetTemplate(ctx context.Context, tenantID, id string) (*models.ContentTemplate, error)
	CreateTemplate(ctx context.Context, tenantID string, in *models.CreateTemplateInput) (*models.ContentTemplate, error)

	// Content items
	ListContent(ctx context.Context, tenantID string, filter *database.ContentFilter, cursor string, limit int) ([]*models.ContentItem, string, error)
	GetContent(ctx context.Context, tenantID, id string) (*models.ContentItem, error)
	GetContentBySlug(ctx context.Context, tenantID, slug string) (*models.ContentItem, error)
	// CreateContent creates a draft item with its initial version.
	CreateContent(ctx context.Context, tenantID string, in *models.CreateContentInput) (*models.ContentItem, error)
	// UpdateContent applies a partial update; a body change records a new
	// immutable version and bumps the item's current version.
	UpdateContent(ctx context.Context, tenantID, id string, in *models.UpdateContentInput) (*models.ContentItem, error)
	ListVersions(ctx context.Context, tenantID, contentID string) ([]*models.ContentVersion, error)

	// Generation sessions
	CreateSession(ctx context.Context, tenantID, templateID, prompt string) (*models.GenerationSession, error)
	UpdateSession(ctx context.Context, session *models.GenerationSession) error
	GetSession(ctx context.Context, tenantID, id string) (*models.GenerationSession, error)
	ListSessions(ctx context.Context, tenantID string, limit int) ([]*models.GenerationSession, error)

	// Publish schedules
	CreateSchedule(ctx context.Context, tenantID string, in *models.CreateScheduleInput) (*models.PublishSchedule, error)
	ListSchedules(ctx context.Context, tenantID string, limit int) ([]*models.PublishSchedule, error)
	// ApplyDueSchedules transitions every due content item and marks the
	// schedule done. Returns the number of applied transitions.
	ApplyDueSchedules(ctx context.Context) (int, error)
}
