// Package testing provides test utilities for the content service.
package testing

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/siteforge-dev/siteforge/internal/cms/database"
	"github.com/siteforge-dev/siteforge/internal/cms/service"
	"github.com/siteforge-dev/siteforge/pkg/models"
)

// FakeContent is a configurable in-memory implementation of
// service.ContentService for testing. It supports both data-driven setup via
// struct fields and function hooks for custom behavior.
type FakeContent struct {
	mu sync.Mutex

	// Data fields for simple data-driven tests
	Templates []*models.ContentTemplate
	Items     []*models.ContentItem
	Versions  []*models.ContentVersion
	Sessions  []*models.GenerationSession
	Schedules []*models.PublishSchedule

	// Call counters for verification
	CreateSessionCalls int
	UpdateSessionCalls int

	// Function hooks for custom behavior (take precedence over the
	// in-memory implementation when set)
	ListTemplatesFn     func(ctx context.Context, tenantID string, filter *database.TemplateFilter, cursor string, limit int) ([]*models.ContentTemplate, string, error)
	GetTemplateFn       func(ctx context.Context, tenantID, id string) (*models.ContentTemplate, error)
	CreateTemplateFn    func(ctx context.Context, tenantID string, in *models.CreateTemplateInput) (*models.ContentTemplate, error)
	ListContentFn       func(ctx context.Context, tenantID string, filter *database.ContentFilter, cursor string, limit int) ([]*models.ContentItem, string, error)
	GetContentFn        func(ctx context.Context, tenantID, id string) (*models.ContentItem, error)
	GetContentBySlugFn  func(ctx context.Context, tenantID, slug string) (*models.ContentItem, error)
	CreateContentFn     func(ctx context.Context, tenantID string, in *models.CreateContentInput) (*models.ContentItem, error)
	UpdateContentFn     func(ctx context.Context, tenantID, id string, in *models.UpdateContentInput) (*models.ContentItem, error)
	ListVersionsFn      func(ctx context.Context, tenantID, contentID string) ([]*models.ContentVersion, error)
	CreateSessionFn     func(ctx context.Context, tenantID, templateID, prompt string) (*models.GenerationSession, error)
	UpdateSessionFn     func(ctx context.Context, session *models.GenerationSession) error
	GetSessionFn        func(ctx context.Context, tenantID, id string) (*models.GenerationSession, error)
	ListSessionsFn      func(ctx context.Context, tenantID string, limit int) ([]*models.GenerationSession, error)
	CreateScheduleFn    func(ctx context.Context, tenantID string, in *models.CreateScheduleInput) (*models.PublishSchedule, error)
	ListSchedulesFn     func(ctx context.Context, tenantID string, limit int) ([]*models.PublishSchedule, error)
	ApplyDueSchedulesFn func(ctx context.Context) (int, error)
}

// NewFakeContent creates an empty FakeContent.
func NewFakeContent() *FakeContent {
	return &FakeContent{}
}

var _ service.ContentService = (*FakeContent)(nil)

func (f *FakeContent) ListTemplates(ctx context.Context, tenantID string, filter *database.TemplateFilter, cursor string, limit int) ([]*models.ContentTemplate, string, error) {
	if f.ListTemplatesFn != nil {
		return f.ListTemplatesFn(ctx, tenantID, filter, cursor, limit)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.ContentTemplate, 0)
	for _, t := range f.Templates {
		if t.TenantID != tenantID {
			continue
		}
		if filter != nil && filter.Category != nil && t.Category != *filter.Category {
			continue
		}
		out = append(out, t)
	}
	return out, "", nil
}

func (f *FakeContent) GetTemplate(ctx context.Context, tenantID, id string) (*models.ContentTemplate, error) {
	if f.GetTemplateFn != nil {
		return f.GetTemplateFn(ctx, tenantID, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.Templates {
		if t.TenantID == tenantID && t.ID == id {
			return t, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *FakeContent) CreateTemplate(ctx context.Context, tenantID string, in *models.CreateTemplateInput) (*models.ContentTemplate, error) {
	if f.CreateTemplateFn != nil {
		return f.CreateTemplateFn(ctx, tenantID, in)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now().UTC()
	t := &models.ContentTemplate{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		Name:      in.Name,
		Slug:      service.Slugify(in.Name),
		Category:  in.Category,
		Structure: in.Structure,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.Templates = append(f.Templates, t)
	return t, nil
}

func (f *FakeContent) ListContent(ctx context.Context, tenantID string, filter *database.ContentFilter, cursor string, limit int) ([]*models.ContentItem, string, error) {
	if f.ListContentFn != nil {
		return f.ListContentFn(ctx, tenantID, filter, cursor, limit)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.ContentItem, 0)
	for _, item := range f.Items {
		if item.TenantID != tenantID {
			continue
		}
		if filter != nil && filter.Status != nil && item.Status != *filter.Status {
			continue
		}
		out = append(out, item)
	}
	return out, "", nil
}

func (f *FakeContent) GetContent(ctx context.Context, tenantID, id string) (*models.ContentItem, error) {
	if f.GetContentFn != nil {
		return f.GetContentFn(ctx, tenantID, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.findContentLocked(tenantID, id)
}

func (f *FakeContent) findContentLocked(tenantID, id string) (*models.ContentItem, error) {
	for _, item := range f.Items {
		if item.TenantID == tenantID && item.ID == id {
			return item, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *FakeContent) GetContentBySlug(ctx context.Context, tenantID, slug string) (*models.ContentItem, error) {
	if f.GetContentBySlugFn != nil {
		return f.GetContentBySlugFn(ctx, tenantID, slug)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.Items {
		if item.TenantID == tenantID && item.Slug == slug {
			return item, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *FakeContent) CreateContent(ctx context.Context, tenantID string, in *models.CreateContentInput) (*models.ContentItem, error) {
	if f.CreateContentFn != nil {
		return f.CreateContentFn(ctx, tenantID, in)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now().UTC()
	item := &models.ContentItem{
		ID:             uuid.NewString(),
		TenantID:       tenantID,
		TemplateID:     in.TemplateID,
		Title:          in.Title,
		Slug:           service.Slugify(in.Title),
		Body:           in.Body,
		Status:         models.StatusDraft,
		CurrentVersion: "1.0.0",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	f.Items = append(f.Items, item)
	f.Versions = append(f.Versions, &models.ContentVersion{
		ID:        uuid.NewString(),
		ContentID: item.ID,
		Version:   "1.0.0",
		Body:      in.Body,
		IsLatest:  true,
		CreatedAt: now,
	})
	return item, nil
}

func (f *FakeContent) UpdateContent(ctx context.Context, tenantID, id string, in *models.UpdateContentInput) (*models.ContentItem, error) {
	if f.UpdateContentFn != nil {
		return f.UpdateContentFn(ctx, tenantID, id, in)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	item, err := f.findContentLocked(tenantID, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		item.Title = *in.Title
	}
	if in.Status != nil {
		item.Status = *in.Status
	}
	if in.Body != nil {
		item.Body = in.Body
		next, err := service.BumpPatch(item.CurrentVersion)
		if err != nil {
			return nil, err
		}
		item.CurrentVersion = next
		for _, v := range f.Versions {
			if v.ContentID == item.ID {
				v.IsLatest = false
			}
		}
		f.Versions = append(f.Versions, &models.ContentVersion{
			ID:        uuid.NewString(),
			ContentID: item.ID,
			Version:   next,
			Body:      in.Body,
			IsLatest:  true,
			CreatedAt: time.Now().UTC(),
		})
	}
	item.UpdatedAt = time.Now().UTC()
	return item, nil
}

func (f *FakeContent) ListVersions(ctx context.Context, tenantID, contentID string) ([]*models.ContentVersion, error) {
	if f.ListVersionsFn != nil {
		return f.ListVersionsFn(ctx, tenantID, contentID)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := f.findContentLocked(tenantID, contentID); err != nil {
		return nil, err
	}
	out := make([]*models.ContentVersion, 0)
	for _, v := range f.Versions {
		if v.ContentID == contentID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *FakeContent) CreateSession(ctx context.Context, tenantID, templateID, prompt string) (*models.GenerationSession, error) {
	f.mu.Lock()
	f.CreateSessionCalls++
	f.mu.Unlock()
	if f.CreateSessionFn != nil {
		return f.CreateSessionFn(ctx, tenantID, templateID, prompt)
	}
	if strings.TrimSpace(prompt) == "" {
		return nil, database.ErrInvalidInput
	}
	if _, err := f.GetTemplate(ctx, tenantID, templateID); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	session := &models.GenerationSession{
		ID:         uuid.NewString(),
		TenantID:   tenantID,
		TemplateID: templateID,
		Prompt:     prompt,
		State:      models.SessionPending,
		StartedAt:  time.Now().UTC(),
	}
	f.Sessions = append(f.Sessions, session)
	return session, nil
}

func (f *FakeContent) UpdateSession(ctx context.Context, session *models.GenerationSession) error {
	f.mu.Lock()
	f.UpdateSessionCalls++
	f.mu.Unlock()
	if f.UpdateSessionFn != nil {
		return f.UpdateSessionFn(ctx, session)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, s := range f.Sessions {
		if s.TenantID == session.TenantID && s.ID == session.ID {
			f.Sessions[i] = session
			return nil
		}
	}
	return database.ErrNotFound
}

func (f *FakeContent) GetSession(ctx context.Context, tenantID, id string) (*models.GenerationSession, error) {
	if f.GetSessionFn != nil {
		return f.GetSessionFn(ctx, tenantID, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.Sessions {
		if s.TenantID == tenantID && s.ID == id {
			return s, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *FakeContent) ListSessions(ctx context.Context, tenantID string, limit int) ([]*models.GenerationSession, error) {
	if f.ListSessionsFn != nil {
		return f.ListSessionsFn(ctx, tenantID, limit)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.GenerationSession, 0)
	for _, s := range f.Sessions {
		if s.TenantID == tenantID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *FakeContent) CreateSchedule(ctx context.Context, tenantID string, in *models.CreateScheduleInput) (*models.PublishSchedule, error) {
	if f.CreateScheduleFn != nil {
		return f.CreateScheduleFn(ctx, tenantID, in)
	}
	if _, err := f.GetContent(ctx, tenantID, in.ContentID); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	schedule := &models.PublishSchedule{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		ContentID: in.ContentID,
		Target:    in.Target,
		RunAt:     in.RunAt,
		CreatedAt: time.Now().UTC(),
	}
	f.Schedules = append(f.Schedules, schedule)
	return schedule, nil
}

func (f *FakeContent) ListSchedules(ctx context.Context, tenantID string, limit int) ([]*models.PublishSchedule, error) {
	if f.ListSchedulesFn != nil {
		return f.ListSchedulesFn(ctx, tenantID, limit)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.PublishSchedule, 0)
	for _, s := range f.Schedules {
		if s.TenantID == tenantID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *FakeContent) ApplyDueSchedules(ctx context.Context) (int, error) {
	if f.ApplyDueSchedulesFn != nil {
		return f.ApplyDueSchedulesFn(ctx)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	applied := 0
	now := time.Now()
	for _, schedule := range f.Schedules {
		if schedule.Done || schedule.RunAt.After(now) {
			continue
		}
		item, err := f.findContentLocked(schedule.TenantID, schedule.ContentID)
		if err != nil {
			return 0, err
		}
		item.Status = schedule.Target
		schedule.Done = true
		applied++
	}
	return applied, nil
}
