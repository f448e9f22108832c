package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stoewer/go-strcase"
	"golang.org/x/mod/semver"

	"github.com/siteforge-dev/siteforge/internal/cms/database"
	"github.com/siteforge-dev/siteforge/pkg/models"
)

const initialVersion = "1.0.0"

// contentServiceImpl implements the ContentService interface using our Database
type contentServiceImpl struct {
	db database.Database
}

// NewContentService creates a new content service with the provided database
func NewContentService(db database.Database) ContentService {
	return &contentServiceImpl{db: db}
}

// Slugify derives a URL-safe kebab-case slug from a display name.
func Slugify(name string) string {
	return strcase.KebabCase(strings.TrimSpace(name))
}

// BumpPatch returns the next patch version after v, which must be a plain
// MAJOR.MINOR.PATCH string.
func BumpPatch(v string) (string, error) {
	if !semver.IsValid("v" + v) {
		return "", fmt.Errorf("%w: invalid version %q", database.ErrInvalidInput, v)
	}
	parts := strings.SplitN(v, ".", 3)
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: invalid version %q", database.ErrInvalidInput, v)
	}
	patch, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", fmt.Errorf("%w: invalid patch in %q", database.ErrInvalidInput, v)
	}
	return fmt.Sprintf("%s.%s.%d", parts[0], parts[1], patch+1), nil
}

// --- Templates ---

func (s *contentServiceImpl) ListTemplates(ctx context.Context, tenantID string, filter *database.TemplateFilter, cursor string, limit int) ([]*models.ContentTemplate, string, error) {
	return s.db.ListTemplates(ctx, nil, tenantID, filter, cursor, limit)
}

func (s *contentServiceImpl) GetTemplate(ctx context.Context, tenantID, id string) (*models.ContentTemplate, error) {
	return s.db.GetTemplateByID(ctx, nil, tenantID, id)
}

func (s *contentServiceImpl) CreateTemplate(ctx context.Context, tenantID string, in *models.CreateTemplateInput) (*models.ContentTemplate, error) {
	if in == nil || strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: template name is required", database.ErrInvalidInput)
	}

	now := time.Now().UTC()
	template := &models.ContentTemplate{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		Name:      in.Name,
		Slug:      Slugify(in.Name),
		Category:  in.Category,
		Structure: in.Structure,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.CreateTemplate(ctx, nil, template); err != nil {
		return nil, err
	}
	return template, nil
}

// --- Content items ---

func (s *contentServiceImpl) ListContent(ctx context.Context, tenantID string, filter *database.ContentFilter, cursor string, limit int) ([]*models.ContentItem, string, error) {
	return s.db.ListContent(ctx, nil, tenantID, filter, cursor, limit)
}

func (s *contentServiceImpl) GetContent(ctx context.Context, tenantID, id string) (*models.ContentItem, error) {
	return s.db.GetContentByID(ctx, nil, tenantID, id)
}

func (s *contentServiceImpl) GetContentBySlug(ctx context.Context, tenantID, slug string) (*models.ContentItem, error) {
	return s.db.GetContentBySlug(ctx, nil, tenantID, slug)
}

func (s *contentServiceImpl) CreateContent(ctx context.Context, tenantID string, in *models.CreateContentInput) (*models.ContentItem, error) {
	if in == nil || strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: content title is required", database.ErrInvalidInput)
	}

	if in.TemplateID != "" {
		if _, err := s.db.GetTemplateByID(ctx, nil, tenantID, in.TemplateID); err != nil {
			return nil, fmt.Errorf("template %s: %w", in.TemplateID, err)
		}
	}

	now := time.Now().UTC()
	item := &models.ContentItem{
		ID:             uuid.NewString(),
		TenantID:       tenantID,
		TemplateID:     in.TemplateID,
		Title:          in.Title,
		Slug:           Slugify(in.Title),
		Body:           in.Body,
		Status:         models.StatusDraft,
		CurrentVersion: initialVersion,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := s.db.InTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.db.CreateContent(ctx, tx, item); err != nil {
			return err
		}
		return s.db.CreateVersion(ctx, tx, &models.ContentVersion{
			ID:        uuid.NewString(),
			ContentID: item.ID,
			Version:   initialVersion,
			Body:      item.Body,
			IsLatest:  true,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *contentServiceImpl) UpdateContent(ctx context.Context, tenantID, id string, in *models.UpdateContentInput) (*models.ContentItem, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: update input is required", database.ErrInvalidInput)
	}
	if in.Status != nil && !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", database.ErrInvalidInput, *in.Status)
	}

	return database.InTransactionT(ctx, s.db, func(ctx context.Context, tx pgx.Tx) (*models.ContentItem, error) {
		item, err := s.db.GetContentByID(ctx, tx, tenantID, id)
		if err != nil {
			return nil, err
		}

		if in.Title != nil {
			item.Title = *in.Title
		}
		if in.Status != nil {
			item.Status = *in.Status
		}

		bodyChanged := in.Body != nil
		if bodyChanged {
			item.Body = in.Body
			next, err := BumpPatch(item.CurrentVersion)
			if err != nil {
				return nil, err
			}
			item.CurrentVersion = next
			versionID := uuid.NewString()
			if err := s.db.CreateVersion(ctx, tx, &models.ContentVersion{
				ID:        versionID,
				ContentID: item.ID,
				Version:   next,
				Body:      in.Body,
				IsLatest:  true,
				CreatedAt: time.Now().UTC(),
			}); err != nil {
				return nil, err
			}
			if err := s.db.MarkLatestVersion(ctx, tx, item.ID, versionID); err != nil {
				return nil, err
			}
		}

		item.UpdatedAt = time.Now().UTC()
		if err := s.db.UpdateContent(ctx, tx, item); err != nil {
			return nil, err
		}
		return item, nil
	})
}

func (s *contentServiceImpl) ListVersions(ctx context.Context, tenantID, contentID string) ([]*models.ContentVersion, error) {
	// Ownership check before touching the versions table.
	if _, err := s.db.GetContentByID(ctx, nil, tenantID, contentID); err != nil {
		return nil, err
	}
	return s.db.ListVersions(ctx, nil, contentID)
}

// --- Generation sessions ---

func (s *contentServiceImpl) CreateSession(ctx context.Context, tenantID, templateID, prompt string) (*models.GenerationSession, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("%w: prompt is required", database.ErrInvalidInput)
	}
	if _, err := s.db.GetTemplateByID(ctx, nil, tenantID, templateID); err != nil {
		return nil, fmt.Errorf("template %s: %w", templateID, err)
	}

	session := &models.GenerationSession{
		ID:         uuid.NewString(),
		TenantID:   tenantID,
		TemplateID: templateID,
		Prompt:     prompt,
		State:      models.SessionPending,
		StartedAt:  time.Now().UTC(),
	}
	if err := s.db.CreateSession(ctx, nil, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *contentServiceImpl) UpdateSession(ctx context.Context, session *models.GenerationSession) error {
	return s.db.UpdateSession(ctx, nil, session)
}

func (s *contentServiceImpl) GetSession(ctx context.Context, tenantID, id string) (*models.GenerationSession, error) {
	return s.db.GetSessionByID(ctx, nil, tenantID, id)
}

func (s *contentServiceImpl) ListSessions(ctx context.Context, tenantID string, limit int) ([]*models.GenerationSession, error) {
	return s.db.ListSessions(ctx, nil, tenantID, limit)
}

// --- Publish schedules ---

func (s *contentServiceImpl) CreateSchedule(ctx context.Context, tenantID string, in *models.CreateScheduleInput) (*models.PublishSchedule, error) {
	if in == nil || in.ContentID == "" {
		return nil, fmt.Errorf("%w: schedule content id is required", database.ErrInvalidInput)
	}
	if !in.Target.Valid() {
		return nil, fmt.Errorf("%w: unknown target status %q", database.ErrInvalidInput, in.Target)
	}
	if !in.RunAt.After(time.Now()) {
		return nil, fmt.Errorf("%w: schedule run time must be in the future", database.ErrInvalidInput)
	}
	if _, err := s.db.GetContentByID(ctx, nil, tenantID, in.ContentID); err != nil {
		return nil, fmt.Errorf("content %s: %w", in.ContentID, err)
	}

	schedule := &models.PublishSchedule{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		ContentID: in.ContentID,
		Target:    in.Target,
		RunAt:     in.RunAt.UTC(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.CreateSchedule(ctx, nil, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *contentServiceImpl) ListSchedules(ctx context.Context, tenantID string, limit int) ([]*models.PublishSchedule, error) {
	return s.db.ListSchedules(ctx, nil, tenantID, limit)
}

func (s *contentServiceImpl) ApplyDueSchedules(ctx context.Context) (int, error) {
	applied := 0
	err := s.db.InTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		due, err := s.db.ListDueSchedules(ctx, tx, 0)
		if err != nil {
			return err
		}
		for _, schedule := range due {
			item, err := s.db.GetContentByID(ctx, tx, schedule.TenantID, schedule.ContentID)
			if err != nil {
				return fmt.Errorf("schedule %s: %w", schedule.ID, err)
			}
			item.Status = schedule.Target
			item.UpdatedAt = time.Now().UTC()
			if err := s.db.UpdateContent(ctx, tx, item); err != nil {
				return err
			}
			if err := s.db.MarkScheduleDone(ctx, tx, schedule.ID); err != nil {
				return err
			}
			applied++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return applied, nil
}
