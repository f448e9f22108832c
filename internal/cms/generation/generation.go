// Package generation runs the content generation pipeline: open a session
// against a template, call the configured AI provider, persist the result as
// a draft content item with its first version, and score the output.
package generation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/siteforge-dev/siteforge/internal/cms/service"
	"github.com/siteforge-dev/siteforge/pkg/models"
)

// ErrProviderUnavailable is returned when no AI provider is configured.
var ErrProviderUnavailable = errors.New("generation provider unavailable")

// AIProvider is the external text generation collaborator.
type AIProvider interface {
	// Generate produces body fields for the given template structure and
	// prompt. Implementations own their own timeouts and retries.
	Generate(ctx context.Context, template *models.ContentTemplate, prompt string) (map[string]any, error)
}

// Service orchestrates generation sessions. Construct one per process and
// inject it where needed; it holds no mutable state of its own.
type Service struct {
	content  service.ContentService
	provider AIProvider
	logger   *zap.Logger
}

// NewService creates a generation service backed by the given content
// service and AI provider.
func NewService(content service.ContentService, provider AIProvider, logger *zap.Logger) *Service {
	return &Service{content: content, provider: provider, logger: logger}
}

// Run executes the full pipeline for one request. The session row records
// every state transition; a provider failure marks the session failed and
// returns the session together with the error.
func (s *Service) Run(ctx context.Context, tenantID string, in *models.GenerateInput) (*models.GenerationSession, error) {
	session, err := s.content.CreateSession(ctx, tenantID, in.TemplateID, in.Prompt)
	if err != nil {
		return nil, err
	}

	session.State = models.SessionRunning
	if err := s.content.UpdateSession(ctx, session); err != nil {
		return nil, err
	}

	template, err := s.content.GetTemplate(ctx, tenantID, in.TemplateID)
	if err != nil {
		return s.fail(ctx, session, err)
	}

	if s.provider == nil {
		return s.fail(ctx, session, ErrProviderUnavailable)
	}
	body, err := s.provider.Generate(ctx, template, in.Prompt)
	if err != nil {
		return s.fail(ctx, session, fmt.Errorf("provider: %w", err))
	}

	item, err := s.content.CreateContent(ctx, tenantID, &models.CreateContentInput{
		TemplateID: in.TemplateID,
		Title:      in.Title,
		Body:       body,
	})
	if err != nil {
		return s.fail(ctx, session, err)
	}

	quality := ScoreContent(body)
	now := time.Now().UTC()
	session.State = models.SessionCompleted
	session.ContentID = item.ID
	session.Quality = &quality
	session.CompletedAt = &now
	if err := s.content.UpdateSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("generation session completed",
		zap.String("session_id", session.ID),
		zap.String("tenant_id", tenantID),
		zap.String("content_id", item.ID),
		zap.Float64("quality", quality.Overall),
	)
	return session, nil
}

// fail records the failure on the session and surfaces the cause. A session
// update failure takes precedence since it means the record is now wrong.
func (s *Service) fail(ctx context.Context, session *models.GenerationSession, cause error) (*models.GenerationSession, error) {
	now := time.Now().UTC()
	session.State = models.SessionFailed
	session.Error = cause.Error()
	session.CompletedAt = &now
	if err := s.content.UpdateSession(ctx, session); err != nil {
		return nil, err
	}
	s.logger.Warn("generation session failed",
		zap.String("session_id", session.ID),
		zap.Error(cause),
	)
	return session, cause
}
