// Package database defines the persistence contract for the CMS content
// store and its PostgreSQL implementation.
package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/siteforge-dev/siteforge/pkg/models"
)

// Common database errors
var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrDatabase      = errors.New("database error")
)

// TemplateFilter narrows template list operations.
type TemplateFilter struct {
	Category      *string
	SubstringName *string
}

// ContentFilter narrows content list operations.
type ContentFilter struct {
	TemplateID    *string
	Status        *models.ContentStatus
	SubstringName *string
}

// Database is the interface for content store operations. All operations are
// tenant-scoped; tx may be nil to execute against the pool.
type Database interface {
	// Templates
	ListTemplates(ctx context.Context, tx pgx.Tx, tenantID string, filter *TemplateFilter, cursor string, limit int) ([]*models.ContentTemplate, string, error)
	GetTemplateByID(ctx context.Context, tx pgx.Tx, tenantID, id string) (*models.ContentTemplate, error)
	CreateTemplate(ctx context.Context, tx pgx.Tx, template *models.ContentTemplate) error

	// Content items
	ListContent(ctx context.Context, tx pgx.Tx, tenantID string, filter *ContentFilter, cursor string, limit int) ([]*models.ContentItem, string, error)
	GetContentByID(ctx context.Context, tx pgx.Tx, tenantID, id string) (*models.ContentItem, error)
	GetContentBySlug(ctx context.Context, tx pgx.Tx, tenantID, slug string) (*models.ContentItem, error)
	CreateContent(ctx context.Context, tx pgx.Tx, item *models.ContentItem) error
	UpdateContent(ctx context.Context, tx pgx.Tx, item *models.ContentItem) error

	// Versions
	ListVersions(ctx context.Context, tx pgx.Tx, contentID string) ([]*models.ContentVersion, error)
	CreateVersion(ctx context.Context, tx pgx.Tx, version *models.ContentVersion) error
	// MarkLatestVersion flips is_latest to the given version id inside one
	// statement pair so exactly one latest row exists per content item.
	MarkLatestVersion(ctx context.Context, tx pgx.Tx, contentID, versionID string) error

	// Generation sessions
	CreateSession(ctx context.Context, tx pgx.Tx, session *models.GenerationSession) error
	UpdateSession(ctx context.Context, tx pgx.Tx, session *models.GenerationSession) error
	GetSessionByID(ctx context.Context, tx pgx.Tx, tenantID, id string) (*models.GenerationSession, error)
	ListSessions(ctx context.Context, tx pgx.Tx, tenantID string, limit int) ([]*models.GenerationSession, error)

	// Publish schedules
	CreateSchedule(ctx context.Context, tx pgx.Tx, schedule *models.PublishSchedule) error
	ListDueSchedules(ctx context.Context, tx pgx.Tx, limit int) ([]*models.PublishSchedule, error)
	ListSchedules(ctx context.Context, tx pgx.Tx, tenantID string, limit int) ([]*models.PublishSchedule, error)
	MarkScheduleDone(ctx context.Context, tx pgx.Tx, id string) error

	// InTransaction runs fn inside a transaction, committing on nil error.
	InTransaction(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error

	Ping(ctx context.Context) error
	Close() error
}

// InTransactionT wraps InTransaction for functions returning a value.
func InTransactionT[T any](ctx context.Context, db Database, fn func(ctx context.Context, tx pgx.Tx) (T, error)) (T, error) {
	var out T
	err := db.InTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		out, err = fn(ctx, tx)
		return err
	})
	return out, err
}
