package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/siteforge-dev/siteforge/pkg/models"
)

// PostgreSQL is an implementation of the Database interface using PostgreSQL
type PostgreSQL struct {
	pool *pgxpool.Pool
}

// Executor is an interface for executing queries (satisfied by both pgx.Tx and pgxpool.Pool)
type Executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// getExecutor returns the appropriate executor (transaction or pool)
func (db *PostgreSQL) getExecutor(tx pgx.Tx) Executor {
	if tx != nil {
		return tx
	}
	return db.pool
}

// NewPostgreSQL creates a new instance of the PostgreSQL database
func NewPostgreSQL(ctx context.Context, connectionURI string) (*PostgreSQL, error) {
	config, err := pgxpool.ParseConfig(connectionURI)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PostgreSQL config: %w", err)
	}

	// Stability-focused pool defaults
	config.MaxConns = 30
	config.MinConns = 5
	config.MaxConnIdleTime = 30 * time.Minute
	config.MaxConnLifetime = 2 * time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create PostgreSQL pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	db := &PostgreSQL{pool: pool}
	if err := db.migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}
	return db, nil
}

func (db *PostgreSQL) migrate(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Ping verifies database connectivity.
func (db *PostgreSQL) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Close releases the connection pool.
func (db *PostgreSQL) Close() error {
	db.pool.Close()
	return nil
}

// InTransaction executes a function within a database transaction
func (db *PostgreSQL) InTransaction(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		rollbackCtx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()
		if rbErr := tx.Rollback(rollbackCtx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			log.Printf("failed to rollback transaction: %v", rbErr)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --- Templates ---

func (db *PostgreSQL) ListTemplates(ctx context.Context, tx pgx.Tx, tenantID string, filter *TemplateFilter, cursor string, limit int) ([]*models.ContentTemplate, string, error) {
	if limit <= 0 {
		limit = 10
	}
	if ctx.Err() != nil {
		return nil, "", ctx.Err()
	}

	whereConditions := []string{"tenant_id = $1"}
	args := []any{tenantID}
	argIndex := 2

	if filter != nil {
		if filter.Category != nil {
			whereConditions = append(whereConditions, fmt.Sprintf("category = $%d", argIndex))
			args = append(args, *filter.Category)
			argIndex++
		}
		if filter.SubstringName != nil {
			whereConditions = append(whereConditions, fmt.Sprintf("name ILIKE $%d", argIndex))
			args = append(args, "%"+*filter.SubstringName+"%")
			argIndex++
		}
	}
	if cursor != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("slug > $%d", argIndex))
		args = append(args, cursor)
		argIndex++
	}

	query := fmt.Sprintf(`
        SELECT id, tenant_id, name, slug, category, structure, created_at, updated_at
        FROM content_templates
        WHERE %s
        ORDER BY slug
        LIMIT $%d`, strings.Join(whereConditions, " AND "), argIndex)
	args = append(args, limit+1)

	rows, err := db.getExecutor(tx).Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	defer rows.Close()

	var templates []*models.ContentTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, "", err
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	nextCursor := ""
	if len(templates) > limit {
		templates = templates[:limit]
		nextCursor = templates[len(templates)-1].Slug
	}
	return templates, nextCursor, nil
}

func (db *PostgreSQL) GetTemplateByID(ctx context.Context, tx pgx.Tx, tenantID, id string) (*models.ContentTemplate, error) {
	row := db.getExecutor(tx).QueryRow(ctx, `
        SELECT id, tenant_id, name, slug, category, structure, created_at, updated_at
        FROM content_templates
        WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	t, err := scanTemplate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (db *PostgreSQL) CreateTemplate(ctx context.Context, tx pgx.Tx, template *models.ContentTemplate) error {
	if template == nil || template.TenantID == "" || template.Name == "" {
		return fmt.Errorf("%w: template tenant and name are required", ErrInvalidInput)
	}

	structureJSON, err := json.Marshal(template.Structure)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal structure: %w", ErrInvalidInput, err)
	}

	_, err = db.getExecutor(tx).Exec(ctx, `
        INSERT INTO content_templates (id, tenant_id, name, slug, category, structure, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		template.ID, template.TenantID, template.Name, template.Slug,
		template.Category, structureJSON, template.CreatedAt, template.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("%w: failed to insert template: %w", ErrDatabase, err)
	}
	return nil
}

// --- Content items ---

func (db *PostgreSQL) ListContent(ctx context.Context, tx pgx.Tx, tenantID string, filter *ContentFilter, cursor string, limit int) ([]*models.ContentItem, string, error) {
	if limit <= 0 {
		limit = 10
	}
	if ctx.Err() != nil {
		return nil, "", ctx.Err()
	}

	whereConditions := []string{"tenant_id = $1"}
	args := []any{tenantID}
	argIndex := 2

	if filter != nil {
		if filter.TemplateID != nil {
			whereConditions = append(whereConditions, fmt.Sprintf("template_id = $%d", argIndex))
			args = append(args, *filter.TemplateID)
			argIndex++
		}
		if filter.Status != nil {
			whereConditions = append(whereConditions, fmt.Sprintf("status = $%d", argIndex))
			args = append(args, string(*filter.Status))
			argIndex++
		}
		if filter.SubstringName != nil {
			whereConditions = append(whereConditions, fmt.Sprintf("title ILIKE $%d", argIndex))
			args = append(args, "%"+*filter.SubstringName+"%")
			argIndex++
		}
	}
	if cursor != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("slug > $%d", argIndex))
		args = append(args, cursor)
		argIndex++
	}

	query := fmt.Sprintf(`
        SELECT id, tenant_id, template_id, title, slug, body, status, current_version, created_at, updated_at
        FROM content_items
        WHERE %s
        ORDER BY slug
        LIMIT $%d`, strings.Join(whereConditions, " AND "), argIndex)
	args = append(args, limit+1)

	rows, err := db.getExecutor(tx).Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	defer rows.Close()

	var items []*models.ContentItem
	for rows.Next() {
		item, err := scanContent(rows)
		if err != nil {
			return nil, "", err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	nextCursor := ""
	if len(items) > limit {
		items = items[:limit]
		nextCursor = items[len(items)-1].Slug
	}
	return items, nextCursor, nil
}

func (db *PostgreSQL) GetContentByID(ctx context.Context, tx pgx.Tx, tenantID, id string) (*models.ContentItem, error) {
	row := db.getExecutor(tx).QueryRow(ctx, `
        SELECT id, tenant_id, template_id, title, slug, body, status, current_version, created_at, updated_at
        FROM content_items
        WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	return scanContentRow(row)
}

func (db *PostgreSQL) GetContentBySlug(ctx context.Context, tx pgx.Tx, tenantID, slug string) (*models.ContentItem, error) {
	row := db.getExecutor(tx).QueryRow(ctx, `
        SELECT id, tenant_id, template_id, title, slug, body, status, current_version, created_at, updated_at
        FROM content_items
        WHERE tenant_id = $1 AND slug = $2`, tenantID, slug)
	return scanContentRow(row)
}

func (db *PostgreSQL) CreateContent(ctx context.Context, tx pgx.Tx, item *models.ContentItem) error {
	if item == nil || item.TenantID == "" || item.Title == "" {
		return fmt.Errorf("%w: content tenant and title are required", ErrInvalidInput)
	}

	bodyJSON, err := json.Marshal(item.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal body: %w", ErrInvalidInput, err)
	}

	_, err = db.getExecutor(tx).Exec(ctx, `
        INSERT INTO content_items (id, tenant_id, template_id, title, slug, body, status, current_version, created_at, updated_at)
        VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10)`,
		item.ID, item.TenantID, item.TemplateID, item.Title, item.Slug,
		bodyJSON, string(item.Status), item.CurrentVersion, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("%w: failed to insert content: %w", ErrDatabase, err)
	}
	return nil
}

func (db *PostgreSQL) UpdateContent(ctx context.Context, tx pgx.Tx, item *models.ContentItem) error {
	bodyJSON, err := json.Marshal(item.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal body: %w", ErrInvalidInput, err)
	}

	tag, err := db.getExecutor(tx).Exec(ctx, `
        UPDATE content_items
        SET title = $3, body = $4, status = $5, current_version = $6, updated_at = $7
        WHERE tenant_id = $1 AND id = $2`,
		item.TenantID, item.ID, item.Title, bodyJSON, string(item.Status),
		item.CurrentVersion, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to update content: %w", ErrDatabase, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Versions ---

func (db *PostgreSQL) ListVersions(ctx context.Context, tx pgx.Tx, contentID string) ([]*models.ContentVersion, error) {
	rows, err := db.getExecutor(tx).Query(ctx, `
        SELECT id, content_id, version, body, is_latest, created_by, created_at
        FROM content_versions
        WHERE content_id = $1
        ORDER BY created_at DESC`, contentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	defer rows.Close()

	var versions []*models.ContentVersion
	for rows.Next() {
		var (
			v         models.ContentVersion
			bodyJSON  []byte
			createdBy *string
		)
		if err := rows.Scan(&v.ID, &v.ContentID, &v.Version, &bodyJSON, &v.IsLatest, &createdBy, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
		}
		if createdBy != nil {
			v.CreatedBy = *createdBy
		}
		if len(bodyJSON) > 0 {
			if err := json.Unmarshal(bodyJSON, &v.Body); err != nil {
				return nil, fmt.Errorf("%w: corrupt version body: %w", ErrDatabase, err)
			}
		}
		versions = append(versions, &v)
	}
	return versions, rows.Err()
}

func (db *PostgreSQL) CreateVersion(ctx context.Context, tx pgx.Tx, version *models.ContentVersion) error {
	if version == nil || version.ContentID == "" || version.Version == "" {
		return fmt.Errorf("%w: version content id and version are required", ErrInvalidInput)
	}

	bodyJSON, err := json.Marshal(version.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal body: %w", ErrInvalidInput, err)
	}

	_, err = db.getExecutor(tx).Exec(ctx, `
        INSERT INTO content_versions (id, content_id, version, body, is_latest, created_by, created_at)
        VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)`,
		version.ID, version.ContentID, version.Version, bodyJSON,
		version.IsLatest, version.CreatedBy, version.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("%w: failed to insert version: %w", ErrDatabase, err)
	}
	return nil
}

func (db *PostgreSQL) MarkLatestVersion(ctx context.Context, tx pgx.Tx, contentID, versionID string) error {
	exec := db.getExecutor(tx)
	if _, err := exec.Exec(ctx, `
        UPDATE content_versions SET is_latest = FALSE
        WHERE content_id = $1 AND is_latest = TRUE`, contentID); err != nil {
		return fmt.Errorf("%w: failed to unmark latest: %w", ErrDatabase, err)
	}
	tag, err := exec.Exec(ctx, `
        UPDATE content_versions SET is_latest = TRUE
        WHERE content_id = $1 AND id = $2`, contentID, versionID)
	if err != nil {
		return fmt.Errorf("%w: failed to mark latest: %w", ErrDatabase, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Generation sessions ---

func (db *PostgreSQL) CreateSession(ctx context.Context, tx pgx.Tx, session *models.GenerationSession) error {
	if session == nil || session.TenantID == "" || session.TemplateID == "" {
		return fmt.Errorf("%w: session tenant and template are required", ErrInvalidInput)
	}

	qualityJSON, err := json.Marshal(session.Quality)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal quality: %w", ErrInvalidInput, err)
	}

	_, err = db.getExecutor(tx).Exec(ctx, `
        INSERT INTO generation_sessions (id, tenant_id, template_id, content_id, prompt, state, error, quality, started_at, completed_at)
        VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, NULLIF($7, ''), $8, $9, $10)`,
		session.ID, session.TenantID, session.TemplateID, session.ContentID,
		session.Prompt, string(session.State), session.Error, qualityJSON,
		session.StartedAt, session.CompletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("%w: failed to insert session: %w", ErrDatabase, err)
	}
	return nil
}

func (db *PostgreSQL) UpdateSession(ctx context.Context, tx pgx.Tx, session *models.GenerationSession) error {
	qualityJSON, err := json.Marshal(session.Quality)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal quality: %w", ErrInvalidInput, err)
	}

	tag, err := db.getExecutor(tx).Exec(ctx, `
        UPDATE generation_sessions
        SET content_id = NULLIF($3, ''), state = $4, error = NULLIF($5, ''), quality = $6, completed_at = $7
        WHERE tenant_id = $1 AND id = $2`,
		session.TenantID, session.ID, session.ContentID, string(session.State),
		session.Error, qualityJSON, session.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to update session: %w", ErrDatabase, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *PostgreSQL) GetSessionByID(ctx context.Context, tx pgx.Tx, tenantID, id string) (*models.GenerationSession, error) {
	row := db.getExecutor(tx).QueryRow(ctx, `
        SELECT id, tenant_id, template_id, content_id, prompt, state, error, quality, started_at, completed_at
        FROM generation_sessions
        WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	return scanSession(row)
}

func (db *PostgreSQL) ListSessions(ctx context.Context, tx pgx.Tx, tenantID string, limit int) ([]*models.GenerationSession, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.getExecutor(tx).Query(ctx, `
        SELECT id, tenant_id, template_id, content_id, prompt, state, error, quality, started_at, completed_at
        FROM generation_sessions
        WHERE tenant_id = $1
        ORDER BY started_at DESC
        LIMIT $2`, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	defer rows.Close()

	var sessions []*models.GenerationSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// --- Publish schedules ---

func (db *PostgreSQL) CreateSchedule(ctx context.Context, tx pgx.Tx, schedule *models.PublishSchedule) error {
	if schedule == nil || schedule.TenantID == "" || schedule.ContentID == "" {
		return fmt.Errorf("%w: schedule tenant and content are required", ErrInvalidInput)
	}

	_, err := db.getExecutor(tx).Exec(ctx, `
        INSERT INTO publish_schedules (id, tenant_id, content_id, target, run_at, done, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		schedule.ID, schedule.TenantID, schedule.ContentID,
		string(schedule.Target), schedule.RunAt, schedule.Done, schedule.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("%w: failed to insert schedule: %w", ErrDatabase, err)
	}
	return nil
}

func (db *PostgreSQL) ListDueSchedules(ctx context.Context, tx pgx.Tx, limit int) ([]*models.PublishSchedule, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.getExecutor(tx).Query(ctx, `
        SELECT id, tenant_id, content_id, target, run_at, done, created_at
        FROM publish_schedules
        WHERE done = FALSE AND run_at <= NOW()
        ORDER BY run_at
        LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	defer rows.Close()
	return collectSchedules(rows)
}

func (db *PostgreSQL) ListSchedules(ctx context.Context, tx pgx.Tx, tenantID string, limit int) ([]*models.PublishSchedule, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.getExecutor(tx).Query(ctx, `
        SELECT id, tenant_id, content_id, target, run_at, done, created_at
        FROM publish_schedules
        WHERE tenant_id = $1
        ORDER BY run_at
        LIMIT $2`, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	defer rows.Close()
	return collectSchedules(rows)
}

func (db *PostgreSQL) MarkScheduleDone(ctx context.Context, tx pgx.Tx, id string) error {
	tag, err := db.getExecutor(tx).Exec(ctx, `
        UPDATE publish_schedules SET done = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: failed to mark schedule done: %w", ErrDatabase, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Row scanning ---

func scanTemplate(row pgx.Row) (*models.ContentTemplate, error) {
	var (
		t             models.ContentTemplate
		structureJSON []byte
	)
	if err := row.Scan(&t.ID, &t.TenantID, &t.Name, &t.Slug, &t.Category, &structureJSON, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	if len(structureJSON) > 0 {
		if err := json.Unmarshal(structureJSON, &t.Structure); err != nil {
			return nil, fmt.Errorf("%w: corrupt template structure: %w", ErrDatabase, err)
		}
	}
	return &t, nil
}

func scanContent(row pgx.Row) (*models.ContentItem, error) {
	var (
		item       models.ContentItem
		templateID *string
		bodyJSON   []byte
		status     string
	)
	if err := row.Scan(&item.ID, &item.TenantID, &templateID, &item.Title, &item.Slug, &bodyJSON, &status, &item.CurrentVersion, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	if templateID != nil {
		item.TemplateID = *templateID
	}
	item.Status = models.ContentStatus(status)
	if len(bodyJSON) > 0 {
		if err := json.Unmarshal(bodyJSON, &item.Body); err != nil {
			return nil, fmt.Errorf("%w: corrupt content body: %w", ErrDatabase, err)
		}
	}
	return &item, nil
}

func scanContentRow(row pgx.Row) (*models.ContentItem, error) {
	item, err := scanContent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	return item, nil
}

func scanSession(row pgx.Row) (*models.GenerationSession, error) {
	var (
		s           models.GenerationSession
		contentID   *string
		state       string
		sessErr     *string
		qualityJSON []byte
	)
	if err := row.Scan(&s.ID, &s.TenantID, &s.TemplateID, &contentID, &s.Prompt, &state, &sessErr, &qualityJSON, &s.StartedAt, &s.CompletedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	if contentID != nil {
		s.ContentID = *contentID
	}
	if sessErr != nil {
		s.Error = *sessErr
	}
	s.State = models.SessionState(state)
	if len(qualityJSON) > 0 && string(qualityJSON) != "null" {
		if err := json.Unmarshal(qualityJSON, &s.Quality); err != nil {
			return nil, fmt.Errorf("%w: corrupt quality score: %w", ErrDatabase, err)
		}
	}
	return &s, nil
}

func collectSchedules(rows pgx.Rows) ([]*models.PublishSchedule, error) {
	var schedules []*models.PublishSchedule
	for rows.Next() {
		var (
			sch    models.PublishSchedule
			target string
		)
		if err := rows.Scan(&sch.ID, &sch.TenantID, &sch.ContentID, &target, &sch.RunAt, &sch.Done, &sch.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
		}
		sch.Target = models.ContentStatus(target)
		schedules = append(schedules, &sch)
	}
	return schedules, rows.Err()
}
