package database

// schemaStatements is applied in order at startup. Statements are idempotent
// so repeated boots against the same database are safe.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS content_templates (
        id         TEXT PRIMARY KEY,
        tenant_id  TEXT NOT NULL,
        name       TEXT NOT NULL,
        slug       TEXT NOT NULL,
        category   TEXT NOT NULL DEFAULT '',
        structure  JSONB,
        created_at TIMESTAMPTZ NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL,
        UNIQUE (tenant_id, slug)
    )`,
	`CREATE TABLE IF NOT EXISTS content_items (
        id              TEXT PRIMARY KEY,
        tenant_id       TEXT NOT NULL,
        template_id     TEXT REFERENCES content_templates(id),
        title           TEXT NOT NULL,
        slug            TEXT NOT NULL,
        body            JSONB,
        status          TEXT NOT NULL,
        current_version TEXT NOT NULL DEFAULT '',
        created_at      TIMESTAMPTZ NOT NULL,
        updated_at      TIMESTAMPTZ NOT NULL,
        UNIQUE (tenant_id, slug)
    )`,
	`CREATE TABLE IF NOT EXISTS content_versions (
        id         TEXT PRIMARY KEY,
        content_id TEXT NOT NULL REFERENCES content_items(id),
        version    TEXT NOT NULL,
        body       JSONB,
        is_latest  BOOLEAN NOT NULL DEFAULT FALSE,
        created_by TEXT,
        created_at TIMESTAMPTZ NOT NULL,
        UNIQUE (content_id, version)
    )`,
	`CREATE TABLE IF NOT EXISTS generation_sessions (
        id           TEXT PRIMARY KEY,
        tenant_id    TEXT NOT NULL,
        template_id  TEXT NOT NULL,
        content_id   TEXT,
        prompt       TEXT NOT NULL,
        state        TEXT NOT NULL,
        error        TEXT,
        quality      JSONB,
        started_at   TIMESTAMPTZ NOT NULL,
        completed_at TIMESTAMPTZ
    )`,
	`CREATE TABLE IF NOT EXISTS publish_schedules (
        id         TEXT PRIMARY KEY,
        tenant_id  TEXT NOT NULL,
        content_id TEXT NOT NULL REFERENCES content_items(id),
        target     TEXT NOT NULL,
        run_at     TIMESTAMPTZ NOT NULL,
        done       BOOLEAN NOT NULL DEFAULT FALSE,
        created_at TIMESTAMPTZ NOT NULL
    )`,
	`CREATE INDEX IF NOT EXISTS idx_content_items_tenant_status ON content_items (tenant_id, status)`,
	`CREATE INDEX IF NOT EXISTS idx_content_versions_latest ON content_versions (content_id) WHERE is_latest`,
	`CREATE INDEX IF NOT EXISTS idx_publish_schedules_due ON publish_schedules (run_at) WHERE NOT done`,
}
