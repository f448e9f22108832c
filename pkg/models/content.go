package models

import "time"

// ContentStatus is the editorial lifecycle state of a content item.
type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusReview    ContentStatus = "review"
	StatusPublished ContentStatus = "published"
	StatusArchived  ContentStatus = "archived"
)

// Valid reports whether s is a known lifecycle state.
func (s ContentStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusReview, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// ContentTemplate defines the structure new content items are created from.
type ContentTemplate struct {
	ID        string         `json:"id"`
	TenantID  string         `json:"tenantId"`
	Name      string         `json:"name"`
	Slug      string         `json:"slug"`
	Category  string         `json:"category"`
	Structure map[string]any `json:"structure,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// CreateTemplateInput defines inputs for template creation.
type CreateTemplateInput struct {
	Name      string         `json:"name"`
	Category  string         `json:"category"`
	Structure map[string]any `json:"structure,omitempty"`
}

// ContentItem is one piece of managed content.
type ContentItem struct {
	ID             string         `json:"id"`
	TenantID       string         `json:"tenantId"`
	TemplateID     string         `json:"templateId,omitempty"`
	Title          string         `json:"title"`
	Slug           string         `json:"slug"`
	Body           map[string]any `json:"body,omitempty"`
	Status         ContentStatus  `json:"status"`
	CurrentVersion string         `json:"currentVersion"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// CreateContentInput defines inputs for content creation.
type CreateContentInput struct {
	TemplateID string         `json:"templateId,omitempty"`
	Title      string         `json:"title"`
	Body       map[string]any `json:"body,omitempty"`
}

// UpdateContentInput defines inputs for content updates. Nil fields are left
// unchanged.
type UpdateContentInput struct {
	Title  *string        `json:"title,omitempty"`
	Body   map[string]any `json:"body,omitempty"`
	Status *ContentStatus `json:"status,omitempty"`
}

// ContentVersion is one immutable revision of a content item.
type ContentVersion struct {
	ID        string         `json:"id"`
	ContentID string         `json:"contentId"`
	Version   string         `json:"version"`
	Body      map[string]any `json:"body,omitempty"`
	IsLatest  bool           `json:"isLatest"`
	CreatedBy string         `json:"createdBy,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// PublishSchedule is a pending state transition for a content item.
type PublishSchedule struct {
	ID        string        `json:"id"`
	TenantID  string        `json:"tenantId"`
	ContentID string        `json:"contentId"`
	Target    ContentStatus `json:"target"`
	RunAt     time.Time     `json:"runAt"`
	Done      bool          `json:"done"`
	CreatedAt time.Time     `json:"createdAt"`
}

// CreateScheduleInput defines inputs for schedule creation.
type CreateScheduleInput struct {
	ContentID string        `json:"contentId"`
	Target    ContentStatus `json:"target"`
	RunAt     time.Time     `json:"runAt"`
}
