package models

import "time"

// SessionState is the lifecycle state of a generation session.
type SessionState string

const (
	SessionPending   SessionState = "pending"
	SessionRunning   SessionState = "running"
	SessionCompleted SessionState = "completed"
	SessionFailed    SessionState = "failed"
)

// GenerationSession records one run of the content generation pipeline.
type GenerationSession struct {
	ID          string        `json:"id"`
	TenantID    string        `json:"tenantId"`
	TemplateID  string        `json:"templateId"`
	ContentID   string        `json:"contentId,omitempty"`
	Prompt      string        `json:"prompt"`
	State       SessionState  `json:"state"`
	Error       string        `json:"error,omitempty"`
	Quality     *QualityScore `json:"quality,omitempty"`
	StartedAt   time.Time     `json:"startedAt"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
}

// GenerateInput defines inputs for a generation pipeline run.
type GenerateInput struct {
	TemplateID string `json:"templateId"`
	Title      string `json:"title"`
	Prompt     string `json:"prompt"`
}

// QualityScore is the derived quality assessment of generated content.
// Overall is the weighted mean of the component scores.
type QualityScore struct {
	Readability float64 `json:"readability"`
	SEO         float64 `json:"seo"`
	Engagement  float64 `json:"engagement"`
	Overall     float64 `json:"overall"`
}
