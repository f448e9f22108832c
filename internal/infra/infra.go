// Package infra holds the shared contract for the infrastructure provider
// services (CDN, security, orchestration, gateway, caching, monitoring).
// Each domain package declares its own closed provider set and wraps an
// immutable config captured at construction; operations either validate the
// config (mutating setup calls return a plain bool) or synthesize a
// deterministic snapshot for dashboard consumption. Configuration problems
// are normal results, never errors.
package infra

import (
	"strings"
	"time"
)

// HealthStatus is the rolled-up status of a HealthReport.
type HealthStatus string

const (
	HealthHealthy  HealthStatus = "healthy"
	HealthWarning  HealthStatus = "warning"
	HealthCritical HealthStatus = "critical"
)

// CheckStatus is the outcome of a single health check.
type CheckStatus string

const (
	CheckPass    CheckStatus = "pass"
	CheckFail    CheckStatus = "fail"
	CheckWarning CheckStatus = "warning"
)

// Check is one probe inside a HealthReport.
type Check struct {
	Name      string        `json:"name"`
	Status    CheckStatus   `json:"status"`
	Message   string        `json:"message"`
	Duration  time.Duration `json:"duration"`
	Timestamp time.Time     `json:"timestamp"`
}

// HealthReport aggregates checks with next-check scheduling metadata.
// NextCheck is always strictly after LastCheck.
type HealthReport struct {
	Status    HealthStatus `json:"status"`
	Checks    []Check      `json:"checks"`
	LastCheck time.Time    `json:"lastCheck"`
	NextCheck time.Time    `json:"nextCheck"`
}

// DefaultCheckInterval is the spacing between LastCheck and NextCheck when a
// report is synthesized without live scheduling.
const DefaultCheckInterval = 30 * time.Second

// NewHealthReport builds a report from checks, rolling up the worst check
// status: any fail makes the report critical, any warning makes it warning.
func NewHealthReport(checks []Check) HealthReport {
	status := HealthHealthy
	for _, c := range checks {
		switch c.Status {
		case CheckFail:
			status = HealthCritical
		case CheckWarning:
			if status == HealthHealthy {
				status = HealthWarning
			}
		}
	}
	now := time.Now().UTC()
	return HealthReport{
		Status:    status,
		Checks:    checks,
		LastCheck: now,
		NextCheck: now.Add(DefaultCheckInterval),
	}
}

// PassCheck builds a passing check with a synthetic probe duration.
func PassCheck(name, message string, took time.Duration) Check {
	return Check{
		Name:      name,
		Status:    CheckPass,
		Message:   message,
		Duration:  took,
		Timestamp: time.Now().UTC(),
	}
}

// WarnCheck builds a warning check.
func WarnCheck(name, message string, took time.Duration) Check {
	return Check{
		Name:      name,
		Status:    CheckWarning,
		Message:   message,
		Duration:  took,
		Timestamp: time.Now().UTC(),
	}
}

// AllPresent reports whether every field is non-empty after trimming.
// It is the shared required-field gate behind the setup operations.
func AllPresent(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}
