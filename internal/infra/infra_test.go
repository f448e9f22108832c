package infra

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllPresent(t *testing.T) {
	assert.True(t, AllPresent("a", "b"))
	assert.True(t, AllPresent())
	assert.False(t, AllPresent("a", ""))
	assert.False(t, AllPresent("  "))
}

func TestNewHealthReport_Rollup(t *testing.T) {
	pass := PassCheck("p", "ok", time.Millisecond)
	warn := WarnCheck("w", "slow", time.Millisecond)
	fail := Check{Name: "f", Status: CheckFail, Message: "down", Timestamp: time.Now()}

	assert.Equal(t, HealthHealthy, NewHealthReport([]Check{pass}).Status)
	assert.Equal(t, HealthWarning, NewHealthReport([]Check{pass, warn}).Status)
	assert.Equal(t, HealthCritical, NewHealthReport([]Check{pass, warn, fail}).Status)
	// A fail anywhere wins over later warnings.
	assert.Equal(t, HealthCritical, NewHealthReport([]Check{fail, warn}).Status)
}

func TestNewHealthReport_Scheduling(t *testing.T) {
	r := NewHealthReport(nil)
	assert.Equal(t, HealthHealthy, r.Status)
	assert.True(t, r.NextCheck.After(r.LastCheck))
	assert.Equal(t, DefaultCheckInterval, r.NextCheck.Sub(r.LastCheck))
}
