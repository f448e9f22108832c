package monitoring_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siteforge-dev/siteforge/internal/infra"
	"github.com/siteforge-dev/siteforge/internal/infra/monitoring"
)

func TestSetup(t *testing.T) {
	cases := []struct {
		name string
		cfg  monitoring.Config
		want bool
	}{
		{"prometheus", monitoring.Config{Provider: monitoring.ProviderPrometheus, Endpoint: "http://prom:9090"}, true},
		{"prometheus missing endpoint", monitoring.Config{Provider: monitoring.ProviderPrometheus}, false},
		{"datadog", monitoring.Config{Provider: monitoring.ProviderDatadog, APIKey: "dd-key"}, true},
		{"newrelic complete", monitoring.Config{Provider: monitoring.ProviderNewRelic, APIKey: "nr-key", AppName: "siteforge"}, true},
		{"newrelic missing app", monitoring.Config{Provider: monitoring.ProviderNewRelic, APIKey: "nr-key"}, false},
		{"custom", monitoring.Config{Provider: monitoring.ProviderCustom, Endpoint: "http://metrics.internal"}, true},
		{"unsupported", monitoring.Config{Provider: "grafana", Endpoint: "x"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, monitoring.NewService(tc.cfg).Setup(context.Background()))
		})
	}
}

func TestPerformanceMetrics_Shape(t *testing.T) {
	svc := monitoring.NewService(monitoring.Config{Provider: monitoring.ProviderPrometheus, Endpoint: "http://prom:9090"})

	m := svc.PerformanceMetrics(context.Background())
	assert.LessOrEqual(t, m.ResponseTimes.P50MS, m.ResponseTimes.P95MS)
	assert.LessOrEqual(t, m.ResponseTimes.P95MS, m.ResponseTimes.P99MS)
	assert.GreaterOrEqual(t, m.Apdex, 0.0)
	assert.LessOrEqual(t, m.Apdex, 1.0)
}

func TestCreateDashboards_Stable(t *testing.T) {
	svc := monitoring.NewService(monitoring.Config{Provider: monitoring.ProviderDatadog, APIKey: "dd-key"})

	dashboards := svc.CreateDashboards()
	require.Len(t, dashboards, 3)
	assert.Equal(t, "delivery", dashboards[0].ID)
	assert.Equal(t, dashboards, svc.CreateDashboards())
}

func TestAlertRules_EmptyOnInvalidConfig(t *testing.T) {
	assert.Empty(t, monitoring.NewService(monitoring.Config{Provider: "grafana"}).AlertRules(context.Background()))

	rules := monitoring.NewService(monitoring.Config{Provider: monitoring.ProviderNewRelic, APIKey: "k", AppName: "siteforge"}).AlertRules(context.Background())
	require.Len(t, rules, 3)
	assert.Equal(t, "high-error-rate", rules[0].ID)
}

func TestHealth_HealthyForNominalSnapshot(t *testing.T) {
	svc := monitoring.NewService(monitoring.Config{Provider: monitoring.ProviderPrometheus, Endpoint: "http://prom:9090"})

	report := svc.Health(context.Background())
	assert.Equal(t, infra.HealthHealthy, report.Status)
	assert.True(t, report.NextCheck.After(report.LastCheck))
}

func TestConcurrentReads(t *testing.T) {
	svc := monitoring.NewService(monitoring.Config{Provider: monitoring.ProviderPrometheus, Endpoint: "http://prom:9090"})

	var wg sync.WaitGroup
	results := make([]monitoring.PerformanceMetrics, 4)
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.CreateDashboards()
			svc.AlertRules(context.Background())
			results[i] = svc.PerformanceMetrics(context.Background())
		}()
	}
	wg.Wait()

	for _, m := range results {
		assert.LessOrEqual(t, m.ResponseTimes.P50MS, m.ResponseTimes.P95MS)
		assert.LessOrEqual(t, m.ResponseTimes.P95MS, m.ResponseTimes.P99MS)
	}
}
