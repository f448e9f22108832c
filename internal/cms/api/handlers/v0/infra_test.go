package v0_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v0 "github.com/siteforge-dev/siteforge/internal/cms/api/handlers/v0"
	"github.com/siteforge-dev/siteforge/internal/infra"
	"github.com/siteforge-dev/siteforge/internal/infra/caching"
	"github.com/siteforge-dev/siteforge/internal/infra/cdn"
	"github.com/siteforge-dev/siteforge/internal/infra/gateway"
	"github.com/siteforge-dev/siteforge/internal/infra/monitoring"
	"github.com/siteforge-dev/siteforge/internal/infra/orchestration"
	"github.com/siteforge-dev/siteforge/internal/infra/security"
)

func configuredInfraServices() v0.InfraServices {
	return v0.InfraServices{
		CDN:           cdn.NewService(cdn.Config{Provider: cdn.ProviderCloudflare, ZoneID: "zone-1", APIToken: "token"}),
		Security:      security.NewService(security.Config{Provider: security.ProviderCloudflare, ZoneID: "zone-1", APIToken: "token"}),
		Orchestration: orchestration.NewService(orchestration.Config{Provider: orchestration.ProviderKubernetes, ClusterName: "prod", Endpoint: "https://k8s.internal"}),
		Gateway:       gateway.NewService(gateway.Config{Provider: gateway.ProviderAWS, APIID: "api-1", Region: "eu-west-1"}),
		Caching:       caching.NewService(caching.Config{Provider: caching.ProviderRedis, Endpoint: "redis.internal:6379"}),
		Monitoring:    monitoring.NewService(monitoring.Config{Provider: monitoring.ProviderPrometheus, Endpoint: "http://prom.internal:9090"}),
	}
}

func newInfraAPI(services v0.InfraServices) *http.ServeMux {
	mux := http.NewServeMux()
	api := humago.New(mux, huma.DefaultConfig("Test API", "1.0.0"))
	v0.RegisterInfraEndpoints(api, "/v0", services)
	v0.RegisterHealthEndpoint(api, "/v0", services)
	return mux
}

func getJSON(t *testing.T, mux *http.ServeMux, path string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}

func TestInfraSetup_SuccessBodies(t *testing.T) {
	mux := newInfraAPI(configuredInfraServices())

	for _, domain := range []string{"cdn", "security", "orchestration", "gateway", "caching", "monitoring"} {
		req := httptest.NewRequest(http.MethodPost, "/v0/infra/"+domain+"/setup", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, domain)
		assert.Contains(t, w.Body.String(), `"success":true`, domain)
	}
}

func TestInfraSetup_InvalidConfigIsNotAnHTTPError(t *testing.T) {
	// Empty configs: every provider gate fails, but the endpoints still
	// answer 200 with success:false.
	mux := newInfraAPI(v0.InfraServices{
		CDN:           cdn.NewService(cdn.Config{}),
		Security:      security.NewService(security.Config{}),
		Orchestration: orchestration.NewService(orchestration.Config{}),
		Gateway:       gateway.NewService(gateway.Config{}),
		Caching:       caching.NewService(caching.Config{}),
		Monitoring:    monitoring.NewService(monitoring.Config{}),
	})

	for _, domain := range []string{"cdn", "security", "orchestration", "gateway", "caching", "monitoring"} {
		req := httptest.NewRequest(http.MethodPost, "/v0/infra/"+domain+"/setup", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, domain)
		assert.Contains(t, w.Body.String(), `"success":false`, domain)
	}
}

func TestClusterMetricsEndpoint_InvariantsHold(t *testing.T) {
	mux := newInfraAPI(configuredInfraServices())

	var m orchestration.ClusterMetrics
	getJSON(t, mux, "/v0/infra/orchestration/metrics", &m)

	assert.Equal(t, m.Nodes.Total, m.Nodes.Ready+m.Nodes.NotReady)
	assert.Equal(t, m.Pods.Total, m.Pods.Running+m.Pods.Pending+m.Pods.Failed)
	assert.Equal(t, m.Deployments.Total, m.Deployments.Available+m.Deployments.Unavailable)
}

func TestCacheMetricsEndpoint_InvariantsHold(t *testing.T) {
	mux := newInfraAPI(configuredInfraServices())

	var m caching.Metrics
	getJSON(t, mux, "/v0/infra/caching/metrics", &m)

	assert.InDelta(t, 1.0, m.Performance.HitRate+m.Performance.MissRate, 1e-9)
	assert.Equal(t, m.Errors.TotalErrors, m.Errors.ConnectionErrors+m.Errors.TimeoutErrors+m.Errors.MemoryErrors)
}

func TestDomainHealthEndpoints_NextCheckAfterLastCheck(t *testing.T) {
	mux := newInfraAPI(configuredInfraServices())

	for _, domain := range []string{"cdn", "security", "orchestration", "gateway", "caching", "monitoring"} {
		var report infra.HealthReport
		getJSON(t, mux, "/v0/infra/"+domain+"/health", &report)

		assert.True(t, report.NextCheck.After(report.LastCheck), domain)
		assert.NotEmpty(t, report.Checks, domain)
	}
}

func TestAggregatedHealth_CoversAllDomains(t *testing.T) {
	mux := newInfraAPI(configuredInfraServices())

	var body v0.HealthBody
	getJSON(t, mux, "/v0/health", &body)

	require.Len(t, body.Domains, 6)
	// The nominal fixtures include failed pods, so the rollup is a warning.
	assert.Equal(t, infra.HealthWarning, body.Status)
	for domain, report := range body.Domains {
		assert.True(t, report.NextCheck.After(report.LastCheck), domain)
	}
}

func TestCDNAnalyticsEndpoint_WindowControlsBuckets(t *testing.T) {
	mux := newInfraAPI(configuredInfraServices())

	var points []cdn.AnalyticsPoint
	getJSON(t, mux, "/v0/infra/cdn/analytics?hours=6", &points)

	require.Len(t, points, 6)
	for i := 1; i < len(points); i++ {
		assert.Equal(t, time.Hour, points[i].Timestamp.Sub(points[i-1].Timestamp))
	}
}

func TestCDNCacheRulesEndpoint_GoldenRuleSet(t *testing.T) {
	mux := newInfraAPI(configuredInfraServices())

	var rules []cdn.CacheRule
	getJSON(t, mux, "/v0/infra/cdn/rules", &rules)

	require.Len(t, rules, 3)
	assert.Equal(t, "static-assets", rules[0].ID)
	assert.Equal(t, "cache_everything", rules[0].CacheLevel)
	assert.Equal(t, "api-cache", rules[1].ID)
	assert.Equal(t, "override", rules[1].CacheLevel)
	assert.Equal(t, "html-cache", rules[2].ID)
}

func TestWAFEndpoint_GoldenRuleSet(t *testing.T) {
	mux := newInfraAPI(configuredInfraServices())

	var waf security.WAFConfig
	getJSON(t, mux, "/v0/infra/security/waf", &waf)

	assert.Equal(t, "block", waf.DefaultAction)
	require.Len(t, waf.Rules, 4)
	for i, id := range []string{"rate-limit", "sql-injection", "xss-protection", "bad-bots"} {
		assert.Equal(t, id, waf.Rules[i].ID)
		assert.Equal(t, i+1, waf.Rules[i].Priority)
		assert.Equal(t, "block", waf.Rules[i].Action)
	}
}

func TestAlertRulesEndpoint_EmptyWhenUnconfigured(t *testing.T) {
	mux := newInfraAPI(v0.InfraServices{
		CDN:           cdn.NewService(cdn.Config{}),
		Security:      security.NewService(security.Config{}),
		Orchestration: orchestration.NewService(orchestration.Config{}),
		Gateway:       gateway.NewService(gateway.Config{}),
		Caching:       caching.NewService(caching.Config{}),
		Monitoring:    monitoring.NewService(monitoring.Config{}),
	})

	var rules []monitoring.AlertRule
	getJSON(t, mux, "/v0/infra/monitoring/alerts", &rules)
	assert.Empty(t, rules)

	var keys []gateway.APIKey
	getJSON(t, mux, "/v0/infra/gateway/keys", &keys)
	assert.Empty(t, keys)
}
