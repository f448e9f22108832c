//go:build e2e

// Package e2e exercises the fully assembled server over real HTTP: routing,
// middleware, auth resolution and the scrape endpoint together.
package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/siteforge-dev/siteforge/internal/cms/api"
	v0 "github.com/siteforge-dev/siteforge/internal/cms/api/handlers/v0"
	"github.com/siteforge-dev/siteforge/internal/cms/auth"
	"github.com/siteforge-dev/siteforge/internal/cms/config"
	"github.com/siteforge-dev/siteforge/internal/cms/generation"
	svctesting "github.com/siteforge-dev/siteforge/internal/cms/service/testing"
	"github.com/siteforge-dev/siteforge/internal/infra/caching"
	"github.com/siteforge-dev/siteforge/internal/infra/cdn"
	"github.com/siteforge-dev/siteforge/internal/infra/gateway"
	"github.com/siteforge-dev/siteforge/internal/infra/monitoring"
	"github.com/siteforge-dev/siteforge/internal/infra/orchestration"
	"github.com/siteforge-dev/siteforge/internal/infra/security"
	"github.com/siteforge-dev/siteforge/pkg/models"
)

const testSecret = "e2e-test-secret"

// newTestServer assembles the whole HTTP stack on an in-memory content store
// and serves it from an httptest server.
func newTestServer(t *testing.T) (*httptest.Server, *svctesting.FakeContent, *auth.Manager) {
	t.Helper()

	cfg := &config.Config{ServerAddress: ":0", JWTSecret: testSecret, CORSOrigins: "*"}
	fake := svctesting.NewFakeContent()
	tokens := auth.NewManager(cfg.JWTSecret)
	pipeline := generation.NewService(fake, generation.NewTemplateFiller(""), zap.NewNop())

	infraServices := v0.InfraServices{
		CDN:           cdn.NewService(cdn.Config{Provider: cdn.ProviderCloudflare, ZoneID: "zone", APIToken: "token"}),
		Security:      security.NewService(security.Config{Provider: security.ProviderCloudflare, ZoneID: "zone", APIToken: "token"}),
		Orchestration: orchestration.NewService(orchestration.Config{Provider: orchestration.ProviderKubernetes, ClusterName: "e2e", Endpoint: "https://k8s.local"}),
		Gateway:       gateway.NewService(gateway.Config{Provider: gateway.ProviderAWS, APIID: "api", Region: "eu-west-1"}),
		Caching:       caching.NewService(caching.Config{Provider: caching.ProviderRedis, Endpoint: "redis:6379"}),
		Monitoring:    monitoring.NewService(monitoring.Config{Provider: monitoring.ProviderPrometheus, Endpoint: "http://prom:9090"}),
	}

	server := api.NewServer(cfg, fake, infraServices, pipeline, tokens)
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return ts, fake, tokens
}

func getBody(t *testing.T, url string, token string) (int, []byte) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestServer_PingAndHealth(t *testing.T) {
	ts, _, _ := newTestServer(t)

	code, body := getBody(t, ts.URL+"/v0/ping", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body), `"pong":true`)

	code, body = getBody(t, ts.URL+"/v0/health", "")
	assert.Equal(t, http.StatusOK, code)
	var health v0.HealthBody
	require.NoError(t, json.Unmarshal(body, &health))
	assert.Len(t, health.Domains, 6)
}

func TestServer_TenantScopedWrites(t *testing.T) {
	ts, fake, tokens := newTestServer(t)

	token, err := tokens.Issue("tenant-e2e", "editor", time.Hour)
	require.NoError(t, err)

	payload, err := json.Marshal(map[string]any{"title": "E2E Post"})
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/v0/content", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, fake.Items, 1)
	assert.Equal(t, "tenant-e2e", fake.Items[0].TenantID)
}

func TestServer_RejectsInvalidToken(t *testing.T) {
	ts, _, _ := newTestServer(t)

	code, _ := getBody(t, ts.URL+"/v0/content", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestServer_GenerationPipeline(t *testing.T) {
	ts, fake, _ := newTestServer(t)
	fake.Templates = []*models.ContentTemplate{
		{ID: "tpl-1", TenantID: v0.DefaultTenant, Name: "Blog Post", Slug: "blog-post", Category: "editorial"},
	}

	payload, err := json.Marshal(map[string]any{
		"templateId": "tpl-1",
		"title":      "Generated",
		"prompt":     "announce the e2e suite",
	})
	require.NoError(t, err)
	resp, err := http.Post(ts.URL+"/v0/generate", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var session models.GenerationSession
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
	assert.Equal(t, models.SessionCompleted, session.State)
	require.NotNil(t, session.Quality)
	assert.InDelta(t, session.Quality.Overall,
		0.4*session.Quality.Readability+0.35*session.Quality.SEO+0.25*session.Quality.Engagement, 1e-9)
}

func TestServer_MetricsEndpoint(t *testing.T) {
	ts, _, _ := newTestServer(t)

	// Generate some traffic first so the counters exist.
	code, _ := getBody(t, ts.URL+"/v0/ping", "")
	require.Equal(t, http.StatusOK, code)

	code, body := getBody(t, ts.URL+"/metrics", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body), "siteforge_http_requests_total")
}
