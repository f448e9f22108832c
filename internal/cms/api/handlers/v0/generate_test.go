package v0_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	v0 "github.com/siteforge-dev/siteforge/internal/cms/api/handlers/v0"
	"github.com/siteforge-dev/siteforge/internal/cms/generation"
	svctesting "github.com/siteforge-dev/siteforge/internal/cms/service/testing"
	"github.com/siteforge-dev/siteforge/pkg/models"
)

type stubProvider struct {
	body map[string]any
	err  error
}

func (p *stubProvider) Generate(_ context.Context, _ *models.ContentTemplate, _ string) (map[string]any, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.body, nil
}

func newGenerationAPI(fake *svctesting.FakeContent, provider generation.AIProvider) *http.ServeMux {
	mux := http.NewServeMux()
	api := humago.New(mux, huma.DefaultConfig("Test API", "1.0.0"))
	pipeline := generation.NewService(fake, provider, zap.NewNop())
	v0.RegisterGenerationEndpoints(api, "/v0", fake, pipeline)
	return mux
}

func seedTemplate(fake *svctesting.FakeContent) {
	fake.Templates = []*models.ContentTemplate{
		{ID: "tpl-1", TenantID: v0.DefaultTenant, Name: "Blog Post", Slug: "blog-post", Category: "editorial"},
	}
}

func TestGenerateContent_CompletesSession(t *testing.T) {
	fake := svctesting.NewFakeContent()
	seedTemplate(fake)
	mux := newGenerationAPI(fake, &stubProvider{body: map[string]any{
		"headline":        "Generated headline",
		"metaDescription": "A generated summary for search engines.",
		"body":            "Short sentences. Clear writing. You will like it.",
	}})

	w := postJSON(t, mux, "/v0/generate", map[string]any{
		"templateId": "tpl-1",
		"title":      "Generated Post",
		"prompt":     "write a launch post",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var session models.GenerationSession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.Equal(t, models.SessionCompleted, session.State)
	assert.NotEmpty(t, session.ContentID)
	require.NotNil(t, session.Quality)
	assert.Greater(t, session.Quality.Overall, 0.0)

	require.Len(t, fake.Items, 1)
	assert.Equal(t, models.StatusDraft, fake.Items[0].Status)
}

func TestGenerateContent_ProviderFailureReturnsFailedSession(t *testing.T) {
	fake := svctesting.NewFakeContent()
	seedTemplate(fake)
	mux := newGenerationAPI(fake, &stubProvider{err: errors.New("model overloaded")})

	w := postJSON(t, mux, "/v0/generate", map[string]any{
		"templateId": "tpl-1",
		"title":      "Generated Post",
		"prompt":     "write a launch post",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var session models.GenerationSession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.Equal(t, models.SessionFailed, session.State)
	assert.Contains(t, session.Error, "model overloaded")
	assert.Empty(t, fake.Items)
}

func TestGenerateContent_UnknownTemplateIs404(t *testing.T) {
	fake := svctesting.NewFakeContent()
	mux := newGenerationAPI(fake, &stubProvider{body: map[string]any{}})

	w := postJSON(t, mux, "/v0/generate", map[string]any{
		"templateId": "missing",
		"title":      "Generated Post",
		"prompt":     "write a launch post",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListSessions(t *testing.T) {
	fake := svctesting.NewFakeContent()
	fake.Sessions = []*models.GenerationSession{
		{ID: "s1", TenantID: v0.DefaultTenant, TemplateID: "tpl-1", State: models.SessionCompleted},
		{ID: "s2", TenantID: "other-tenant", TemplateID: "tpl-1", State: models.SessionCompleted},
	}
	mux := newGenerationAPI(fake, nil)

	req := httptest.NewRequest(http.MethodGet, "/v0/sessions", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"s1"`)
	assert.NotContains(t, w.Body.String(), `"s2"`)
}
