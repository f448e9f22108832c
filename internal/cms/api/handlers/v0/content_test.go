package v0_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v0 "github.com/siteforge-dev/siteforge/internal/cms/api/handlers/v0"
	svctesting "github.com/siteforge-dev/siteforge/internal/cms/service/testing"
	"github.com/siteforge-dev/siteforge/pkg/models"
)

func newContentAPI(fake *svctesting.FakeContent) *http.ServeMux {
	mux := http.NewServeMux()
	api := humago.New(mux, huma.DefaultConfig("Test API", "1.0.0"))
	v0.RegisterContentEndpoints(api, "/v0", fake)
	return mux
}

func postJSON(t *testing.T, mux *http.ServeMux, path string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestCreateContent_StartsAsDraft(t *testing.T) {
	fake := svctesting.NewFakeContent()
	mux := newContentAPI(fake)

	w := postJSON(t, mux, "/v0/content", map[string]any{
		"title": "Launch Announcement",
		"body":  map[string]any{"headline": "We launched"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var item models.ContentItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, models.StatusDraft, item.Status)
	assert.Equal(t, "launch-announcement", item.Slug)
	assert.Equal(t, "1.0.0", item.CurrentVersion)
}

func TestUpdateContent_BodyChangeBumpsVersion(t *testing.T) {
	fake := svctesting.NewFakeContent()
	mux := newContentAPI(fake)

	w := postJSON(t, mux, "/v0/content", map[string]any{
		"title": "Launch Announcement",
		"body":  map[string]any{"headline": "We launched"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var item models.ContentItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))

	payload, err := json.Marshal(map[string]any{
		"body": map[string]any{"headline": "We launched, again"},
	})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, "/v0/content/"+item.ID, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.ContentItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "1.0.1", updated.CurrentVersion)

	req = httptest.NewRequest(http.MethodGet, "/v0/content/"+item.ID+"/versions", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)
}

func TestUpdateContent_RejectsUnknownStatus(t *testing.T) {
	fake := svctesting.NewFakeContent()
	fake.Items = []*models.ContentItem{
		{ID: "c1", TenantID: v0.DefaultTenant, Title: "Post", Slug: "post", Status: models.StatusDraft, CurrentVersion: "1.0.0"},
	}
	mux := newContentAPI(fake)

	payload, err := json.Marshal(map[string]any{"status": "live"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, "/v0/content/c1", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListContent_RejectsUnknownStatusFilter(t *testing.T) {
	mux := newContentAPI(svctesting.NewFakeContent())

	req := httptest.NewRequest(http.MethodGet, "/v0/content?status=live", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetContentBySlug(t *testing.T) {
	fake := svctesting.NewFakeContent()
	fake.Items = []*models.ContentItem{
		{ID: "c1", TenantID: v0.DefaultTenant, Title: "Post", Slug: "post", Status: models.StatusPublished, CurrentVersion: "1.0.0"},
	}
	mux := newContentAPI(fake)

	req := httptest.NewRequest(http.MethodGet, "/v0/content/slug/post", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"c1"`)

	req = httptest.NewRequest(http.MethodGet, "/v0/content/slug/missing", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
