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
	svctesting "github.com/siteforge-dev/siteforge/internal/cms/service/testing"
	"github.com/siteforge-dev/siteforge/pkg/models"
)

func newSchedulesAPI(fake *svctesting.FakeContent) *http.ServeMux {
	mux := http.NewServeMux()
	api := humago.New(mux, huma.DefaultConfig("Test API", "1.0.0"))
	v0.RegisterSchedulesEndpoints(api, "/v0", fake)
	return mux
}

func TestCreateSchedule(t *testing.T) {
	fake := svctesting.NewFakeContent()
	fake.Items = []*models.ContentItem{
		{ID: "c1", TenantID: v0.DefaultTenant, Title: "Post", Slug: "post", Status: models.StatusDraft, CurrentVersion: "1.0.0"},
	}
	mux := newSchedulesAPI(fake)

	w := postJSON(t, mux, "/v0/schedules", map[string]any{
		"contentId": "c1",
		"target":    "published",
		"runAt":     time.Now().Add(time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var schedule models.PublishSchedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &schedule))
	assert.Equal(t, "c1", schedule.ContentID)
	assert.Equal(t, models.StatusPublished, schedule.Target)
	assert.False(t, schedule.Done)
}

func TestCreateSchedule_UnknownContentIs404(t *testing.T) {
	mux := newSchedulesAPI(svctesting.NewFakeContent())

	w := postJSON(t, mux, "/v0/schedules", map[string]any{
		"contentId": "missing",
		"target":    "published",
		"runAt":     time.Now().Add(time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApplyDueSchedules(t *testing.T) {
	fake := svctesting.NewFakeContent()
	fake.Items = []*models.ContentItem{
		{ID: "c1", TenantID: v0.DefaultTenant, Title: "Post", Slug: "post", Status: models.StatusDraft, CurrentVersion: "1.0.0"},
	}
	fake.Schedules = []*models.PublishSchedule{
		{ID: "sch1", TenantID: v0.DefaultTenant, ContentID: "c1", Target: models.StatusPublished, RunAt: time.Now().Add(-time.Minute)},
	}
	mux := newSchedulesAPI(fake)

	req := httptest.NewRequest(http.MethodPost, "/v0/schedules/apply", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"applied":1`)
	assert.Equal(t, models.StatusPublished, fake.Items[0].Status)
	assert.True(t, fake.Schedules[0].Done)
}
