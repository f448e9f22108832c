package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/siteforge-dev/siteforge/internal/cms/database"
	svctesting "github.com/siteforge-dev/siteforge/internal/cms/service/testing"
	"github.com/siteforge-dev/siteforge/pkg/models"
)

func TestImportBuiltinTemplates(t *testing.T) {
	fake := svctesting.NewFakeContent()

	err := ImportBuiltinTemplates(context.Background(), fake, "tenant-a", zap.NewNop())
	require.NoError(t, err)

	require.Len(t, fake.Templates, 4)
	names := make([]string, 0, len(fake.Templates))
	for _, tpl := range fake.Templates {
		assert.Equal(t, "tenant-a", tpl.TenantID)
		assert.NotEmpty(t, tpl.Slug)
		names = append(names, tpl.Name)
	}
	assert.Contains(t, names, "Blog Post")
	assert.Contains(t, names, "Landing Page")
}

func TestImportBuiltinTemplatesSkipsExisting(t *testing.T) {
	fake := svctesting.NewFakeContent()
	fake.CreateTemplateFn = func(ctx context.Context, tenantID string, in *models.CreateTemplateInput) (*models.ContentTemplate, error) {
		return nil, database.ErrAlreadyExists
	}

	err := ImportBuiltinTemplates(context.Background(), fake, "tenant-a", zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, fake.Templates)
}

func TestLoadTemplateDataRejectsGarbage(t *testing.T) {
	_, err := loadTemplateData([]byte("{not yaml"))
	assert.Error(t, err)
}
