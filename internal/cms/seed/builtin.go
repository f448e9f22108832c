// Package seed imports built-in content templates and keeps an optional
// template directory synced into the store.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/siteforge-dev/siteforge/internal/cms/database"
	"github.com/siteforge-dev/siteforge/internal/cms/service"
	"github.com/siteforge-dev/siteforge/pkg/models"
)

//go:embed templates.yaml
var builtinTemplateData []byte

// TemplateFile is the YAML shape of one seed template entry.
type TemplateFile struct {
	Name      string         `yaml:"name"`
	Category  string         `yaml:"category"`
	Structure map[string]any `yaml:"structure,omitempty"`
}

// ImportBuiltinTemplates creates the built-in templates for a tenant.
// Templates that already exist are skipped.
func ImportBuiltinTemplates(ctx context.Context, content service.ContentService, tenantID string, logger *zap.Logger) error {
	templates, err := loadTemplateData(builtinTemplateData)
	if err != nil {
		return err
	}

	for _, tpl := range templates {
		importTemplate(ctx, content, tenantID, tpl, logger)
	}

	return nil
}

func loadTemplateData(data []byte) ([]*TemplateFile, error) {
	var templates []*TemplateFile
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse template seed data: %w", err)
	}
	return templates, nil
}

func importTemplate(ctx context.Context, content service.ContentService, tenantID string, tpl *TemplateFile, logger *zap.Logger) {
	if tpl.Name == "" {
		logger.Warn("skipping seed template with empty name")
		return
	}

	_, err := content.CreateTemplate(ctx, tenantID, &models.CreateTemplateInput{
		Name:      tpl.Name,
		Category:  tpl.Category,
		Structure: tpl.Structure,
	})
	if err != nil {
		if errors.Is(err, database.ErrAlreadyExists) {
			logger.Debug("seed template already present", zap.String("template", tpl.Name))
			return
		}
		logger.Error("failed to import seed template", zap.String("template", tpl.Name), zap.Error(err))
		return
	}

	logger.Info("imported seed template", zap.String("template", tpl.Name), zap.String("tenant_id", tenantID))
}
