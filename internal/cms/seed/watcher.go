package seed

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/siteforge-dev/siteforge/internal/cms/service"
)

// Watcher imports YAML template files from a directory and re-imports them
// when they change on disk.
type Watcher struct {
	content  service.ContentService
	tenantID string
	dir      string
	logger   *zap.Logger
}

// NewWatcher creates a template directory watcher for one tenant.
func NewWatcher(content service.ContentService, tenantID, dir string, logger *zap.Logger) *Watcher {
	return &Watcher{
		content:  content,
		tenantID: tenantID,
		dir:      dir,
		logger:   logger,
	}
}

// Run imports every template file already in the directory, then blocks
// watching for changes until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.importDir(ctx); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if !isTemplateFile(event.Name) {
				continue
			}
			w.importFile(ctx, event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("template watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) importDir(ctx context.Context) error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !isTemplateFile(entry.Name()) {
			continue
		}
		w.importFile(ctx, filepath.Join(w.dir, entry.Name()))
	}
	return nil
}

func (w *Watcher) importFile(ctx context.Context, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		w.logger.Warn("failed to read template file", zap.String("path", path), zap.Error(err))
		return
	}

	templates, err := loadTemplateData(data)
	if err != nil {
		w.logger.Warn("failed to parse template file", zap.String("path", path), zap.Error(err))
		return
	}

	for _, tpl := range templates {
		importTemplate(ctx, w.content, w.tenantID, tpl, w.logger)
	}
}

func isTemplateFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
