// Package v0 contains the v0 API handlers.
package v0

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/siteforge-dev/siteforge/internal/cms/database"
)

// mapStoreError translates content store sentinels into HTTP errors.
func mapStoreError(err error, resource string) error {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return huma.Error404NotFound(resource + " not found")
	case errors.Is(err, database.ErrAlreadyExists):
		return huma.Error409Conflict(resource + " already exists")
	case errors.Is(err, database.ErrInvalidInput):
		return huma.Error400BadRequest("Invalid " + resource + " input")
	default:
		return huma.Error500InternalServerError("Failed to access "+resource, err)
	}
}
