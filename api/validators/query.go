package validators

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	pkgerrors "github.com/printhub/printhub-backend/pkg/errors"
)

const maxSlugLength = 120

// PathSlug reads a catalog slug from the route. Slugs are lower-case words joined by dashes.
func PathSlug(r *http.Request, key string) (string, error) {
	raw := strings.ToLower(strings.TrimSpace(chi.URLParam(r, key)))
	if raw == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "path parameter is required").WithDetails(map[string]any{"field": key})
	}
	if len(raw) > maxSlugLength || !isSlug(raw) {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "path parameter must be a slug").WithDetails(map[string]any{"field": key})
	}
	return raw, nil
}

func isSlug(value string) bool {
	for i, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '-' && i > 0 && i < len(value)-1:
		default:
			return false
		}
	}
	return true
}
