// Package handlers wires the storefront HTTP surface: public catalog
// reads, admin catalog replacement, and image upload.
package handlers

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ahsanlabs/storefront-service/internal/catalog"
	"github.com/ahsanlabs/storefront-service/internal/media"
)

// Handler carries the ports the HTTP surface depends on.
type Handler struct {
	catalog catalog.Store
	media   *media.Store
	logger  zerolog.Logger

	// afterCatalogWrite runs (asynchronously) after a successful
	// catalog replacement; used for the optional git auto-commit.
	afterCatalogWrite func()
}

// New creates the handler set over the given stores.
func New(catalogStore catalog.Store, mediaStore *media.Store) *Handler {
	return &Handler{
		catalog: catalogStore,
		media:   mediaStore,
		logger:  log.With().Str("component", "handlers").Logger(),
	}
}

// OnCatalogWrite registers a hook invoked after successful catalog
// replacements.
func (h *Handler) OnCatalogWrite(fn func()) {
	h.afterCatalogWrite = fn
}
