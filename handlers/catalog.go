// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/skills-matrix/catalog"
	"github.com/danielhkuo/skills-matrix/ledger"
	"github.com/danielhkuo/skills-matrix/middleware"
	"github.com/danielhkuo/skills-matrix/models"
)

type CatalogHandler struct {
	cat *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{cat: cat}
}

// Get handles GET /catalog
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.CatalogResponse{
		Skills:      h.cat.Names(),
		PerSkillMax: ledger.PerSkillMax,
		TotalMax:    ledger.TotalMax,
		Legend: models.TierLegend{
			Primary:   "8-10 points",
			Secondary: "3-7 points",
			Limited:   "1-2 points",
		},
	})
}
