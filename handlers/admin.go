// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/skills-matrix/auth"
	"github.com/danielhkuo/skills-matrix/catalog"
	"github.com/danielhkuo/skills-matrix/cliparse"
	"github.com/danielhkuo/skills-matrix/middleware"
	"github.com/danielhkuo/skills-matrix/models"
	"github.com/danielhkuo/skills-matrix/scoring"
	"github.com/danielhkuo/skills-matrix/store"
)

type AdminHandler struct {
	st  *store.Store
	cat *catalog.Catalog
	cfg cliparse.Config
}

func NewAdminHandler(st *store.Store, cat *catalog.Catalog, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{st: st, cat: cat, cfg: cfg}
}

// authorize checks the X-Admin-Password header. On mismatch the request
// is denied; the caller may simply retry.
func (h *AdminHandler) authorize(w http.ResponseWriter, r *http.Request) bool {
	password := r.Header.Get("X-Admin-Password")
	if err := auth.CheckAdminPassword(password, h.cfg.AdminPassword); err != nil {
		slog.Warn("admin access denied", "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin password")
		return false
	}
	return true
}

// Responses handles GET /admin/responses
func (h *AdminHandler) Responses(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	records, err := h.st.LoadAll()
	if err != nil {
		slog.Error("failed to load responses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load responses")
		return
	}

	entries := make([]models.AdminResponseEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, models.AdminResponseEntry{
			Response:     rec,
			SubmittedAgo: humanize.Time(rec.Timestamp),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.AdminResponsesResponse{
		Count:     len(entries),
		Responses: entries,
	})
}

// Summary handles GET /admin/summary
func (h *AdminHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	records, err := h.st.LoadAll()
	if err != nil {
		slog.Error("failed to load responses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load responses")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, struct {
		ResponseCount int                    `json:"response_count"`
		Skills        []scoring.SkillSummary `json:"skills"`
	}{
		ResponseCount: len(records),
		Skills:        scoring.Summarize(records, h.cat.Names()),
	})
}
