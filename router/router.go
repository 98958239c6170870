// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/skills-matrix/catalog"
	"github.com/danielhkuo/skills-matrix/cliparse"
	"github.com/danielhkuo/skills-matrix/handlers"
	"github.com/danielhkuo/skills-matrix/middleware"
	"github.com/danielhkuo/skills-matrix/session"
	"github.com/danielhkuo/skills-matrix/store"
)

func NewRouter(cat *catalog.Catalog, mgr *session.Manager, pipe *session.Pipeline, st *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(mgr, pipe, cfg)
	catalogHandler := handlers.NewCatalogHandler(cat)
	adminHandler := handlers.NewAdminHandler(st, cat, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Catalog (public)
	mux.HandleFunc("GET /catalog", middleware.WithLogging(catalogHandler.Get))

	// Session operations (public)
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.Create))
	mux.HandleFunc("GET /sessions/me", middleware.WithLogging(sessionHandler.GetState))
	mux.HandleFunc("PUT /sessions/allocations/{skill}", middleware.WithLogging(sessionHandler.SetAllocation))
	mux.HandleFunc("POST /sessions/submit", middleware.WithLogging(sessionHandler.Submit))

	// Admin reporting (password-gated)
	mux.HandleFunc("GET /admin/responses", middleware.WithLogging(adminHandler.Responses))
	mux.HandleFunc("GET /admin/summary", middleware.WithLogging(adminHandler.Summary))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("skills-matrix API v1"))
	})

	return mux
}
