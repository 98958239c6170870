// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/skills-matrix/cliparse"
	"github.com/danielhkuo/skills-matrix/ledger"
	"github.com/danielhkuo/skills-matrix/middleware"
	"github.com/danielhkuo/skills-matrix/models"
	"github.com/danielhkuo/skills-matrix/scoring"
	"github.com/danielhkuo/skills-matrix/session"
	"github.com/danielhkuo/skills-matrix/validate"
)

type SessionHandler struct {
	mgr  *session.Manager
	pipe *session.Pipeline
	cfg  cliparse.Config
}

func NewSessionHandler(mgr *session.Manager, pipe *session.Pipeline, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{mgr: mgr, pipe: pipe, cfg: cfg}
}

// Create handles POST /sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	s := h.mgr.Create()

	slog.Info("session created", "session", s.Token())

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionToken: s.Token(),
	})
}

// sessionFromRequest resolves the X-Session-Token header to a live session.
// Writes the error response itself and returns nil on failure.
func (h *SessionHandler) sessionFromRequest(w http.ResponseWriter, r *http.Request) *session.Session {
	token := r.Header.Get("X-Session-Token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Session-Token header required")
		return nil
	}

	s, err := h.mgr.Get(token)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid session token")
		return nil
	}
	return s
}

// GetState handles GET /sessions/me
func (h *SessionHandler) GetState(w http.ResponseWriter, r *http.Request) {
	s := h.sessionFromRequest(w, r)
	if s == nil {
		return
	}

	v := s.View()

	allocations := make([]models.AllocationEntry, 0, len(v.Skills))
	for _, skill := range v.Skills {
		points := v.Points[skill]
		ceiling, err := s.Ceiling(skill)
		if err != nil {
			slog.Error("failed to compute ceiling", "skill", skill, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read session")
			return
		}
		allocations = append(allocations, models.AllocationEntry{
			Skill:   skill,
			Points:  points,
			Ceiling: ceiling,
			Tier:    string(scoring.Classify(points)),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.SessionStateResponse{
		State:       v.State,
		Total:       v.Total,
		Remaining:   v.Remaining,
		Allocations: allocations,
		ResponseID:  v.ResponseID,
	})
}

// SetAllocation handles PUT /sessions/allocations/{skill}
func (h *SessionHandler) SetAllocation(w http.ResponseWriter, r *http.Request) {
	skill := r.PathValue("skill")
	if skill == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "skill is required")
		return
	}

	s := h.sessionFromRequest(w, r)
	if s == nil {
		return
	}

	var req models.SetAllocationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := s.Set(skill, req.Points); err != nil {
		switch {
		case errors.Is(err, ledger.ErrUnknownSkill):
			middleware.ErrorResponse(w, http.StatusNotFound, "Unknown skill: "+skill)
		case errors.Is(err, ledger.ErrOutOfRange):
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ledger.ErrBudgetExceeded):
			middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		case errors.Is(err, session.ErrAlreadySubmitted):
			middleware.ErrorResponse(w, http.StatusConflict, "Session has already submitted")
		default:
			slog.Error("failed to set allocation", "skill", skill, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to set allocation")
		}
		return
	}

	v := s.View()
	ceiling, err := s.Ceiling(skill)
	if err != nil {
		// Unreachable after a successful Set, which already validated the
		// skill name.
		slog.Error("failed to compute ceiling", "skill", skill, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to set allocation")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SetAllocationResponse{
		Skill:     skill,
		Points:    req.Points,
		Total:     v.Total,
		Remaining: v.Remaining,
		Ceiling:   ceiling,
		Tier:      string(scoring.Classify(req.Points)),
	})
}

// Submit handles POST /sessions/submit
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	s := h.sessionFromRequest(w, r)
	if s == nil {
		return
	}

	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	rec, notified, err := h.pipe.Submit(s, req.Email, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, validate.ErrEmptyIdentity):
			middleware.ErrorResponse(w, http.StatusBadRequest, "email and name are required")
		case errors.Is(err, validate.ErrTotalMismatch):
			middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		case errors.Is(err, validate.ErrDuplicateSubmitter):
			middleware.ErrorResponse(w, http.StatusConflict, "A response from this email already exists")
		case errors.Is(err, session.ErrAlreadySubmitted):
			middleware.ErrorResponse(w, http.StatusConflict, "Session has already submitted")
		case errors.Is(err, session.ErrPersistence):
			slog.Error("failed to persist response", "error", err, "remote", middleware.GetClientIP(r))
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save response; please retry")
		default:
			slog.Error("submit failed", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit response")
		}
		return
	}

	message := "Response submitted successfully"
	if !notified {
		message = "Response submitted successfully (notification delivery failed)"
	}

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponse{
		ResponseID: rec.ID,
		Message:    message,
		Notified:   notified,
	})
}
