// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/skills-matrix/models"
	"github.com/danielhkuo/skills-matrix/notify"
	"github.com/danielhkuo/skills-matrix/scoring"
	"github.com/danielhkuo/skills-matrix/session"
	"github.com/danielhkuo/skills-matrix/testutil"
)

// TestFullSurveyWorkflow tests the complete end-to-end workflow:
// 1. Create a session
// 2. Allocate the full 90-point budget
// 3. Hit the dynamic ceiling on the way
// 4. Submit with identity
// 5. Verify the terminal session state
// 6. Verify the record and the aggregates through the admin view
func TestFullSurveyWorkflow(t *testing.T) {
	cfg := testutil.GetTestConfig()
	cat := testutil.TestCatalog(t)
	st := testutil.SetupTestStore(t, cat, cfg.ExemptEmail)
	mgr := session.NewManager(cat)
	pipe := session.NewPipeline(st, notify.Noop{}, cfg.ExemptEmail)

	sessionHandler := NewSessionHandler(mgr, pipe, cfg)
	adminHandler := NewAdminHandler(st, cat, cfg)

	// Step 1: Create a session
	token := createSession(t, sessionHandler)
	t.Logf("Step 1 - Created session: %s", token)

	// Step 2: Fill the budget (nine skills at the cap)
	for _, skill := range testutil.TestSkills {
		w := setAllocation(t, sessionHandler, token, skill, 10)
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	// Step 3: Budget is full; adding one point after lowering another
	// field must respect the recomputed ceiling.
	w := setAllocation(t, sessionHandler, token, "A", 9)
	testutil.AssertStatus(t, w, http.StatusOK)
	var alloc models.SetAllocationResponse
	testutil.AssertJSON(t, w, &alloc)
	if alloc.Total != 89 || alloc.Remaining != 1 {
		t.Fatalf("Step 3 - total/remaining = %d/%d, want 89/1", alloc.Total, alloc.Remaining)
	}
	w = setAllocation(t, sessionHandler, token, "A", 10)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Step 4: Submit
	req := testutil.MakeRequest("POST", "/sessions/submit",
		models.SubmitRequest{Email: "workflow@z.com", Name: "Workflow Tester"},
		map[string]string{"X-Session-Token": token})
	wr := httptest.NewRecorder()
	sessionHandler.Submit(wr, req)
	testutil.AssertStatus(t, wr, http.StatusCreated)

	var submitResp models.SubmitResponse
	testutil.AssertJSON(t, wr, &submitResp)
	if submitResp.ResponseID == "" {
		t.Fatal("Step 4 - Missing response_id")
	}
	t.Logf("Step 4 - Accepted response: %s", submitResp.ResponseID)

	// Step 5: Session is sealed
	req = testutil.MakeRequest("GET", "/sessions/me", nil, map[string]string{"X-Session-Token": token})
	wr = httptest.NewRecorder()
	sessionHandler.GetState(wr, req)
	var state models.SessionStateResponse
	testutil.AssertJSON(t, wr, &state)
	if state.State != models.StateSubmitted || state.ResponseID != submitResp.ResponseID {
		t.Fatalf("Step 5 - state = %q id = %q, want submitted/%q", state.State, state.ResponseID, submitResp.ResponseID)
	}

	// Step 6: Admin sees the record and the aggregates
	req = testutil.MakeRequest("GET", "/admin/responses", nil,
		map[string]string{"X-Admin-Password": cfg.AdminPassword})
	wr = httptest.NewRecorder()
	adminHandler.Responses(wr, req)
	testutil.AssertStatus(t, wr, http.StatusOK)

	var listing models.AdminResponsesResponse
	testutil.AssertJSON(t, wr, &listing)
	if listing.Count != 1 {
		t.Fatalf("Step 6 - stored responses = %d, want 1", listing.Count)
	}
	rec := listing.Responses[0]
	if rec.Email != "workflow@z.com" || rec.Points["A"] != 10 {
		t.Errorf("Step 6 - stored record = %+v", rec.Response)
	}

	req = testutil.MakeRequest("GET", "/admin/summary", nil,
		map[string]string{"X-Admin-Password": cfg.AdminPassword})
	wr = httptest.NewRecorder()
	adminHandler.Summary(wr, req)
	testutil.AssertStatus(t, wr, http.StatusOK)

	var summary struct {
		ResponseCount int                    `json:"response_count"`
		Skills        []scoring.SkillSummary `json:"skills"`
	}
	testutil.AssertJSON(t, wr, &summary)
	if summary.ResponseCount != 1 {
		t.Errorf("Step 6 - response_count = %d, want 1", summary.ResponseCount)
	}
	for _, row := range summary.Skills {
		if row.PrimaryCount != 1 {
			t.Errorf("Step 6 - %q primary count = %d, want 1", row.Skill, row.PrimaryCount)
		}
	}
}
