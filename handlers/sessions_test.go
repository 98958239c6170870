package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/skills-matrix/models"
	"github.com/danielhkuo/skills-matrix/notify"
	"github.com/danielhkuo/skills-matrix/session"
	"github.com/danielhkuo/skills-matrix/testutil"
)

// newTestSessionHandler wires a handler against a real temp-dir CSV store.
func newTestSessionHandler(t *testing.T) (*SessionHandler, *session.Manager) {
	t.Helper()

	cfg := testutil.GetTestConfig()
	cat := testutil.TestCatalog(t)
	st := testutil.SetupTestStore(t, cat, cfg.ExemptEmail)
	mgr := session.NewManager(cat)
	pipe := session.NewPipeline(st, notify.Noop{}, cfg.ExemptEmail)
	return NewSessionHandler(mgr, pipe, cfg), mgr
}

func createSession(t *testing.T, h *SessionHandler) string {
	t.Helper()

	req := testutil.MakeRequest("POST", "/sessions", nil, nil)
	w := httptest.NewRecorder()
	h.Create(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)
	var resp models.CreateSessionResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.SessionToken == "" {
		t.Fatal("Create returned empty session_token")
	}
	return resp.SessionToken
}

func setAllocation(t *testing.T, h *SessionHandler, token, skill string, points int) *httptest.ResponseRecorder {
	t.Helper()

	req := testutil.MakeRequest("PUT", "/sessions/allocations/"+skill,
		models.SetAllocationRequest{Points: points},
		map[string]string{"X-Session-Token": token})
	req.SetPathValue("skill", skill)
	w := httptest.NewRecorder()
	h.SetAllocation(w, req)
	return w
}

func TestCreateSession(t *testing.T) {
	h, _ := newTestSessionHandler(t)
	token := createSession(t, h)

	// A fresh session starts in editing with an all-zero ledger.
	req := testutil.MakeRequest("GET", "/sessions/me", nil, map[string]string{"X-Session-Token": token})
	w := httptest.NewRecorder()
	h.GetState(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var state models.SessionStateResponse
	testutil.AssertJSON(t, w, &state)

	if state.State != models.StateEditing {
		t.Errorf("state = %q, want editing", state.State)
	}
	if state.Total != 0 || state.Remaining != 90 {
		t.Errorf("total/remaining = %d/%d, want 0/90", state.Total, state.Remaining)
	}
	if len(state.Allocations) != len(testutil.TestSkills) {
		t.Errorf("allocations = %d entries, want %d", len(state.Allocations), len(testutil.TestSkills))
	}
	for _, a := range state.Allocations {
		if a.Points != 0 || a.Ceiling != 10 || a.Tier != "none" {
			t.Errorf("fresh allocation %q = %+v, want 0 points, ceiling 10, tier none", a.Skill, a)
		}
	}
}

func TestGetState_RequiresToken(t *testing.T) {
	h, _ := newTestSessionHandler(t)

	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"missing token", nil},
		{"unknown token", map[string]string{"X-Session-Token": "not-a-session"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/sessions/me", nil, tt.headers)
			w := httptest.NewRecorder()
			h.GetState(w, req)
			testutil.AssertStatus(t, w, http.StatusUnauthorized)
		})
	}
}

func TestSetAllocation(t *testing.T) {
	h, _ := newTestSessionHandler(t)
	token := createSession(t, h)

	tests := []struct {
		name           string
		skill          string
		points         int
		expectedStatus int
	}{
		{"valid allocation", "A", 10, http.StatusOK},
		{"valid mid-range", "B", 5, http.StatusOK},
		{"negative points", "C", -1, http.StatusBadRequest},
		{"above per-skill cap", "C", 11, http.StatusBadRequest},
		{"unknown skill", "Nope", 5, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := setAllocation(t, h, token, tt.skill, tt.points)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestSetAllocation_ResponseFields(t *testing.T) {
	h, _ := newTestSessionHandler(t)
	token := createSession(t, h)

	w := setAllocation(t, h, token, "A", 8)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.SetAllocationResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Skill != "A" || resp.Points != 8 {
		t.Errorf("echoed allocation = %q/%d, want A/8", resp.Skill, resp.Points)
	}
	if resp.Total != 8 || resp.Remaining != 82 {
		t.Errorf("total/remaining = %d/%d, want 8/82", resp.Total, resp.Remaining)
	}
	if resp.Tier != "primary" {
		t.Errorf("tier = %q, want primary", resp.Tier)
	}
	if resp.Ceiling != 10 {
		t.Errorf("ceiling = %d, want 10", resp.Ceiling)
	}
}

func TestSetAllocation_BudgetExceeded(t *testing.T) {
	h, _ := newTestSessionHandler(t)
	token := createSession(t, h)

	// Fill the whole budget, then try to add one more point elsewhere.
	for _, skill := range testutil.TestSkills {
		w := setAllocation(t, h, token, skill, 10)
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	// All 90 points used; every further increase must be rejected and the
	// ledger must be unchanged by the attempt.
	w := setAllocation(t, h, token, "A", 10) // idempotent rewrite is fine
	testutil.AssertStatus(t, w, http.StatusOK)

	req := testutil.MakeRequest("GET", "/sessions/me", nil, map[string]string{"X-Session-Token": token})
	rec := httptest.NewRecorder()
	h.GetState(rec, req)
	var state models.SessionStateResponse
	testutil.AssertJSON(t, rec, &state)
	if state.Total != 90 || state.Remaining != 0 {
		t.Fatalf("total/remaining = %d/%d, want 90/0", state.Total, state.Remaining)
	}
}

func TestSubmit(t *testing.T) {
	tests := []struct {
		name           string
		fill           bool
		email          string
		subName        string
		expectedStatus int
	}{
		{"accepted", true, "x@y.com", "Pat", http.StatusCreated},
		{"blank email", true, "", "Pat", http.StatusBadRequest},
		{"blank name", true, "x@y.com", "", http.StatusBadRequest},
		{"total mismatch", false, "x@y.com", "Pat", http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestSessionHandler(t)
			token := createSession(t, h)

			if tt.fill {
				for _, skill := range testutil.TestSkills {
					w := setAllocation(t, h, token, skill, 10)
					testutil.AssertStatus(t, w, http.StatusOK)
				}
			}

			req := testutil.MakeRequest("POST", "/sessions/submit",
				models.SubmitRequest{Email: tt.email, Name: tt.subName},
				map[string]string{"X-Session-Token": token})
			w := httptest.NewRecorder()
			h.Submit(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.SubmitResponse
				testutil.AssertJSON(t, w, &resp)
				if len(resp.ResponseID) != 8 {
					t.Errorf("response_id = %q, want 8 hex chars", resp.ResponseID)
				}
				if !resp.Notified {
					t.Error("notified = false with noop notifier")
				}
			}
		})
	}
}

func TestSubmit_TerminalState(t *testing.T) {
	h, _ := newTestSessionHandler(t)
	token := createSession(t, h)

	for _, skill := range testutil.TestSkills {
		testutil.AssertStatus(t, setAllocation(t, h, token, skill, 10), http.StatusOK)
	}

	req := testutil.MakeRequest("POST", "/sessions/submit",
		models.SubmitRequest{Email: "x@y.com", Name: "Pat"},
		map[string]string{"X-Session-Token": token})
	w := httptest.NewRecorder()
	h.Submit(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Further edits are refused.
	w2 := setAllocation(t, h, token, "A", 1)
	testutil.AssertStatus(t, w2, http.StatusConflict)

	// Resubmission is refused.
	req = testutil.MakeRequest("POST", "/sessions/submit",
		models.SubmitRequest{Email: "other@y.com", Name: "Pat"},
		map[string]string{"X-Session-Token": token})
	w3 := httptest.NewRecorder()
	h.Submit(w3, req)
	testutil.AssertStatus(t, w3, http.StatusConflict)

	// State reports submitted with the response ID, ledger reset to zero.
	req = testutil.MakeRequest("GET", "/sessions/me", nil, map[string]string{"X-Session-Token": token})
	w4 := httptest.NewRecorder()
	h.GetState(w4, req)
	var state models.SessionStateResponse
	testutil.AssertJSON(t, w4, &state)
	if state.State != models.StateSubmitted {
		t.Errorf("state = %q, want submitted", state.State)
	}
	if state.ResponseID == "" {
		t.Error("response_id missing from submitted state")
	}
	if state.Total != 0 {
		t.Errorf("total after submit = %d, want 0", state.Total)
	}
}

func TestSubmit_DuplicateEmailAcrossSessions(t *testing.T) {
	h, _ := newTestSessionHandler(t)

	submit := func(email string) *httptest.ResponseRecorder {
		token := createSession(t, h)
		for _, skill := range testutil.TestSkills {
			testutil.AssertStatus(t, setAllocation(t, h, token, skill, 10), http.StatusOK)
		}
		req := testutil.MakeRequest("POST", "/sessions/submit",
			models.SubmitRequest{Email: email, Name: "Pat"},
			map[string]string{"X-Session-Token": token})
		w := httptest.NewRecorder()
		h.Submit(w, req)
		return w
	}

	testutil.AssertStatus(t, submit("dup@z.com"), http.StatusCreated)
	testutil.AssertStatus(t, submit("dup@z.com"), http.StatusConflict)

	// The exempt test address may submit any number of times.
	exempt := testutil.GetTestConfig().ExemptEmail
	testutil.AssertStatus(t, submit(exempt), http.StatusCreated)
	testutil.AssertStatus(t, submit(exempt), http.StatusCreated)
}
