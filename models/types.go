package models

import "time"

// Session state constants
const (
	StateEditing   = "editing"
	StateSubmitted = "submitted"
)

// Request types

type SetAllocationRequest struct {
	Points int `json:"points"`
}

type SubmitRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Response types

type CreateSessionResponse struct {
	SessionToken string `json:"session_token"`
}

type AllocationEntry struct {
	Skill   string `json:"skill"`
	Points  int    `json:"points"`
	Ceiling int    `json:"ceiling"`
	Tier    string `json:"tier"`
}

type SessionStateResponse struct {
	State       string            `json:"state"`
	Total       int               `json:"total"`
	Remaining   int               `json:"remaining"`
	Allocations []AllocationEntry `json:"allocations"`
	ResponseID  string            `json:"response_id,omitempty"`
}

type SetAllocationResponse struct {
	Skill     string `json:"skill"`
	Points    int    `json:"points"`
	Total     int    `json:"total"`
	Remaining int    `json:"remaining"`
	Ceiling   int    `json:"ceiling"`
	Tier      string `json:"tier"`
}

type SubmitResponse struct {
	ResponseID string `json:"response_id"`
	Message    string `json:"message"`
	Notified   bool   `json:"notified"`
}

type TierLegend struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Limited   string `json:"limited"`
}

type CatalogResponse struct {
	Skills      []string   `json:"skills"`
	PerSkillMax int        `json:"per_skill_max"`
	TotalMax    int        `json:"total_max"`
	Legend      TierLegend `json:"legend"`
}

type AdminResponseEntry struct {
	Response
	SubmittedAgo string `json:"submitted_ago"`
}

type AdminResponsesResponse struct {
	Count     int                  `json:"count"`
	Responses []AdminResponseEntry `json:"responses"`
}

// Domain types

// Response is one persisted submission. Immutable once appended to the store.
type Response struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Email     string         `json:"email"`
	Name      string         `json:"name"`
	Points    map[string]int `json:"points"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
