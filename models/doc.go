// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SetAllocationRequest: points
  - SubmitRequest: email, name

# Response Types

Types for JSON responses:

  - CreateSessionResponse: session_token
  - SessionStateResponse: state, total, remaining, allocations
  - SetAllocationResponse: skill, points, total, remaining, ceiling, tier
  - SubmitResponse: response_id, message, notified
  - CatalogResponse: skills, per_skill_max, total_max, legend
  - AdminResponsesResponse: count, responses
  - ErrorResponse: error, message

# Domain Types

  - Response: one persisted submission (ID, timestamp, email, name,
    skill → points). Never mutated after creation.

# Constants

Session states:

	StateEditing   = "editing"
	StateSubmitted = "submitted"
*/
package models
