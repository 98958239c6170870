// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ routing.

NewRouter wires handlers to method-qualified patterns:

	GET  /health
	GET  /catalog
	POST /sessions
	GET  /sessions/me
	PUT  /sessions/allocations/{skill}
	POST /sessions/submit
	GET  /admin/responses
	GET  /admin/summary

Every application route is wrapped in request logging; CORS wraps the
whole mux in main.
*/
package router
