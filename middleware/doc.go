// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and shared response helpers.

# Logging

WithLogging wraps a handler with start/completion logging:

	mux.HandleFunc("POST /sessions", middleware.WithLogging(handler.Create))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "points out of range")
	middleware.ParseJSONBody(r, &req)

# CORS

CORS wraps the whole mux and answers preflight requests; it is applied
around the router in main.

# Client IP

GetClientIP resolves the caller's address through X-Forwarded-For and
X-Real-IP before falling back to RemoteAddr. Used for submit logging.
*/
package middleware
