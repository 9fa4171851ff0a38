// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

The start of a request is logged at debug level with the client IP. The
completion line carries the status, a human-readable response size
(go-humanize) and duration_ms.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, Accept-Language and X-Device-UUID.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.RetryableErrorResponse(w, http.StatusServiceUnavailable, "catalog is not loaded")

Parse JSON request bodies. Anything over 1 MiB fails with ErrBodyTooLarge:

	var req models.SetRatingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

GetClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then
RemoteAddr with the port stripped (IPv6 brackets included):

	ip := middleware.GetClientIP(r)
*/
package middleware
