// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

  - WithLogging: request start/completion logging with duration
  - CORS: cross-origin headers and preflight handling
  - JSONResponse / ErrorResponse: consistent JSON envelopes
  - ParseJSONBody: request body decoding
  - GetClientIP: best-effort client address for audit logs

Failure responses always use the models.ErrorResponse shape so clients
can rely on one error format across every endpoint.
*/
package middleware
