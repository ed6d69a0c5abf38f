// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires HTTP routes to handlers using Go 1.22+ ServeMux
patterns with method matching and path parameters:

	mux := router.NewRouter(db, cfg)

All API routes are wrapped with request logging. The voting engine and
image store are constructed here and shared across handlers.
*/
package router
