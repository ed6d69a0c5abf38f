// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the costume vote API server.

Costumevote runs the voting for a time-boxed costume contest: guests
receive single-use auth codes that each grant one registration and one
vote batch, and ranked results stay hidden until an admin opens them.

# Starting the Server

The server requires a PostgreSQL connection via environment variables
(a .env file works) or CLI flags:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3319 -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3319)
  - IMAGE_DIR (-img): Directory for uploaded images (default: img)
  - RESULTS_TOP_N (-top-n): Size of the results top list (default: 5)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - engine: event phases, vote casting, results, admin actions
  - store: data access over the event/code/candidate/image tables
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - images: upload processing and storage
  - auth: ID and auth code generation
  - db: Schema creation
  - cliparse: Configuration parsing

Events and their auth codes are provisioned directly in the database at
event setup time; the API itself never mints codes.

See package documentation for each component.
*/
package main
