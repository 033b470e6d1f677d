// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

/*
Package main is the entry point for the Catalogrec server application.

Catalogrec loads a product catalog once at startup, precomputes feature
vectors, pairwise cosine similarity and the trending and deals rankings, and
serves them read-only over a JSON HTTP API.

# Application Architecture

	RootSupervisor ("catalogrec")
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, an optional YAML file and environment variables
 2. Logging: zerolog with JSON/console output modes
 3. Catalog: CATALOG_PATH (.json, .yaml, .yml, .toml) or the built-in catalog
 4. Recommendation engine: validated, immutable, built once
 5. Supervisor Tree: Suture v4 process supervision
 6. HTTP Server: Chi router with middleware stack

An invalid catalog is fatal: the process logs the offending products and
exits non-zero before the server starts.

# Commands

	catalogrec [serve]                 run the HTTP server
	catalogrec similar <id>            print similar products
	catalogrec trending                print trending products
	catalogrec deals                   print best-value products
	catalogrec products [--category C] [--search S]
	catalogrec validate [file]         check a catalog file

The global --config flag sets CONFIG_PATH.

# Configuration

Key environment variables:

	HTTP_PORT            listen port (default 5000)
	HTTP_HOST            listen address (default 0.0.0.0)
	CATALOG_PATH         catalog file; empty selects the built-in catalog
	CORS_ORIGINS         comma-separated allowed origins (default *)
	RATE_LIMIT_REQUESTS  requests per window per IP (default 100)
	RATE_LIMIT_WINDOW    rate limit window (default 1m)
	DISABLE_RATE_LIMIT   disable the rate limiter
	LOG_LEVEL            trace, debug, info, warn, error
	LOG_FORMAT           json or console

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server stops
accepting connections and waits up to HTTP_SHUTDOWN_TIMEOUT for in-flight
requests.

# Example Usage

	CATALOG_PATH=./products.yaml LOG_FORMAT=console ./catalogrec
	curl localhost:5000/api/recommend/similar/3
*/
package main
