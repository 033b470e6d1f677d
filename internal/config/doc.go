// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

/*
Package config provides centralized configuration management for Catalogrec.

Configuration is layered with Koanf v2. Each layer overrides the one before it:

 1. Built-in defaults (structs provider)
 2. An optional YAML file, found via CONFIG_PATH or DefaultConfigPaths
 3. Environment variables, mapped explicitly by envTransformFunc

The merged result is validated before Load returns it.

# Environment Variables

HTTP Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 5000)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)

Security (SecurityConfig):
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)

Catalog (CatalogConfig):
  - CATALOG_PATH: .json, .yaml, .yml or .toml product file (default: built-in catalog)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

Supervisor (SupervisorConfig):
  - SUPERVISOR_FAILURE_THRESHOLD: Failures before backoff (default: 5)
  - SUPERVISOR_FAILURE_DECAY: Failure decay in seconds (default: 30)
  - SUPERVISOR_FAILURE_BACKOFF: Backoff duration (default: 15s)

# Example config.yaml

	server:
	  port: 5000
	security:
	  cors_origins: ["https://shop.example.com"]
	catalog:
	  path: /etc/catalogrec/products.yaml
	logging:
	  level: debug
	  format: console

# Thread Safety

A loaded Config is read-only. It is safe to share between goroutines.
*/
package config
