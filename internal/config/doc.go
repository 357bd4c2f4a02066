// Package config manages application configuration for the catalog service.
//
// Configuration is read from environment variables. A .env file in the
// working directory, when present, is loaded first via godotenv so local
// development does not need exported variables.
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS)
//   - DatabaseConfig: store driver plus SurrealDB or PostgreSQL settings
//   - RateLimitConfig: per-client request limits
//   - CatalogConfig: seed file
//
// # Environment Variables
//
//	SERVER_PORT           - HTTP server port (default: 8080)
//	SERVER_ENV            - development | production | test
//	DB_DRIVER             - surreal (default) | postgres
//	DB_HOST, DB_PORT      - SurrealDB endpoint
//	DB_NAMESPACE          - SurrealDB namespace (default: catalog)
//	DB_DATABASE           - SurrealDB database (default: main)
//	DB_USER, DB_PASSWORD  - SurrealDB root credentials
//	DB_DSN                - PostgreSQL connection string
//	RATE_LIMIT_RPS        - sustained requests per second per client
//	RATE_LIMIT_BURST      - burst size per client
//	CATALOG_SEED_FILE     - default seed file for catalogctl seed
package config
