// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, an optional config file, an optional .env
// file, and environment variables). It provides type-safe access to
// application settings needed by different components while keeping
// configuration details separate from business logic.
//
// Environment variables use the AXIOME_ prefix with dots replaced by
// underscores, e.g. AXIOME_SERVER_PORT or AXIOME_LLM_GEMINI_API_KEY. The
// unprefixed GEMINI_API_KEY is also accepted for the API key.
package config
