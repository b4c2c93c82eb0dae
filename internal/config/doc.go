// Package config loads and merges glance configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (GLANCE_API_KEY, GLANCE_MODEL, GLANCE_PRIVACY_REDACT_SECRETS, ...)
//  3. Config file ($XDG_CONFIG_HOME/glance/config.yaml)
//  4. Built-in defaults
//
// When no key is configured through any of those, GEMINI_API_KEY and then
// GOOGLE_API_KEY are consulted.
//
// Use [Load] to obtain a merged [Config], [Save] to write the config file and
// [SetField] to update a single key.
package config
