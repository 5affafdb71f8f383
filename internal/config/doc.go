// Package config loads, normalizes, and validates rostersrt configuration data.
//
// A profile (classic, flexible, or gaming) seeds every section with preset
// defaults; the TOML file then overrides individual fields. Paths are expanded
// (including tilde shortcuts) and the ROSTERSRT_PROFILE environment variable
// selects the profile when the file does not.
//
// Downstream packages receive policies and templates through the accessor
// methods rather than reading raw fields.
package config
