// Package roster decodes input collections and normalizes their entries into
// the canonical Record shape.
//
// Source keys vary between scrapers, so every canonical field resolves from a
// static alias table (first non-empty match wins). Entries that are not
// objects or lack a usable name are dropped rather than reported as errors.
package roster
