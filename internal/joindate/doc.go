// Package joindate parses and formats roster join dates.
//
// Parsing is total: strict numeric layouts are tried first, an optional
// Indonesian/English month-name pass follows, and anything else collapses to
// Sentinel so ordering code never has to handle a parse error.
package joindate
