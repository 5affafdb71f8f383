// Package textutil provides the text cleaning rules shared by roster
// normalization and caption rendering.
//
// The primary use cases are:
//   - Cleaning free-form field values (whitespace, curly quotes, placeholders)
//   - Detecting the "no data" placeholder that upstream scrapers emit
//   - Producing case-folded comparison keys for name ordering
//
// Cleaning is NFC-normalized so visually identical names compare equal no
// matter how the upstream source composed accented characters.
package textutil
