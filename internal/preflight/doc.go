// Package preflight checks the filesystem paths a run depends on before any
// input is processed.
//
// The generate command calls RunAll after directories are ensured; a failed
// check stops the batch before the output lock is taken.
package preflight
