// Package pacing derives how many roster cards a caption track shows and how
// long each stays on screen.
//
// Tiered looks the count up in an ascending threshold table; Budget shows
// small rosters in full and fits large ones into a runtime cap. Every Plan
// satisfies TotalSeconds == OpeningSeconds + CardsToShow*SecondsPerCard +
// EndingSeconds exactly; rounding is applied only when a plan is displayed.
package pacing
