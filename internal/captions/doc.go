// Package captions renders ordered roster records into SRT caption tracks.
//
// Render lays cues out back to back: an opening title, one cue per shown
// record, and an optional closing message. Cues whose end does not follow
// their start are skipped without consuming an index. Marshal serializes the
// track; Parse and Validate read an artifact back for checks.
package captions
