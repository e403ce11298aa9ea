// Package editor provides the citation form as a Bubble Tea component.
//
// The Model is an explicit state machine: SelectingType, then Editing, then
// Finalized. Each key or mouse message is handled to completion by Update,
// which returns the next Model. Field text is edited through the grapheme-aware
// buffer package, and the live preview is produced by a reference.Renderer.
//
// Bounds are never errors. Moving before the first field or past the last,
// deleting at the start of a field and moving the cursor past the end of its
// text are all silent no-ops.
package editor
