// Package state holds the navigation history shared by the session and the UI.
//
// History behaves like a browser history stack: Push records a new location
// and discards anything ahead of the active entry, Replace rewrites the
// active entry in place, and Back/Forward move the cursor without changing
// the stack. It satisfies location.History so controllers publish to it
// directly.
//
// All methods are safe for concurrent use. The UI reads Snapshot on every
// render while navigation mutates the stack; Snapshot returns copies so a
// rendered view never aliases the live slice.
//
// The zero value is an empty history with DefaultLimit.
package state
