// Package ui is the interactive terminal front end of cinefind, built on
// Bubble Tea.
//
// The screen is split into a header holding the kind badge and keyword
// input, a location bar showing the active history entry, the result pane,
// a pagination bar and a command bar.
//
// All search logic lives in the nav package. The Model owns a nav.Session
// whose renderer is a screen value shared by pointer; every key press that
// maps to a trigger calls the session, copies any form update back into the
// inputs and runs the returned request as a tea.Cmd. Results come back as
// resultMsg and are handed to the session, which drops stale ones.
//
// # Key Bindings
//
//   - /: Focus the keyword input; enter submits, esc leaves it
//   - tab: Toggle between movies and TV shows
//   - enter: Open the credits of the selected title
//   - ←/→, [ ]: Previous, next, first and last result page
//   - b, f, r: Back, forward and reload
//   - o: Edit the location directly
//   - T: Cycle theme
//   - ?: Help
package ui
