package search

import "fmt"

// EmptyInputError means a search was triggered without a keyword, or a
// credits lookup without a target id. It never reaches the network.
type EmptyInputError struct {
	Mode Mode
}

func (e *EmptyInputError) Error() string {
	if e.Mode == ModeCreditsLookup {
		return "no movie or show selected"
	}
	return "enter a keyword to search"
}

// UnexpectedStateError means neither a valid entity search nor a credits
// lookup context is active. It points at a routing bug in the caller.
type UnexpectedStateError struct {
	Reason string
}

func (e *UnexpectedStateError) Error() string {
	return fmt.Sprintf("unexpected search state: %s", e.Reason)
}

// NoResultsMessage is shown when a successful search returns nothing.
func NoResultsMessage(req Request) string {
	if req.Keyword == "" {
		return fmt.Sprintf("No %s found.", req.Kind.Label())
	}
	return fmt.Sprintf("No %s found for %q.", req.Kind.Label(), req.Keyword)
}
