// Package nav keeps the search state, the location and the rendered view in
// step.
//
// # Overview
//
// Every screen of cinefind is one of two pages: the main page, which
// searches movies or TV shows by keyword, and the credits page, which lists
// cast and crew of a single title. Each page is served by a Controller. A
// Session owns the navigation history and swaps controllers when a location
// names another page.
//
// The package never performs I/O on its own. Triggers return a *Pending
// request; the caller decides where to run it and hands the outcome back.
//
// # Triggers
//
// A Controller reacts to these inputs:
//
//   - OnFormSubmit: a new first-page search. Publishes a history entry.
//     On the credits page it becomes a full navigation to the main page.
//   - OnKindChange: the kind selector moved. Submits only when a keyword is
//     already entered.
//   - OnPageLinkClick: a pagination link. Targets not offered by the last
//     rendered window are ignored.
//   - OnHistoryPop / OnInitialLoad: restore the state carried by a fragment
//     without publishing. An empty fragment shows the welcome view and
//     resets the form to the default kind.
//   - OpenCredits: a full navigation to the credits page of a title.
//
// # Terminal Action
//
// Every trigger that changes the state ends in the same step:
//
//	clear view → drop old window → validate state
//	    empty keyword      → Message, no request
//	    unexpected state   → Error, no request
//	    otherwise          → new request id → *Pending
//
// A nil *Pending means there is nothing to run.
//
// # Stale Results
//
// Only the most recent request is in flight. Deliver compares the id of a
// Result with the id the controller is waiting for and drops anything else:
//
//	p1 := c.OnFormSubmit(search.KindShow, "batman")
//	p2 := c.OnFormSubmit(search.KindMovie, "batman")
//	c.Deliver(p1.Run(ctx)) // false, discarded
//	c.Deliver(p2.Run(ctx)) // true, rendered
//
// A navigation to another page also clears the request in flight, so a late
// answer for the old page never reaches the new one.
//
// # Rendering
//
// Output goes through the Renderer interface. The terminal UI draws into a
// bubbletea model; the print commands write plain text. Both receive the same
// calls in the same order: Clear first, then exactly one of Welcome, Message,
// Error, Entities or Credits, with SyncForm whenever the form should follow
// the location.
//
// # Session
//
// A Session is a single browsing window. Open parses a raw location, Back and
// Forward move through the history, and Reload rebuilds the active
// controller. Moving within the same page is a history pop on the existing
// controller; moving to another page loads a fresh one. The DefaultKind of
// SessionOptions is handed to every controller the session creates.
//
// # Threading
//
// Controllers and sessions are driven from one goroutine. Pending.Run touches
// no controller state and may run anywhere. Session.Await is a convenience
// for callers that want to block:
//
//	s := nav.NewSession(nav.SessionOptions{Catalog: client, Renderer: w})
//	if p := s.Open("index.html#/tv/batman/1"); p != nil {
//		s.Await(ctx, p)
//	}
//
// # Usage Example
//
//	session := nav.NewSession(nav.SessionOptions{
//		History:     state.NewHistory(0),
//		Catalog:     client,
//		Renderer:    renderer,
//		Codec:       location.Codec{},
//		WindowSize:  5,
//		DefaultKind: search.KindMovie,
//		Logger:      logger,
//	})
//
//	p := session.Submit(search.KindShow, "thrones")
//	go func() { results <- p.Run(ctx) }()
//	session.Deliver(<-results)
//
//	session.GoToPage(2)
//	session.Back()
package nav
