package nav

import (
	"context"
	"fmt"

	"github.com/five82/cinefind/internal/search"
	"github.com/five82/cinefind/internal/tmdb"
)

// Pending is a validated catalog request that has not been sent yet.
type Pending struct {
	Request search.Request
	catalog tmdb.Catalog
}

// Result is the outcome of a Pending request.
type Result struct {
	Request search.Request
	Page    *tmdb.SearchPage
	Credits *tmdb.Credits
	Err     error
}

// Run sends the request and blocks until the catalog answers or ctx ends.
// It touches no controller state and may run on any goroutine.
func (p *Pending) Run(ctx context.Context) Result {
	if p == nil {
		return Result{Err: fmt.Errorf("no request pending")}
	}
	res := Result{Request: p.Request}
	if p.catalog == nil {
		res.Err = fmt.Errorf("catalog not configured")
		return res
	}

	req := p.Request
	switch req.Mode {
	case search.ModeEntitySearch:
		res.Page, res.Err = p.catalog.Search(ctx, req.Kind, req.Keyword, req.Page)
	case search.ModeCreditsLookup:
		res.Credits, res.Err = p.catalog.Credits(ctx, req.Kind, req.TargetID)
	default:
		res.Err = &search.UnexpectedStateError{Reason: fmt.Sprintf("cannot run %s request", req.Mode)}
	}
	return res
}
