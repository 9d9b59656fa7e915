// Package liststate keeps the catalog list view's filter/sort/page
// parameters in sync with the listing endpoint: every parameter change
// resets the page (unless the change is the page itself) and triggers
// exactly one re-fetch, with rapid search edits coalesced into a single
// request.
package liststate

import (
	"context"
	"sync"
	"time"

	"github.com/cozyreads/inventory-api/pkg/client"
)

// Fetcher is the listing call. *client.Client satisfies it.
type Fetcher interface {
	List(ctx context.Context, p client.ListParams) (client.Page, error)
}

const defaultDebounce = 300 * time.Millisecond

type State struct {
	fetcher  Fetcher
	onPage   func(client.Page)
	onError  func(error)
	debounce time.Duration

	mu     sync.Mutex
	params client.ListParams
	timer  *time.Timer
	gen    uint64 // increments per triggered fetch; stale results are dropped
}

// New builds a State with the server's defaults (page 1, limit 10, sorted
// by title ascending). onPage receives each fetched page; onError receives
// fetch failures. Either callback may be nil.
func New(f Fetcher, onPage func(client.Page), onError func(error)) *State {
	return &State{
		fetcher:  f,
		onPage:   onPage,
		onError:  onError,
		debounce: defaultDebounce,
		params: client.ListParams{
			Page:      1,
			Limit:     10,
			SortField: "title",
			SortOrder: "asc",
			MaxPrice:  1000,
		},
	}
}

// SetDebounce overrides the search coalescing window. Zero disables
// debouncing (every edit fetches).
func (s *State) SetDebounce(d time.Duration) {
	s.mu.Lock()
	s.debounce = d
	s.mu.Unlock()
}

// Params returns a snapshot of the current parameter set.
func (s *State) Params() client.ListParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// Refresh re-fetches with the current parameters (initial load, or after a
// mutation elsewhere).
func (s *State) Refresh(ctx context.Context) {
	s.mu.Lock()
	gen := s.bumpLocked()
	p := s.params
	s.mu.Unlock()
	s.fetch(ctx, gen, p)
}

// SetSearch updates the search text, resets to page 1, and schedules a
// debounced fetch: only the last edit inside the window reaches the server.
func (s *State) SetSearch(ctx context.Context, search string) {
	s.mu.Lock()
	s.params.Search = search
	s.params.Page = 1
	d := s.debounce
	gen := s.bumpLocked()
	p := s.params

	if s.timer != nil {
		s.timer.Stop()
	}
	if d <= 0 {
		s.mu.Unlock()
		s.fetch(ctx, gen, p)
		return
	}
	s.timer = time.AfterFunc(d, func() {
		s.fetch(ctx, gen, p)
	})
	s.mu.Unlock()
}

// SetGenre resets to page 1 and fetches.
func (s *State) SetGenre(ctx context.Context, genre string) {
	s.apply(ctx, func(p *client.ListParams) { p.Genre = genre })
}

// SetPriceRange resets to page 1 and fetches.
func (s *State) SetPriceRange(ctx context.Context, min, max float64) {
	s.apply(ctx, func(p *client.ListParams) {
		p.MinPrice = min
		p.MaxPrice = max
	})
}

// SetSort resets to page 1 and fetches.
func (s *State) SetSort(ctx context.Context, field, order string) {
	s.apply(ctx, func(p *client.ListParams) {
		p.SortField = field
		p.SortOrder = order
	})
}

// SetLimit resets to page 1 and fetches.
func (s *State) SetLimit(ctx context.Context, limit int) {
	s.apply(ctx, func(p *client.ListParams) { p.Limit = limit })
}

// SetPage is the one transition that keeps the rest of the parameter set
// and does NOT reset the page.
func (s *State) SetPage(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	s.params.Page = page
	gen := s.bumpLocked()
	p := s.params
	s.mu.Unlock()
	s.fetch(ctx, gen, p)
}

func (s *State) apply(ctx context.Context, mutate func(*client.ListParams)) {
	s.mu.Lock()
	mutate(&s.params)
	s.params.Page = 1
	gen := s.bumpLocked()
	p := s.params
	s.mu.Unlock()
	s.fetch(ctx, gen, p)
}

// bumpLocked invalidates any in-flight or pending fetch. Callers hold mu.
func (s *State) bumpLocked() uint64 {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
	return s.gen
}

func (s *State) fetch(ctx context.Context, gen uint64, p client.ListParams) {
	page, err := s.fetcher.List(ctx, p)

	s.mu.Lock()
	stale := gen != s.gen
	s.mu.Unlock()
	if stale {
		return
	}

	if err != nil {
		if s.onError != nil {
			s.onError(err)
		}
		return
	}
	if s.onPage != nil {
		s.onPage(page)
	}
}
