// Package nav is the view-navigation state machine: which view is active,
// the back stacks, and the player's internal history. It knows nothing
// about rendering; the ui package binds it to a terminal.
package nav

import (
	"math/rand"
	"strings"

	"github.com/wemarz/cinelux/internal/catalog"
	"github.com/wemarz/cinelux/internal/library"
)

// View identifies a top-level view.
type View int

const (
	ViewNavigator View = iota
	ViewGrid
	ViewList
	ViewSearchResults
	ViewPlayer
)

func (v View) String() string {
	switch v {
	case ViewNavigator:
		return "navigator"
	case ViewGrid:
		return "grid"
	case ViewList:
		return "list"
	case ViewSearchResults:
		return "search-results"
	case ViewPlayer:
		return "player"
	}
	return ""
}

// NavigatorChrome reports whether the navigator-only controls are shown.
func (v View) NavigatorChrome() bool {
	return v == ViewNavigator
}

// SearchHeader reports whether the search-capable header is active.
func (v View) SearchHeader() bool {
	return v == ViewGrid || v == ViewList || v == ViewSearchResults
}

// ChatEligible reports whether the floating chat affordance is shown.
func (v View) ChatEligible() bool {
	return v.SearchHeader() || v == ViewPlayer
}

// HistorySink receives forward navigation events, standing in for the
// platform history integration of the original surface. May be nil.
type HistorySink interface {
	Pushed(v View, title string)
}

// PlayerEntry is one frame of the player's internal back stack.
type PlayerEntry struct {
	Movie   catalog.Movie
	Related []catalog.Movie
}

// GridState is what the grid view renders.
type GridState struct {
	CategoryID string
	Movies     []catalog.Movie
}

// ListState is what the list view renders; empty Movies means the
// empty-state message, not an error.
type ListState struct {
	Name   library.ListName
	Movies []catalog.Movie
}

// SearchState is what the search-results view renders.
type SearchState struct {
	Query  string
	Movies []catalog.Movie
}

const relatedLimit = 10

// Router owns all navigation state. One instance per session; not safe for
// concurrent use (the UI event loop is single-threaded).
type Router struct {
	cat  *catalog.Catalog
	lib  *library.Library
	rng  *rand.Rand
	sink HistorySink

	current       View
	viewHistory   []View
	playerHistory []PlayerEntry
	category      string

	grid   GridState
	list   ListState
	search SearchState
	player *PlayerEntry
	detail *catalog.Movie
}

// NewRouter starts at the navigator view. rng drives the related-videos
// shuffle; inject a seeded source in tests.
func NewRouter(cat *catalog.Catalog, lib *library.Library, rng *rand.Rand, sink HistorySink) *Router {
	return &Router{
		cat:     cat,
		lib:     lib,
		rng:     rng,
		sink:    sink,
		current: ViewNavigator,
	}
}

func (r *Router) Current() View               { return r.current }
func (r *Router) Category() string            { return r.category }
func (r *Router) Grid() GridState             { return r.grid }
func (r *Router) List() ListState             { return r.list }
func (r *Router) SearchResults() SearchState  { return r.search }
func (r *Router) Player() *PlayerEntry        { return r.player }
func (r *Router) Detail() *catalog.Movie      { return r.detail }
func (r *Router) ViewHistoryLen() int         { return len(r.viewHistory) }
func (r *Router) PlayerHistoryLen() int       { return len(r.playerHistory) }

// SetCategory records the category used to compute related suggestions.
// The navigator calls this as its focus moves.
func (r *Router) SetCategory(id string) {
	r.category = id
}

// SwitchView activates target. Forward navigation pushes the previous view
// onto the view history and notifies the sink; leaving the player clears
// its rendered content (the back stack is untouched).
func (r *Router) SwitchView(target View, goingBack bool) {
	if r.current == target && !goingBack {
		return
	}
	if r.current == ViewPlayer {
		r.player = nil
	}
	if !goingBack && r.current != target {
		r.viewHistory = append(r.viewHistory, r.current)
		// The player announces itself with the movie title in ShowPlayer.
		if r.sink != nil && target != ViewPlayer {
			r.sink.Pushed(target, "")
		}
	}
	r.current = target
}

// ShowGrid sets the active category, resolves its movies ("all" yields the
// union), and switches to the grid view. Unknown ids are ignored.
func (r *Router) ShowGrid(categoryID string) {
	if _, ok := r.cat.Category(categoryID); !ok {
		return
	}
	r.category = categoryID
	r.grid = GridState{CategoryID: categoryID, Movies: r.cat.MoviesFor(categoryID)}
	r.SwitchView(ViewGrid, false)
}

// ShowList resolves favorites or watch-later and switches to the list view.
func (r *Router) ShowList(name library.ListName) {
	r.list = ListState{Name: name, Movies: r.lib.Movies(name)}
	r.SwitchView(ViewList, false)
}

// ShowSearchResults always switches to the search-results view, with or
// without results.
func (r *Router) ShowSearchResults(results []catalog.Movie, query string) {
	r.search = SearchState{Query: query, Movies: results}
	r.SwitchView(ViewSearchResults, false)
}

// PerformSearch runs a title search. A blank query cancels: it pops one
// view off the history and returns there.
func (r *Router) PerformSearch(query string) {
	if strings.TrimSpace(query) == "" {
		if n := len(r.viewHistory); n > 0 {
			prev := r.viewHistory[n-1]
			r.viewHistory = r.viewHistory[:n-1]
			r.SwitchView(prev, true)
		}
		return
	}
	r.ShowSearchResults(r.cat.Search(query), query)
}

// ShowDetail opens the detail popup for a movie.
func (r *Router) ShowDetail(m catalog.Movie) {
	mv := m
	r.detail = &mv
}

// HideDetail closes the detail popup.
func (r *Router) HideDetail() {
	r.detail = nil
}

// ShowPlayer renders the player for a movie. A fresh play shuffles up to
// ten same-category movies (the selected one excluded) as the related set
// and pushes a player-history entry; back navigation reuses the set from
// the top of the stack, falling back to an unshuffled slice when the stack
// is empty.
func (r *Router) ShowPlayer(m catalog.Movie, goingBack bool) {
	r.HideDetail()

	var related []catalog.Movie
	if !goingBack {
		related = r.relatedPool(m)
		r.rng.Shuffle(len(related), func(i, j int) {
			related[i], related[j] = related[j], related[i]
		})
		if len(related) > relatedLimit {
			related = related[:relatedLimit]
		}
		r.playerHistory = append(r.playerHistory, PlayerEntry{Movie: m, Related: related})
		if r.sink != nil {
			r.sink.Pushed(ViewPlayer, m.Title)
		}
	} else if n := len(r.playerHistory); n > 0 {
		related = r.playerHistory[n-1].Related
	} else {
		related = r.relatedPool(m)
		if len(related) > relatedLimit {
			related = related[:relatedLimit]
		}
	}

	r.player = &PlayerEntry{Movie: m, Related: related}
	if r.current != ViewPlayer {
		r.SwitchView(ViewPlayer, goingBack)
	}
}

// relatedPool is the current category's movies minus m, or the whole
// catalog when the category resolves to nothing.
func (r *Router) relatedPool(m catalog.Movie) []catalog.Movie {
	pool := r.cat.MoviesFor(r.category)
	if len(pool) == 0 {
		pool = r.cat.AllMovies()
	}
	var out []catalog.Movie
	for _, c := range pool {
		if c.Title != m.Title {
			out = append(out, c)
		}
	}
	return out
}

// Back handles the platform back action. Inside the player it first walks
// the player's own stack; then it pops the view history, clearing the
// player stack when the back exits the player view. Returns false when no
// internal history remains and the caller should fall back externally.
func (r *Router) Back() bool {
	if r.current == ViewPlayer && len(r.playerHistory) > 1 {
		r.playerHistory = r.playerHistory[:len(r.playerHistory)-1]
		prev := r.playerHistory[len(r.playerHistory)-1]
		r.ShowPlayer(prev.Movie, true)
		return true
	}
	if n := len(r.viewHistory); n > 0 {
		if r.current == ViewPlayer {
			r.playerHistory = nil
		}
		prev := r.viewHistory[n-1]
		r.viewHistory = r.viewHistory[:n-1]
		r.SwitchView(prev, true)
		return true
	}
	return false
}

// Home is the header-title action: back to the navigator with both history
// stacks cleared unconditionally.
func (r *Router) Home() {
	r.SwitchView(ViewNavigator, false)
	r.viewHistory = nil
	r.playerHistory = nil
}
