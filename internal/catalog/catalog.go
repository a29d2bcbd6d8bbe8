// Package catalog is the static registry of categories and movies.
// Read-only after load.
package catalog

import (
	"strings"

	"github.com/wemarz/cinelux/internal/scene"
)

// AllID is the synthetic category aggregating every movie.
const AllID = "all"

// Name is a display name in both supported locales.
type Name struct {
	EN string
	MY string
}

// For returns the name for a locale, falling back to English.
func (n Name) For(locale string) string {
	if locale == "my" && n.MY != "" {
		return n.MY
	}
	return n.EN
}

type Category struct {
	ID       string
	Name     Name
	Position scene.Vec3
	Color    string
	Scale    float64
}

type Movie struct {
	Title     string
	Poster    string
	Year      int
	Rating    string
	Synopsis  string
	TrailerID string
}

type Catalog struct {
	categories []Category
	byCategory map[string][]Movie
}

// New returns the built-in demo catalog.
func New() *Catalog {
	return &Catalog{categories: categories, byCategory: movies}
}

// Categories returns every category in declaration order, the "all"
// aggregate first.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Category looks up a category by id.
func (c *Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// MoviesFor returns the movies of one category, or the union of all
// categories for AllID. Unknown ids yield an empty sequence.
func (c *Catalog) MoviesFor(categoryID string) []Movie {
	if categoryID == AllID {
		return c.AllMovies()
	}
	ms := c.byCategory[categoryID]
	out := make([]Movie, len(ms))
	copy(out, ms)
	return out
}

// AllMovies flattens the catalog: category declaration order, then
// per-category order.
func (c *Catalog) AllMovies() []Movie {
	var out []Movie
	for _, cat := range c.categories {
		out = append(out, c.byCategory[cat.ID]...)
	}
	return out
}

// Search filters the flattened catalog by case-insensitive substring match
// on title. No ranking, no fuzzy matching.
func (c *Catalog) Search(query string) []Movie {
	q := strings.ToLower(query)
	var out []Movie
	for _, m := range c.AllMovies() {
		if strings.Contains(strings.ToLower(m.Title), q) {
			out = append(out, m)
		}
	}
	return out
}
