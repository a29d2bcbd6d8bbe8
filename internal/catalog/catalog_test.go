package catalog

import (
	"reflect"
	"testing"
)

func TestCategories_AllFirst(t *testing.T) {
	c := New()
	cats := c.Categories()
	if len(cats) == 0 {
		t.Fatal("no categories")
	}
	if cats[0].ID != AllID {
		t.Errorf("first category = %q, want %q", cats[0].ID, AllID)
	}
	for _, cat := range cats {
		if cat.Scale <= 0 {
			t.Errorf("category %s has non-positive scale", cat.ID)
		}
		if cat.Name.EN == "" {
			t.Errorf("category %s has no english name", cat.ID)
		}
	}
}

func TestCategory_Lookup(t *testing.T) {
	c := New()
	cat, ok := c.Category("scifi")
	if !ok {
		t.Fatal("scifi should exist")
	}
	if cat.Name.EN != "Sci-Fi" {
		t.Errorf("name = %q, want Sci-Fi", cat.Name.EN)
	}
	if _, ok := c.Category("western"); ok {
		t.Error("unknown category should not resolve")
	}
}

func TestMoviesFor(t *testing.T) {
	c := New()

	scifi := c.MoviesFor("scifi")
	if len(scifi) != 3 {
		t.Errorf("scifi: got %d movies, want 3", len(scifi))
	}

	// Unknown ids yield an empty slice, not a panic
	if got := c.MoviesFor("western"); len(got) != 0 {
		t.Errorf("unknown category: got %d movies, want 0", len(got))
	}

	// The "all" aggregate is the union of every category
	all := c.MoviesFor(AllID)
	if len(all) != 11 {
		t.Errorf("all: got %d movies, want 11", len(all))
	}
	if !reflect.DeepEqual(all, c.AllMovies()) {
		t.Error("MoviesFor(AllID) should equal AllMovies()")
	}
}

func TestAllMovies_Deterministic(t *testing.T) {
	c := New()
	first := c.AllMovies()
	for i := 0; i < 10; i++ {
		if !reflect.DeepEqual(c.AllMovies(), first) {
			t.Fatal("AllMovies order changed between calls")
		}
	}
	// Category declaration order: scifi movies lead
	if first[0].Title != "Dune: Part Two" {
		t.Errorf("first movie = %q, want Dune: Part Two", first[0].Title)
	}
}

func TestSearch(t *testing.T) {
	c := New()

	tests := []struct {
		query string
		want  []string
	}{
		{"dune", []string{"Dune: Part Two"}},
		{"DUNE", []string{"Dune: Part Two"}},
		{"a quiet", []string{"A Quiet Place"}},
		{"zzz", nil},
		{"er", []string{"Blade Runner 2049", "Hereditary", "John Wick: Chapter 4", "Oppenheimer", "Superbad"}},
	}
	for _, tt := range tests {
		got := c.Search(tt.query)
		var titles []string
		for _, m := range got {
			titles = append(titles, m.Title)
		}
		if !reflect.DeepEqual(titles, tt.want) {
			t.Errorf("Search(%q) = %v, want %v", tt.query, titles, tt.want)
		}
	}
}

func TestSearch_Deterministic(t *testing.T) {
	c := New()
	first := c.Search("a")
	for i := 0; i < 5; i++ {
		if !reflect.DeepEqual(c.Search("a"), first) {
			t.Fatal("search results changed between identical queries")
		}
	}
}

func TestName_For(t *testing.T) {
	n := Name{EN: "Horror", MY: "သရဲ"}
	if n.For("en") != "Horror" {
		t.Error("en should yield english")
	}
	if n.For("my") != "သရဲ" {
		t.Error("my should yield burmese")
	}
	// Missing translation falls back to english
	bare := Name{EN: "Sci-Fi"}
	if bare.For("my") != "Sci-Fi" {
		t.Error("missing burmese should fall back to english")
	}
}
