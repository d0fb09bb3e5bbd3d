package catalog

import (
	"math/rand"
	"strings"
	"sync"
	"unicode"
)

// Movie is one guessable film with its ordered clues.
type Movie struct {
	Title     string
	Slug      string
	PosterURL string
	Clues     []string
}

// Catalog is the stub collaborator's in-memory movie store.
type Catalog struct {
	mu     sync.RWMutex
	movies []Movie
	bySlug map[string]Movie
}

func New(movies []Movie) *Catalog {
	bySlug := make(map[string]Movie, len(movies))
	for _, m := range movies {
		bySlug[m.Slug] = m
	}
	return &Catalog{movies: movies, bySlug: bySlug}
}

// Random picks any movie from the catalog. Returns false when empty.
func (c *Catalog) Random() (Movie, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.movies) == 0 {
		return Movie{}, false
	}
	return c.movies[rand.Intn(len(c.movies))], true
}

// BySlug looks a movie up by its slug.
func (c *Catalog) BySlug(slug string) (Movie, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.bySlug[slug]
	return m, ok
}

// Len reports the number of movies.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.movies)
}

// NormalizeTitle lowercases and strips non-alphanumeric runes so
// "Jaws " and "jaws!!!" both match.
func NormalizeTitle(value string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(value) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
