package handlers

import (
	"fmt"
	"net/http"
	"time"

	"cinemaguess/internal/api"
	"cinemaguess/internal/catalog"
	"cinemaguess/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// GameHandler serves the two collaborator operations against the
// in-memory catalog. It is a stand-in for the production backend and
// speaks exactly the same wire contract.
type GameHandler struct {
	catalog *catalog.Catalog
}

func NewGameHandler(cat *catalog.Catalog) *GameHandler {
	return &GameHandler{catalog: cat}
}

// TodayGame returns a random movie with its first clue. The calendar
// is ignored for now; every request starts a fresh game.
func (h *GameHandler) TodayGame(c *gin.Context) {
	movie, ok := h.catalog.Random()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "No movies available."})
		return
	}
	if len(movie.Clues) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "No clues for selected movie."})
		return
	}

	middleware.GamesServed.Inc()

	poster := movie.PosterURL
	c.JSON(http.StatusOK, api.TodayGame{
		GameDate:         time.Now().Format("2006-01-02"),
		MovieSlug:        movie.Slug,
		TotalClues:       len(movie.Clues),
		CurrentClueIndex: 0,
		CurrentClueText:  movie.Clues[0],
		Solved:           false,
		PosterURL:        &poster,
	})
}

// Guess evaluates a guess against the movie identified by slug.
func (h *GameHandler) Guess(c *gin.Context) {
	var req api.GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body."})
		return
	}

	movie, ok := h.catalog.BySlug(req.MovieSlug)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Unknown movie slug."})
		return
	}
	if len(movie.Clues) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "No clues for this movie."})
		return
	}
	if req.CurrentClueIndex < 0 || req.CurrentClueIndex >= len(movie.Clues) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid clue index."})
		return
	}

	title := movie.Title
	poster := movie.PosterURL

	if catalog.NormalizeTitle(req.Guess) == catalog.NormalizeTitle(movie.Title) {
		middleware.GuessesTotal.WithLabelValues("correct").Inc()
		c.JSON(http.StatusOK, api.GuessVerdict{
			Correct:         true,
			Finished:        true,
			NextClueIndex:   req.CurrentClueIndex,
			RevealTitle:     &title,
			RevealPosterURL: &poster,
			Message:         "Nice! You got it right.",
		})
		return
	}

	nextIndex := req.CurrentClueIndex + 1
	if nextIndex < len(movie.Clues) {
		middleware.GuessesTotal.WithLabelValues("wrong").Inc()
		nextClue := movie.Clues[nextIndex]
		c.JSON(http.StatusOK, api.GuessVerdict{
			Correct:       false,
			Finished:      false,
			NextClueIndex: nextIndex,
			NextClueText:  &nextClue,
			Message:       "Nope, have another clue.",
		})
		return
	}

	middleware.GuessesTotal.WithLabelValues("exhausted").Inc()
	c.JSON(http.StatusOK, api.GuessVerdict{
		Correct:         false,
		Finished:        true,
		NextClueIndex:   req.CurrentClueIndex,
		RevealTitle:     &title,
		RevealPosterURL: &poster,
		Message:         fmt.Sprintf("Out of clues! The film was %s.", movie.Title),
	})
}
