package game

import (
	"context"
	"errors"
	"sync"

	"cinemaguess/internal/logger"
)

// State is the controller's position in the session lifecycle.
type State int

const (
	StateLoading State = iota
	StateActive
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateActive:
		return "active"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Controller owns the session aggregate and drives the
// Loading -> Active -> Finished state machine. All mutation goes
// through Start, SubmitGuess and NewMovie; network calls happen
// outside the lock and their results are applied under it.
type Controller struct {
	loader    *Loader
	evaluator *Evaluator

	mu       sync.Mutex
	state    State
	session  GameSession
	progress ClueProgress
	loading  bool
	guessing bool
	status   string
}

func NewController(loader *Loader, evaluator *Evaluator) *Controller {
	return &Controller{
		loader:    loader,
		evaluator: evaluator,
		state:     StateLoading,
	}
}

// Start performs the initial Loading -> Active transition. It may be
// called again after a failed load; a failure leaves the controller in
// Loading with a status message and no session.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return ErrLoadInFlight
	}
	c.loading = true
	c.mu.Unlock()

	session, progress, err := c.loader.Load(ctx, "")

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if err != nil {
		c.status = "Could not load today's game. Try again."
		logger.Error("initial load failed", "err", err)
		return err
	}

	c.applySession(session, progress)
	return nil
}

// SubmitGuess sends one guess against the current clue. At most one
// guess may be outstanding; guesses on a finished session are no-ops.
// The verdict is applied only if the session it targeted is still the
// current one -- a verdict arriving after a reload is discarded.
func (c *Controller) SubmitGuess(ctx context.Context, guess string) error {
	c.mu.Lock()
	if c.state == StateLoading {
		c.mu.Unlock()
		return ErrNoSession
	}
	if c.state == StateFinished || c.progress.Finished {
		c.mu.Unlock()
		return ErrSessionFinished
	}
	if c.guessing {
		c.mu.Unlock()
		return ErrGuessInFlight
	}
	c.guessing = true
	slug := c.session.MovieSlug
	clueIndex := c.progress.CurrentClueIndex
	clueText := c.progress.CurrentClueText
	c.mu.Unlock()

	verdict, err := c.evaluator.Submit(ctx, slug, guess, clueIndex)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.guessing = false

	if err != nil {
		c.status = "Could not submit your guess. Try again."
		logger.Warn("guess submission failed", "err", err)
		return err
	}

	if c.session.MovieSlug != slug {
		// Reload won the race; this verdict belongs to a dead session.
		logger.Debug("discarding stale verdict", "slug", slug, "current", c.session.MovieSlug)
		return nil
	}

	t := interpret(verdict)
	if t.finish {
		c.progress.Finished = true
		c.progress.RevealedTitle = t.revealTitle
		if t.revealPosterURL != "" {
			c.session.PosterURL = t.revealPosterURL
		}
		c.state = StateFinished
	} else {
		c.progress.PreviousClues = append(c.progress.PreviousClues, clueText)
		c.progress.CurrentClueIndex = t.nextClueIndex
		c.progress.CurrentClueText = t.nextClueText
	}
	c.status = verdict.Message

	return nil
}

// NewMovie reloads with the current movie excluded. A failed reload
// (transport or attempt exhaustion) keeps the current session and only
// updates the status message.
func (c *Controller) NewMovie(ctx context.Context) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return ErrLoadInFlight
	}
	if c.state == StateLoading {
		c.mu.Unlock()
		return ErrNoSession
	}
	prevState := c.state
	excludeSlug := c.session.MovieSlug
	c.loading = true
	c.state = StateLoading
	c.mu.Unlock()

	session, progress, err := c.loader.Load(ctx, excludeSlug)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if err != nil {
		c.state = prevState
		if errors.Is(err, ErrNoAlternativeFound) {
			c.status = "Couldn't find a different movie right now. Try again."
		} else {
			c.status = "Could not load a new movie. Try again."
		}
		logger.Warn("new movie load failed", "exclude", excludeSlug, "err", err)
		return err
	}

	c.applySession(session, progress)
	return nil
}

// applySession replaces session and progress atomically. Caller holds
// the lock.
func (c *Controller) applySession(session GameSession, progress ClueProgress) {
	c.session = session
	c.progress = progress
	c.status = ""
	if progress.Finished {
		c.state = StateFinished
	} else {
		c.state = StateActive
	}
}

// Snapshot is an immutable view of the controller for rendering.
type Snapshot struct {
	State            State
	GameDate         string
	MovieSlug        string
	TotalClues       int
	PosterURL        string
	CurrentClueIndex int
	CurrentClueText  string
	PreviousClues    []string
	Finished         bool
	RevealedTitle    string
	Status           string
	Blur             float64
	ProgressPercent  float64
}

// Snapshot returns a copy of the current state with the derived reveal
// values computed on demand.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	previous := make([]string, len(c.progress.PreviousClues))
	copy(previous, c.progress.PreviousClues)

	return Snapshot{
		State:            c.state,
		GameDate:         c.session.GameDate,
		MovieSlug:        c.session.MovieSlug,
		TotalClues:       c.session.TotalClues,
		PosterURL:        c.session.PosterURL,
		CurrentClueIndex: c.progress.CurrentClueIndex,
		CurrentClueText:  c.progress.CurrentClueText,
		PreviousClues:    previous,
		Finished:         c.progress.Finished,
		RevealedTitle:    c.progress.RevealedTitle,
		Status:           c.status,
		Blur:             BlurIntensity(c.session.TotalClues, c.progress.CurrentClueIndex, c.progress.Finished, c.session.PosterURL != ""),
		ProgressPercent:  ProgressPercent(c.session.TotalClues, c.progress.CurrentClueIndex),
	}
}
