package game

import (
	"context"
	"fmt"

	"cinemaguess/internal/api"
)

// GuessSubmitter is the collaborator operation the evaluator needs.
// *api.Client satisfies it.
type GuessSubmitter interface {
	SubmitGuess(ctx context.Context, guess api.GuessRequest) (*api.GuessVerdict, error)
}

// Evaluator submits guesses and turns verdicts into state transitions.
type Evaluator struct {
	submitter GuessSubmitter
}

func NewEvaluator(submitter GuessSubmitter) *Evaluator {
	return &Evaluator{submitter: submitter}
}

// Submit sends a guess pinned to the clue index it was made against.
// Transport errors and non-2xx responses come back wrapped; the caller
// surfaces them as a message and keeps its state.
func (e *Evaluator) Submit(ctx context.Context, movieSlug, guess string, clueIndex int) (*api.GuessVerdict, error) {
	verdict, err := e.submitter.SubmitGuess(ctx, api.GuessRequest{
		MovieSlug:        movieSlug,
		Guess:            guess,
		CurrentClueIndex: clueIndex,
	})
	if err != nil {
		return nil, fmt.Errorf("submit guess: %w", err)
	}
	return verdict, nil
}

// transition is the interpreted form of a verdict.
type transition struct {
	finish          bool
	nextClueIndex   int
	nextClueText    string
	revealTitle     string
	revealPosterURL string
}

// interpret applies the verdict rule: correct OR finished ends the
// session; anything else advances to the next clue.
func interpret(v *api.GuessVerdict) transition {
	if v.Correct || v.Finished {
		t := transition{finish: true}
		if v.RevealTitle != nil {
			t.revealTitle = *v.RevealTitle
		}
		if v.RevealPosterURL != nil {
			t.revealPosterURL = *v.RevealPosterURL
		}
		return t
	}

	t := transition{nextClueIndex: v.NextClueIndex}
	if v.NextClueText != nil {
		t.nextClueText = *v.NextClueText
	}
	return t
}
