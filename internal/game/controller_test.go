package game

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cinemaguess/internal/api"
)

type fakeSubmitter struct {
	verdicts []*api.GuessVerdict
	errs     []error
	requests []api.GuessRequest
	hook     func()
}

func (f *fakeSubmitter) SubmitGuess(ctx context.Context, req api.GuessRequest) (*api.GuessVerdict, error) {
	i := len(f.requests)
	f.requests = append(f.requests, req)
	if i >= len(f.verdicts) {
		i = len(f.verdicts) - 1
	}
	if f.hook != nil {
		f.hook()
	}
	if f.errs != nil && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	return f.verdicts[i], nil
}

func strPtr(s string) *string { return &s }

func newTestController(t *testing.T, fetcher SessionFetcher, submitter GuessSubmitter) *Controller {
	t.Helper()
	ctrl := NewController(NewLoader(fetcher), NewEvaluator(submitter))
	if err := ctrl.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return ctrl
}

func TestControllerAdvancesOnWrongGuess(t *testing.T) {
	submitter := &fakeSubmitter{verdicts: []*api.GuessVerdict{{
		Correct:       false,
		Finished:      false,
		NextClueIndex: 1,
		NextClueText:  strPtr("C2"),
		Message:       "Nope, have another clue.",
	}}}
	ctrl := newTestController(t, &fakeFetcher{slugs: []string{"x"}}, submitter)

	if snap := ctrl.Snapshot(); snap.State != StateActive || snap.CurrentClueText != "C1" {
		t.Fatalf("unexpected state after start: %+v", snap)
	}

	if err := ctrl.SubmitGuess(context.Background(), "wrong"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	snap := ctrl.Snapshot()
	if snap.Finished {
		t.Fatalf("session finished on advancing verdict")
	}
	if snap.CurrentClueIndex != 1 || snap.CurrentClueText != "C2" {
		t.Fatalf("clue not advanced: %+v", snap)
	}
	if len(snap.PreviousClues) != 1 || snap.PreviousClues[0] != "C1" {
		t.Fatalf("previous clues = %v; want [C1]", snap.PreviousClues)
	}
	if snap.Status != "Nope, have another clue." {
		t.Fatalf("status = %q", snap.Status)
	}

	req := submitter.requests[0]
	if req.MovieSlug != "x" || req.CurrentClueIndex != 0 || req.Guess != "wrong" {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestControllerPreviousClueAccounting(t *testing.T) {
	// N consecutive advancing guesses record exactly the N superseded clues
	var verdicts []*api.GuessVerdict
	for i := 1; i < 5; i++ {
		verdicts = append(verdicts, &api.GuessVerdict{
			NextClueIndex: i,
			NextClueText:  strPtr(fmt.Sprintf("C%d", i+1)),
			Message:       "Nope, have another clue.",
		})
	}
	submitter := &fakeSubmitter{verdicts: verdicts}
	ctrl := newTestController(t, &fakeFetcher{slugs: []string{"x"}}, submitter)

	for i := 0; i < 4; i++ {
		if err := ctrl.SubmitGuess(context.Background(), "wrong"); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	snap := ctrl.Snapshot()
	if len(snap.PreviousClues) != 4 {
		t.Fatalf("previous clues = %v; want 4 entries", snap.PreviousClues)
	}
	for i, clue := range snap.PreviousClues {
		if want := fmt.Sprintf("C%d", i+1); clue != want {
			t.Fatalf("previous clue %d = %q; want %q", i, clue, want)
		}
	}
	if snap.CurrentClueIndex != 4 || snap.CurrentClueText != "C5" {
		t.Fatalf("unexpected current clue: %+v", snap)
	}
}

func TestControllerFinishesOnCorrectGuess(t *testing.T) {
	submitter := &fakeSubmitter{verdicts: []*api.GuessVerdict{{
		Correct:         true,
		Finished:        true,
		NextClueIndex:   0,
		RevealTitle:     strPtr("Movie X"),
		RevealPosterURL: strPtr("http://posters/x.jpg"),
		Message:         "Nice! You got it right.",
	}}}
	ctrl := newTestController(t, &fakeFetcher{slugs: []string{"x"}}, submitter)

	if err := ctrl.SubmitGuess(context.Background(), "Movie X"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	snap := ctrl.Snapshot()
	if snap.State != StateFinished || !snap.Finished {
		t.Fatalf("not finished: %+v", snap)
	}
	if snap.RevealedTitle != "Movie X" {
		t.Fatalf("revealed title = %q", snap.RevealedTitle)
	}
	if snap.PosterURL != "http://posters/x.jpg" {
		t.Fatalf("poster = %q", snap.PosterURL)
	}
	if len(snap.PreviousClues) != 0 {
		t.Fatalf("finishing guess appended to previous clues: %v", snap.PreviousClues)
	}
	if snap.Blur != 0 {
		t.Fatalf("blur after finish = %v; want 0", snap.Blur)
	}

	if err := ctrl.SubmitGuess(context.Background(), "again"); !errors.Is(err, ErrSessionFinished) {
		t.Fatalf("guess after finish: err = %v; want ErrSessionFinished", err)
	}
	if len(submitter.requests) != 1 {
		t.Fatalf("guess after finish reached the collaborator")
	}
}

func TestControllerFinishWithoutRevealTitle(t *testing.T) {
	// reveal_title is not guaranteed; absence must not crash anything
	submitter := &fakeSubmitter{verdicts: []*api.GuessVerdict{{
		Correct:  false,
		Finished: true,
		Message:  "Out of clues!",
	}}}
	ctrl := newTestController(t, &fakeFetcher{slugs: []string{"x"}}, submitter)

	if err := ctrl.SubmitGuess(context.Background(), "wrong"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	snap := ctrl.Snapshot()
	if !snap.Finished || snap.RevealedTitle != "" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestControllerGuessFailureKeepsState(t *testing.T) {
	submitter := &fakeSubmitter{
		verdicts: []*api.GuessVerdict{nil},
		errs:     []error{errors.New("boom")},
	}
	ctrl := newTestController(t, &fakeFetcher{slugs: []string{"x"}}, submitter)

	if err := ctrl.SubmitGuess(context.Background(), "wrong"); err == nil {
		t.Fatalf("expected error")
	}

	snap := ctrl.Snapshot()
	if snap.State != StateActive || snap.CurrentClueIndex != 0 || len(snap.PreviousClues) != 0 {
		t.Fatalf("failed submission altered progress: %+v", snap)
	}
	if snap.Status == "" {
		t.Fatalf("no status message after failed submission")
	}
}

func TestControllerNewMovieExcludesCurrent(t *testing.T) {
	fetcher := &fakeFetcher{slugs: []string{"x", "x", "x", "y"}}
	ctrl := newTestController(t, fetcher, &fakeSubmitter{verdicts: []*api.GuessVerdict{{
		NextClueIndex: 1,
		NextClueText:  strPtr("C2"),
	}}})

	// build some history first
	if err := ctrl.SubmitGuess(context.Background(), "wrong"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := ctrl.NewMovie(context.Background()); err != nil {
		t.Fatalf("new movie: %v", err)
	}

	snap := ctrl.Snapshot()
	if snap.MovieSlug != "y" {
		t.Fatalf("slug = %q; want y", snap.MovieSlug)
	}
	if len(snap.PreviousClues) != 0 || snap.CurrentClueIndex != 0 {
		t.Fatalf("history survived the reload: %+v", snap)
	}
	if fetcher.calls != 4 {
		t.Fatalf("made %d fetches; want 4 (1 initial + 3 exclusion attempts)", fetcher.calls)
	}
}

func TestControllerNewMovieExhaustedKeepsSession(t *testing.T) {
	fetcher := &fakeFetcher{slugs: []string{"x"}}
	ctrl := newTestController(t, fetcher, &fakeSubmitter{})

	err := ctrl.NewMovie(context.Background())
	if !errors.Is(err, ErrNoAlternativeFound) {
		t.Fatalf("err = %v; want ErrNoAlternativeFound", err)
	}

	snap := ctrl.Snapshot()
	if snap.State != StateActive || snap.MovieSlug != "x" {
		t.Fatalf("session lost after exhausted reload: %+v", snap)
	}
	if snap.Status == "" {
		t.Fatalf("no status message after exhausted reload")
	}
	if fetcher.calls != 1+MaxRetryAttempts {
		t.Fatalf("made %d fetches; want %d", fetcher.calls, 1+MaxRetryAttempts)
	}
}

func TestControllerDiscardsStaleVerdict(t *testing.T) {
	fetcher := &fakeFetcher{slugs: []string{"x", "y"}}
	submitter := &fakeSubmitter{verdicts: []*api.GuessVerdict{{
		NextClueIndex: 1,
		NextClueText:  strPtr("C2"),
		Message:       "Nope, have another clue.",
	}}}
	ctrl := NewController(NewLoader(fetcher), NewEvaluator(submitter))
	if err := ctrl.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	// a reload completes while the guess is in flight
	submitter.hook = func() {
		if err := ctrl.NewMovie(context.Background()); err != nil {
			t.Errorf("new movie during guess: %v", err)
		}
	}

	if err := ctrl.SubmitGuess(context.Background(), "wrong"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	snap := ctrl.Snapshot()
	if snap.MovieSlug != "y" {
		t.Fatalf("slug = %q; want y", snap.MovieSlug)
	}
	if snap.CurrentClueIndex != 0 || len(snap.PreviousClues) != 0 {
		t.Fatalf("stale verdict was applied to the new session: %+v", snap)
	}
	if snap.Status == "Nope, have another clue." {
		t.Fatalf("stale verdict message surfaced")
	}
}

func TestControllerCoalescesOverlappingLoads(t *testing.T) {
	fetcher := &fakeFetcher{slugs: []string{"x", "y"}}
	ctrl := NewController(NewLoader(fetcher), NewEvaluator(&fakeSubmitter{}))
	if err := ctrl.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	// second reload issued while the first is still in flight
	reentrant := &fakeFetcher{slugs: []string{"y"}}
	var gateErr error
	reentrant2 := func(ctx context.Context) (*api.TodayGame, error) {
		gateErr = ctrl.NewMovie(ctx)
		return reentrant.TodayGame(ctx)
	}

	ctrl.loader = NewLoader(fetcherFunc(reentrant2))
	if err := ctrl.NewMovie(context.Background()); err != nil {
		t.Fatalf("new movie: %v", err)
	}
	if !errors.Is(gateErr, ErrLoadInFlight) {
		t.Fatalf("overlapping reload err = %v; want ErrLoadInFlight", gateErr)
	}
}

type fetcherFunc func(ctx context.Context) (*api.TodayGame, error)

func (f fetcherFunc) TodayGame(ctx context.Context) (*api.TodayGame, error) { return f(ctx) }

func TestControllerSolvedAtLoad(t *testing.T) {
	fetcher := fetcherFunc(func(ctx context.Context) (*api.TodayGame, error) {
		return &api.TodayGame{
			MovieSlug:       "x",
			TotalClues:      5,
			CurrentClueText: "C1",
			Solved:          true,
		}, nil
	})
	ctrl := NewController(NewLoader(fetcher), NewEvaluator(&fakeSubmitter{}))
	if err := ctrl.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	snap := ctrl.Snapshot()
	if snap.State != StateFinished || !snap.Finished {
		t.Fatalf("solved session not finished at load: %+v", snap)
	}
	if err := ctrl.SubmitGuess(context.Background(), "x"); !errors.Is(err, ErrSessionFinished) {
		t.Fatalf("guess on solved session: err = %v", err)
	}
}
