package game

import "errors"

var (
	// ErrFetchFailed covers transport errors and non-2xx responses on a
	// plain session load.
	ErrFetchFailed = errors.New("could not fetch today's game")

	// ErrNoAlternativeFound is returned when an exclusion load exhausts
	// its attempt budget without seeing a different movie. It is a
	// "try again" signal, not a fatal error.
	ErrNoAlternativeFound = errors.New("no alternative movie found")

	// ErrSessionFinished rejects guesses after the game has ended.
	ErrSessionFinished = errors.New("session already finished")

	// ErrGuessInFlight rejects a guess while another one is outstanding.
	ErrGuessInFlight = errors.New("a guess is already in flight")

	// ErrLoadInFlight coalesces overlapping reload requests.
	ErrLoadInFlight = errors.New("a load is already in flight")

	// ErrNoSession rejects operations that need a loaded session.
	ErrNoSession = errors.New("no session loaded")
)
