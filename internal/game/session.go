package game

import "cinemaguess/internal/api"

// GameSession identifies one daily puzzle instance. It is replaced
// wholesale on every reload, never patched field by field.
type GameSession struct {
	GameDate   string
	MovieSlug  string
	TotalClues int
	PosterURL  string // empty until revealed or when the movie has no poster
	Solved     bool
}

// ClueProgress tracks where the player is inside a session.
// PreviousClues is append-only while the session lives and records
// every clue advanced past, in reveal order.
type ClueProgress struct {
	CurrentClueIndex int
	CurrentClueText  string
	PreviousClues    []string
	Finished         bool
	RevealedTitle    string
}

// newSessionState builds a session and its progress together from a
// collaborator payload, so the pair can only ever be replaced atomically.
func newSessionState(payload *api.TodayGame) (GameSession, ClueProgress) {
	session := GameSession{
		GameDate:   payload.GameDate,
		MovieSlug:  payload.MovieSlug,
		TotalClues: payload.TotalClues,
		Solved:     payload.Solved,
	}
	if payload.PosterURL != nil {
		session.PosterURL = *payload.PosterURL
	}

	progress := ClueProgress{
		CurrentClueIndex: payload.CurrentClueIndex,
		CurrentClueText:  payload.CurrentClueText,
		Finished:         payload.Solved,
	}

	return session, progress
}
