package game

import (
	"context"
	"fmt"

	"cinemaguess/internal/api"
	"cinemaguess/internal/logger"
)

// MaxRetryAttempts bounds the exclusion-load loop. Keep at 5: tests
// depend on the exact attempt count.
const MaxRetryAttempts = 5

// SessionFetcher is the collaborator operation the loader needs.
// *api.Client satisfies it.
type SessionFetcher interface {
	TodayGame(ctx context.Context) (*api.TodayGame, error)
}

// Loader fetches game sessions from the collaborator. It holds no
// state of its own; callers apply the result.
type Loader struct {
	fetcher SessionFetcher
}

func NewLoader(fetcher SessionFetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

// Load fetches a session. With an empty excludeSlug it issues exactly
// one fetch. With a non-empty excludeSlug it issues up to
// MaxRetryAttempts sequential fetches and accepts the first session
// whose slug differs from excludeSlug; transport failures count toward
// the attempt budget.
func (l *Loader) Load(ctx context.Context, excludeSlug string) (GameSession, ClueProgress, error) {
	if excludeSlug == "" {
		payload, err := l.fetcher.TodayGame(ctx)
		if err != nil {
			return GameSession{}, ClueProgress{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
		session, progress := newSessionState(payload)
		return session, progress, nil
	}

	for attempt := 1; attempt <= MaxRetryAttempts; attempt++ {
		payload, err := l.fetcher.TodayGame(ctx)
		if err != nil {
			logger.Warn("exclusion load attempt failed", "attempt", attempt, "err", err)
			continue
		}
		if payload.MovieSlug != excludeSlug {
			session, progress := newSessionState(payload)
			return session, progress, nil
		}
	}

	return GameSession{}, ClueProgress{}, ErrNoAlternativeFound
}
