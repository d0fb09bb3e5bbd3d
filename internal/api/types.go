package api

// TodayGame is the collaborator's answer to GET /today-game.
type TodayGame struct {
	GameDate         string  `json:"game_date"`
	MovieSlug        string  `json:"movie_slug"`
	TotalClues       int     `json:"total_clues"`
	CurrentClueIndex int     `json:"current_clue_index"`
	CurrentClueText  string  `json:"current_clue_text"`
	Solved           bool    `json:"solved"`
	PosterURL        *string `json:"poster_url"`
}

// GuessRequest is the body of POST /guess. CurrentClueIndex pins the
// clue the guess was made against so the collaborator can detect
// drifted client state.
type GuessRequest struct {
	MovieSlug        string `json:"movie_slug"`
	Guess            string `json:"guess"`
	CurrentClueIndex int    `json:"current_clue_index"`
}

// GuessVerdict is the collaborator's evaluation of a guess.
type GuessVerdict struct {
	Correct         bool    `json:"correct"`
	Finished        bool    `json:"finished"`
	NextClueIndex   int     `json:"next_clue_index"`
	NextClueText    *string `json:"next_clue_text"`
	RevealTitle     *string `json:"reveal_title"`
	RevealPosterURL *string `json:"reveal_poster_url"`
	Message         string  `json:"message"`
}
