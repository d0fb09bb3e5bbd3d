package catalog

// Default returns the built-in movie set for local play.
func Default() *Catalog {
	return New([]Movie{
		{
			Title:     "Jaws",
			Slug:      "jaws",
			PosterURL: "https://image.tmdb.org/t/p/w500/jaws.jpg",
			Clues: []string{
				"A seaside town's busiest weekend turns into its worst.",
				"The mayor insists the beaches stay open.",
				"Three men set out on a boat that is far too small.",
				"Two notes on a tuba became one of cinema's scariest themes.",
				"You're gonna need a bigger boat.",
			},
		},
		{
			Title:     "The Matrix",
			Slug:      "the-matrix",
			PosterURL: "https://image.tmdb.org/t/p/w500/the-matrix.jpg",
			Clues: []string{
				"An office worker moonlights under a different name.",
				"A stranger offers a choice between two capsules.",
				"Agents in suits never seem to miss -- until now.",
				"Everything you know is a simulation.",
				"There is no spoon.",
			},
		},
		{
			Title:     "Spirited Away",
			Slug:      "spirited-away",
			PosterURL: "https://image.tmdb.org/t/p/w500/spirited-away.jpg",
			Clues: []string{
				"A family takes a wrong turn on the way to their new house.",
				"Her parents make pigs of themselves. Literally.",
				"A bathhouse serves some very unusual customers.",
				"She must remember her own name to go home.",
				"A faceless spirit keeps offering gold.",
			},
		},
		{
			Title:     "Alien",
			Slug:      "alien",
			PosterURL: "https://image.tmdb.org/t/p/w500/alien.jpg",
			Clues: []string{
				"A cargo ship answers a signal it should have ignored.",
				"The company's orders outrank the crew's survival.",
				"Dinner is interrupted in the worst possible way.",
				"The cat survives. Most of the crew does not.",
				"In space no one can hear you scream.",
			},
		},
		{
			Title:     "Parasite",
			Slug:      "parasite",
			PosterURL: "https://image.tmdb.org/t/p/w500/parasite.jpg",
			Clues: []string{
				"A folding-pizza-box job isn't paying the bills.",
				"One forged diploma gets a whole family hired.",
				"There's more to the basement than anyone upstairs knows.",
				"A birthday party in the garden goes very wrong.",
				"The smell of people who ride the subway.",
			},
		},
		{
			Title:     "Back to the Future",
			Slug:      "back-to-the-future",
			PosterURL: "https://image.tmdb.org/t/p/w500/back-to-the-future.jpg",
			Clues: []string{
				"A teenager is late for school. And for 1955.",
				"The inventor's dog is named after a physicist.",
				"His parents' first meeting must be rescued.",
				"The car needs to hit exactly 88.",
				"Where we're going, we don't need roads.",
			},
		},
	})
}
