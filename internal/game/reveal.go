package game

// Poster blur range: the first clue shows the poster at MaxBlur, the
// last clue at MinBlur, and a finished game shows it fully sharp.
const (
	MaxBlur = 30.0
	MinBlur = 12.0
)

// BlurIntensity interpolates the poster blur from MaxBlur at clue 0
// down to MinBlur at the last clue. It returns 0 once the session is
// finished or when there is no poster to blur. totalClues=1 is guarded
// by clamping the step denominator to 1.
func BlurIntensity(totalClues, currentClueIndex int, finished, hasPoster bool) float64 {
	if finished || !hasPoster {
		return 0
	}

	steps := totalClues - 1
	if steps < 1 {
		steps = 1
	}

	ratio := float64(currentClueIndex) / float64(steps)
	if ratio > 1 {
		ratio = 1
	}

	return MaxBlur - (MaxBlur-MinBlur)*ratio
}

// ProgressPercent reports how far into the clue sequence the player is,
// as a percentage in [0,100].
func ProgressPercent(totalClues, currentClueIndex int) float64 {
	if totalClues < 1 {
		return 0
	}

	ratio := float64(currentClueIndex+1) / float64(totalClues)
	if ratio > 1 {
		ratio = 1
	}

	return ratio * 100
}
