package goals

// EffectiveProgress is the progress value reports must use. A completed goal
// counts as 100 even when its stored progress was never updated; the status
// is the source of truth once a goal is closed.
func (g Goal) EffectiveProgress() int {
	if g.Status == StatusCompleted {
		return 100
	}
	if g.Progress < 0 {
		return 0
	}
	if g.Progress > 100 {
		return 100
	}
	return g.Progress
}

// AverageProgress of a set of goals, using effective progress. Returns 0 for
// an empty set.
func AverageProgress(items []Goal) float64 {
	if len(items) == 0 {
		return 0
	}
	total := 0
	for _, g := range items {
		total += g.EffectiveProgress()
	}
	return float64(total) / float64(len(items))
}
