package goals

import "testing"

func TestEffectiveProgressCompletedOverridesStored(t *testing.T) {
	goal := Goal{Status: StatusCompleted, Progress: 40}
	if got := goal.EffectiveProgress(); got != 100 {
		t.Fatalf("completed goal effective progress = %d, want 100", got)
	}
}

func TestEffectiveProgressClamps(t *testing.T) {
	if got := (Goal{Status: StatusInProgress, Progress: 130}).EffectiveProgress(); got != 100 {
		t.Fatalf("over-100 progress = %d, want 100", got)
	}
	if got := (Goal{Status: StatusPending, Progress: -5}).EffectiveProgress(); got != 0 {
		t.Fatalf("negative progress = %d, want 0", got)
	}
}

func TestAverageProgress(t *testing.T) {
	items := []Goal{
		{Status: StatusCompleted, Progress: 30},
		{Status: StatusInProgress, Progress: 50},
	}
	if got := AverageProgress(items); got != 75 {
		t.Fatalf("average progress = %v, want 75", got)
	}
	if got := AverageProgress(nil); got != 0 {
		t.Fatalf("empty average progress = %v, want 0", got)
	}
}
