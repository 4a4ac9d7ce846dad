package backlog

import "testing"

func TestComputeStatistics(t *testing.T) {
	snap := testSnapshot()
	stats := ComputeStatistics(snap)

	if stats.TotalEpics != 1 || stats.TotalFeatures != 2 || stats.TotalUserStories != 1 || stats.TotalTasks != 2 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.FeaturesWithStories != 1 {
		t.Errorf("featuresWithStories = %d, want 1", stats.FeaturesWithStories)
	}
	if stats.FeaturesWithTasks != 1 {
		t.Errorf("featuresWithTasks = %d, want 1", stats.FeaturesWithTasks)
	}
	// Both tasks resolve to F1's criteria through the fallback chain.
	if stats.TasksWithCriteria != 2 {
		t.Errorf("tasksWithCriteria = %d, want 2", stats.TasksWithCriteria)
	}
	if stats.AvgTasksPerStory != 2 {
		t.Errorf("avgTasksPerStory = %g, want 2", stats.AvgTasksPerStory)
	}
}

func TestComputeStatistics_Empty(t *testing.T) {
	snap := &Snapshot{}
	stats := ComputeStatistics(snap)
	if stats.TotalTasks != 0 || stats.AvgTasksPerStory != 0 {
		t.Fatalf("unexpected stats for empty snapshot: %+v", stats)
	}
}

func TestComputeStatistics_SynthesizedNotCounted(t *testing.T) {
	snap := &Snapshot{
		Tasks: map[string]*Task{
			"T1": {ID: "T1", Title: "Orphan"},
		},
	}
	stats := ComputeStatistics(snap)
	if stats.TasksWithCriteria != 0 {
		t.Errorf("tasksWithCriteria = %d, want 0", stats.TasksWithCriteria)
	}
}
