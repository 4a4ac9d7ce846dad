package backlog

// Statistics aggregates snapshot-wide counters used for UI summaries
// and as a cheap correctness oracle for bulk exports.
type Statistics struct {
	TotalEpics       int     `json:"totalEpics"`
	TotalFeatures    int     `json:"totalFeatures"`
	TotalUserStories int     `json:"totalUserStories"`
	TotalTasks       int     `json:"totalTasks"`
	// FeaturesWithStories counts features owning at least one story.
	FeaturesWithStories int `json:"featuresWithStories"`
	// FeaturesWithTasks counts features where at least one owned story
	// owns at least one task.
	FeaturesWithTasks int `json:"featuresWithTasks"`
	// TasksWithCriteria counts tasks whose requirement fallback chain
	// resolves to real criteria rather than a synthesized bullet.
	TasksWithCriteria int     `json:"tasksWithCriteria"`
	AvgTasksPerStory  float64 `json:"avgTasksPerStory"`
}

// ComputeStatistics derives the aggregate counters from a snapshot.
func ComputeStatistics(s *Snapshot) Statistics {
	idx := s.BuildIndex()

	stats := Statistics{
		TotalEpics:       len(present(s.Epics)),
		TotalFeatures:    len(present(s.Features)),
		TotalUserStories: len(present(s.UserStories)),
		TotalTasks:       len(present(s.Tasks)),
	}

	for _, f := range s.PresentFeatures() {
		stories := idx.StoriesByFeature[f.ID]
		if len(stories) == 0 {
			continue
		}
		stats.FeaturesWithStories++
		for _, story := range stories {
			if len(idx.TasksByStory[story.ID]) > 0 {
				stats.FeaturesWithTasks++
				break
			}
		}
	}

	for _, t := range s.PresentTasks() {
		story := s.UserStory(t.ParentUserStoryID)
		var feature *Feature
		if story != nil {
			feature = s.Feature(story.ParentFeatureID)
		}
		if _, source := Requirements(t, story, feature); source != SourceSynthesized {
			stats.TasksWithCriteria++
		}
	}

	if stats.TotalUserStories > 0 {
		stats.AvgTasksPerStory = float64(stats.TotalTasks) / float64(stats.TotalUserStories)
	}
	return stats
}
