package logstore

// FilterByExercise keeps entries for one exercise, order preserved.
func FilterByExercise(entries []HistoryEntry, exerciseName string) []HistoryEntry {
	filtered := make([]HistoryEntry, 0)
	for _, e := range entries {
		if e.ExerciseName == exerciseName {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// ExerciseNames lists distinct exercise names in first-seen order.
func ExerciseNames(entries []HistoryEntry) []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, e := range entries {
		if seen[e.ExerciseName] {
			continue
		}
		seen[e.ExerciseName] = true
		names = append(names, e.ExerciseName)
	}
	return names
}

// ProgressSeries is the chart feed for one exercise: one point per logged
// set, labelled by date, in store order.
type ProgressSeries struct {
	Exercise string    `json:"exercise"`
	Labels   []string  `json:"labels"`
	Points   []float64 `json:"points"`
}

func NewProgressSeries(entries []HistoryEntry, exerciseName string) ProgressSeries {
	series := ProgressSeries{
		Exercise: exerciseName,
		Labels:   make([]string, 0),
		Points:   make([]float64, 0),
	}
	for _, e := range FilterByExercise(entries, exerciseName) {
		series.Labels = append(series.Labels, e.Date)
		series.Points = append(series.Points, e.Weight)
	}
	return series
}
