package logstore

// Credential is the opaque bearer token forwarded to the store. It is never
// inspected, refreshed or validated here.
type Credential string

// LogEntry is one logged set as submitted by the user.
type LogEntry struct {
	ExerciseName string `json:"exerciseName"`
	Weight       string `json:"weight"`
	Reps         string `json:"reps"`
	Notes        string `json:"notes,omitempty"`
}

// HistoryEntry is a parsed stored row.
type HistoryEntry struct {
	Date         string  `json:"date"`
	DayType      string  `json:"dayType"`
	ExerciseName string  `json:"exerciseName"`
	Weight       float64 `json:"weight"`
	Reps         string  `json:"reps"`
	Notes        string  `json:"notes"`
}

// History is the result of a read: valid entries in store order plus the
// number of malformed rows that were skipped.
type History struct {
	Entries []HistoryEntry `json:"entries"`
	Dropped int            `json:"dropped"`
}

// PartialParse reports whether some stored rows were skipped.
func (h History) PartialParse() bool {
	return h.Dropped > 0
}
