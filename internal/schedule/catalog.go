package schedule

// Exercise is a single catalog entry; Sets and Reps are targets as shown
// to the user ("4", "8-12", "Failure").
type Exercise struct {
	Name string `json:"name"`
	Sets string `json:"sets"`
	Reps string `json:"reps"`
}

// workoutCycle maps cycle positions (days since the configured start day)
// to labels.
var workoutCycle = [7]DayLabel{UpperA, LowerA, Rest, UpperB, LowerB, Rest, Rest}

// catalog is never handed out directly, see Exercises.
var catalog = map[DayLabel][]Exercise{
	UpperA: {
		{Name: "Dumbbell Bench Press", Sets: "4", Reps: "8-12"},
		{Name: "Lat Pulldown", Sets: "4", Reps: "10-12"},
		{Name: "Smith Machine Incline Press", Sets: "3", Reps: "10-12"},
		{Name: "Seated Cable Row", Sets: "3", Reps: "12"},
		{Name: "Dumbbell Lateral Raise", Sets: "4", Reps: "15"},
	},
	LowerA: {
		{Name: "Smith Machine Squat", Sets: "4", Reps: "8-10"},
		{Name: "Dumbbell RDL", Sets: "4", Reps: "10-12"},
		{Name: "Dumbbell Lunges", Sets: "3", Reps: "12/leg"},
		{Name: "Leg Curl", Sets: "3", Reps: "15"},
		{Name: "Core: Hanging Leg Raise", Sets: "3", Reps: "Failure"},
	},
	UpperB: {
		{Name: "Seated Dumbbell Shoulder Press", Sets: "4", Reps: "8-12"},
		{Name: "Pull-ups (or Assisted)", Sets: "4", Reps: "Failure"},
		{Name: "Dips (or Close Grip Press)", Sets: "3", Reps: "8-12"},
		{Name: "Dumbbell Bicep Curls", Sets: "3", Reps: "12"},
		{Name: "Tricep Rope Pushdown", Sets: "3", Reps: "12"},
	},
	LowerB: {
		{Name: "Smith Machine Hip Thrust", Sets: "4", Reps: "10-12"},
		{Name: "Goblet Squat", Sets: "3", Reps: "12"},
		{Name: "Calf Raises", Sets: "4", Reps: "15-20"},
		{Name: "Core: Crunches", Sets: "3", Reps: "15"},
		{Name: "Core: Russian Twist", Sets: "3", Reps: "20"},
	},
}

// Exercises returns the ordered exercise list for the label, empty for Rest.
// The returned slice is a copy.
func Exercises(label DayLabel) []Exercise {
	exercises := catalog[label]
	out := make([]Exercise, len(exercises))
	copy(out, exercises)
	return out
}

// FindExercise looks the name up across all training days.
func FindExercise(name string) (Exercise, DayLabel, bool) {
	for _, label := range AllDayLabels {
		for _, ex := range catalog[label] {
			if ex.Name == name {
				return ex, label, true
			}
		}
	}
	return Exercise{}, Rest, false
}
