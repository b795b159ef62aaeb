package schedule

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidStartDay = errors.New("cycle start day must be 0-6")

// CycleConfig decides which weekday is cycle position 0 (0=Sunday..6=Saturday).
type CycleConfig struct {
	StartDay int `json:"startDay"`
}

// Validate guards the input boundary; the resolver itself assumes 0-6.
func (c CycleConfig) Validate() error {
	if c.StartDay < 0 || c.StartDay > 6 {
		return fmt.Errorf("%w: got %d", ErrInvalidStartDay, c.StartDay)
	}
	return nil
}

// Plan is the resolved workout for one calendar day.
type Plan struct {
	Date        string     `json:"date"`
	Weekday     string     `json:"weekday"`
	Label       DayLabel   `json:"dayType"`
	DisplayName string     `json:"displayName"`
	Rest        bool       `json:"rest"`
	Exercises   []Exercise `json:"exercises"`
}

func CyclePosition(weekday time.Weekday, startDay int) int {
	return ((int(weekday)-startDay)%7 + 7) % 7
}

func LabelFor(weekday time.Weekday, startDay int) DayLabel {
	return workoutCycle[CyclePosition(weekday, startDay)]
}

// Today resolves the plan for the calendar day of now. It keeps no state,
// callers resolve again on every render.
func Today(now time.Time, cfg CycleConfig) Plan {
	label := LabelFor(now.Weekday(), cfg.StartDay)
	return Plan{
		Date:        FormatDate(now),
		Weekday:     now.Weekday().String(),
		Label:       label,
		DisplayName: label.DisplayName(),
		Rest:        label.IsRest(),
		Exercises:   Exercises(label),
	}
}

// FormatDate renders t the way the log rows store dates: year/month/day
// without zero padding.
func FormatDate(t time.Time) string {
	return t.Format("2006/1/2")
}
