package schedule

import (
	"errors"
	"fmt"
)

var ErrUnknownDayLabel = errors.New("unknown day label")

// DayLabel is one of the five workout-day labels of the split.
type DayLabel int

const (
	UpperA DayLabel = iota
	LowerA
	UpperB
	LowerB
	Rest
)

// AllDayLabels lists every label, training days first.
var AllDayLabels = [...]DayLabel{UpperA, LowerA, UpperB, LowerB, Rest}

// String returns the label as stored in the log store's dayType column.
func (l DayLabel) String() string {
	switch l {
	case UpperA:
		return "Upper A"
	case LowerA:
		return "Lower A"
	case UpperB:
		return "Upper B"
	case LowerB:
		return "Lower B"
	case Rest:
		return "Rest"
	}
	return fmt.Sprintf("DayLabel(%d)", int(l))
}

// DisplayName is the user facing name of the label.
func (l DayLabel) DisplayName() string {
	switch l {
	case UpperA:
		return "上肢训练 A"
	case LowerA:
		return "下肢训练 A"
	case UpperB:
		return "上肢训练 B"
	case LowerB:
		return "下肢训练 B"
	case Rest:
		return "休息日"
	}
	return l.String()
}

func (l DayLabel) IsRest() bool {
	return l == Rest
}

func (l DayLabel) MarshalText() ([]byte, error) {
	switch l {
	case UpperA, LowerA, UpperB, LowerB, Rest:
		return []byte(l.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownDayLabel, int(l))
}

func (l *DayLabel) UnmarshalText(text []byte) error {
	parsed, err := ParseDayLabel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseDayLabel accepts both the spaced form ("Upper A") and the
// identifier form ("UpperA").
func ParseDayLabel(s string) (DayLabel, error) {
	switch s {
	case "Upper A", "UpperA":
		return UpperA, nil
	case "Lower A", "LowerA":
		return LowerA, nil
	case "Upper B", "UpperB":
		return UpperB, nil
	case "Lower B", "LowerB":
		return LowerB, nil
	case "Rest":
		return Rest, nil
	}
	return Rest, fmt.Errorf("%w: %q", ErrUnknownDayLabel, s)
}
