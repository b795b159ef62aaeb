package logstore

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/2beens/gymsplit/internal/schedule"
)

const (
	colDate = iota
	colDayType
	colExerciseName
	colWeight
	colReps
	colNotes

	rowColumns
)

const (
	// appendRange anchors the append at the table start; the store finds the
	// first empty row after it.
	appendRange = "Sheet1!A1"
	// readRange skips the header row and bounds the read to 999 data rows.
	readRange = "Sheet1!A2:F1000"

	maxDataRows = 999
)

// EncodeRow lays an entry out in the fixed column order
// [date, dayType, exerciseName, weight, reps, notes].
func EncodeRow(date string, label schedule.DayLabel, entry LogEntry) []string {
	row := make([]string, rowColumns)
	row[colDate] = date
	row[colDayType] = label.String()
	row[colExerciseName] = entry.ExerciseName
	row[colWeight] = entry.Weight
	row[colReps] = entry.Reps
	row[colNotes] = entry.Notes
	return row
}

// ParseRow maps a raw row positionally. Missing trailing cells are empty,
// extra cells are ignored. ok is false when the exercise name is empty or
// the weight is not a finite number.
func ParseRow(row []string) (_ HistoryEntry, ok bool) {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	entry := HistoryEntry{
		Date:         cell(colDate),
		DayType:      cell(colDayType),
		ExerciseName: cell(colExerciseName),
		Reps:         cell(colReps),
		Notes:        cell(colNotes),
	}

	weight, err := parseWeight(cell(colWeight))
	if err != nil {
		weight = 0
		ok = false
	} else {
		ok = true
	}
	entry.Weight = weight

	if strings.TrimSpace(entry.ExerciseName) == "" {
		ok = false
	}

	return entry, ok
}

// ParseRows parses rows in order, skipping malformed ones.
func ParseRows(rows [][]string) History {
	h := History{Entries: make([]HistoryEntry, 0, len(rows))}
	for _, row := range rows {
		entry, ok := ParseRow(row)
		if !ok {
			h.Dropped++
			continue
		}
		h.Entries = append(h.Entries, entry)
	}
	return h
}

func parseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("weight not finite: %q", s)
	}
	return w, nil
}

// cellString normalizes a cell from a JSON values array.
func cellString(c any) string {
	switch v := c.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

func toCells(row []string) []any {
	cells := make([]any, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}

func fromCells(values [][]any) [][]string {
	rows := make([][]string, 0, len(values))
	for _, v := range values {
		row := make([]string, len(v))
		for i, c := range v {
			row[i] = cellString(c)
		}
		rows = append(rows, row)
	}
	return rows
}
