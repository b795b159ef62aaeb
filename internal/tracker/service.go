package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymsplit/internal/logstore"
	"github.com/2beens/gymsplit/internal/schedule"
	"github.com/2beens/gymsplit/internal/settings"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=tracker_test

var (
	ErrRestDay                  = errors.New("today is a rest day")
	ErrSpreadsheetNotConfigured = errors.New("spreadsheet id not configured")
)

// MissingFieldError is returned for a log entry without a required field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field: %s", e.Field)
}

type logStore interface {
	Append(ctx context.Context, cred logstore.Credential, storeID string, entry logstore.LogEntry, label schedule.DayLabel) error
	Read(ctx context.Context, cred logstore.Credential, storeID string) (logstore.History, error)
}

type settingsLoader interface {
	Load(ctx context.Context) (settings.Settings, error)
}

// HistoryView is the log as shown to the user: the (optionally filtered)
// entries, every exercise seen in the log, and the skipped row count.
type HistoryView struct {
	Entries   []logstore.HistoryEntry `json:"entries"`
	Exercises []string                `json:"exercises"`
	Dropped   int                     `json:"dropped"`
}

// Service ties the schedule, the settings and the log store together. It is
// shared by the HTTP API, the MCP tools and the CLI.
type Service struct {
	logStore logStore
	settings settingsLoader
	now      func() time.Time
}

func NewService(logStore logStore, settings settingsLoader) *Service {
	return &Service{
		logStore: logStore,
		settings: settings,
		now:      time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Today resolves today's plan. Unreadable settings fall back to the
// defaults Load returns alongside the error.
func (s *Service) Today(ctx context.Context) schedule.Plan {
	st, err := s.settings.Load(ctx)
	if err != nil {
		log.Warnf("today: load settings, using defaults: %s", err)
	}
	return schedule.Today(s.now(), st.CycleConfig())
}

// Log appends one set to today's workout. Rest days take no entries.
func (s *Service) Log(ctx context.Context, cred logstore.Credential, entry logstore.LogEntry) (schedule.Plan, error) {
	entry.ExerciseName = strings.TrimSpace(entry.ExerciseName)
	entry.Weight = strings.TrimSpace(entry.Weight)
	entry.Reps = strings.TrimSpace(entry.Reps)
	switch {
	case entry.ExerciseName == "":
		return schedule.Plan{}, &MissingFieldError{Field: "exerciseName"}
	case entry.Weight == "":
		return schedule.Plan{}, &MissingFieldError{Field: "weight"}
	case entry.Reps == "":
		return schedule.Plan{}, &MissingFieldError{Field: "reps"}
	}

	st, err := s.loadForStore(ctx)
	if err != nil {
		return schedule.Plan{}, err
	}

	plan := schedule.Today(s.now(), st.CycleConfig())
	if plan.Rest {
		return plan, ErrRestDay
	}

	if err := s.logStore.Append(ctx, cred, st.SpreadsheetID, entry, plan.Label); err != nil {
		return plan, fmt.Errorf("append: %w", err)
	}
	return plan, nil
}

// History reads the log, keeping only exerciseName's entries when it is set.
func (s *Service) History(ctx context.Context, cred logstore.Credential, exerciseName string) (HistoryView, error) {
	history, err := s.read(ctx, cred)
	if err != nil {
		return HistoryView{Entries: []logstore.HistoryEntry{}, Exercises: []string{}}, err
	}

	view := HistoryView{
		Entries:   history.Entries,
		Exercises: logstore.ExerciseNames(history.Entries),
		Dropped:   history.Dropped,
	}
	if exerciseName != "" {
		view.Entries = logstore.FilterByExercise(history.Entries, exerciseName)
	}
	return view, nil
}

func (s *Service) Progress(ctx context.Context, cred logstore.Credential, exerciseName string) (logstore.ProgressSeries, error) {
	history, err := s.read(ctx, cred)
	if err != nil {
		return logstore.NewProgressSeries(nil, exerciseName), err
	}
	return logstore.NewProgressSeries(history.Entries, exerciseName), nil
}

func (s *Service) read(ctx context.Context, cred logstore.Credential) (logstore.History, error) {
	st, err := s.loadForStore(ctx)
	if err != nil {
		return logstore.History{}, err
	}
	history, err := s.logStore.Read(ctx, cred, st.SpreadsheetID)
	if err != nil {
		return logstore.History{}, fmt.Errorf("read: %w", err)
	}
	return history, nil
}

func (s *Service) loadForStore(ctx context.Context) (settings.Settings, error) {
	st, err := s.settings.Load(ctx)
	if err != nil {
		return st, fmt.Errorf("load settings: %w", err)
	}
	if strings.TrimSpace(st.SpreadsheetID) == "" {
		return st, ErrSpreadsheetNotConfigured
	}
	return st, nil
}
