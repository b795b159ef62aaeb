package logstore

import (
	"context"
	"time"

	"github.com/2beens/gymsplit/internal/schedule"
	"github.com/2beens/gymsplit/internal/telemetry/metrics"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=adapter_mocks_test.go -package=logstore_test

// Backend is a remote tabular store holding the workout log.
type Backend interface {
	// AppendRow inserts exactly one row after the last stored row.
	AppendRow(ctx context.Context, cred Credential, storeID string, row []string) error
	// ReadRows returns stored data rows in store order.
	ReadRows(ctx context.Context, cred Credential, storeID string) ([][]string, error)
}

// Adapter is the append/read boundary of the workout log. Every failure is
// logged here and returned classified; see Classify.
type Adapter struct {
	backend        Backend
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewAdapter(backend Backend, metricsManager *metrics.Manager) *Adapter {
	return &Adapter{
		backend:        backend,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// WithClock replaces the clock used to stamp appended rows.
func (a *Adapter) WithClock(now func() time.Time) *Adapter {
	a.now = now
	return a
}

// Append stores one row for entry, stamped with today's date and the given
// day label. A nil error means the row was stored.
func (a *Adapter) Append(
	ctx context.Context,
	cred Credential,
	storeID string,
	entry LogEntry,
	label schedule.DayLabel,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logstore.append")
	span.SetAttributes(
		attribute.String("exercise", entry.ExerciseName),
		attribute.String("day_type", label.String()),
	)
	defer func(begin time.Time) {
		outcome := Classify(err)
		a.metricsManager.CounterLogAppends.WithLabelValues(string(outcome)).Inc()
		a.metricsManager.HistogramStoreDuration.WithLabelValues("append").Observe(time.Since(begin).Seconds())
		tracing.EndSpanWithErrCheck(span, err)
	}(time.Now())

	row := EncodeRow(schedule.FormatDate(a.now()), label, entry)
	if err := a.backend.AppendRow(ctx, cred, storeID, row); err != nil {
		log.Errorf("log store append [%s] [%s] failed (%s): %s", storeID, entry.ExerciseName, Classify(err), err)
		return err
	}

	log.Debugf("log store append [%s]: %v", storeID, row)
	return nil
}

// Read fetches and parses the whole bounded log. On failure the returned
// History is empty.
func (a *Adapter) Read(ctx context.Context, cred Credential, storeID string) (_ History, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logstore.read")
	defer func(begin time.Time) {
		outcome := Classify(err)
		a.metricsManager.CounterLogReads.WithLabelValues(string(outcome)).Inc()
		a.metricsManager.HistogramStoreDuration.WithLabelValues("read").Observe(time.Since(begin).Seconds())
		tracing.EndSpanWithErrCheck(span, err)
	}(time.Now())

	rows, err := a.backend.ReadRows(ctx, cred, storeID)
	if err != nil {
		log.Errorf("log store read [%s] failed (%s): %s", storeID, Classify(err), err)
		return History{Entries: []HistoryEntry{}}, err
	}

	history := ParseRows(rows)
	span.SetAttributes(
		attribute.Int("rows", len(rows)),
		attribute.Int("dropped", history.Dropped),
	)
	if history.Dropped > 0 {
		a.metricsManager.CounterDroppedRows.Add(float64(history.Dropped))
		log.Warnf("log store read [%s]: skipped %d malformed rows of %d", storeID, history.Dropped, len(rows))
	}

	return history, nil
}
