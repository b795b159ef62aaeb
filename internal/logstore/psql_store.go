package logstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// WorkoutLogTableDDL creates the table used by PsqlBackend. Schema setup is
// done by the operator, the service never runs it.
const WorkoutLogTableDDL = `
CREATE TABLE IF NOT EXISTS workout_log (
	id            BIGSERIAL PRIMARY KEY,
	store_id      TEXT NOT NULL,
	log_date      TEXT NOT NULL,
	day_type      TEXT NOT NULL,
	exercise_name TEXT NOT NULL,
	weight        TEXT NOT NULL,
	reps          TEXT NOT NULL,
	notes         TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS workout_log_store_id_idx ON workout_log (store_id, id);`

type pgxConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PsqlBackend keeps the log in postgres, one table row per log row, with
// the same append-only, insertion-ordered semantics as the spreadsheet.
// The credential is not used.
type PsqlBackend struct {
	db pgxConn
}

func NewPsqlBackend(db pgxConn) *PsqlBackend {
	return &PsqlBackend{db: db}
}

func (b *PsqlBackend) AppendRow(ctx context.Context, _ Credential, storeID string, row []string) error {
	if len(row) != rowColumns {
		return &RemoteRejectedError{
			Status:  http.StatusBadRequest,
			Message: fmt.Sprintf("expected %d columns, got %d", rowColumns, len(row)),
		}
	}

	_, err := b.db.Exec(
		ctx,
		`INSERT INTO workout_log (store_id, log_date, day_type, exercise_name, weight, reps, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		storeID, row[colDate], row[colDayType], row[colExerciseName], row[colWeight], row[colReps], row[colNotes],
	)
	if err != nil {
		return classifyPgError(err)
	}
	return nil
}

func (b *PsqlBackend) ReadRows(ctx context.Context, _ Credential, storeID string) ([][]string, error) {
	rows, err := b.db.Query(
		ctx,
		`SELECT log_date, day_type, exercise_name, weight, reps, notes
		FROM workout_log
		WHERE store_id = $1
		ORDER BY id
		LIMIT $2;`,
		storeID, maxDataRows,
	)
	if err != nil {
		return nil, classifyPgError(err)
	}
	defer rows.Close()

	result := make([][]string, 0)
	for rows.Next() {
		row := make([]string, rowColumns)
		if err := rows.Scan(
			&row[colDate],
			&row[colDayType],
			&row[colExerciseName],
			&row[colWeight],
			&row[colReps],
			&row[colNotes],
		); err != nil {
			return nil, classifyPgError(err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPgError(err)
	}

	return result, nil
}

func classifyPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &RemoteRejectedError{
			Status:  http.StatusInternalServerError,
			Message: fmt.Sprintf("%s (%s)", pgErr.Message, pgErr.Code),
		}
	}
	return fmt.Errorf("%w: %s", ErrTransport, err)
}
