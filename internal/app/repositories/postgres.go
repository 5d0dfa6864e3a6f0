package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
	"github.com/yigit/injurydesk/internal/pkg/dberrors"
)

// DBTX is the subset of pgxpool.Pool the gateway needs
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// PostgresCollection is a Collection backed by one postgres table
type PostgresCollection[T any] struct {
	db     DBTX
	schema Schema[T]
	now    func() time.Time
}

// NewPostgresCollection creates a collection for schema on db
func NewPostgresCollection[T any](db DBTX, schema Schema[T]) *PostgresCollection[T] {
	return &PostgresCollection[T]{db: db, schema: schema, now: func() time.Time { return time.Now().UTC() }}
}

// NewPostgresGateway builds a Gateway whose collections all share db
func NewPostgresGateway(db DBTX) *Gateway {
	return &Gateway{
		Users:              NewPostgresCollection(db, UserSchema),
		Injuries:           NewPostgresCollection(db, InjurySchema),
		Assignments:        NewPostgresCollection(db, AssignmentSchema),
		Appointments:       NewPostgresCollection(db, AppointmentSchema),
		Messages:           NewPostgresCollection(db, MessageSchema),
		RecoveryLogs:       NewPostgresCollection(db, RecoveryLogSchema),
		TreatmentTemplates: NewPostgresCollection(db, TreatmentTemplateSchema),
		TreatmentPlans:     NewPostgresCollection(db, TreatmentPlanSchema),
		RTPChecklists:      NewPostgresCollection(db, RTPChecklistSchema),
		Files:              NewPostgresCollection(db, FileSchema),
		mode:               ModePostgres,
	}
}

// List returns every row ordered by id
func (c *PostgresCollection[T]) List(ctx context.Context) ([]T, error) {
	return c.Filter(ctx, Query{OrderBy: "id"})
}

// Get returns the row with the given id
func (c *PostgresCollection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T

	sql, args, err := psql.Select(c.schema.Columns...).
		From(c.schema.Table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("error building %s query: %w", c.schema.Table, err)
	}

	var record T
	if err := c.db.QueryRow(ctx, sql, args...).Scan(c.schema.Targets(&record)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, fmt.Errorf("%s %q: %w", c.schema.Table, id, apperrors.ErrResourceNotFound)
		}
		return zero, fmt.Errorf("error retrieving from %s: %w", c.schema.Table, err)
	}

	return record, nil
}

// Create inserts a row and returns it as stored
func (c *PostgresCollection[T]) Create(ctx context.Context, record T) (T, error) {
	var zero T

	if c.schema.ID(&record) == "" {
		c.schema.SetID(&record, uuid.New().String())
	}
	if c.schema.Stamp != nil {
		c.schema.Stamp(&record, c.now())
	}

	sql, args, err := psql.Insert(c.schema.Table).
		Columns(c.schema.Columns...).
		Values(c.schema.Values(&record)...).
		Suffix("RETURNING " + strings.Join(c.schema.Columns, ", ")).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("error building %s insert: %w", c.schema.Table, err)
	}

	var stored T
	if err := c.db.QueryRow(ctx, sql, args...).Scan(c.schema.Targets(&stored)...); err != nil {
		return zero, c.translate(err)
	}

	return stored, nil
}

// Update applies changes to the row with the given id and returns the new row
func (c *PostgresCollection[T]) Update(ctx context.Context, id string, changes Changes) (T, error) {
	var zero T

	if len(changes) == 0 {
		return c.Get(ctx, id)
	}

	columns := make([]string, 0, len(changes))
	for column := range changes {
		if column == "id" || !c.schema.hasColumn(column) {
			return zero, fmt.Errorf("%s.%s: %w", c.schema.Table, column, apperrors.ErrUnknownColumn)
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	builder := psql.Update(c.schema.Table)
	for _, column := range columns {
		builder = builder.Set(column, changes[column])
	}
	if c.schema.Touch != "" {
		if _, explicit := changes[c.schema.Touch]; !explicit {
			builder = builder.Set(c.schema.Touch, c.now())
		}
	}

	sql, args, err := builder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(c.schema.Columns, ", ")).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("error building %s update: %w", c.schema.Table, err)
	}

	var updated T
	if err := c.db.QueryRow(ctx, sql, args...).Scan(c.schema.Targets(&updated)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, fmt.Errorf("%s %q: %w", c.schema.Table, id, apperrors.ErrResourceNotFound)
		}
		return zero, c.translate(err)
	}

	return updated, nil
}

// Filter returns rows matching query
func (c *PostgresCollection[T]) Filter(ctx context.Context, query Query) ([]T, error) {
	builder, err := c.selectFor(query)
	if err != nil {
		return nil, err
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building %s query: %w", c.schema.Table, err)
	}

	rows, err := c.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying %s: %w", c.schema.Table, err)
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		var record T
		if err := rows.Scan(c.schema.Targets(&record)...); err != nil {
			return nil, fmt.Errorf("error scanning %s row: %w", c.schema.Table, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", c.schema.Table, err)
	}

	return records, nil
}

func (c *PostgresCollection[T]) selectFor(query Query) (squirrel.SelectBuilder, error) {
	builder := psql.Select(c.schema.Columns...).From(c.schema.Table)

	for _, cond := range query.Where {
		if !c.schema.hasColumn(cond.Column) {
			return builder, fmt.Errorf("%s.%s: %w", c.schema.Table, cond.Column, apperrors.ErrUnknownColumn)
		}
		switch cond.Op {
		case OpEq:
			builder = builder.Where(squirrel.Eq{cond.Column: cond.Value})
		case OpGte:
			builder = builder.Where(squirrel.GtOrEq{cond.Column: cond.Value})
		case OpLte:
			builder = builder.Where(squirrel.LtOrEq{cond.Column: cond.Value})
		default:
			return builder, apperrors.NewBadRequestError(fmt.Sprintf("unsupported operator %q", cond.Op))
		}
	}

	if query.OrderBy != "" {
		if !c.schema.hasColumn(query.OrderBy) {
			return builder, fmt.Errorf("%s.%s: %w", c.schema.Table, query.OrderBy, apperrors.ErrUnknownColumn)
		}
		direction := "ASC"
		if query.Desc {
			direction = "DESC"
		}
		builder = builder.OrderBy(query.OrderBy + " " + direction)
	}

	if query.Limit > 0 {
		builder = builder.Limit(uint64(query.Limit))
	}

	return builder, nil
}

// translate maps constraint violations onto application errors
func (c *PostgresCollection[T]) translate(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, "users_email_key"):
		return apperrors.ErrEmailAlreadyExists
	case dberrors.IsDuplicateConstraintError(err, ""):
		return apperrors.NewConflictError(fmt.Sprintf("%s already exists", strings.TrimSuffix(c.schema.Table, "s")))
	case dberrors.IsForeignKeyViolation(err):
		return apperrors.NewBadRequestError(fmt.Sprintf("referenced record does not exist (%s)", dberrors.ConstraintName(err)))
	case dberrors.IsCheckViolation(err):
		return apperrors.NewValidationError(fmt.Sprintf("value rejected by %s", dberrors.ConstraintName(err)))
	}
	return fmt.Errorf("error writing %s: %w", c.schema.Table, err)
}

var _ Collection[models.Injury] = (*PostgresCollection[models.Injury])(nil)
