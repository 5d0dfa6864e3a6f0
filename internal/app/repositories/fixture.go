package repositories

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
)

// FixtureData is the dataset a fixture gateway starts from
type FixtureData struct {
	Users              []models.User
	Injuries           []models.Injury
	Assignments        []models.Assignment
	Appointments       []models.Appointment
	Messages           []models.Message
	RecoveryLogs       []models.RecoveryLog
	TreatmentTemplates []models.TreatmentTemplate
	TreatmentPlans     []models.TreatmentPlan
	RTPChecklists      []models.RTPChecklist
	Files              []models.File
}

// Access controls which mutations a MemoryCollection accepts
type Access int

const (
	// ReadOnly rejects every mutation with apperrors.ErrBackendRequired
	ReadOnly Access = iota
	// CreateOnly accepts creates but rejects updates
	CreateOnly
	// ReadWrite accepts creates and updates
	ReadWrite
)

// MemoryCollection is an in-memory Collection. As a fixture it serves reads and
// rejects most mutations with apperrors.ErrBackendRequired; as a memory store it
// accepts everything.
type MemoryCollection[T any] struct {
	mu      sync.RWMutex
	schema  Schema[T]
	rows    []T
	access  Access
	latency time.Duration
	now     func() time.Time
}

// NewMemoryCollection creates a collection seeded with rows
func NewMemoryCollection[T any](schema Schema[T], rows []T, access Access, latency time.Duration) *MemoryCollection[T] {
	seeded := make([]T, len(rows))
	copy(seeded, rows)
	return &MemoryCollection[T]{
		schema:  schema,
		rows:    seeded,
		access:  access,
		latency: latency,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// NewFixtureGateway builds a Gateway over in-memory copies of data.
// Only sign-up (users) and injury reporting accept writes.
func NewFixtureGateway(data FixtureData, latency time.Duration) *Gateway {
	return &Gateway{
		Users:              NewMemoryCollection(UserSchema, data.Users, CreateOnly, latency),
		Injuries:           NewMemoryCollection(InjurySchema, data.Injuries, CreateOnly, latency),
		Assignments:        NewMemoryCollection(AssignmentSchema, data.Assignments, ReadOnly, latency),
		Appointments:       NewMemoryCollection(AppointmentSchema, data.Appointments, ReadOnly, latency),
		Messages:           NewMemoryCollection(MessageSchema, data.Messages, ReadOnly, latency),
		RecoveryLogs:       NewMemoryCollection(RecoveryLogSchema, data.RecoveryLogs, ReadOnly, latency),
		TreatmentTemplates: NewMemoryCollection(TreatmentTemplateSchema, data.TreatmentTemplates, ReadOnly, latency),
		TreatmentPlans:     NewMemoryCollection(TreatmentPlanSchema, data.TreatmentPlans, ReadOnly, latency),
		RTPChecklists:      NewMemoryCollection(RTPChecklistSchema, data.RTPChecklists, ReadOnly, latency),
		Files:              NewMemoryCollection(FileSchema, data.Files, ReadOnly, latency),
		mode:               ModeFixture,
		latency:            latency,
	}
}

// NewMemoryGateway builds a fully writable Gateway over in-memory copies of data.
// Nothing is persisted; it serves demos and tests that exercise write paths.
func NewMemoryGateway(data FixtureData) *Gateway {
	return &Gateway{
		Users:              NewMemoryCollection(UserSchema, data.Users, ReadWrite, 0),
		Injuries:           NewMemoryCollection(InjurySchema, data.Injuries, ReadWrite, 0),
		Assignments:        NewMemoryCollection(AssignmentSchema, data.Assignments, ReadWrite, 0),
		Appointments:       NewMemoryCollection(AppointmentSchema, data.Appointments, ReadWrite, 0),
		Messages:           NewMemoryCollection(MessageSchema, data.Messages, ReadWrite, 0),
		RecoveryLogs:       NewMemoryCollection(RecoveryLogSchema, data.RecoveryLogs, ReadWrite, 0),
		TreatmentTemplates: NewMemoryCollection(TreatmentTemplateSchema, data.TreatmentTemplates, ReadWrite, 0),
		TreatmentPlans:     NewMemoryCollection(TreatmentPlanSchema, data.TreatmentPlans, ReadWrite, 0),
		RTPChecklists:      NewMemoryCollection(RTPChecklistSchema, data.RTPChecklists, ReadWrite, 0),
		Files:              NewMemoryCollection(FileSchema, data.Files, ReadWrite, 0),
		mode:               ModeMemory,
	}
}

// List returns every row in insertion order
func (c *MemoryCollection[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.rows))
	copy(out, c.rows)
	return out, nil
}

// Get returns the row with the given id
func (c *MemoryCollection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.rows {
		if c.schema.ID(&c.rows[i]) == id {
			return c.rows[i], nil
		}
	}
	return zero, fmt.Errorf("%s %q: %w", c.schema.Table, id, apperrors.ErrResourceNotFound)
}

// Create appends a row after the simulated latency unless the collection is read-only
func (c *MemoryCollection[T]) Create(ctx context.Context, record T) (T, error) {
	var zero T
	if c.access == ReadOnly {
		return zero, fmt.Errorf("create %s: %w", c.schema.Table, apperrors.ErrBackendRequired)
	}

	if err := sleep(ctx, c.latency); err != nil {
		return zero, err
	}

	if c.schema.ID(&record) == "" {
		c.schema.SetID(&record, uuid.New().String())
	}
	if c.schema.Stamp != nil {
		c.schema.Stamp(&record, c.now())
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.schema.ID(&record)
	for i := range c.rows {
		if c.schema.ID(&c.rows[i]) == id {
			return zero, apperrors.NewConflictError(fmt.Sprintf("%s %q already exists", c.schema.Table, id))
		}
	}
	if c.schema.Table == UserSchema.Table {
		if err := c.checkUniqueEmail(&record); err != nil {
			return zero, err
		}
	}

	c.rows = append(c.rows, record)
	return record, nil
}

func (c *MemoryCollection[T]) checkUniqueEmail(record *T) error {
	idx := c.schema.columnIndex("email")
	email, _ := normalize(c.schema.Values(record)[idx]).(string)
	for i := range c.rows {
		existing, _ := normalize(c.schema.Values(&c.rows[i])[idx]).(string)
		if strings.EqualFold(existing, email) {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	return nil
}

// Update applies changes to the row with id. Fixture collections reject it;
// the fixture store is read-only outside sign-up and injury reporting.
func (c *MemoryCollection[T]) Update(ctx context.Context, id string, changes Changes) (T, error) {
	var zero T
	if c.access != ReadWrite {
		return zero, fmt.Errorf("update %s: %w", c.schema.Table, apperrors.ErrBackendRequired)
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	columns := make([]string, 0, len(changes))
	for column := range changes {
		if column == "id" || !c.schema.hasColumn(column) {
			return zero, fmt.Errorf("%s.%s: %w", c.schema.Table, column, apperrors.ErrUnknownColumn)
		}
		columns = append(columns, column)
	}
	if len(columns) == 0 {
		return c.Get(ctx, id)
	}
	sort.Strings(columns)

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.rows {
		if c.schema.ID(&c.rows[i]) != id {
			continue
		}

		updated := c.rows[i]
		targets := c.schema.Targets(&updated)
		for _, column := range columns {
			if err := assign(targets[c.schema.columnIndex(column)], changes[column]); err != nil {
				return zero, apperrors.NewValidationError(fmt.Sprintf("%s.%s: %v", c.schema.Table, column, err))
			}
		}
		if _, explicit := changes[c.schema.Touch]; c.schema.Touch != "" && !explicit {
			if err := assign(targets[c.schema.columnIndex(c.schema.Touch)], c.now()); err != nil {
				return zero, err
			}
		}

		c.rows[i] = updated
		return updated, nil
	}
	return zero, fmt.Errorf("%s %q: %w", c.schema.Table, id, apperrors.ErrResourceNotFound)
}

// assign stores value into the field target points at, converting named types
// and wrapping values for pointer fields. A nil value clears the field.
func assign(target any, value any) error {
	field := reflect.ValueOf(target).Elem()
	if value == nil {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}

	switch {
	case rv.Type().AssignableTo(field.Type()):
		field.Set(rv)
	case rv.Kind() != reflect.Ptr && convertible(rv.Type(), field.Type()):
		field.Set(rv.Convert(field.Type()))
	case field.Kind() == reflect.Ptr && convertible(rv.Type(), field.Type().Elem()):
		ptr := reflect.New(field.Type().Elem())
		ptr.Elem().Set(rv.Convert(field.Type().Elem()))
		field.Set(ptr)
	case rv.Kind() == reflect.Ptr && convertible(rv.Elem().Type(), field.Type()):
		field.Set(rv.Elem().Convert(field.Type()))
	default:
		return fmt.Errorf("cannot store %T in %s", value, field.Type())
	}
	return nil
}

// Filter evaluates query against the in-memory rows
func (c *MemoryCollection[T]) Filter(ctx context.Context, query Query) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	conds := make([]int, len(query.Where))
	for i, cond := range query.Where {
		idx := c.schema.columnIndex(cond.Column)
		if idx < 0 {
			return nil, fmt.Errorf("%s.%s: %w", c.schema.Table, cond.Column, apperrors.ErrUnknownColumn)
		}
		switch cond.Op {
		case OpEq, OpGte, OpLte:
		default:
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("unsupported operator %q", cond.Op))
		}
		conds[i] = idx
	}

	orderIdx := -1
	if query.OrderBy != "" {
		if orderIdx = c.schema.columnIndex(query.OrderBy); orderIdx < 0 {
			return nil, fmt.Errorf("%s.%s: %w", c.schema.Table, query.OrderBy, apperrors.ErrUnknownColumn)
		}
	}

	c.mu.RLock()
	matched := make([]T, 0)
	for i := range c.rows {
		values := c.schema.Values(&c.rows[i])
		if matchesAll(values, query.Where, conds) {
			matched = append(matched, c.rows[i])
		}
	}
	c.mu.RUnlock()

	if orderIdx >= 0 {
		sort.SliceStable(matched, func(i, j int) bool {
			a := normalize(c.schema.Values(&matched[i])[orderIdx])
			b := normalize(c.schema.Values(&matched[j])[orderIdx])
			if query.Desc {
				return compareValues(b, a) < 0
			}
			return compareValues(a, b) < 0
		})
	}

	if query.Limit > 0 && len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}

	return matched, nil
}

func matchesAll(values []any, conds []Cond, idx []int) bool {
	for i, cond := range conds {
		have := normalize(values[idx[i]])
		want := normalize(cond.Value)

		if have == nil || want == nil {
			// NULL only ever equals NULL
			if cond.Op != OpEq || have != want {
				return false
			}
			continue
		}

		cmp := compareValues(have, want)
		switch cond.Op {
		case OpEq:
			if cmp != 0 {
				return false
			}
		case OpGte:
			if cmp < 0 {
				return false
			}
		case OpLte:
			if cmp > 0 {
				return false
			}
		}
	}
	return true
}

// convertible is reflect's ConvertibleTo without the integer to string conversion
func convertible(from, to reflect.Type) bool {
	if to.Kind() == reflect.String && from.Kind() != reflect.String {
		return false
	}
	return from.ConvertibleTo(to)
}

var timeType = reflect.TypeOf(time.Time{})

// normalize reduces a column value to nil, string, float64, bool or time.Time
func normalize(v any) any {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}

	if rv.Type() == timeType {
		return rv.Interface().(time.Time)
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Bool:
		return rv.Bool()
	}
	return fmt.Sprint(rv.Interface())
}

// compareValues orders two normalized values. NULL sorts last, like postgres ascending order.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case float64:
		if bv, ok := b.(float64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			}
			return 1
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	}

	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

var _ Collection[models.Injury] = (*MemoryCollection[models.Injury])(nil)
