package repositories

import (
	"context"
	"time"

	"github.com/yigit/injurydesk/internal/app/models"
)

// Op is a comparison operator usable in a Query condition
type Op string

const (
	OpEq  Op = "="
	OpGte Op = ">="
	OpLte Op = "<="
)

// Cond is a single column comparison
type Cond struct {
	Column string
	Op     Op
	Value  any
}

// Eq builds an equality condition
func Eq(column string, value any) Cond {
	return Cond{Column: column, Op: OpEq, Value: value}
}

// Gte builds a greater-or-equal condition
func Gte(column string, value any) Cond {
	return Cond{Column: column, Op: OpGte, Value: value}
}

// Lte builds a less-or-equal condition
func Lte(column string, value any) Cond {
	return Cond{Column: column, Op: OpLte, Value: value}
}

// Query selects rows matching all conditions, optionally ordered and limited.
// A zero Limit means no limit.
type Query struct {
	Where   []Cond
	OrderBy string
	Desc    bool
	Limit   int
}

// Changes is a partial update keyed by column name
type Changes map[string]any

// Collection is the uniform access surface for one entity table
type Collection[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, record T) (T, error)
	Update(ctx context.Context, id string, changes Changes) (T, error)
	Filter(ctx context.Context, query Query) ([]T, error)
}

// Gateway bundles every collection behind one backend
type Gateway struct {
	Users              Collection[models.User]
	Injuries           Collection[models.Injury]
	Assignments        Collection[models.Assignment]
	Appointments       Collection[models.Appointment]
	Messages           Collection[models.Message]
	RecoveryLogs       Collection[models.RecoveryLog]
	TreatmentTemplates Collection[models.TreatmentTemplate]
	TreatmentPlans     Collection[models.TreatmentPlan]
	RTPChecklists      Collection[models.RTPChecklist]
	Files              Collection[models.File]

	mode    string
	latency time.Duration
}

// Backend names reported by Gateway.Mode
const (
	ModePostgres = "postgres"
	ModeFixture  = "fixture"
	ModeMemory   = "memory"
)

// Mode reports which backend serves the gateway
func (g *Gateway) Mode() string {
	return g.mode
}

// IsFixture reports whether the gateway is served from in-memory fixtures
func (g *Gateway) IsFixture() bool {
	return g.mode == ModeFixture
}

// Simulate waits for the fixture latency so flows without a write
// (sign-in) feel like a network round-trip. It is a no-op against postgres.
func (g *Gateway) Simulate(ctx context.Context) error {
	if g.mode != ModeFixture {
		return nil
	}
	return sleep(ctx, g.latency)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
