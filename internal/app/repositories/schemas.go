package repositories

import (
	"time"

	"github.com/yigit/injurydesk/internal/app/models"
)

// Schema maps an entity type onto its table.
// Values and Targets must be aligned with Columns.
type Schema[T any] struct {
	Table   string
	Columns []string
	ID      func(*T) string
	SetID   func(*T, string)
	Values  func(*T) []any
	Targets func(*T) []any
	// Stamp fills timestamps and defaults on create
	Stamp func(*T, time.Time)
	// Touch names the column refreshed on every update, if any
	Touch string
}

func (s Schema[T]) columnIndex(column string) int {
	for i, c := range s.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

func (s Schema[T]) hasColumn(column string) bool {
	return s.columnIndex(column) >= 0
}

func stampCreated(t *time.Time, now time.Time) {
	if t.IsZero() {
		*t = now
	}
}

// UserSchema describes the users table
var UserSchema = Schema[models.User]{
	Table: "users",
	Columns: []string{
		"id", "email", "password", "full_name", "role", "sport",
		"specialization", "created_at", "updated_at", "last_login_at",
	},
	ID:    func(u *models.User) string { return u.ID },
	SetID: func(u *models.User, id string) { u.ID = id },
	Values: func(u *models.User) []any {
		return []any{u.ID, u.Email, u.Password, u.FullName, u.RoleType, u.Sport,
			u.Specialization, u.CreatedAt, u.UpdatedAt, u.LastLoginAt}
	},
	Targets: func(u *models.User) []any {
		return []any{&u.ID, &u.Email, &u.Password, &u.FullName, &u.RoleType, &u.Sport,
			&u.Specialization, &u.CreatedAt, &u.UpdatedAt, &u.LastLoginAt}
	},
	Stamp: func(u *models.User, now time.Time) {
		stampCreated(&u.CreatedAt, now)
		stampCreated(&u.UpdatedAt, now)
	},
	Touch: "updated_at",
}

// InjurySchema describes the injuries table
var InjurySchema = Schema[models.Injury]{
	Table: "injuries",
	Columns: []string{
		"id", "student_id", "injury_type", "severity", "body_part", "description",
		"date_occurred", "date_reported", "status", "days_lost", "date_returned",
		"created_at", "updated_at",
	},
	ID:    func(i *models.Injury) string { return i.ID },
	SetID: func(i *models.Injury, id string) { i.ID = id },
	Values: func(i *models.Injury) []any {
		return []any{i.ID, i.StudentID, i.InjuryType, i.Severity, i.BodyPart, i.Description,
			i.DateOccurred, i.DateReported, i.Status, i.DaysLost, i.DateReturned,
			i.CreatedAt, i.UpdatedAt}
	},
	Targets: func(i *models.Injury) []any {
		return []any{&i.ID, &i.StudentID, &i.InjuryType, &i.Severity, &i.BodyPart, &i.Description,
			&i.DateOccurred, &i.DateReported, &i.Status, &i.DaysLost, &i.DateReturned,
			&i.CreatedAt, &i.UpdatedAt}
	},
	Stamp: func(i *models.Injury, now time.Time) {
		stampCreated(&i.DateReported, now)
		stampCreated(&i.CreatedAt, now)
		stampCreated(&i.UpdatedAt, now)
		if i.Status == "" {
			i.Status = models.InjuryStatusReported
		}
	},
	Touch: "updated_at",
}

// AssignmentSchema describes the assignments table
var AssignmentSchema = Schema[models.Assignment]{
	Table:   "assignments",
	Columns: []string{"id", "student_id", "practitioner_id", "injury_id", "active", "notes", "created_at"},
	ID:      func(a *models.Assignment) string { return a.ID },
	SetID:   func(a *models.Assignment, id string) { a.ID = id },
	Values: func(a *models.Assignment) []any {
		return []any{a.ID, a.StudentID, a.PractitionerID, a.InjuryID, a.Active, a.Notes, a.CreatedAt}
	},
	Targets: func(a *models.Assignment) []any {
		return []any{&a.ID, &a.StudentID, &a.PractitionerID, &a.InjuryID, &a.Active, &a.Notes, &a.CreatedAt}
	},
	Stamp: func(a *models.Assignment, now time.Time) {
		stampCreated(&a.CreatedAt, now)
	},
}

// AppointmentSchema describes the appointments table
var AppointmentSchema = Schema[models.Appointment]{
	Table: "appointments",
	Columns: []string{
		"id", "student_id", "practitioner_id", "injury_id", "scheduled_at",
		"duration_minutes", "location", "status", "notes", "created_at",
	},
	ID:    func(a *models.Appointment) string { return a.ID },
	SetID: func(a *models.Appointment, id string) { a.ID = id },
	Values: func(a *models.Appointment) []any {
		return []any{a.ID, a.StudentID, a.PractitionerID, a.InjuryID, a.ScheduledAt,
			a.DurationMinutes, a.Location, a.Status, a.Notes, a.CreatedAt}
	},
	Targets: func(a *models.Appointment) []any {
		return []any{&a.ID, &a.StudentID, &a.PractitionerID, &a.InjuryID, &a.ScheduledAt,
			&a.DurationMinutes, &a.Location, &a.Status, &a.Notes, &a.CreatedAt}
	},
	Stamp: func(a *models.Appointment, now time.Time) {
		stampCreated(&a.CreatedAt, now)
		if a.Status == "" {
			a.Status = models.AppointmentScheduled
		}
	},
}

// MessageSchema describes the messages table
var MessageSchema = Schema[models.Message]{
	Table:   "messages",
	Columns: []string{"id", "sender_id", "receiver_id", "content", "read", "created_at"},
	ID:      func(m *models.Message) string { return m.ID },
	SetID:   func(m *models.Message, id string) { m.ID = id },
	Values: func(m *models.Message) []any {
		return []any{m.ID, m.SenderID, m.ReceiverID, m.Content, m.Read, m.CreatedAt}
	},
	Targets: func(m *models.Message) []any {
		return []any{&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.Read, &m.CreatedAt}
	},
	Stamp: func(m *models.Message, now time.Time) {
		stampCreated(&m.CreatedAt, now)
	},
}

// RecoveryLogSchema describes the recovery_logs table
var RecoveryLogSchema = Schema[models.RecoveryLog]{
	Table:   "recovery_logs",
	Columns: []string{"id", "injury_id", "student_id", "pain_level", "mobility", "notes", "created_at"},
	ID:      func(r *models.RecoveryLog) string { return r.ID },
	SetID:   func(r *models.RecoveryLog, id string) { r.ID = id },
	Values: func(r *models.RecoveryLog) []any {
		return []any{r.ID, r.InjuryID, r.StudentID, r.PainLevel, r.Mobility, r.Notes, r.CreatedAt}
	},
	Targets: func(r *models.RecoveryLog) []any {
		return []any{&r.ID, &r.InjuryID, &r.StudentID, &r.PainLevel, &r.Mobility, &r.Notes, &r.CreatedAt}
	},
	Stamp: func(r *models.RecoveryLog, now time.Time) {
		stampCreated(&r.CreatedAt, now)
	},
}

// TreatmentTemplateSchema describes the treatment_templates table
var TreatmentTemplateSchema = Schema[models.TreatmentTemplate]{
	Table:   "treatment_templates",
	Columns: []string{"id", "name", "injury_type", "description", "steps", "created_by", "created_at"},
	ID:      func(t *models.TreatmentTemplate) string { return t.ID },
	SetID:   func(t *models.TreatmentTemplate, id string) { t.ID = id },
	Values: func(t *models.TreatmentTemplate) []any {
		return []any{t.ID, t.Name, t.InjuryType, t.Description, t.Steps, t.CreatedBy, t.CreatedAt}
	},
	Targets: func(t *models.TreatmentTemplate) []any {
		return []any{&t.ID, &t.Name, &t.InjuryType, &t.Description, &t.Steps, &t.CreatedBy, &t.CreatedAt}
	},
	Stamp: func(t *models.TreatmentTemplate, now time.Time) {
		stampCreated(&t.CreatedAt, now)
		if t.Steps == nil {
			t.Steps = []string{}
		}
	},
}

// TreatmentPlanSchema describes the treatment_plans table
var TreatmentPlanSchema = Schema[models.TreatmentPlan]{
	Table: "treatment_plans",
	Columns: []string{
		"id", "injury_id", "student_id", "practitioner_id", "template_id",
		"title", "steps", "status", "created_at", "updated_at",
	},
	ID:    func(p *models.TreatmentPlan) string { return p.ID },
	SetID: func(p *models.TreatmentPlan, id string) { p.ID = id },
	Values: func(p *models.TreatmentPlan) []any {
		return []any{p.ID, p.InjuryID, p.StudentID, p.PractitionerID, p.TemplateID,
			p.Title, p.Steps, p.Status, p.CreatedAt, p.UpdatedAt}
	},
	Targets: func(p *models.TreatmentPlan) []any {
		return []any{&p.ID, &p.InjuryID, &p.StudentID, &p.PractitionerID, &p.TemplateID,
			&p.Title, &p.Steps, &p.Status, &p.CreatedAt, &p.UpdatedAt}
	},
	Stamp: func(p *models.TreatmentPlan, now time.Time) {
		stampCreated(&p.CreatedAt, now)
		stampCreated(&p.UpdatedAt, now)
		if p.Status == "" {
			p.Status = models.PlanActive
		}
		if p.Steps == nil {
			p.Steps = []string{}
		}
	},
	Touch: "updated_at",
}

// RTPChecklistSchema describes the rtp_checklists table
var RTPChecklistSchema = Schema[models.RTPChecklist]{
	Table: "rtp_checklists",
	Columns: []string{
		"id", "injury_id", "student_id", "practitioner_id", "items", "status", "created_at", "cleared_at",
	},
	ID:    func(c *models.RTPChecklist) string { return c.ID },
	SetID: func(c *models.RTPChecklist, id string) { c.ID = id },
	Values: func(c *models.RTPChecklist) []any {
		return []any{c.ID, c.InjuryID, c.StudentID, c.PractitionerID, c.Items, c.Status, c.CreatedAt, c.ClearedAt}
	},
	Targets: func(c *models.RTPChecklist) []any {
		return []any{&c.ID, &c.InjuryID, &c.StudentID, &c.PractitionerID, &c.Items, &c.Status, &c.CreatedAt, &c.ClearedAt}
	},
	Stamp: func(c *models.RTPChecklist, now time.Time) {
		stampCreated(&c.CreatedAt, now)
		if c.Status == "" {
			c.Status = models.ChecklistPending
		}
		if c.Items == nil {
			c.Items = []string{}
		}
	},
}

// FileSchema describes the files table
var FileSchema = Schema[models.File]{
	Table: "files",
	Columns: []string{
		"id", "owner_id", "injury_id", "storage_key", "url", "file_name", "size", "mime_type", "created_at",
	},
	ID:    func(f *models.File) string { return f.ID },
	SetID: func(f *models.File, id string) { f.ID = id },
	Values: func(f *models.File) []any {
		return []any{f.ID, f.OwnerID, f.InjuryID, f.Key, f.URL, f.FileName, f.Size, f.MimeType, f.CreatedAt}
	},
	Targets: func(f *models.File) []any {
		return []any{&f.ID, &f.OwnerID, &f.InjuryID, &f.Key, &f.URL, &f.FileName, &f.Size, &f.MimeType, &f.CreatedAt}
	},
	Stamp: func(f *models.File, now time.Time) {
		stampCreated(&f.CreatedAt, now)
	},
}

// TableColumns lists the columns of every table behind the gateway
func TableColumns() map[string][]string {
	return map[string][]string{
		UserSchema.Table:              UserSchema.Columns,
		InjurySchema.Table:            InjurySchema.Columns,
		AssignmentSchema.Table:        AssignmentSchema.Columns,
		AppointmentSchema.Table:       AppointmentSchema.Columns,
		MessageSchema.Table:           MessageSchema.Columns,
		RecoveryLogSchema.Table:       RecoveryLogSchema.Columns,
		TreatmentTemplateSchema.Table: TreatmentTemplateSchema.Columns,
		TreatmentPlanSchema.Table:     TreatmentPlanSchema.Columns,
		RTPChecklistSchema.Table:      RTPChecklistSchema.Columns,
		FileSchema.Table:              FileSchema.Columns,
	}
}
