// Package notifier announces appointments that are about to start.
package notifier

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/repositories"
	"github.com/yigit/injurydesk/internal/app/services"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
	"github.com/yigit/injurydesk/internal/pkg/email"
)

// Defaults used when Config leaves a field zero
const (
	DefaultInterval  = time.Minute
	DefaultLookahead = time.Hour
)

// AppointmentSource lists scheduled appointments starting within a window
type AppointmentSource interface {
	Upcoming(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
}

// Config controls the poll cadence and how far ahead it looks
type Config struct {
	Interval  time.Duration
	Lookahead time.Duration
}

// Upcoming is the payload of an appointment.upcoming event
type Upcoming struct {
	Appointment  models.Appointment `json:"appointment"`
	MinutesUntil int                `json:"minutesUntil"`
}

// Notifier polls for upcoming appointments and announces each one once per
// process lifetime over the event publisher and by email
type Notifier struct {
	appointments AppointmentSource
	users        repositories.Collection[models.User]
	publisher    services.EventPublisher
	mailer       email.EmailService
	interval     time.Duration
	lookahead    time.Duration
	now          func() time.Time
	logger       zerolog.Logger

	mu       sync.Mutex
	notified map[string]struct{}
}

// New creates a Notifier. mailer may be nil to skip emails.
func New(
	cfg Config,
	appointments AppointmentSource,
	users repositories.Collection[models.User],
	publisher services.EventPublisher,
	mailer email.EmailService,
	logger zerolog.Logger,
) *Notifier {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Lookahead <= 0 {
		cfg.Lookahead = DefaultLookahead
	}
	return &Notifier{
		appointments: appointments,
		users:        users,
		publisher:    publisher,
		mailer:       mailer,
		interval:     cfg.Interval,
		lookahead:    cfg.Lookahead,
		now:          func() time.Time { return time.Now().UTC() },
		logger:       logger.With().Str("component", "notifier").Logger(),
		notified:     make(map[string]struct{}),
	}
}

// Run polls immediately and then every interval until ctx is cancelled
func (n *Notifier) Run(ctx context.Context) {
	n.logger.Info().Dur("interval", n.interval).Dur("lookahead", n.lookahead).Msg("Appointment notifier started")

	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()

	for {
		if _, err := n.Poll(ctx); err != nil && !errors.Is(err, context.Canceled) {
			n.logger.Error().Err(err).Msg("Appointment poll failed")
		}

		select {
		case <-ctx.Done():
			n.logger.Info().Msg("Appointment notifier stopped")
			return
		case <-ticker.C:
		}
	}
}

// Poll announces every scheduled appointment starting in [now, now+lookahead]
// that has not been announced yet. It returns how many it announced.
func (n *Notifier) Poll(ctx context.Context) (int, error) {
	now := n.now()
	upcoming, err := n.appointments.Upcoming(ctx, now, now.Add(n.lookahead))
	if err != nil {
		return 0, fmt.Errorf("error polling appointments: %w", err)
	}

	announced := 0
	for _, appointment := range upcoming {
		if !n.claim(appointment.ID) {
			continue
		}

		n.publisher.Publish(
			[]string{appointment.StudentID, appointment.PractitionerID},
			services.EventAppointmentUpcoming,
			Upcoming{Appointment: appointment, MinutesUntil: int(appointment.ScheduledAt.Sub(now).Minutes())},
		)
		n.sendReminders(ctx, appointment)
		announced++

		n.logger.Info().Str("appointmentID", appointment.ID).Time("scheduledAt", appointment.ScheduledAt).Msg("Upcoming appointment announced")
	}
	return announced, nil
}

// claim marks id as notified and reports whether it was new
func (n *Notifier) claim(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, done := n.notified[id]; done {
		return false
	}
	n.notified[id] = struct{}{}
	return true
}

// sendReminders emails both participants; failures are logged, not retried
func (n *Notifier) sendReminders(ctx context.Context, appointment models.Appointment) {
	if n.mailer == nil {
		return
	}

	student, err := n.user(ctx, appointment.StudentID)
	if err != nil {
		n.logger.Warn().Err(err).Str("appointmentID", appointment.ID).Msg("Skipping reminder, student not loaded")
		return
	}
	practitioner, err := n.user(ctx, appointment.PractitionerID)
	if err != nil {
		n.logger.Warn().Err(err).Str("appointmentID", appointment.ID).Msg("Skipping reminder, practitioner not loaded")
		return
	}

	base := email.Reminder{
		ScheduledAt: appointment.ScheduledAt,
		Duration:    time.Duration(appointment.DurationMinutes) * time.Minute,
		Location:    appointment.Location,
	}
	for _, pair := range [][2]models.User{{student, practitioner}, {practitioner, student}} {
		to, other := pair[0], pair[1]
		reminder := base
		reminder.RecipientName = to.DisplayName()
		reminder.OtherParty = other.DisplayName()
		if err := n.mailer.SendAppointmentReminder(to.Email, reminder); err != nil {
			n.logger.Warn().Err(err).Str("appointmentID", appointment.ID).Str("to", to.Email).Msg("Failed to send reminder email")
		}
	}
}

func (n *Notifier) user(ctx context.Context, id string) (models.User, error) {
	user, err := n.users.Get(ctx, id)
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return user, fmt.Errorf("user %s: %w", id, apperrors.ErrUserNotFound)
	}
	return user, err
}
