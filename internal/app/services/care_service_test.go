package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appauth "github.com/yigit/injurydesk/internal/app/auth"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/app/repositories"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
	"github.com/yigit/injurydesk/internal/seed"
)

func newAppointmentService(gw *repositories.Gateway) *AppointmentService {
	svc := NewAppointmentService(gw, appauth.NewAuthorizationService(gw), nop())
	svc.now = fixedClock
	return svc
}

func strPtr(s string) *string { return &s }

func TestListAppointments(t *testing.T) {
	gw := demoGateway(t)
	svc := newAppointmentService(gw)

	rows, err := svc.List(context.Background(), sessionFor(t, gw, seed.StudentAlexID))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "apt-001", rows[0].ID)
	assert.Equal(t, "apt-003", rows[1].ID)
}

func TestCreateAppointment(t *testing.T) {
	gw := demoGateway(t)
	svc := newAppointmentService(gw)

	created, err := svc.Create(context.Background(), sessionFor(t, gw, seed.PhysioID), &dto.CreateAppointmentRequest{
		StudentID:      seed.StudentAlexID,
		PractitionerID: seed.SportsMedID, // ignored for practitioners
		InjuryID:       strPtr("inj-004"),
		ScheduledAt:    testNow.Add(2 * time.Hour),
		Location:       " Physio room 2 ",
	})
	require.NoError(t, err)
	assert.Equal(t, seed.PhysioID, created.PractitionerID)
	assert.Equal(t, DefaultAppointmentMinutes, created.DurationMinutes)
	assert.Equal(t, models.AppointmentScheduled, created.Status)
	assert.Equal(t, "Physio room 2", created.Location)
}

func TestCreateAppointmentRejections(t *testing.T) {
	gw := demoGateway(t)
	svc := newAppointmentService(gw)
	ctx := context.Background()
	physio := sessionFor(t, gw, seed.PhysioID)
	admin := sessionFor(t, gw, seed.AdminID)
	later := testNow.Add(time.Hour)

	tests := []struct {
		name    string
		session appauth.Session
		req     dto.CreateAppointmentRequest
		wantErr error
	}{
		{"student outside caseload", physio, dto.CreateAppointmentRequest{StudentID: seed.StudentCaseyID, ScheduledAt: later}, apperrors.ErrPermissionDenied},
		{"students cannot book", sessionFor(t, gw, seed.StudentAlexID), dto.CreateAppointmentRequest{StudentID: seed.StudentAlexID, ScheduledAt: later}, apperrors.ErrPermissionDenied},
		{"admin must name practitioner", admin, dto.CreateAppointmentRequest{StudentID: seed.StudentAlexID, ScheduledAt: later}, apperrors.ErrValidationFailed},
		{"practitioner id must be a practitioner", admin, dto.CreateAppointmentRequest{StudentID: seed.StudentAlexID, PractitionerID: seed.StudentBlairID, ScheduledAt: later}, apperrors.ErrValidationFailed},
		{"in the past", physio, dto.CreateAppointmentRequest{StudentID: seed.StudentAlexID, ScheduledAt: testNow.Add(-time.Hour)}, apperrors.ErrValidationFailed},
		{"injury of another student", physio, dto.CreateAppointmentRequest{StudentID: seed.StudentAlexID, InjuryID: strPtr("inj-003"), ScheduledAt: later}, apperrors.ErrValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.session, &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateAppointmentStatus(t *testing.T) {
	gw := demoGateway(t)
	svc := newAppointmentService(gw)
	ctx := context.Background()
	alex := sessionFor(t, gw, seed.StudentAlexID)

	_, err := svc.UpdateStatus(ctx, alex, "apt-001", models.AppointmentCompleted)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.UpdateStatus(ctx, sessionFor(t, gw, seed.SportsMedID), "apt-001", models.AppointmentCompleted)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.UpdateStatus(ctx, alex, "apt-001", "postponed")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusChange)

	updated, err := svc.UpdateStatus(ctx, alex, "apt-001", models.AppointmentCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCancelled, updated.Status)

	updated, err = svc.UpdateStatus(ctx, sessionFor(t, gw, seed.SportsMedID), "apt-002", models.AppointmentCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCompleted, updated.Status)

	_, err = svc.UpdateStatus(ctx, alex, "apt-404", models.AppointmentCancelled)
	assert.ErrorIs(t, err, apperrors.ErrAppointmentNotFound)
}

func TestUpcomingAppointments(t *testing.T) {
	gw := demoGateway(t)
	svc := newAppointmentService(gw)

	rows, err := svc.Upcoming(context.Background(), testNow, testNow.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "apt-001", rows[0].ID)

	rows, err = svc.Upcoming(context.Background(), testNow, testNow.Add(48*time.Hour))
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestConversation(t *testing.T) {
	gw := demoGateway(t)
	svc := NewMessageService(gw, nil, nop())

	messages, err := svc.Conversation(context.Background(), sessionFor(t, gw, seed.StudentAlexID), seed.PhysioID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "msg-001", messages[0].ID)
	assert.Equal(t, "msg-002", messages[1].ID)

	messages, err = svc.Conversation(context.Background(), sessionFor(t, gw, seed.StudentAlexID), seed.SportsMedID)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestSendMessagePublishesWithoutPostgres(t *testing.T) {
	gw := demoGateway(t)
	pub := &recordingPublisher{}
	svc := NewMessageService(gw, pub, nop())
	ctx := context.Background()
	alex := sessionFor(t, gw, seed.StudentAlexID)

	sent, err := svc.Send(ctx, alex, &dto.SendMessageRequest{ReceiverID: seed.PhysioID, Content: "  Can we move Thursday?  "})
	require.NoError(t, err)
	assert.Equal(t, "Can we move Thursday?", sent.Content)
	assert.False(t, sent.Read)

	events := pub.ofType(EventMessageCreated)
	require.Len(t, events, 1)
	assert.Equal(t, []string{seed.StudentAlexID, seed.PhysioID}, events[0].userIDs)

	_, err = svc.Send(ctx, alex, &dto.SendMessageRequest{ReceiverID: seed.StudentAlexID, Content: "me"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Send(ctx, alex, &dto.SendMessageRequest{ReceiverID: "nobody", Content: "hi"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	fixture := fixtureGateway(t)
	_, err = NewMessageService(fixture, pub, nop()).Send(ctx, sessionFor(t, fixture, seed.StudentAlexID),
		&dto.SendMessageRequest{ReceiverID: seed.PhysioID, Content: "hi"})
	assert.ErrorIs(t, err, apperrors.ErrBackendRequired)
}

func TestMarkRead(t *testing.T) {
	gw := demoGateway(t)
	svc := NewMessageService(gw, nil, nop())
	ctx := context.Background()

	unread, err := svc.UnreadCount(ctx, seed.PhysioID)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	_, err = svc.MarkRead(ctx, sessionFor(t, gw, seed.StudentAlexID), "msg-001")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	read, err := svc.MarkRead(ctx, sessionFor(t, gw, seed.PhysioID), "msg-001")
	require.NoError(t, err)
	assert.True(t, read.Read)

	unread, err = svc.UnreadCount(ctx, seed.PhysioID)
	require.NoError(t, err)
	assert.Zero(t, unread)
}
