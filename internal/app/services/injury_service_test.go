package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appauth "github.com/yigit/injurydesk/internal/app/auth"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/app/reporting"
	"github.com/yigit/injurydesk/internal/app/repositories"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
	"github.com/yigit/injurydesk/internal/pkg/filestorage"
	"github.com/yigit/injurydesk/internal/seed"
)

func newInjuryService(t *testing.T, gw *repositories.Gateway, pub EventPublisher) *InjuryService {
	t.Helper()
	store, err := filestorage.NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)
	svc := NewInjuryService(gw, appauth.NewAuthorizationService(gw), store, pub, nop())
	svc.now = fixedClock
	return svc
}

func injuryIDList(injuries []models.Injury) []string {
	out := make([]string, 0, len(injuries))
	for _, i := range injuries {
		out = append(out, i.ID)
	}
	return out
}

func TestListInjuriesIsRoleScoped(t *testing.T) {
	gw := demoGateway(t)
	svc := newInjuryService(t, gw, nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		userID string
		want   []string
	}{
		{"student sees own", seed.StudentAlexID, []string{"inj-004", "inj-001"}},
		{"practitioner sees active caseload", seed.PhysioID, []string{"inj-004"}},
		{"second practitioner", seed.SportsMedID, []string{"inj-005", "inj-003"}},
		{"practitioner without caseload", seed.StrengthID, []string{}},
		{"admin sees all", seed.AdminID, []string{"inj-007", "inj-006", "inj-005", "inj-004", "inj-003", "inj-002", "inj-001"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			injuries, err := svc.List(ctx, sessionFor(t, gw, tt.userID), reporting.Filter{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, injuryIDList(injuries))
		})
	}
}

func TestListInjuriesAppliesFilter(t *testing.T) {
	gw := demoGateway(t)
	svc := newInjuryService(t, gw, nil)

	filter, err := reporting.ParseFilter("", "", "", "mild")
	require.NoError(t, err)
	injuries, err := svc.List(context.Background(), sessionFor(t, gw, seed.AdminID), filter)
	require.NoError(t, err)
	assert.Equal(t, []string{"inj-007", "inj-004", "inj-002"}, injuryIDList(injuries))

	filter, err = reporting.ParseFilter("", "", "Basketball", "")
	require.NoError(t, err)
	injuries, err = svc.List(context.Background(), sessionFor(t, gw, seed.AdminID), filter)
	require.NoError(t, err)
	assert.Equal(t, []string{"inj-007", "inj-003"}, injuryIDList(injuries))
}

func TestCreateInjury(t *testing.T) {
	for _, mode := range []string{repositories.ModeMemory, repositories.ModeFixture} {
		t.Run(mode, func(t *testing.T) {
			gw := demoGateway(t)
			if mode == repositories.ModeFixture {
				gw = fixtureGateway(t)
			}
			svc := newInjuryService(t, gw, nil)
			occurred := testNow.Add(-48 * time.Hour)

			created, err := svc.Create(context.Background(), sessionFor(t, gw, seed.StudentDrewID), &dto.CreateInjuryRequest{
				InjuryType:   " Wrist fracture ",
				Severity:     models.SeveritySevere,
				BodyPart:     "Left wrist",
				DateOccurred: &occurred,
			})
			require.NoError(t, err)
			assert.NotEmpty(t, created.ID)
			assert.Equal(t, seed.StudentDrewID, created.StudentID)
			assert.Equal(t, "Wrist fracture", created.InjuryType)
			assert.Equal(t, models.InjuryStatusReported, created.Status)
			assert.Equal(t, testNow, created.DateReported)
		})
	}
}

func TestCreateInjuryRejections(t *testing.T) {
	gw := demoGateway(t)
	svc := newInjuryService(t, gw, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, sessionFor(t, gw, seed.PhysioID), &dto.CreateInjuryRequest{
		InjuryType: "Sprain", Severity: models.SeverityMild, BodyPart: "Ankle",
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	future := testNow.Add(24 * time.Hour)
	_, err = svc.Create(ctx, sessionFor(t, gw, seed.StudentAlexID), &dto.CreateInjuryRequest{
		InjuryType: "Sprain", Severity: models.SeverityMild, BodyPart: "Ankle", DateOccurred: &future,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Create(ctx, sessionFor(t, gw, seed.StudentAlexID), &dto.CreateInjuryRequest{
		InjuryType: "Sprain", Severity: "catastrophic", BodyPart: "Ankle",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetInjuryDetail(t *testing.T) {
	gw := demoGateway(t)
	svc := newInjuryService(t, gw, nil)
	ctx := context.Background()

	detail, err := svc.Get(ctx, sessionFor(t, gw, seed.PhysioID), "inj-004")
	require.NoError(t, err)
	require.NotNil(t, detail.Student)
	assert.Equal(t, seed.StudentAlexID, detail.Student.ID)
	require.Len(t, detail.Practitioners, 1)
	assert.Equal(t, seed.PhysioID, detail.Practitioners[0].ID)
	assert.Len(t, detail.Assignments, 1)
	assert.Empty(t, detail.Attachments)

	_, err = svc.Get(ctx, sessionFor(t, gw, seed.PhysioID), "inj-003")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.Get(ctx, sessionFor(t, gw, seed.StudentBlairID), "inj-004")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.Get(ctx, sessionFor(t, gw, seed.AdminID), "inj-404")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, err, apperrors.ErrInjuryNotFound)

	// a closed assignment keeps the history but not the practitioner
	detail, err = svc.Get(ctx, sessionFor(t, gw, seed.AdminID), "inj-001")
	require.NoError(t, err)
	assert.Len(t, detail.Assignments, 1)
	assert.Empty(t, detail.Practitioners)
	assert.Equal(t, 22, detail.DaysLost)
}

func TestUpdateInjuryResolvesWithReturnDate(t *testing.T) {
	gw := demoGateway(t)
	pub := &recordingPublisher{}
	svc := newInjuryService(t, gw, pub)
	status := models.InjuryStatusResolved

	updated, err := svc.Update(context.Background(), sessionFor(t, gw, seed.SportsMedID), "inj-003", &dto.UpdateInjuryRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.InjuryStatusResolved, updated.Status)
	require.NotNil(t, updated.DateReturned)
	assert.Equal(t, testNow, *updated.DateReturned)

	events := pub.ofType(EventInjuryUpdated)
	require.Len(t, events, 1)
	assert.Equal(t, []string{seed.StudentCaseyID}, events[0].userIDs)
}

func TestUpdateInjuryFields(t *testing.T) {
	gw := demoGateway(t)
	svc := newInjuryService(t, gw, nil)
	ctx := context.Background()
	admin := sessionFor(t, gw, seed.AdminID)

	days := 9
	updated, err := svc.Update(ctx, admin, "inj-002", &dto.UpdateInjuryRequest{DaysLost: &days})
	require.NoError(t, err)
	require.NotNil(t, updated.DaysLost)
	assert.Equal(t, 9, *updated.DaysLost)

	updated, err = svc.Update(ctx, admin, "inj-002", &dto.UpdateInjuryRequest{ClearDaysLost: true, ClearDateReturned: true})
	require.NoError(t, err)
	assert.Nil(t, updated.DaysLost)
	assert.Nil(t, updated.DateReturned)

	bad := models.InjuryStatus("healed")
	_, err = svc.Update(ctx, admin, "inj-002", &dto.UpdateInjuryRequest{Status: &bad})
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusChange)

	early := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.Update(ctx, admin, "inj-002", &dto.UpdateInjuryRequest{DateReturned: &early})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Update(ctx, sessionFor(t, gw, seed.StudentBlairID), "inj-002", &dto.UpdateInjuryRequest{DaysLost: &days})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestUpdateInjuryNeedsLiveBackend(t *testing.T) {
	gw := fixtureGateway(t)
	svc := newInjuryService(t, gw, nil)
	status := models.InjuryStatusRecovering

	_, err := svc.Update(context.Background(), sessionFor(t, gw, seed.AdminID), "inj-005", &dto.UpdateInjuryRequest{Status: &status})
	assert.ErrorIs(t, err, apperrors.ErrBackendRequired)
}

func uploadHeader(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestAddAttachment(t *testing.T) {
	gw := demoGateway(t)
	svc := newInjuryService(t, gw, nil)
	ctx := context.Background()
	casey := sessionFor(t, gw, seed.StudentCaseyID)

	file, err := svc.AddAttachment(ctx, casey, "inj-003", uploadHeader(t, "mri.pdf", "scan"))
	require.NoError(t, err)
	assert.Equal(t, seed.StudentCaseyID, file.OwnerID)
	assert.Equal(t, "mri.pdf", file.FileName)
	assert.Equal(t, int64(4), file.Size)
	assert.Contains(t, file.Key, "injuries/inj-003/")

	detail, err := svc.Get(ctx, casey, "inj-003")
	require.NoError(t, err)
	require.Len(t, detail.Attachments, 1)
	assert.Equal(t, file.ID, detail.Attachments[0].ID)

	_, err = svc.AddAttachment(ctx, sessionFor(t, gw, seed.StudentAlexID), "inj-003", uploadHeader(t, "x.txt", "x"))
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	noStore := NewInjuryService(gw, appauth.NewAuthorizationService(gw), nil, nil, nop())
	_, err = noStore.AddAttachment(ctx, casey, "inj-003", uploadHeader(t, "x.txt", "x"))
	assert.ErrorIs(t, err, apperrors.ErrStorageNotConfigured)
}

func TestRecoveryLogs(t *testing.T) {
	gw := demoGateway(t)
	svc := newInjuryService(t, gw, nil)
	ctx := context.Background()
	casey := sessionFor(t, gw, seed.StudentCaseyID)
	pain, mobility := 2, 8

	entry, err := svc.AddRecoveryLog(ctx, casey, "inj-003", &dto.CreateRecoveryLogRequest{PainLevel: &pain, Mobility: &mobility, Notes: " jogging "})
	require.NoError(t, err)
	assert.Equal(t, "jogging", entry.Notes)

	logs, err := svc.ListRecoveryLogs(ctx, sessionFor(t, gw, seed.SportsMedID), "inj-003")
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, entry.ID, logs[0].ID)

	tooHigh := 11
	_, err = svc.AddRecoveryLog(ctx, casey, "inj-003", &dto.CreateRecoveryLogRequest{PainLevel: &tooHigh, Mobility: &mobility})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.AddRecoveryLog(ctx, sessionFor(t, gw, seed.SportsMedID), "inj-003", &dto.CreateRecoveryLogRequest{PainLevel: &pain, Mobility: &mobility})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.ListRecoveryLogs(ctx, sessionFor(t, gw, seed.StudentAlexID), "inj-003")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}
