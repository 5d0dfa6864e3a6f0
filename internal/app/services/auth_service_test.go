package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/app/models/dto"
	"github.com/yigit/injurydesk/internal/app/repositories"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
	"github.com/yigit/injurydesk/internal/pkg/auth"
	"github.com/yigit/injurydesk/internal/seed"
)

func newAuthService(gw *repositories.Gateway) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "injurydesk-test",
	})
	svc := NewAuthService(gw, jwtService, nop())
	svc.now = fixedClock
	return svc
}

func TestSignUpStudent(t *testing.T) {
	gw := demoGateway(t)
	svc := newAuthService(gw)
	ctx := context.Background()

	resp, err := svc.SignUp(ctx, &dto.SignUpRequest{
		Email:    "  New.Athlete@Uni.edu ",
		Password: "runfast99",
		FullName: "New Athlete",
		RoleType: models.RoleStudent,
		Sport:    "Hockey",
	})
	require.NoError(t, err)
	assert.Equal(t, "new.athlete@uni.edu", resp.User.Email)
	assert.Equal(t, models.RoleStudent, resp.User.RoleType)
	require.NotNil(t, resp.User.Sport)
	assert.Equal(t, "Hockey", *resp.User.Sport)
	assert.Nil(t, resp.User.Specialization)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Equal(t, int64(3600), resp.Token.ExpiresIn)

	stored, err := gw.Users.Get(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(stored.Password, "runfast99"))
}

func TestSignUpRejections(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.SignUpRequest
		wantErr error
	}{
		{
			name:    "duplicate email ignoring case",
			req:     dto.SignUpRequest{Email: "ALEX@injurydesk.edu", Password: "Password123", FullName: "Alex Again", RoleType: models.RoleStudent},
			wantErr: apperrors.ErrEmailAlreadyExists,
		},
		{
			name:    "password without digit",
			req:     dto.SignUpRequest{Email: "a@uni.edu", Password: "onlyletters", FullName: "A", RoleType: models.RoleStudent},
			wantErr: apperrors.ErrInvalidPassword,
		},
		{
			name:    "short password",
			req:     dto.SignUpRequest{Email: "a@uni.edu", Password: "a1", FullName: "A", RoleType: models.RoleStudent},
			wantErr: apperrors.ErrInvalidPassword,
		},
		{
			name:    "admin cannot self register",
			req:     dto.SignUpRequest{Email: "boss@uni.edu", Password: "Password123", FullName: "Boss", RoleType: models.RoleAdmin},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "malformed email",
			req:     dto.SignUpRequest{Email: "not-an-email", Password: "Password123", FullName: "Nobody", RoleType: models.RolePractitioner},
			wantErr: apperrors.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newAuthService(demoGateway(t))
			_, err := svc.SignUp(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSignUpOnFixtureStore(t *testing.T) {
	svc := newAuthService(fixtureGateway(t))

	resp, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
		Email:          "clinic@uni.edu",
		Password:       "Password123",
		FullName:       "Clinic Staff",
		RoleType:       models.RolePractitioner,
		Specialization: "Physiotherapy",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.User.Specialization)
	assert.Equal(t, "Physiotherapy", *resp.User.Specialization)
}

func TestSignIn(t *testing.T) {
	gw := demoGateway(t)
	svc := newAuthService(gw)
	ctx := context.Background()

	resp, err := svc.SignIn(ctx, &dto.SignInRequest{Email: "Alex@InjuryDesk.edu", Password: seed.DemoPassword})
	require.NoError(t, err)
	assert.Equal(t, seed.StudentAlexID, resp.User.ID)
	require.NotNil(t, resp.User.LastLoginAt)
	assert.Equal(t, testNow, *resp.User.LastLoginAt)

	stored, err := gw.Users.Get(ctx, seed.StudentAlexID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastLoginAt)

	_, err = svc.SignIn(ctx, &dto.SignInRequest{Email: "alex@injurydesk.edu", Password: "wrong-password1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.SignIn(ctx, &dto.SignInRequest{Email: "ghost@injurydesk.edu", Password: seed.DemoPassword})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestSignInOnFixtureStoreSkipsLastLogin(t *testing.T) {
	svc := newAuthService(fixtureGateway(t))

	resp, err := svc.SignIn(context.Background(), &dto.SignInRequest{Email: seed.AdminEmail, Password: seed.DemoPassword})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, resp.User.RoleType)
	assert.Nil(t, resp.User.LastLoginAt)
}

func TestRefreshAndAuthenticate(t *testing.T) {
	gw := demoGateway(t)
	svc := newAuthService(gw)
	ctx := context.Background()

	signedIn, err := svc.SignIn(ctx, &dto.SignInRequest{Email: "physio@injurydesk.edu", Password: seed.DemoPassword})
	require.NoError(t, err)

	session, err := svc.Authenticate(ctx, signedIn.Token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, seed.PhysioID, session.UserID)
	assert.True(t, session.Is(models.RolePractitioner))

	_, err = svc.Authenticate(ctx, signedIn.Token.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	refreshed, err := svc.Refresh(ctx, signedIn.Token.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, seed.PhysioID, refreshed.User.ID)
	assert.NotEmpty(t, refreshed.Token.AccessToken)

	_, err = svc.Refresh(ctx, signedIn.Token.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	_, err = svc.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestMe(t *testing.T) {
	gw := demoGateway(t)
	svc := newAuthService(gw)

	me, err := svc.Me(context.Background(), sessionFor(t, gw, seed.StudentCaseyID))
	require.NoError(t, err)
	assert.Equal(t, "casey@injurydesk.edu", me.Email)
	assert.Equal(t, "Basketball", *me.Sport)
}
