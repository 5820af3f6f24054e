package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-grid-portal/internal/config"
	"github.com/MKhiriev/go-grid-portal/internal/logger"
	"github.com/MKhiriev/go-grid-portal/internal/mock"
	"github.com/MKhiriev/go-grid-portal/internal/store"
	"github.com/MKhiriev/go-grid-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockCredentialsRepository) {
	t.Helper()
	mockCreds := mock.NewMockCredentialsRepository(ctrl)

	svc := NewAuthService(mockCreds, config.Auth{BcryptCost: bcrypt.MinCost}, logger.Nop()).(*authService)

	return svc, mockCreds
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCreds := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockCreds.EXPECT().
		FindCredentials(ctx, "acme", "john").
		Return(models.Credentials{ClientID: 42, PasswordHash: mustHash(t, "secret")}, nil)

	identity, err := svc.Login(ctx, "acme", "john", "secret")
	require.NoError(t, err)

	assert.Equal(t, int64(42), identity.ClientID)
	assert.Equal(t, "acme", identity.ClientName)
	assert.Equal(t, "john", identity.Username)
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name                       string
		client, username, password string
	}{
		{"empty client", "", "john", "secret"},
		{"empty username", "acme", "", "secret"},
		{"empty password", "acme", "john", ""},
		{"all empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.client, tt.username, tt.password)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCreds := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockCreds.EXPECT().
		FindCredentials(ctx, "acme", "ghost").
		Return(models.Credentials{}, store.ErrNoCredentialsFound)

	_, err := svc.Login(ctx, "acme", "ghost", "secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCreds := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockCreds.EXPECT().
		FindCredentials(ctx, "acme", "john").
		Return(models.Credentials{ClientID: 42, PasswordHash: mustHash(t, "secret")}, nil)

	_, err := svc.Login(ctx, "acme", "john", "not-the-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

// Unknown user and wrong password must be indistinguishable for the caller.
func TestAuthService_Login_NoUserEnumeration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCreds := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockCreds.EXPECT().
		FindCredentials(ctx, "acme", "ghost").
		Return(models.Credentials{}, store.ErrNoCredentialsFound)
	_, errUnknown := svc.Login(ctx, "acme", "ghost", "secret")

	mockCreds.EXPECT().
		FindCredentials(ctx, "acme", "john").
		Return(models.Credentials{ClientID: 42, PasswordHash: mustHash(t, "secret")}, nil)
	_, errMismatch := svc.Login(ctx, "acme", "john", "wrong")

	require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	require.ErrorIs(t, errMismatch, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errMismatch.Error())
}

func TestAuthService_Login_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCreds := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	dbErr := errors.New("db network error")
	mockCreds.EXPECT().
		FindCredentials(ctx, "acme", "john").
		Return(models.Credentials{}, dbErr)

	_, err := svc.Login(ctx, "acme", "john", "secret")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidCredentials)
	require.ErrorIs(t, err, dbErr)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCreds := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockCreds.EXPECT().
		RegisterUser(ctx, "acme", "john", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, passwordHash string) error {
			// the repository must receive a verifiable bcrypt hash, never the
			// plaintext password
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("secret")))
			return nil
		})

	require.NoError(t, svc.Register(ctx, "acme", "john", "secret"))
}

func TestAuthService_Register_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	err := svc.Register(ctx, "acme", "", "secret")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Register_UserAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCreds := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockCreds.EXPECT().
		RegisterUser(ctx, "acme", "john", gomock.Any()).
		Return(store.ErrUserAlreadyExists)

	err := svc.Register(ctx, "acme", "john", "secret")
	require.ErrorIs(t, err, ErrRegistrationFailed)
	require.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestAuthService_Register_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCreds := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockCreds.EXPECT().
		RegisterUser(ctx, "acme", "john", gomock.Any()).
		Return(errors.New("db network error"))

	err := svc.Register(ctx, "acme", "john", "secret")
	require.ErrorIs(t, err, ErrRegistrationFailed)
}
