package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-grid-portal/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestCredentialsRepo(t *testing.T) (*credentialsRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &credentialsRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestFindCredentials_Success(t *testing.T) {
	repo, mock, db := newTestCredentialsRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"client_id", "password_hash"}).
		AddRow(int64(42), "$2a$10$hash")

	mock.ExpectQuery("SELECT client_id, password_hash FROM sp_auth_login").
		WithArgs("acme", "john").
		WillReturnRows(rows)

	creds, err := repo.FindCredentials(ctx, "acme", "john")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.ClientID != 42 {
		t.Errorf("expected ClientID=42, got %d", creds.ClientID)
	}
	if creds.PasswordHash != "$2a$10$hash" {
		t.Errorf("unexpected password hash: %s", creds.PasswordHash)
	}
}

func TestFindCredentials_EmptyResult(t *testing.T) {
	repo, mock, db := newTestCredentialsRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT client_id, password_hash FROM sp_auth_login").
		WithArgs("acme", "ghost").
		WillReturnRows(sqlmock.NewRows([]string{"client_id", "password_hash"}))

	_, err := repo.FindCredentials(ctx, "acme", "ghost")
	if !errors.Is(err, ErrNoCredentialsFound) {
		t.Fatalf("expected ErrNoCredentialsFound, got %v", err)
	}
}

func TestFindCredentials_NoDataFound(t *testing.T) {
	repo, mock, db := newTestCredentialsRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT client_id, password_hash FROM sp_auth_login").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.NoDataFound))

	_, err := repo.FindCredentials(ctx, "acme", "ghost")
	if !errors.Is(err, ErrNoCredentialsFound) {
		t.Fatalf("expected ErrNoCredentialsFound, got %v", err)
	}
}

func TestFindCredentials_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestCredentialsRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT client_id, password_hash FROM sp_auth_login").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.FindCredentials(ctx, "acme", "john")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestRegisterUser_Success(t *testing.T) {
	repo, mock, db := newTestCredentialsRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("CALL sp_admin_register_user").
		WithArgs("acme", "john", "$2a$10$hash").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.RegisterUser(ctx, "acme", "john", "$2a$10$hash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegisterUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestCredentialsRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("CALL sp_admin_register_user").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.RegisterUser(ctx, "acme", "john", "hash")
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestRegisterUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestCredentialsRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("CALL sp_admin_register_user").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	err := repo.RegisterUser(ctx, "acme", "john", "hash")
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
