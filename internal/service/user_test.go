package service

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"filesmanager/internal/model"
	"filesmanager/internal/password"
	repoMocks "filesmanager/internal/repository/mocks"
	sessionMocks "filesmanager/internal/session/mocks"
)

func TestMain(m *testing.M) {
	password.Cost = bcrypt.MinCost
	os.Exit(m.Run())
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		in         RegisterInput
		setupMocks func(users *repoMocks.MockUserRepository)
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "happy path",
			in:   RegisterInput{Email: "bob@dylan.com", Password: "toto1234!"},
			setupMocks: func(users *repoMocks.MockUserRepository) {
				users.On("FindByEmail", mock.Anything, "bob@dylan.com").Return(nil, sql.ErrNoRows)
				users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.ID != "" && u.Email == "bob@dylan.com" &&
						password.Verify("toto1234!", u.PasswordHash)
				})).Return(&model.User{ID: "new-id", Email: "bob@dylan.com"}, nil)
			},
		},
		{
			name:       "missing email",
			in:         RegisterInput{Password: "x"},
			setupMocks: func(*repoMocks.MockUserRepository) {},
			wantErr:    ErrMissingEmail,
		},
		{
			name:       "missing both reports email",
			in:         RegisterInput{},
			setupMocks: func(*repoMocks.MockUserRepository) {},
			wantErr:    ErrMissingEmail,
		},
		{
			name: "password past the bcrypt input limit",
			in:   RegisterInput{Email: "long@dylan.com", Password: strings.Repeat("x", 73)},
			setupMocks: func(users *repoMocks.MockUserRepository) {
				users.On("FindByEmail", mock.Anything, "long@dylan.com").Return(nil, sql.ErrNoRows)
				users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return password.Verify(strings.Repeat("x", 73), u.PasswordHash)
				})).Return(&model.User{ID: "new-id", Email: "long@dylan.com"}, nil)
			},
		},
		{
			name:       "missing password",
			in:         RegisterInput{Email: "bob@dylan.com"},
			setupMocks: func(*repoMocks.MockUserRepository) {},
			wantErr:    ErrMissingPassword,
		},
		{
			name: "already exists",
			in:   RegisterInput{Email: "bob@dylan.com", Password: "x"},
			setupMocks: func(users *repoMocks.MockUserRepository) {
				users.On("FindByEmail", mock.Anything, "bob@dylan.com").Return(&model.User{ID: "old"}, nil)
			},
			wantErr: ErrUserExists,
		},
		{
			name: "unique violation on insert",
			in:   RegisterInput{Email: "bob@dylan.com", Password: "x"},
			setupMocks: func(users *repoMocks.MockUserRepository) {
				users.On("FindByEmail", mock.Anything, "bob@dylan.com").Return(nil, sql.ErrNoRows)
				users.On("Create", mock.Anything, mock.Anything).Return(nil, &pgconn.PgError{Code: "23505"})
			},
			wantErr: ErrUserExists,
		},
		{
			name: "lookup failure",
			in:   RegisterInput{Email: "bob@dylan.com", Password: "x"},
			setupMocks: func(users *repoMocks.MockUserRepository) {
				users.On("FindByEmail", mock.Anything, "bob@dylan.com").Return(nil, errors.New("conn refused"))
			},
			wantErrMsg: "conn refused",
		},
		{
			name: "insert failure",
			in:   RegisterInput{Email: "bob@dylan.com", Password: "x"},
			setupMocks: func(users *repoMocks.MockUserRepository) {
				users.On("FindByEmail", mock.Anything, "bob@dylan.com").Return(nil, sql.ErrNoRows)
				users.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErrMsg: "db save failed: db fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(repoMocks.MockUserRepository)
			tt.setupMocks(users)
			svc := NewUserService(users, NewAuthorizer(new(sessionMocks.MockStore), users), 0)

			u, err := svc.Register(ctx, tt.in)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, "new-id", u.ID)
			}
			users.AssertExpectations(t)
		})
	}
}

func TestUserService_Me(t *testing.T) {
	ctx := context.Background()
	sessions := new(sessionMocks.MockStore)
	users := new(repoMocks.MockUserRepository)
	sessions.On("Get", mock.Anything, token).Return(userID, nil)
	users.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Email: "bob@dylan.com"}, nil)

	svc := NewUserService(users, NewAuthorizer(sessions, users), 0)

	u, err := svc.Me(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "bob@dylan.com", u.Email)

	_, err = svc.Me(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
