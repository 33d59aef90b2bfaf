package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cdms/internal/auth"
	"cdms/internal/model"
	"cdms/internal/repository"
	repoMocks "cdms/internal/repository/mocks"
)

func newTestTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret")
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	h, err := auth.HashPassword(password)
	require.NoError(t, err)
	return h
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		email      string
		password   string
		department model.Department
		setupMocks func(mUsers *repoMocks.MockUserRepository)
		wantErr    error
	}{
		{
			name:       "happy path",
			email:      "A@X.com",
			password:   "pw1",
			department: model.DepartmentLegal,
			setupMocks: func(mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByEmail", ctx, "a@x.com").Return(nil, sql.ErrNoRows)
				mUsers.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
					return u.Email == "a@x.com" &&
						u.Department == model.DepartmentLegal &&
						u.PasswordHash != "" && u.PasswordHash != "pw1" &&
						u.ID != ""
				})).Return(&model.User{ID: "gen-id", Email: "a@x.com", Department: model.DepartmentLegal}, nil)
			},
		},
		{
			name:       "missing email",
			email:      "",
			password:   "pw1",
			setupMocks: func(mUsers *repoMocks.MockUserRepository) {},
			wantErr:    ErrValidation,
		},
		{
			name:       "missing password",
			email:      "a@x.com",
			password:   "",
			setupMocks: func(mUsers *repoMocks.MockUserRepository) {},
			wantErr:    ErrValidation,
		},
		{
			name:       "malformed email",
			email:      "not-an-email",
			password:   "pw1",
			setupMocks: func(mUsers *repoMocks.MockUserRepository) {},
			wantErr:    ErrValidation,
		},
		{
			name:       "unknown department",
			email:      "a@x.com",
			password:   "pw1",
			department: model.Department("Marketing"),
			setupMocks: func(mUsers *repoMocks.MockUserRepository) {},
			wantErr:    ErrValidation,
		},
		{
			name:     "duplicate email detected by lookup",
			email:    "a@x.com",
			password: "pw1",
			setupMocks: func(mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByEmail", ctx, "a@x.com").
					Return(&model.User{ID: "existing", Email: "a@x.com"}, nil)
			},
			wantErr: ErrEmailTaken,
		},
		{
			name:     "duplicate email detected by unique index",
			email:    "a@x.com",
			password: "pw1",
			setupMocks: func(mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByEmail", ctx, "a@x.com").Return(nil, sql.ErrNoRows)
				mUsers.On("Create", ctx, mock.Anything).
					Return(nil, repository.ErrDuplicate)
			},
			wantErr: ErrEmailTaken,
		},
		{
			name:     "repository error",
			email:    "a@x.com",
			password: "pw1",
			setupMocks: func(mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByEmail", ctx, "a@x.com").Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mUsers := new(repoMocks.MockUserRepository)
			tokens := newTestTokens()
			svc := NewAuthService(mUsers, tokens)

			tt.setupMocks(mUsers)

			res, err := svc.Register(ctx, tt.email, tt.password, tt.department)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrValidation) || errors.Is(tt.wantErr, ErrEmailTaken) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Error(t, err)
				}
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.NotEmpty(t, res.Token)
				assert.Equal(t, "a@x.com", res.User.Email)

				// The issued token must verify against the same manager.
				claims, err := tokens.Verify(res.Token)
				require.NoError(t, err)
				assert.Equal(t, res.User.ID, claims.UserID)
			}
			mUsers.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	storedHash := hashFor(t, "pw1")

	tests := []struct {
		name       string
		email      string
		password   string
		setupMocks func(mUsers *repoMocks.MockUserRepository)
		wantErr    error
	}{
		{
			name:     "happy path",
			email:    "a@x.com",
			password: "pw1",
			setupMocks: func(mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByEmail", ctx, "a@x.com").
					Return(&model.User{ID: "user-id", Email: "a@x.com", PasswordHash: storedHash}, nil)
			},
		},
		{
			name:       "missing credentials",
			email:      "a@x.com",
			password:   "",
			setupMocks: func(mUsers *repoMocks.MockUserRepository) {},
			wantErr:    ErrValidation,
		},
		{
			name:     "unknown email",
			email:    "ghost@x.com",
			password: "pw1",
			setupMocks: func(mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByEmail", ctx, "ghost@x.com").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "a@x.com",
			password: "pw2",
			setupMocks: func(mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByEmail", ctx, "a@x.com").
					Return(&model.User{ID: "user-id", Email: "a@x.com", PasswordHash: storedHash}, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "repository error",
			email:    "a@x.com",
			password: "pw1",
			setupMocks: func(mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByEmail", ctx, "a@x.com").Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mUsers := new(repoMocks.MockUserRepository)
			tokens := newTestTokens()
			svc := NewAuthService(mUsers, tokens)

			tt.setupMocks(mUsers)

			res, err := svc.Login(ctx, tt.email, tt.password)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrValidation) || errors.Is(tt.wantErr, ErrInvalidCredentials) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Error(t, err)
				}
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.NotEmpty(t, res.Token)

				claims, err := tokens.Verify(res.Token)
				require.NoError(t, err)
				assert.Equal(t, "user-id", claims.UserID)
			}
			mUsers.AssertExpectations(t)
		})
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_NoEnumerationLeak(t *testing.T) {
	ctx := context.Background()

	mUsers := new(repoMocks.MockUserRepository)
	mUsers.On("FindByEmail", ctx, "ghost@x.com").Return(nil, sql.ErrNoRows)
	mUsers.On("FindByEmail", ctx, "real@x.com").
		Return(&model.User{ID: "user-id", Email: "real@x.com", PasswordHash: hashFor(t, "pw1")}, nil)

	svc := NewAuthService(mUsers, newTestTokens())

	_, errUnknown := svc.Login(ctx, "ghost@x.com", "pw1")
	_, errWrongPw := svc.Login(ctx, "real@x.com", "wrong")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

// Both a registration token and a login token must authorize independently.
func TestAuthService_RegisterThenLoginTokens(t *testing.T) {
	ctx := context.Background()
	tokens := newTestTokens()

	storedHash := hashFor(t, "pw1")
	stored := &model.User{ID: "user-id", Email: "a@x.com", PasswordHash: storedHash, Department: model.DepartmentLegal}

	mUsers := new(repoMocks.MockUserRepository)
	mUsers.On("FindByEmail", ctx, "a@x.com").Return(nil, sql.ErrNoRows).Once()
	mUsers.On("Create", ctx, mock.Anything).Return(stored, nil).Once()
	mUsers.On("FindByEmail", ctx, "a@x.com").Return(stored, nil).Once()

	svc := NewAuthService(mUsers, tokens)

	regRes, err := svc.Register(ctx, "a@x.com", "pw1", model.DepartmentLegal)
	require.NoError(t, err)
	loginRes, err := svc.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	for _, token := range []string{regRes.Token, loginRes.Token} {
		claims, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "user-id", claims.UserID)
	}
}
