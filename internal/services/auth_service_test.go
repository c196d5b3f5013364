package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
	"github.com/rafabene/inhouse-backend/internal/domain/errors"
	"github.com/rafabene/inhouse-backend/internal/infrastructure/logging"
)

func newTestAuthService() *AuthService {
	return NewAuthService(newMemoryUserRepository(), plainHasher{}, staticTokens{}, logging.NewDiscardLogger())
}

func TestAuthService_Signup(t *testing.T) {
	tests := []struct {
		name    string
		input   SignupInput
		wantErr error
		want    entities.UserType
	}{
		{
			name:  "inquilino por padrão",
			input: SignupInput{Name: "Ana", Email: "Ana@X.com", Password: "s3nha"},
			want:  entities.UserTypeTenant,
		},
		{
			name:  "proprietário explícito",
			input: SignupInput{Name: "Bia", Email: "bia@x.com", Password: "s3nha", UserType: "owner"},
			want:  entities.UserTypeOwner,
		},
		{
			name:    "email inválido",
			input:   SignupInput{Name: "Ana", Email: "sem-arroba", Password: "s3nha"},
			wantErr: errors.ErrInvalidEmail,
		},
		{
			name:    "tipo desconhecido",
			input:   SignupInput{Name: "Ana", Email: "ana@x.com", Password: "s3nha", UserType: "admin"},
			wantErr: errors.ErrInvalidUserType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestAuthService()

			result, err := service.Signup(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, result.User.UserType)
			assert.Equal(t, 0, result.User.Points)
			assert.Equal(t, entities.DefaultStars, result.User.Stars)
			assert.NotEqual(t, tt.input.Password, result.User.PasswordHash)
			assert.NotEmpty(t, result.Token)
		})
	}
}

func TestAuthService_SignupDuplicateEmail(t *testing.T) {
	service := newTestAuthService()
	ctx := context.Background()

	_, err := service.Signup(ctx, SignupInput{Name: "Ana", Email: "ana@x.com", Password: "a"})
	require.NoError(t, err)

	_, err = service.Signup(ctx, SignupInput{Name: "Outra", Email: " ANA@x.com ", Password: "b"})
	assert.ErrorIs(t, err, errors.ErrEmailAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	service := newTestAuthService()
	ctx := context.Background()

	created, err := service.Signup(ctx, SignupInput{Name: "Ana", Email: "ana@x.com", Password: "s3nha"})
	require.NoError(t, err)

	result, err := service.Login(ctx, LoginInput{Email: "ANA@x.com", Password: "s3nha"})
	require.NoError(t, err)
	assert.Equal(t, created.User.ID, result.User.ID)

	_, err = service.Login(ctx, LoginInput{Email: "ana@x.com", Password: "errada"})
	assert.ErrorIs(t, err, errors.ErrInvalidCredentials)

	_, err = service.Login(ctx, LoginInput{Email: "ninguem@x.com", Password: "s3nha"})
	assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	service := newTestAuthService()
	ctx := context.Background()

	created, err := service.Signup(ctx, SignupInput{Name: "Ana", Email: "ana@x.com", Password: "s3nha"})
	require.NoError(t, err)

	phone := "+55 21 99999-0000"
	empty := ""
	user, err := service.UpdateProfile(ctx, created.User.ID, UpdateProfileInput{Name: &empty, Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
	require.NotNil(t, user.Phone)
	assert.Equal(t, phone, *user.Phone)

	_, err = service.UpdateProfile(ctx, 999, UpdateProfileInput{Phone: &phone})
	assert.ErrorIs(t, err, errors.ErrUserNotFound)
}
