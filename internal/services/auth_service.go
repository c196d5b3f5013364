package services

import (
	"context"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
	"github.com/rafabene/inhouse-backend/internal/domain/errors"
	"github.com/rafabene/inhouse-backend/internal/domain/ports"
	"github.com/rafabene/inhouse-backend/internal/domain/repositories"
	"github.com/rafabene/inhouse-backend/internal/domain/valueobjects"
)

// AuthService contém a lógica de cadastro, login e perfil de usuários
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// AuthResult é o usuário autenticado junto com seu token de acesso
type AuthResult struct {
	User  *entities.User
	Token string
}

// SignupInput representa os dados para criar uma conta
type SignupInput struct {
	Name     string
	Email    string
	Password string
	UserType string
}

// Signup cria um novo usuário com 0 pontos e 5 estrelas
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	userType := entities.UserType(input.UserType)
	if userType == "" {
		userType = entities.UserTypeTenant
	}
	if !userType.IsValid() {
		return nil, errors.ErrInvalidUserType
	}

	s.logger.Info("creating user", "email", email.String(), "user_type", userType)

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := entities.NewUser(input.Name, email, hash, userType)
	if err := user.Validate(); err != nil {
		return nil, err
	}

	// Unicidade garantida pelo índice; o repositório traduz a violação
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.authenticated(user)
}

// LoginInput representa as credenciais de login
type LoginInput struct {
	Email    string
	Password string
}

// Login valida as credenciais e emite um token
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, valueobjects.NormalizeEmail(input.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hasher.Compare(user.PasswordHash, input.Password) {
		s.logger.Warn("failed login attempt", "email", input.Email)
		return nil, errors.ErrInvalidCredentials
	}

	return s.authenticated(user)
}

// UpdateProfileInput contém os campos editáveis do perfil; nil mantém o valor atual
type UpdateProfileInput struct {
	Name  *string
	Phone *string
}

// UpdateProfile atualiza nome e telefone do usuário autenticado
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, input UpdateProfileInput) (*entities.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != "" {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", "user_id", userID)
	return user, nil
}

// GetUser busca um usuário por ID
func (s *AuthService) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) authenticated(user *entities.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.ID, user.Email.String(), string(user.UserType))
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}
