package dto

import (
	"time"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
)

// LoginRequest representa as credenciais de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest representa a requisição de cadastro
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"user_type" binding:"omitempty,oneof=tenant owner"`
}

// UpdateProfileRequest contém os campos editáveis do perfil
type UpdateProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone *string `json:"phone" binding:"omitempty,max=30"`
}

// UserResponse é o usuário sem o hash da senha
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Points    int       `json:"points"`
	Stars     float64   `json:"stars"`
	UserType  string    `json:"user_type"`
	Phone     *string   `json:"phone"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse é o corpo de login e cadastro
type AuthResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email.String(),
		Points:    user.Points,
		Stars:     user.Stars,
		UserType:  string(user.UserType),
		Phone:     user.Phone,
		Verified:  user.Verified,
		CreatedAt: user.CreatedAt,
	}
}

// ToAuthResponse monta a resposta de autenticação
func ToAuthResponse(user *entities.User, token string) AuthResponse {
	return AuthResponse{Success: true, User: ToUserResponse(user), Token: token}
}
