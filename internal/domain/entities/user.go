package entities

import (
	"errors"
	"time"

	"github.com/rafabene/inhouse-backend/internal/domain/valueobjects"
)

const (
	// DefaultStars é a avaliação inicial de todo usuário novo
	DefaultStars = 5.0
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa um usuário do sistema
type User struct {
	ID           int64
	Name         string
	Email        valueobjects.Email
	PasswordHash string
	Points       int
	Stars        float64
	UserType     UserType
	Phone        *string
	Verified     bool
	CreatedAt    time.Time
}

// NewUser cria um usuário com os valores iniciais da plataforma
func NewUser(name string, email valueobjects.Email, passwordHash string, userType UserType) *User {
	if userType == "" {
		userType = UserTypeTenant
	}

	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Points:       0,
		Stars:        DefaultStars,
		UserType:     userType,
	}
}

// IsOwner verifica se o usuário anuncia imóveis
func (u *User) IsOwner() bool {
	return u.UserType.CanManageListings()
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Name == "" {
		return errors.New("name is required")
	}

	if !u.UserType.IsValid() {
		return errors.New("invalid user type")
	}

	return nil
}
