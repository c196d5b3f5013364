package entities

// UserType representa o perfil de um usuário na plataforma
type UserType string

const (
	UserTypeTenant UserType = "tenant"
	UserTypeOwner  UserType = "owner"
)

// IsValid verifica se o tipo de usuário é conhecido
func (t UserType) IsValid() bool {
	return t == UserTypeTenant || t == UserTypeOwner
}

// CanManageListings indica se o perfil tem acesso ao painel do proprietário
func (t UserType) CanManageListings() bool {
	return t == UserTypeOwner
}
