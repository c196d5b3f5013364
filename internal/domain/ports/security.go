package ports

import "time"

// PasswordHasher gera e verifica hashes de senha
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// TokenClaims são os dados extraídos de um token de acesso válido
type TokenClaims struct {
	UserID    int64
	Email     string
	UserType  string
	ExpiresAt time.Time
}

// TokenIssuer emite e valida tokens de acesso
type TokenIssuer interface {
	Issue(userID int64, email, userType string) (string, error)
	Parse(token string) (*TokenClaims, error)
}
