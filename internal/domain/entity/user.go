package entity

import "time"

// Profile é o papel do usuário no sistema (enum fechado).
type Profile string

// Perfis válidos para User.
const (
	ProfileAdmin  Profile = "ADMIN"
	ProfileBranch Profile = "BRANCH"
	ProfileDriver Profile = "DRIVER"
)

// Valid informa se o perfil é um dos três conhecidos.
func (p Profile) Valid() bool {
	switch p {
	case ProfileAdmin, ProfileBranch, ProfileDriver:
		return true
	}
	return false
}

// User representa um usuário do sistema. Usuários nunca são removidos;
// a desativação acontece via Status (toggle do admin).
type User struct {
	ID           string
	Name         string
	Profile      Profile
	Email        string
	PasswordHash string // hash bcrypt, nunca texto plano depois de persistir
	Status       bool   // true = ativo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
