package dto

import "time"

// CreateUserRequest entrada para provisionar um usuário (password em texto, o
// use case faz o hash). Document é obrigatório para BRANCH e DRIVER.
type CreateUserRequest struct {
	Name        string `json:"name"`
	Profile     string `json:"profile"` // ADMIN | BRANCH | DRIVER
	Email       string `json:"email"`
	Password    string `json:"password"`
	Document    string `json:"document"`
	FullAddress string `json:"fullAddress"`
}

// UpdateUserRequest atualização parcial: só os campos presentes mudam.
// FullAddress é roteado para a sub-tabela (branches/drivers) conforme o perfil.
type UpdateUserRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	FullAddress *string `json:"fullAddress"`
}

// UserResponse saída de um usuário (sem password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Profile   string    `json:"profile"`
	Email     string    `json:"email"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StatusResponse saída do toggle de status.
type StatusResponse struct {
	ID     string `json:"id"`
	Status bool   `json:"status"`
}

// LoginRequest entrada do login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse saída do login: token + identificação básica, como o front espera.
type LoginResponse struct {
	Token   string `json:"token"`
	Name    string `json:"name"`
	Profile string `json:"profile"`
}
