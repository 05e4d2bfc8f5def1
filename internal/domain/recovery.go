package domain

import "time"

// RecoveryToken é um código de recuperação de senha de uso único.
type RecoveryToken struct {
	ID          string
	AccountID   string
	AccountKind AccountKind
	CPF         string
	Code        string
	Used        bool
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

type LoginRequest struct {
	CPF      string `json:"cpf" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// LoginResponse devolve o token e a conta autenticada.
type LoginResponse struct {
	Token   string  `json:"token"`
	Account Account `json:"conta"`
}

type RecoveryRequest struct {
	CPF string `json:"cpf" validate:"required"`
}

type RecoveryConfirm struct {
	CPF         string `json:"cpf" validate:"required"`
	Code        string `json:"token" validate:"required"`
	NewPassword string `json:"senha_nova" validate:"required,min=6"`
}

type PasswordChange struct {
	CurrentPassword string `json:"senha_atual" validate:"required"`
	NewPassword     string `json:"senha_nova" validate:"required,min=6"`
}
