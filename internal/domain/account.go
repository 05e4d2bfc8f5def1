package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind identifica em qual das três tabelas de conta o registro vive.
type AccountKind string

const (
	KindStaff  AccountKind = "usuario"
	KindBarber AccountKind = "barbeiro"
	KindClient AccountKind = "cliente"
)

// ProbeOrder é a ordem fixa em que login e recuperação de senha procuram um CPF.
var ProbeOrder = []AccountKind{KindStaff, KindBarber, KindClient}

// Valid informa se o valor é uma das três categorias conhecidas.
func (k AccountKind) Valid() bool {
	switch k {
	case KindStaff, KindBarber, KindClient:
		return true
	}
	return false
}

// StaffRole é o papel de uma conta de equipe (tabela usuarios).
type StaffRole string

const (
	RoleAdmin    StaffRole = "admin"
	RoleManager  StaffRole = "gerente"
	RoleEmployee StaffRole = "funcionario"
)

// Valid informa se o papel existe.
func (r StaffRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// Account é a visão unificada (união etiquetada por Kind) das três tabelas de conta.
// Campos específicos de uma categoria ficam vazios nas demais.
type Account struct {
	ID           string      `json:"id"`
	Kind         AccountKind `json:"tipo_conta"`
	Name         string      `json:"nome"`
	CPF          string      `json:"cpf"`
	Email        string      `json:"email,omitempty"`
	Phone        string      `json:"telefone,omitempty"`
	PasswordHash string      `json:"-"`
	Active       bool        `json:"ativo"`
	CreatedAt    time.Time   `json:"criado_em"`

	// Apenas usuarios
	Role StaffRole `json:"tipo,omitempty"`
	// usuarios (opcional) e barbeiros (obrigatório)
	UnitID *string `json:"unidade_id,omitempty"`
	// Apenas barbeiros
	PhotoBase64       string           `json:"foto_base64,omitempty"`
	CommissionPercent *decimal.Decimal `json:"percentual_comissao,omitempty"`
	// Apenas clientes
	Notes string `json:"observacoes,omitempty"`
}

// StaffRegistration é o payload de cadastro de usuário da equipe (somente admin).
type StaffRegistration struct {
	Name     string    `json:"nome" validate:"required"`
	CPF      string    `json:"cpf" validate:"required"`
	Email    string    `json:"email" validate:"omitempty,email"`
	Phone    string    `json:"telefone"`
	Password string    `json:"senha" validate:"required"`
	Role     StaffRole `json:"tipo" validate:"required,oneof=admin gerente funcionario"`
	UnitID   *string   `json:"unidade_id" validate:"omitempty,uuid"`
}

// BarberRegistration é o payload de cadastro de barbeiro (admin ou gerente).
type BarberRegistration struct {
	Name              string          `json:"nome" validate:"required"`
	CPF               string          `json:"cpf" validate:"required"`
	Email             string          `json:"email" validate:"omitempty,email"`
	Phone             string          `json:"telefone"`
	Password          string          `json:"senha" validate:"required"`
	CommissionPercent decimal.Decimal `json:"percentual_comissao"`
	UnitID            string          `json:"unidade_id" validate:"required,uuid"`
	PhotoBase64       string          `json:"foto_base64"`
}

// ClientRegistration é o payload público de auto-cadastro de cliente.
type ClientRegistration struct {
	Name     string `json:"nome" validate:"required"`
	CPF      string `json:"cpf" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"telefone"`
	Password string `json:"senha" validate:"required"`
}

// ProfileUpdate é o payload de PUT /api/perfil.
type ProfileUpdate struct {
	Name        string `json:"nome" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"telefone"`
	PhotoBase64 string `json:"foto_base64"`
}

// AccountFilter filtra as listagens de barbeiros e clientes.
type AccountFilter struct {
	UnitID string
	Name   string
	CPF    string
	Active *bool
}
