package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pendente"
	PaymentPaid     PaymentStatus = "pago"
	PaymentCanceled PaymentStatus = "cancelado"
	PaymentRefunded PaymentStatus = "estornado"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentCanceled, PaymentRefunded:
		return true
	}
	return false
}

// Payment registra um pagamento de agendamento ou de venda.
type Payment struct {
	ID              string          `json:"id"`
	AppointmentID   *string         `json:"agendamento_id"`
	SaleID          *string         `json:"venda_id"`
	Method          string          `json:"forma_pagamento"`
	Amount          decimal.Decimal `json:"valor"`
	Status          PaymentStatus   `json:"status_pagamento"`
	TransactionCode *string         `json:"codigo_transacao"`
	PaidAt          *time.Time      `json:"data_pagamento"`
}

type PaymentInput struct {
	AppointmentID   *string         `json:"agendamento_id" validate:"omitempty,uuid"`
	SaleID          *string         `json:"venda_id" validate:"omitempty,uuid"`
	Method          string          `json:"forma_pagamento"`
	Amount          decimal.Decimal `json:"valor"`
	Status          PaymentStatus   `json:"status_pagamento" validate:"omitempty,oneof=pendente pago cancelado estornado"`
	TransactionCode *string         `json:"codigo_transacao"`
	PaidAt          *time.Time      `json:"data_pagamento"`
}

// PaymentUpdate é parcial: somente os campos presentes são alterados.
type PaymentUpdate struct {
	Method          *string          `json:"forma_pagamento"`
	Amount          *decimal.Decimal `json:"valor"`
	Status          *PaymentStatus   `json:"status_pagamento" validate:"omitempty,oneof=pendente pago cancelado estornado"`
	TransactionCode *string          `json:"codigo_transacao"`
	PaidAt          *time.Time       `json:"data_pagamento"`
}

// Empty informa se nenhum campo foi enviado.
func (u PaymentUpdate) Empty() bool {
	return u.Method == nil && u.Amount == nil && u.Status == nil && u.TransactionCode == nil && u.PaidAt == nil
}

type PaymentFilter struct {
	Status   PaymentStatus
	DateFrom string
	DateTo   string
}
