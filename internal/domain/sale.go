package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale é uma venda de balcão. Imutável depois de criada.
type Sale struct {
	ID        string          `json:"id"`
	ClientID  *string         `json:"cliente_id"`
	UnitID    string          `json:"unidade_id"`
	Total     decimal.Decimal `json:"total"`
	PaymentID *string         `json:"pagamento_id"`
	CreatedAt time.Time       `json:"criado_em"`
	Items     []SaleItem      `json:"itens,omitempty"`
}

// SaleItem referencia exatamente um produto ou um serviço.
type SaleItem struct {
	ID        string          `json:"id"`
	SaleID    string          `json:"venda_id"`
	ProductID *string         `json:"produto_id"`
	ServiceID *string         `json:"servico_id"`
	Quantity  int             `json:"quantidade"`
	UnitPrice decimal.Decimal `json:"valor_unitario"`
}

// SaleItemInput é uma linha do carrinho.
type SaleItemInput struct {
	ProductID *string `json:"produto_id" validate:"omitempty,uuid"`
	ServiceID *string `json:"servico_id" validate:"omitempty,uuid"`
	Quantity  int     `json:"quantidade" validate:"gt=0"`
}

// IsProduct indica uma linha de produto. A validação garante que apenas um dos dois ids está presente.
func (i SaleItemInput) IsProduct() bool {
	return i.ProductID != nil && *i.ProductID != ""
}

func (i SaleItemInput) IsService() bool {
	return i.ServiceID != nil && *i.ServiceID != ""
}

// SaleInput é o payload de POST /api/vendas.
type SaleInput struct {
	UnitID        string          `json:"unidade_id" validate:"required,uuid"`
	ClientID      *string         `json:"cliente_id" validate:"omitempty,uuid"`
	Items         []SaleItemInput `json:"itens" validate:"required,min=1,dive"`
	PaymentMethod *string         `json:"forma_pagamento"`
}

// SaleResult é a resposta da criação de uma venda.
type SaleResult struct {
	ID        string          `json:"id"`
	Total     decimal.Decimal `json:"total"`
	PaymentID *string         `json:"pagamento_id,omitempty"`
}

// SaleRecord é o que o engine persiste numa única transação.
type SaleRecord struct {
	Sale    Sale
	Items   []SaleItem
	Payment *Payment
}

type SaleFilter struct {
	DateFrom string
	DateTo   string
	ClientID string
	UnitID   string
}
