package domain

import "github.com/shopspring/decimal"

// ServiceCategory agrupa serviços (ex.: "Cabelo", "Barba").
type ServiceCategory struct {
	ID          string `json:"id"`
	Name        string `json:"nome"`
	Description string `json:"descricao"`
}

type ServiceCategoryInput struct {
	Name        string `json:"nome" validate:"required"`
	Description string `json:"descricao"`
}

// Service é um serviço prestado numa unidade. Preço e duração são sempre positivos.
type Service struct {
	ID              string          `json:"id"`
	Name            string          `json:"nome"`
	Description     string          `json:"descricao"`
	Price           decimal.Decimal `json:"preco"`
	DurationMinutes int             `json:"duracao_minutos"`
	CategoryID      *string         `json:"categoria_id"`
	CategoryName    *string         `json:"categoria_nome,omitempty"`
	UnitID          string          `json:"unidade_id"`
	Active          bool            `json:"ativo"`
}

type ServiceInput struct {
	Name            string          `json:"nome" validate:"required"`
	Description     string          `json:"descricao"`
	Price           decimal.Decimal `json:"preco"`
	DurationMinutes int             `json:"duracao_minutos" validate:"gt=0"`
	CategoryID      *string         `json:"categoria_id" validate:"omitempty,uuid"`
	UnitID          string          `json:"unidade_id" validate:"required,uuid"`
	Active          *bool           `json:"ativo"`
}

type ServiceFilter struct {
	UnitID     string
	CategoryID string
	Active     *bool
}

// Product é um item vendável com estoque controlado por unidade.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	Stock       int             `json:"estoque"`
	UnitID      string          `json:"unidade_id"`
	Active      bool            `json:"ativo"`
}

type ProductInput struct {
	Name        string          `json:"nome" validate:"required"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	Stock       int             `json:"estoque" validate:"gte=0"`
	UnitID      string          `json:"unidade_id" validate:"required,uuid"`
	Active      *bool           `json:"ativo"`
}

type ProductFilter struct {
	UnitID string
	Active *bool
}

// StockAdjustment soma (ou subtrai, se negativa) a quantidade ao estoque atual.
type StockAdjustment struct {
	Quantity *int `json:"quantidade" validate:"required"`
}

// PricedItem é o resultado da leitura de preço (e estoque, para produtos) durante a venda.
type PricedItem struct {
	ID     string
	Name   string
	Price  decimal.Decimal
	Stock  int
	Active bool
}
