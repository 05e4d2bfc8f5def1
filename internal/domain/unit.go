package domain

// Unit é um endereço físico da barbearia.
type Unit struct {
	ID      string `json:"id"`
	Name    string `json:"nome" validate:"required"`
	Address string `json:"endereco"`
	Phone   string `json:"telefone"`
	Active  bool   `json:"ativo"`
}

// UnitInput é o payload de criação e atualização de unidade.
type UnitInput struct {
	Name    string `json:"nome" validate:"required"`
	Address string `json:"endereco"`
	Phone   string `json:"telefone"`
	Active  *bool  `json:"ativo"`
}
