package domain

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Code     int    `json:"code" example:"400"`
	Category string `json:"category" example:"VALIDATION_ERROR"`
	Message  string `json:"message" example:"Erro de Validação: CPF inválido."`
}

// MessageResponse é usada pelas rotas que respondem apenas uma mensagem.
type MessageResponse struct {
	Message string `json:"mensagem"`
}

// CreatedResponse devolve o identificador de um recurso recém-criado.
type CreatedResponse struct {
	ID string `json:"id"`
}
