package domain

import "time"

// Tipos de notificação registrados na caixa de entrada.
const (
	NotificationNewAppointment = "novo_agendamento"
	NotificationWelcome        = "boas_vindas"
	NotificationNewBarber      = "novo_barbeiro"
	NotificationReminder       = "lembrete"
)

// Notification é uma mensagem da caixa de entrada de uma conta.
type Notification struct {
	ID          string      `json:"id"`
	AccountID   string      `json:"-"`
	AccountKind AccountKind `json:"-"`
	Type        string      `json:"tipo"`
	Title       string      `json:"titulo"`
	Message     string      `json:"mensagem"`
	Read        bool        `json:"lida"`
	CreatedAt   time.Time   `json:"criado_em"`
}

type NotificationFilter struct {
	Read  *bool
	Limit int
}

// UnreadCount é a resposta de GET /api/notificacoes/nao-lidas/count.
type UnreadCount struct {
	Total int `json:"total"`
}

// WebhookTest é o payload do envio de teste de WhatsApp.
type WebhookTest struct {
	Phone   string `json:"telefone" validate:"required"`
	Message string `json:"mensagem" validate:"required"`
}
