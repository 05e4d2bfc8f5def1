package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AppointmentStatus é o estado de um agendamento.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "agendado"
	StatusConfirmed AppointmentStatus = "confirmado"
	StatusCanceled  AppointmentStatus = "cancelado"
	StatusCompleted AppointmentStatus = "concluido"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCanceled, StatusCompleted:
		return true
	}
	return false
}

// Terminal indica que não há transição possível a partir deste estado.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCanceled || s == StatusCompleted
}

// Formatos de data e hora dos agendamentos.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Appointment é um horário marcado. Os campos *Name e ServicePrice vêm dos JOINs de listagem.
type Appointment struct {
	ID        string            `json:"id"`
	ClientID  string            `json:"cliente_id"`
	BarberID  string            `json:"barbeiro_id"`
	ServiceID string            `json:"servico_id"`
	UnitID    string            `json:"unidade_id"`
	Date      string            `json:"data_agendamento"`
	StartTime string            `json:"hora_inicio"`
	EndTime   string            `json:"hora_fim"`
	Status    AppointmentStatus `json:"status_agendamento"`
	PaymentID *string           `json:"pagamento_id"`
	CreatedAt time.Time         `json:"criado_em"`

	ClientName   string          `json:"cliente_nome,omitempty"`
	BarberName   string          `json:"barbeiro_nome,omitempty"`
	ServiceName  string          `json:"servico_nome,omitempty"`
	ServicePrice decimal.Decimal `json:"servico_preco"`
	UnitName     string          `json:"unidade_nome,omitempty"`
}

// AppointmentInput é o payload de POST /api/agendamentos.
// hora_fim é opcional; quando ausente é calculada pela duração do serviço.
type AppointmentInput struct {
	ClientID  string `json:"cliente_id" validate:"omitempty,uuid"`
	BarberID  string `json:"barbeiro_id" validate:"required,uuid"`
	ServiceID string `json:"servico_id" validate:"required,uuid"`
	UnitID    string `json:"unidade_id" validate:"required,uuid"`
	Date      string `json:"data_agendamento" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"hora_inicio" validate:"required,datetime=15:04"`
	EndTime   string `json:"hora_fim" validate:"omitempty,datetime=15:04"`
}

type AppointmentFilter struct {
	Status   AppointmentStatus
	DateFrom string
	DateTo   string
	ClientID string
	BarberID string
	UnitID   string
}

// StatusChange é o payload de PUT /api/agendamentos/{id}/status.
type StatusChange struct {
	NewStatus AppointmentStatus `json:"novo_status" validate:"required,oneof=agendado confirmado cancelado concluido"`
}

// StatusHistory é uma linha do histórico de transições (append-only).
type StatusHistory struct {
	ID             string            `json:"id"`
	AppointmentID  string            `json:"agendamento_id"`
	PreviousStatus AppointmentStatus `json:"status_anterior"`
	NewStatus      AppointmentStatus `json:"status_novo"`
	ChangedAt      time.Time         `json:"data_alteracao"`
}

// AppointmentDetail reúne os dados usados nas mensagens de WhatsApp.
type AppointmentDetail struct {
	Appointment
	ClientPhone string
	BarberPhone string
	UnitAddress string
}
