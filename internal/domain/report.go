package domain

import "github.com/shopspring/decimal"

// DateRange delimita relatórios e listagens; vazio significa sem filtro.
type DateRange struct {
	From string
	To   string
}

// Set informa se as duas pontas foram informadas.
func (r DateRange) Set() bool { return r.From != "" && r.To != "" }

type DailySales struct {
	Date     string          `json:"data"`
	Total    decimal.Decimal `json:"total_vendas"`
	Quantity int             `json:"quantidade_vendas"`
}

type AppointmentsByStatus struct {
	Status   AppointmentStatus `json:"status_agendamento"`
	Quantity int               `json:"quantidade"`
}

type BarberCommission struct {
	BarberID   string          `json:"barbeiro_id"`
	BarberName string          `json:"barbeiro_nome"`
	Total      decimal.Decimal `json:"total_comissao"`
}
