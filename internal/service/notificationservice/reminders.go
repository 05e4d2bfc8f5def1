package notificationservice

import (
	"context"
	"time"

	"barbearia/internal/domain"
	"barbearia/internal/pkg/logger"
)

// AppointmentReader lê a agenda do dia com os dados de contato.
type AppointmentReader interface {
	ListForDay(ctx context.Context, date string, statuses ...domain.AppointmentStatus) ([]domain.AppointmentDetail, error)
}

// DedupStore grava uma chave apenas se ela ainda não existe (Redis SETNX).
type DedupStore interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
}

// upcomingWindow é a antecedência do lembrete curto.
const upcomingWindow = 30 * time.Minute

// Reminders envia os lembretes disparados pelo agendador.
type Reminders struct {
	notifier     *Service
	appointments AppointmentReader
	dedup        DedupStore
	loc          *time.Location
	now          func() time.Time
	logger       logger.Logger
}

// NewReminders cria o serviço de lembretes. dedup pode ser nil (sem Redis), caso em que nada é de-duplicado.
func NewReminders(notifier *Service, appointments AppointmentReader, dedup DedupStore, loc *time.Location, logger logger.Logger) *Reminders {
	if loc == nil {
		loc = time.UTC
	}
	return &Reminders{
		notifier:     notifier,
		appointments: appointments,
		dedup:        dedup,
		loc:          loc,
		now:          time.Now,
		logger:       logger,
	}
}

var activeStatuses = []domain.AppointmentStatus{domain.StatusScheduled, domain.StatusConfirmed}

// SendDailyReminders avisa os clientes de todos os agendamentos ativos de hoje.
// Retorna quantos lembretes foram entregues.
func (r *Reminders) SendDailyReminders(ctx context.Context) (int, error) {
	today := r.now().In(r.loc).Format(domain.DateLayout)

	list, err := r.appointments.ListForDay(ctx, today, activeStatuses...)
	if err != nil {
		r.logger.Error("Falha ao buscar agendamentos para lembretes do dia.", err)
		return 0, err
	}

	sent := r.deliver(ctx, list, tmplDailyReminder, "lembrete_dia", 24*time.Hour)
	r.logger.Info("Lembretes do dia processados.", map[string]interface{}{"data": today, "agendamentos": len(list), "enviados": sent})
	return sent, nil
}

// SendUpcomingReminders avisa os clientes cujo horário começa nos próximos 30 minutos.
// A janela termina em 23:59 do mesmo dia.
func (r *Reminders) SendUpcomingReminders(ctx context.Context) (int, error) {
	now := r.now().In(r.loc)
	today := now.Format(domain.DateLayout)
	from := now.Format(domain.TimeLayout)
	to := now.Add(upcomingWindow)
	until := to.Format(domain.TimeLayout)
	if to.Format(domain.DateLayout) != today {
		until = "23:59"
	}

	list, err := r.appointments.ListForDay(ctx, today, activeStatuses...)
	if err != nil {
		r.logger.Error("Falha ao buscar agendamentos para lembretes de 30 minutos.", err)
		return 0, err
	}

	var due []domain.AppointmentDetail
	for _, d := range list {
		if d.StartTime >= from && d.StartTime <= until {
			due = append(due, d)
		}
	}

	sent := r.deliver(ctx, due, tmplUpcomingReminder, "lembrete_30min", 2*time.Hour)
	r.logger.Info("Lembretes de 30 minutos processados.", map[string]interface{}{"janela": from + "-" + until, "agendamentos": len(due), "enviados": sent})
	return sent, nil
}

func (r *Reminders) deliver(ctx context.Context, list []domain.AppointmentDetail, tmpl, kind string, ttl time.Duration) int {
	sent := 0
	for _, d := range list {
		if d.ClientPhone == "" {
			continue
		}
		if !r.claim(ctx, kind+":"+d.ID, ttl) {
			continue
		}

		text, err := render(tmpl, d)
		if err != nil {
			r.logger.Error("Falha ao montar lembrete.", err)
			continue
		}

		_ = r.notifier.record(ctx, domain.KindClient, d.ClientID, domain.NotificationReminder, "Lembrete de agendamento", text)
		if err := r.notifier.send(ctx, d.ClientPhone, text, map[string]interface{}{"tipo": kind, "agendamento_id": d.ID}); err != nil {
			continue
		}
		sent++
	}
	return sent
}

// claim reserva o envio do lembrete. Falha do Redis libera o envio.
func (r *Reminders) claim(ctx context.Context, key string, ttl time.Duration) bool {
	if r.dedup == nil {
		return true
	}
	ok, err := r.dedup.SetNX(ctx, "lembrete:"+key, r.now().Unix(), ttl)
	if err != nil {
		r.logger.Warn("Falha ao registrar de-duplicação de lembrete; enviando mesmo assim.", map[string]interface{}{"chave": key, "erro": err.Error()})
		return true
	}
	return ok
}
