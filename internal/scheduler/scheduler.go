// Package scheduler dispara os lembretes de agendamento em processo, com robfig/cron.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"barbearia/internal/pkg/logger"
)

// ReminderSender é implementado pelo serviço de lembretes.
type ReminderSender interface {
	SendDailyReminders(ctx context.Context) (int, error)
	SendUpcomingReminders(ctx context.Context) (int, error)
}

// Scheduler agenda as duas rotinas de lembrete no fuso configurado.
type Scheduler struct {
	cron    *cron.Cron
	logger  logger.Logger
	timeout time.Duration
}

// jobTimeout limita uma execução; uma rodada não deve encostar na próxima.
const jobTimeout = 5 * time.Minute

// New registra as rotinas. dailySpec e upcomingSpec usam o formato padrão de 5 campos.
func New(reminders ReminderSender, dailySpec, upcomingSpec string, loc *time.Location, log logger.Logger) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}
	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(loc), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  log,
		timeout: jobTimeout,
	}

	if _, err := s.cron.AddFunc(dailySpec, s.job("lembretes_do_dia", reminders.SendDailyReminders)); err != nil {
		return nil, fmt.Errorf("expressão cron inválida para lembretes do dia (%q): %w", dailySpec, err)
	}
	if _, err := s.cron.AddFunc(upcomingSpec, s.job("lembretes_30min", reminders.SendUpcomingReminders)); err != nil {
		return nil, fmt.Errorf("expressão cron inválida para lembretes de 30 minutos (%q): %w", upcomingSpec, err)
	}
	return s, nil
}

func (s *Scheduler) job(name string, fn func(ctx context.Context) (int, error)) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		start := time.Now()
		sent, err := fn(ctx)
		if err != nil {
			s.logger.Error(fmt.Sprintf("Rotina %s falhou.", name), err)
			return
		}
		s.logger.Info("Rotina de lembretes executada.", map[string]interface{}{
			"rotina":      name,
			"enviados":    sent,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}
}

// Start inicia o agendador em background.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Agendador de lembretes iniciado.", map[string]interface{}{"rotinas": len(s.cron.Entries())})
}

// Stop para de disparar novas rotinas e espera as que estão em andamento, até o ctx expirar.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("Agendador encerrado com rotina em andamento.", nil)
	}
}
