//go:build integration

package appointmentrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barbearia/internal/domain"
	"barbearia/internal/pkg/database/dbtest"
	"barbearia/internal/pkg/logger"
	"barbearia/internal/repository/accountrepo"
	"barbearia/internal/repository/appointmentrepo"
	"barbearia/internal/repository/catalogrepo"
	"barbearia/internal/repository/unitrepo"
)

func TestUpdateStatus_WritesOneHistoryRowPerTransition(t *testing.T) {
	db := dbtest.NewDB(t)
	log := logger.NewNop()
	ctx := context.Background()

	units := unitrepo.NewUnitRepository(db, 5*time.Second, log)
	accounts := accountrepo.NewAccountRepository(db, 5*time.Second, log)
	catalog := catalogrepo.NewCatalogRepository(db, 5*time.Second, log)
	repo := appointmentrepo.NewAppointmentRepository(db, 5*time.Second, log)

	unit, err := units.Create(ctx, domain.Unit{Name: "Centro", Address: "Rua A, 10", Active: true})
	require.NoError(t, err)

	client, err := accounts.Create(ctx, domain.Account{
		Kind: domain.KindClient, Name: "Ana", CPF: "52998224725", Phone: "5511999990000", PasswordHash: "h",
	})
	require.NoError(t, err)
	commission := decimal.NewFromInt(40)
	barber, err := accounts.Create(ctx, domain.Account{
		Kind: domain.KindBarber, Name: "Beto", CPF: "11144477735", Phone: "5511988880000", PasswordHash: "h",
		UnitID: &unit.ID, CommissionPercent: &commission,
	})
	require.NoError(t, err)

	svc, err := catalog.CreateService(ctx, domain.Service{
		Name: "Corte", Price: decimal.NewFromInt(40), DurationMinutes: 30, UnitID: unit.ID, Active: true,
	})
	require.NoError(t, err)

	a, err := repo.Create(ctx, domain.Appointment{
		ClientID:  client.ID,
		BarberID:  barber.ID,
		ServiceID: svc.ID,
		UnitID:    unit.ID,
		Date:      "2024-06-10",
		StartTime: "14:00",
		EndTime:   "14:30",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduled, a.Status)

	now := time.Now()
	h, err := repo.UpdateStatus(ctx, a.ID, domain.StatusConfirmed, now)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduled, h.PreviousStatus)

	_, err = repo.UpdateStatus(ctx, a.ID, domain.StatusConfirmed, now)
	assert.Error(t, err, "mesmo status não gera histórico")

	_, err = repo.UpdateStatus(ctx, a.ID, domain.StatusCompleted, now.Add(time.Minute))
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, a.ID, domain.StatusCanceled, now.Add(2*time.Minute))
	assert.Error(t, err, "status final não muda")

	hist, err := repo.History(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, domain.StatusConfirmed, hist[0].NewStatus)
	assert.Equal(t, domain.StatusConfirmed, hist[1].PreviousStatus)
	assert.Equal(t, domain.StatusCompleted, hist[1].NewStatus)

	detail, err := repo.GetDetail(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, detail.Status)
	assert.Equal(t, "5511988880000", detail.BarberPhone)
}
