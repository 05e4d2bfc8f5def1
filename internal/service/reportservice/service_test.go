package reportservice_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"barbearia/internal/domain"
	"barbearia/internal/pkg/logger"
	"barbearia/internal/service/reportservice"
)

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) SalesByDay(ctx context.Context, dr domain.DateRange) ([]domain.DailySales, error) {
	args := m.Called(ctx, dr)
	return args.Get(0).([]domain.DailySales), args.Error(1)
}

func (m *MockReportRepository) AppointmentsByStatus(ctx context.Context, dr domain.DateRange) ([]domain.AppointmentsByStatus, error) {
	args := m.Called(ctx, dr)
	return args.Get(0).([]domain.AppointmentsByStatus), args.Error(1)
}

func (m *MockReportRepository) Commissions(ctx context.Context, dr domain.DateRange) ([]domain.BarberCommission, error) {
	args := m.Called(ctx, dr)
	return args.Get(0).([]domain.BarberCommission), args.Error(1)
}

func TestSales_PassesRange(t *testing.T) {
	repo := new(MockReportRepository)
	dr := domain.DateRange{From: "2025-03-01", To: "2025-03-31"}
	repo.On("SalesByDay", mock.Anything, dr).Return([]domain.DailySales{{Date: "2025-03-02", Total: decimal.NewFromInt(120), Quantity: 3}}, nil)

	out, err := reportservice.NewService(repo, logger.NewNop()).Sales(context.Background(), dr)

	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestRangeValidation(t *testing.T) {
	repo := new(MockReportRepository)
	svc := reportservice.NewService(repo, logger.NewNop())

	_, err := svc.Appointments(context.Background(), domain.DateRange{From: "01/03/2025"})
	assert.Error(t, err)

	_, err = svc.Commissions(context.Background(), domain.DateRange{From: "2025-03-31", To: "2025-03-01"})
	assert.Error(t, err)

	repo.AssertNotCalled(t, "AppointmentsByStatus", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Commissions", mock.Anything, mock.Anything)
}

func TestCommissions_OpenRange(t *testing.T) {
	repo := new(MockReportRepository)
	repo.On("Commissions", mock.Anything, domain.DateRange{}).Return([]domain.BarberCommission{}, nil)

	_, err := reportservice.NewService(repo, logger.NewNop()).Commissions(context.Background(), domain.DateRange{})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
