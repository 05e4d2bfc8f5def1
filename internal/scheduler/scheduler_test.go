package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"barbearia/internal/pkg/logger"
)

type MockReminders struct {
	mock.Mock
}

func (m *MockReminders) SendDailyReminders(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockReminders) SendUpcomingReminders(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestNew_RegistersBothJobs(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		loc = time.UTC
	}

	s, err := New(new(MockReminders), "0 8 * * *", "*/10 * * * *", loc, logger.NewNop())

	require.NoError(t, err)
	entries := s.cron.Entries()
	require.Len(t, entries, 2)

	from := time.Date(2025, 3, 15, 7, 59, 0, 0, loc)
	assert.Equal(t, time.Date(2025, 3, 15, 8, 0, 0, 0, loc), entries[0].Schedule.Next(from))
	assert.Equal(t, time.Date(2025, 3, 15, 8, 0, 0, 0, loc), entries[1].Schedule.Next(from))
	assert.Equal(t, time.Date(2025, 3, 15, 8, 10, 0, 0, loc), entries[1].Schedule.Next(from.Add(time.Minute)))
}

func TestNew_InvalidSpec(t *testing.T) {
	_, err := New(new(MockReminders), "todo dia às 8", "*/10 * * * *", time.UTC, logger.NewNop())
	assert.Error(t, err)
}

func TestJob_CarriesDeadlineAndSwallowsErrors(t *testing.T) {
	reminders := new(MockReminders)
	reminders.On("SendUpcomingReminders", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})).Return(0, errors.New("banco fora"))

	s, err := New(reminders, "0 8 * * *", "*/10 * * * *", time.UTC, logger.NewNop())
	require.NoError(t, err)

	assert.NotPanics(t, s.job("lembretes_30min", reminders.SendUpcomingReminders))
	reminders.AssertExpectations(t)
}
