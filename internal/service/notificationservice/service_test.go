package notificationservice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"barbearia/internal/domain"
	"barbearia/internal/pkg/logger"
	"barbearia/internal/pkg/whatsapp"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg whatsapp.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockInbox struct {
	mock.Mock
}

func (m *MockInbox) Create(ctx context.Context, n domain.Notification) (domain.Notification, error) {
	args := m.Called(ctx, n)
	return args.Get(0).(domain.Notification), args.Error(1)
}

func (m *MockInbox) List(ctx context.Context, kind domain.AccountKind, accountID string, filter domain.NotificationFilter) ([]domain.Notification, error) {
	args := m.Called(ctx, kind, accountID, filter)
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockInbox) CountUnread(ctx context.Context, kind domain.AccountKind, accountID string) (int, error) {
	args := m.Called(ctx, kind, accountID)
	return args.Int(0), args.Error(1)
}

func (m *MockInbox) MarkRead(ctx context.Context, kind domain.AccountKind, accountID, id string) error {
	args := m.Called(ctx, kind, accountID, id)
	return args.Error(0)
}

type MockStaff struct {
	mock.Mock
}

func (m *MockStaff) ListActiveStaffByRole(ctx context.Context, role domain.StaffRole) ([]domain.Account, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]domain.Account), args.Error(1)
}

type MockAppointments struct {
	mock.Mock
}

func (m *MockAppointments) ListForDay(ctx context.Context, date string, statuses ...domain.AppointmentStatus) ([]domain.AppointmentDetail, error) {
	args := m.Called(ctx, date, statuses)
	return args.Get(0).([]domain.AppointmentDetail), args.Error(1)
}

type MockDedup struct {
	mock.Mock
}

func (m *MockDedup) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, expiration)
	return args.Bool(0), args.Error(1)
}

type fixture struct {
	sender *MockSender
	inbox  *MockInbox
	staff  *MockStaff
	svc    *Service
}

func newFixture() fixture {
	f := fixture{sender: new(MockSender), inbox: new(MockInbox), staff: new(MockStaff)}
	f.svc = NewService(f.sender, f.inbox, f.staff, time.Second, logger.NewNop())
	return f
}

func to(number string) interface{} {
	return mock.MatchedBy(func(m whatsapp.Message) bool { return m.To == number })
}

func sampleDetail() domain.AppointmentDetail {
	d := domain.AppointmentDetail{ClientPhone: "(11) 98888-7777", BarberPhone: "11 97777-6666", UnitAddress: "Rua A, 10"}
	d.ID = "ag-1"
	d.ClientID = "c1"
	d.BarberID = "b1"
	d.Date = "2025-03-15"
	d.StartTime = "10:30"
	d.ClientName = "João"
	d.BarberName = "Carlos"
	d.ServiceName = "Corte"
	d.ServicePrice = decimal.RequireFromString("45")
	d.UnitName = "Centro"
	return d
}

func TestNewAppointment_NotifiesClientAndBarber(t *testing.T) {
	f := newFixture()
	f.inbox.On("Create", mock.Anything, mock.Anything).Return(domain.Notification{}, nil)

	var clientText string
	f.sender.On("Send", mock.Anything, to("5511988887777")).Run(func(args mock.Arguments) {
		clientText = args.Get(1).(whatsapp.Message).Text
	}).Return(nil)
	f.sender.On("Send", mock.Anything, to("5511977776666")).Return(nil)

	err := f.svc.NewAppointment(context.Background(), sampleDetail())

	require.NoError(t, err)
	assert.Contains(t, clientText, "15/03/2025")
	assert.Contains(t, clientText, "R$ 45,00")
	assert.Contains(t, clientText, "Carlos")
	f.sender.AssertNumberOfCalls(t, "Send", 2)
	f.inbox.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.AccountKind == domain.KindClient && n.AccountID == "c1" && n.Type == domain.NotificationNewAppointment
	}))
	f.inbox.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.AccountKind == domain.KindBarber && n.AccountID == "b1"
	}))
}

func TestNewAppointment_DeliveryFailureIsReportedButBothAttempted(t *testing.T) {
	f := newFixture()
	f.inbox.On("Create", mock.Anything, mock.Anything).Return(domain.Notification{}, nil)
	f.sender.On("Send", mock.Anything, to("5511988887777")).Return(errors.New("provedor fora do ar"))
	f.sender.On("Send", mock.Anything, to("5511977776666")).Return(nil)

	err := f.svc.NewAppointment(context.Background(), sampleDetail())

	assert.Error(t, err)
	f.sender.AssertNumberOfCalls(t, "Send", 2)
}

func TestSend_CarriesDeadline(t *testing.T) {
	f := newFixture()
	f.sender.On("Send", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), mock.Anything).Return(nil)

	err := f.svc.RecoveryCode(context.Background(), domain.Account{Name: "Ana", Phone: "11999990000", CPF: "52998224725"}, "A1B2C3", 15*time.Minute)

	assert.NoError(t, err)
	f.sender.AssertExpectations(t)
}

func TestRecoveryCode_MessageAndMissingPhone(t *testing.T) {
	f := newFixture()
	var text string
	f.sender.On("Send", mock.Anything, to("5511999990000")).Run(func(args mock.Arguments) {
		text = args.Get(1).(whatsapp.Message).Text
	}).Return(nil)

	require.NoError(t, f.svc.RecoveryCode(context.Background(), domain.Account{Name: "Ana", Phone: "11999990000"}, "A1B2C3", 15*time.Minute))
	assert.Contains(t, text, "*A1B2C3*")
	assert.Contains(t, text, "15 minutos")

	err := f.svc.RecoveryCode(context.Background(), domain.Account{Name: "Ana"}, "A1B2C3", 15*time.Minute)
	assert.ErrorIs(t, err, whatsapp.ErrEmptyNumber)
}

func TestWelcomeBarber_BroadcastsToAdmins(t *testing.T) {
	f := newFixture()
	pct := decimal.RequireFromString("40")
	barber := domain.Account{ID: "b9", Kind: domain.KindBarber, Name: "Pedro", CPF: "52998224725", Phone: "11911112222", CommissionPercent: &pct}

	f.inbox.On("Create", mock.Anything, mock.Anything).Return(domain.Notification{}, nil)
	f.staff.On("ListActiveStaffByRole", mock.Anything, domain.RoleAdmin).Return([]domain.Account{
		{ID: "a1", Kind: domain.KindStaff, Phone: "11933334444"},
		{ID: "a2", Kind: domain.KindStaff},
	}, nil)

	var adminText string
	f.sender.On("Send", mock.Anything, to("5511911112222")).Return(nil)
	f.sender.On("Send", mock.Anything, to("5511933334444")).Run(func(args mock.Arguments) {
		adminText = args.Get(1).(whatsapp.Message).Text
	}).Return(nil)

	err := f.svc.WelcomeBarber(context.Background(), barber, "Centro")

	require.NoError(t, err)
	assert.Contains(t, adminText, "529.982.247-25")
	assert.Contains(t, adminText, "40%")
	f.sender.AssertNumberOfCalls(t, "Send", 2)
	// boas-vindas do barbeiro + um registro por admin
	f.inbox.AssertNumberOfCalls(t, "Create", 3)
}

func TestWelcomeClient_WithoutPhoneOnlyRecordsInbox(t *testing.T) {
	f := newFixture()
	f.inbox.On("Create", mock.Anything, mock.Anything).Return(domain.Notification{}, nil)

	err := f.svc.WelcomeClient(context.Background(), domain.Account{ID: "c1", Name: "Maria"})

	assert.NoError(t, err)
	f.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSendTest_EmptyPhoneIsValidationError(t *testing.T) {
	f := newFixture()
	err := f.svc.SendTest(context.Background(), domain.WebhookTest{Phone: "abc", Message: "oi"})
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "Telefone inválido"))
}

func TestList_ClampsLimit(t *testing.T) {
	f := newFixture()
	session := domain.Session{AccountID: "c1", Kind: domain.KindClient}
	f.inbox.On("List", mock.Anything, domain.KindClient, "c1", domain.NotificationFilter{Limit: maxListLimit}).
		Return([]domain.Notification{}, nil)

	_, err := f.svc.List(context.Background(), session, domain.NotificationFilter{Limit: 10000})

	assert.NoError(t, err)
	f.inbox.AssertExpectations(t)
}

func newReminders(f fixture, appts *MockAppointments, dedup DedupStore, now time.Time) *Reminders {
	r := NewReminders(f.svc, appts, dedup, time.UTC, logger.NewNop())
	r.now = func() time.Time { return now }
	return r
}

func detailAt(id, start, phone string) domain.AppointmentDetail {
	d := sampleDetail()
	d.ID = id
	d.StartTime = start
	d.ClientPhone = phone
	return d
}

func TestSendDailyReminders_SkipsClientsWithoutPhone(t *testing.T) {
	f := newFixture()
	appts := new(MockAppointments)
	now := time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)

	appts.On("ListForDay", mock.Anything, "2025-03-15", activeStatuses).Return([]domain.AppointmentDetail{
		detailAt("ag-1", "09:00", "11988887777"),
		detailAt("ag-2", "11:00", ""),
	}, nil)
	f.inbox.On("Create", mock.Anything, mock.Anything).Return(domain.Notification{}, nil)
	f.sender.On("Send", mock.Anything, mock.Anything).Return(nil)

	sent, err := newReminders(f, appts, nil, now).SendDailyReminders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	f.sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestSendUpcomingReminders_WindowAndDedup(t *testing.T) {
	f := newFixture()
	appts := new(MockAppointments)
	dedup := new(MockDedup)
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	appts.On("ListForDay", mock.Anything, "2025-03-15", activeStatuses).Return([]domain.AppointmentDetail{
		detailAt("passado", "09:50", "11988887777"),
		detailAt("proximo", "10:20", "11988887777"),
		detailAt("limite", "10:30", "11988887777"),
		detailAt("depois", "10:45", "11988887777"),
	}, nil)
	f.inbox.On("Create", mock.Anything, mock.Anything).Return(domain.Notification{}, nil)
	f.sender.On("Send", mock.Anything, mock.Anything).Return(nil)
	dedup.On("SetNX", mock.Anything, "lembrete:lembrete_30min:proximo", mock.Anything, 2*time.Hour).Return(true, nil).Once()
	dedup.On("SetNX", mock.Anything, "lembrete:lembrete_30min:limite", mock.Anything, 2*time.Hour).Return(false, nil).Once()

	sent, err := newReminders(f, appts, dedup, now).SendUpcomingReminders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	dedup.AssertExpectations(t)
	f.sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestSendUpcomingReminders_DedupFailureStillSends(t *testing.T) {
	f := newFixture()
	appts := new(MockAppointments)
	dedup := new(MockDedup)
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	appts.On("ListForDay", mock.Anything, "2025-03-15", activeStatuses).
		Return([]domain.AppointmentDetail{detailAt("proximo", "10:10", "11988887777")}, nil)
	f.inbox.On("Create", mock.Anything, mock.Anything).Return(domain.Notification{}, nil)
	f.sender.On("Send", mock.Anything, mock.Anything).Return(nil)
	dedup.On("SetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("redis fora"))

	sent, err := newReminders(f, appts, dedup, now).SendUpcomingReminders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestSendUpcomingReminders_WindowStopsAtMidnight(t *testing.T) {
	f := newFixture()
	appts := new(MockAppointments)
	now := time.Date(2025, 3, 15, 23, 45, 0, 0, time.UTC)

	appts.On("ListForDay", mock.Anything, "2025-03-15", activeStatuses).Return([]domain.AppointmentDetail{
		detailAt("tarde", "23:50", "11988887777"),
		detailAt("cedo", "00:05", "11988887777"),
	}, nil)
	f.inbox.On("Create", mock.Anything, mock.Anything).Return(domain.Notification{}, nil)
	f.sender.On("Send", mock.Anything, mock.Anything).Return(nil)

	sent, err := newReminders(f, appts, nil, now).SendUpcomingReminders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}
