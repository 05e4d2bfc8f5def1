package accountservice_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/logger"
	"barbearia/internal/service/accountservice"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) CPFExists(ctx context.Context, cpf string) (bool, error) {
	args := m.Called(ctx, cpf)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, acc domain.Account) (domain.Account, error) {
	args := m.Called(ctx, acc)
	return args.Get(0).(domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, kind domain.AccountKind, id string) (domain.Account, error) {
	args := m.Called(ctx, kind, id)
	return args.Get(0).(domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateProfile(ctx context.Context, kind domain.AccountKind, id string, p domain.ProfileUpdate) error {
	return m.Called(ctx, kind, id, p).Error(0)
}

func (m *MockAccountRepository) Deactivate(ctx context.Context, kind domain.AccountKind, id string) error {
	return m.Called(ctx, kind, id).Error(0)
}

func (m *MockAccountRepository) List(ctx context.Context, kind domain.AccountKind, filter domain.AccountFilter) ([]domain.Account, error) {
	args := m.Called(ctx, kind, filter)
	return args.Get(0).([]domain.Account), args.Error(1)
}

type MockUnitReader struct {
	mock.Mock
}

func (m *MockUnitReader) GetByID(ctx context.Context, id string) (domain.Unit, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Unit), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) WelcomeClient(ctx context.Context, acc domain.Account) error {
	return m.Called(ctx, acc).Error(0)
}

func (m *MockNotifier) WelcomeBarber(ctx context.Context, acc domain.Account, unitName string) error {
	return m.Called(ctx, acc, unitName).Error(0)
}

const (
	cpfTeste = "52998224725"
	unitID   = "7d1b6a52-0c55-4c1e-9d0e-2d7f3f1f9a10"
)

type fixture struct {
	repo     *MockAccountRepository
	units    *MockUnitReader
	notifier *MockNotifier
	svc      *accountservice.Service
}

func newFixture() fixture {
	f := fixture{repo: new(MockAccountRepository), units: new(MockUnitReader), notifier: new(MockNotifier)}
	f.svc = accountservice.NewService(f.repo, f.units, f.notifier, logger.NewNop())
	return f
}

func TestRegisterClient_NormalizesCPFAndHashesPassword(t *testing.T) {
	f := newFixture()
	f.repo.On("CPFExists", mock.Anything, cpfTeste).Return(false, nil)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(a domain.Account) bool {
		return a.Kind == domain.KindClient && a.CPF == cpfTeste &&
			bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("segredo1")) == nil
	})).Return(domain.Account{ID: "c1", Kind: domain.KindClient, CPF: cpfTeste}, nil)
	f.notifier.On("WelcomeClient", mock.Anything, mock.Anything).Return(nil)

	acc, err := f.svc.RegisterClient(context.Background(), domain.ClientRegistration{
		Name: " Maria ", CPF: "529.982.247-25", Password: "segredo1",
	})

	require.NoError(t, err)
	assert.Equal(t, "c1", acc.ID)
	f.repo.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

func TestRegisterClient_DuplicateCPFAcrossKinds(t *testing.T) {
	f := newFixture()
	f.repo.On("CPFExists", mock.Anything, cpfTeste).Return(true, nil)

	_, err := f.svc.RegisterClient(context.Background(), domain.ClientRegistration{Name: "Maria", CPF: cpfTeste, Password: "segredo1"})

	var conflict *apperror.ConflictError
	assert.True(t, errors.As(err, &conflict))
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterClient_WelcomeFailureDoesNotFailRegistration(t *testing.T) {
	f := newFixture()
	f.repo.On("CPFExists", mock.Anything, cpfTeste).Return(false, nil)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(domain.Account{ID: "c1"}, nil)
	f.notifier.On("WelcomeClient", mock.Anything, mock.Anything).Return(errors.New("whatsapp fora"))

	_, err := f.svc.RegisterClient(context.Background(), domain.ClientRegistration{Name: "Maria", CPF: cpfTeste, Password: "segredo1"})

	assert.NoError(t, err)
}

func TestRegisterClient_InvalidCPFOrShortPassword(t *testing.T) {
	f := newFixture()

	_, err := f.svc.RegisterClient(context.Background(), domain.ClientRegistration{Name: "Maria", CPF: "12345678900", Password: "segredo1"})
	status, _, _ := apperror.MapToHTTPStatus(err)
	assert.Equal(t, http.StatusBadRequest, status)

	_, err = f.svc.RegisterClient(context.Background(), domain.ClientRegistration{Name: "Maria", CPF: cpfTeste, Password: "123"})
	status, _, _ = apperror.MapToHTTPStatus(err)
	assert.Equal(t, http.StatusBadRequest, status)

	f.repo.AssertNotCalled(t, "CPFExists", mock.Anything, mock.Anything)
}

func TestRegisterBarber_CommissionOutOfRange(t *testing.T) {
	f := newFixture()
	for _, pct := range []string{"-1", "100.01"} {
		_, err := f.svc.RegisterBarber(context.Background(), domain.BarberRegistration{
			Name: "Pedro", CPF: cpfTeste, Password: "segredo1", UnitID: unitID,
			CommissionPercent: decimal.RequireFromString(pct),
		})
		var validation *apperror.ValidationError
		assert.True(t, errors.As(err, &validation), pct)
	}
	f.units.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestRegisterBarber_NotifiesWithUnitName(t *testing.T) {
	f := newFixture()
	f.units.On("GetByID", mock.Anything, unitID).Return(domain.Unit{ID: unitID, Name: "Centro"}, nil)
	f.repo.On("CPFExists", mock.Anything, cpfTeste).Return(false, nil)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(a domain.Account) bool {
		return a.Kind == domain.KindBarber && a.UnitID != nil && *a.UnitID == unitID &&
			a.CommissionPercent != nil && a.CommissionPercent.Equal(decimal.NewFromInt(40))
	})).Return(domain.Account{ID: "b1", Kind: domain.KindBarber}, nil)
	f.notifier.On("WelcomeBarber", mock.Anything, domain.Account{ID: "b1", Kind: domain.KindBarber}, "Centro").Return(nil)

	_, err := f.svc.RegisterBarber(context.Background(), domain.BarberRegistration{
		Name: "Pedro", CPF: cpfTeste, Password: "segredo1", UnitID: unitID,
		CommissionPercent: decimal.NewFromInt(40),
	})

	require.NoError(t, err)
	f.notifier.AssertExpectations(t)
}

func TestRegisterBarber_UnknownUnit(t *testing.T) {
	f := newFixture()
	f.units.On("GetByID", mock.Anything, unitID).Return(domain.Unit{}, apperror.NewNotFoundError("Unidade não encontrada."))

	_, err := f.svc.RegisterBarber(context.Background(), domain.BarberRegistration{
		Name: "Pedro", CPF: cpfTeste, Password: "segredo1", UnitID: unitID,
	})

	status, _, _ := apperror.MapToHTTPStatus(err)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRegisterStaff_EmptyUnitBecomesNil(t *testing.T) {
	f := newFixture()
	empty := ""
	f.repo.On("CPFExists", mock.Anything, cpfTeste).Return(false, nil)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(a domain.Account) bool {
		return a.Kind == domain.KindStaff && a.Role == domain.RoleManager && a.UnitID == nil
	})).Return(domain.Account{ID: "u1"}, nil)

	_, err := f.svc.RegisterStaff(context.Background(), domain.StaffRegistration{
		Name: "Gerente", CPF: cpfTeste, Password: "segredo1", Role: domain.RoleManager, UnitID: &empty,
	})

	assert.NoError(t, err)
	f.repo.AssertExpectations(t)
}

func TestUpdateProfile_PhotoOnlyForBarbers(t *testing.T) {
	f := newFixture()
	session := domain.Session{AccountID: "c1", Kind: domain.KindClient}
	f.repo.On("UpdateProfile", mock.Anything, domain.KindClient, "c1", domain.ProfileUpdate{Name: "Maria", Phone: "11999990000"}).Return(nil)
	f.repo.On("FindByID", mock.Anything, domain.KindClient, "c1").Return(domain.Account{ID: "c1", Name: "Maria"}, nil)

	acc, err := f.svc.UpdateProfile(context.Background(), session, domain.ProfileUpdate{Name: "Maria", Phone: "11999990000", PhotoBase64: "abc"})

	require.NoError(t, err)
	assert.Equal(t, "Maria", acc.Name)
	f.repo.AssertExpectations(t)
}

func TestDeactivate_RejectsSelfAndClients(t *testing.T) {
	f := newFixture()
	admin := domain.Session{AccountID: "u1", Kind: domain.KindStaff, Role: domain.RoleAdmin}

	assert.Error(t, f.svc.Deactivate(context.Background(), admin, domain.KindStaff, "u1"))
	assert.Error(t, f.svc.Deactivate(context.Background(), admin, domain.KindClient, "c1"))

	f.repo.On("Deactivate", mock.Anything, domain.KindBarber, "b1").Return(nil)
	assert.NoError(t, f.svc.Deactivate(context.Background(), admin, domain.KindBarber, "b1"))
	f.repo.AssertNumberOfCalls(t, "Deactivate", 1)
}

func TestListBarbers_NonManagementSeesOnlyActive(t *testing.T) {
	f := newFixture()
	active := true
	f.repo.On("List", mock.Anything, domain.KindBarber, domain.AccountFilter{UnitID: unitID, Active: &active}).
		Return([]domain.Account{{ID: "b1"}}, nil)

	list, err := f.svc.ListBarbers(context.Background(), domain.Session{Kind: domain.KindClient}, domain.AccountFilter{UnitID: unitID})

	require.NoError(t, err)
	assert.Len(t, list, 1)
	f.repo.AssertExpectations(t)
}

func TestGetBarber_InactiveHiddenFromClients(t *testing.T) {
	f := newFixture()
	f.repo.On("FindByID", mock.Anything, domain.KindBarber, "b1").Return(domain.Account{ID: "b1", Active: false}, nil)

	_, err := f.svc.GetBarber(context.Background(), domain.Session{Kind: domain.KindClient}, "b1")
	assert.True(t, apperror.IsNotFound(err))

	acc, err := f.svc.GetBarber(context.Background(), domain.Session{Kind: domain.KindStaff, Role: domain.RoleAdmin}, "b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", acc.ID)
}
