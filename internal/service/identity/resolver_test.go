package identity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/service/identity"
)

type MockFinder struct {
	mock.Mock
}

func (m *MockFinder) FindActiveByCPF(ctx context.Context, kind domain.AccountKind, cpf string) (domain.Account, error) {
	args := m.Called(ctx, kind, cpf)
	return args.Get(0).(domain.Account), args.Error(1)
}

const cpfTeste = "52998224725"

func notFound() error { return apperror.NewNotFoundError("não encontrado") }

func TestResolve_StaffWinsWithoutProbingOthers(t *testing.T) {
	finder := new(MockFinder)
	finder.On("FindActiveByCPF", mock.Anything, domain.KindStaff, cpfTeste).
		Return(domain.Account{ID: "u1", Kind: domain.KindStaff}, nil)

	acc, err := identity.NewResolver(finder).Resolve(context.Background(), cpfTeste)

	assert.NoError(t, err)
	assert.Equal(t, domain.KindStaff, acc.Kind)
	finder.AssertNotCalled(t, "FindActiveByCPF", mock.Anything, domain.KindBarber, cpfTeste)
	finder.AssertNotCalled(t, "FindActiveByCPF", mock.Anything, domain.KindClient, cpfTeste)
}

func TestResolve_FallsThroughToClient(t *testing.T) {
	finder := new(MockFinder)
	finder.On("FindActiveByCPF", mock.Anything, domain.KindStaff, cpfTeste).Return(domain.Account{}, notFound())
	finder.On("FindActiveByCPF", mock.Anything, domain.KindBarber, cpfTeste).Return(domain.Account{}, notFound())
	finder.On("FindActiveByCPF", mock.Anything, domain.KindClient, cpfTeste).
		Return(domain.Account{ID: "c1", Kind: domain.KindClient}, nil)

	acc, err := identity.NewResolver(finder).Resolve(context.Background(), cpfTeste)

	assert.NoError(t, err)
	assert.Equal(t, "c1", acc.ID)
	finder.AssertExpectations(t)
}

func TestResolve_UnknownCPF(t *testing.T) {
	finder := new(MockFinder)
	finder.On("FindActiveByCPF", mock.Anything, mock.Anything, cpfTeste).Return(domain.Account{}, notFound())

	_, err := identity.NewResolver(finder).Resolve(context.Background(), cpfTeste)

	assert.True(t, apperror.IsNotFound(err))
	finder.AssertNumberOfCalls(t, "FindActiveByCPF", 3)
}

func TestResolve_DBErrorStopsProbe(t *testing.T) {
	finder := new(MockFinder)
	dbErr := apperror.NewDBError("Falha ao buscar conta", errors.New("conexão recusada"))
	finder.On("FindActiveByCPF", mock.Anything, domain.KindStaff, cpfTeste).Return(domain.Account{}, dbErr)

	_, err := identity.NewResolver(finder).Resolve(context.Background(), cpfTeste)

	assert.Equal(t, dbErr, err)
	finder.AssertNumberOfCalls(t, "FindActiveByCPF", 1)
}
