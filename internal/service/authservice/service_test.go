package authservice_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/logger"
	"barbearia/internal/service/authservice"
)

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, cpf string) (domain.Account, error) {
	args := m.Called(ctx, cpf)
	return args.Get(0).(domain.Account), args.Error(1)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByID(ctx context.Context, kind domain.AccountKind, id string) (domain.Account, error) {
	args := m.Called(ctx, kind, id)
	return args.Get(0).(domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SetPassword(ctx context.Context, kind domain.AccountKind, id, hash string) error {
	args := m.Called(ctx, kind, id, hash)
	return args.Error(0)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateToken(session domain.Session) (string, error) {
	args := m.Called(session)
	return args.String(0), args.Error(1)
}

const cpfTeste = "52998224725"

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newService(res *MockResolver, repo *MockAccountRepository, tok *MockTokenService) *authservice.Service {
	return authservice.NewService(res, repo, tok, logger.NewNop())
}

func TestLogin_EachKindGetsItsOwnSession(t *testing.T) {
	unit := "unidade-1"
	cases := []struct {
		name    string
		account domain.Account
		want    domain.Session
	}{
		{
			name:    "equipe",
			account: domain.Account{ID: "u1", Kind: domain.KindStaff, CPF: cpfTeste, Role: domain.RoleManager, UnitID: &unit},
			want:    domain.Session{AccountID: "u1", CPF: cpfTeste, Kind: domain.KindStaff, Role: domain.RoleManager, UnitID: unit},
		},
		{
			name:    "barbeiro",
			account: domain.Account{ID: "b1", Kind: domain.KindBarber, CPF: cpfTeste, UnitID: &unit},
			want:    domain.Session{AccountID: "b1", CPF: cpfTeste, Kind: domain.KindBarber, UnitID: unit},
		},
		{
			name:    "cliente",
			account: domain.Account{ID: "c1", Kind: domain.KindClient, CPF: cpfTeste},
			want:    domain.Session{AccountID: "c1", CPF: cpfTeste, Kind: domain.KindClient},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, repo, tok := new(MockResolver), new(MockAccountRepository), new(MockTokenService)
			tc.account.PasswordHash = hashOf(t, "segredo1")
			res.On("Resolve", mock.Anything, cpfTeste).Return(tc.account, nil)
			tok.On("GenerateToken", tc.want).Return("jwt-"+tc.name, nil)

			resp, err := newService(res, repo, tok).Login(context.Background(), domain.LoginRequest{CPF: "529.982.247-25", Password: "segredo1"})

			require.NoError(t, err)
			assert.Equal(t, "jwt-"+tc.name, resp.Token)
			assert.Equal(t, tc.account.ID, resp.Account.ID)
			tok.AssertExpectations(t)
		})
	}
}

func TestLogin_UnknownCPFAndWrongPasswordAreIndistinguishable(t *testing.T) {
	res, repo, tok := new(MockResolver), new(MockAccountRepository), new(MockTokenService)
	svc := newService(res, repo, tok)

	res.On("Resolve", mock.Anything, "11144477735").
		Return(domain.Account{}, apperror.NewNotFoundError("Nenhuma conta ativa com este CPF."))
	res.On("Resolve", mock.Anything, cpfTeste).
		Return(domain.Account{ID: "c1", Kind: domain.KindClient, PasswordHash: hashOf(t, "certa")}, nil)

	_, errUnknown := svc.Login(context.Background(), domain.LoginRequest{CPF: "11144477735", Password: "qualquer"})
	_, errWrong := svc.Login(context.Background(), domain.LoginRequest{CPF: cpfTeste, Password: "errada"})

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	s1, c1, m1 := apperror.MapToHTTPStatus(errUnknown)
	s2, c2, m2 := apperror.MapToHTTPStatus(errWrong)
	assert.Equal(t, http.StatusUnauthorized, s1)
	assert.Equal(t, []string{c1, m1}, []string{c2, m2})
	assert.Equal(t, s1, s2)
	tok.AssertNotCalled(t, "GenerateToken", mock.Anything)
}

func TestLogin_MalformedCPF(t *testing.T) {
	res, repo, tok := new(MockResolver), new(MockAccountRepository), new(MockTokenService)

	_, err := newService(res, repo, tok).Login(context.Background(), domain.LoginRequest{CPF: "111.111.111-11", Password: "x"})

	var validationErr *apperror.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	res.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestLogin_ResolverDBErrorPropagates(t *testing.T) {
	res, repo, tok := new(MockResolver), new(MockAccountRepository), new(MockTokenService)
	dbErr := apperror.NewDBError("Falha ao buscar conta", errors.New("timeout"))
	res.On("Resolve", mock.Anything, cpfTeste).Return(domain.Account{}, dbErr)

	_, err := newService(res, repo, tok).Login(context.Background(), domain.LoginRequest{CPF: cpfTeste, Password: "x"})

	status, _, _ := apperror.MapToHTTPStatus(err)
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestChangePassword_Success(t *testing.T) {
	res, repo, tok := new(MockResolver), new(MockAccountRepository), new(MockTokenService)
	session := domain.Session{AccountID: "b1", Kind: domain.KindBarber}

	repo.On("FindByID", mock.Anything, domain.KindBarber, "b1").
		Return(domain.Account{ID: "b1", Kind: domain.KindBarber, PasswordHash: hashOf(t, "antiga")}, nil)
	repo.On("SetPassword", mock.Anything, domain.KindBarber, "b1", mock.MatchedBy(func(h string) bool {
		return bcrypt.CompareHashAndPassword([]byte(h), []byte("novasenha")) == nil
	})).Return(nil)

	err := newService(res, repo, tok).ChangePassword(context.Background(), session,
		domain.PasswordChange{CurrentPassword: "antiga", NewPassword: "novasenha"})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	res, repo, tok := new(MockResolver), new(MockAccountRepository), new(MockTokenService)
	session := domain.Session{AccountID: "c1", Kind: domain.KindClient}

	repo.On("FindByID", mock.Anything, domain.KindClient, "c1").
		Return(domain.Account{ID: "c1", PasswordHash: hashOf(t, "antiga")}, nil)

	err := newService(res, repo, tok).ChangePassword(context.Background(), session,
		domain.PasswordChange{CurrentPassword: "errada", NewPassword: "novasenha"})

	var unauthorized *apperror.UnauthorizedError
	assert.True(t, errors.As(err, &unauthorized))
	repo.AssertNotCalled(t, "SetPassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestChangePassword_ShortPassword(t *testing.T) {
	res, repo, tok := new(MockResolver), new(MockAccountRepository), new(MockTokenService)

	err := newService(res, repo, tok).ChangePassword(context.Background(), domain.Session{AccountID: "c1", Kind: domain.KindClient},
		domain.PasswordChange{CurrentPassword: "antiga", NewPassword: "123"})

	var validationErr *apperror.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
}
