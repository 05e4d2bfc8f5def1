package recoveryservice

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/logger"
)

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, cpf string) (domain.Account, error) {
	args := m.Called(ctx, cpf)
	return args.Get(0).(domain.Account), args.Error(1)
}

type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Create(ctx context.Context, t domain.RecoveryToken) (domain.RecoveryToken, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(domain.RecoveryToken), args.Error(1)
}

func (m *MockTokenRepository) Redeem(ctx context.Context, cpf, code string, now time.Time, newHash string) (domain.RecoveryToken, error) {
	args := m.Called(ctx, cpf, code, now, newHash)
	return args.Get(0).(domain.RecoveryToken), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) RecoveryCode(ctx context.Context, acc domain.Account, code string, ttl time.Duration) error {
	args := m.Called(ctx, acc, code, ttl)
	return args.Error(0)
}

const cpfTeste = "52998224725"

var fixedNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestService(res *MockResolver, repo *MockTokenRepository, notifier *MockNotifier) *Service {
	svc := NewService(res, repo, notifier, 15*time.Minute, logger.NewNop())
	svc.now = func() time.Time { return fixedNow }
	svc.random = bytes.NewReader([]byte{0xab, 0x0c, 0x1f})
	return svc
}

func TestRequestRecovery_IssuesCodeForKnownAccount(t *testing.T) {
	res, repo, notifier := new(MockResolver), new(MockTokenRepository), new(MockNotifier)
	acc := domain.Account{ID: "b1", Kind: domain.KindBarber, Name: "Carlos", Phone: "11999990000"}

	res.On("Resolve", mock.Anything, cpfTeste).Return(acc, nil)
	repo.On("Create", mock.Anything, domain.RecoveryToken{
		AccountID:   "b1",
		AccountKind: domain.KindBarber,
		CPF:         cpfTeste,
		Code:        "AB0C1F",
		ExpiresAt:   fixedNow.Add(15 * time.Minute),
	}).Return(domain.RecoveryToken{}, nil)
	notifier.On("RecoveryCode", mock.Anything, acc, "AB0C1F", 15*time.Minute).Return(nil)

	err := newTestService(res, repo, notifier).RequestRecovery(context.Background(), domain.RecoveryRequest{CPF: "529.982.247-25"})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestRequestRecovery_UnknownCPFLooksLikeSuccess(t *testing.T) {
	res, repo, notifier := new(MockResolver), new(MockTokenRepository), new(MockNotifier)
	res.On("Resolve", mock.Anything, cpfTeste).Return(domain.Account{}, apperror.NewNotFoundError("Nenhuma conta ativa com este CPF."))

	err := newTestService(res, repo, notifier).RequestRecovery(context.Background(), domain.RecoveryRequest{CPF: cpfTeste})

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "RecoveryCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestRecovery_NoPhoneOnFile(t *testing.T) {
	res, repo, notifier := new(MockResolver), new(MockTokenRepository), new(MockNotifier)
	res.On("Resolve", mock.Anything, cpfTeste).Return(domain.Account{ID: "c1", Kind: domain.KindClient}, nil)

	err := newTestService(res, repo, notifier).RequestRecovery(context.Background(), domain.RecoveryRequest{CPF: cpfTeste})

	status, _, msg := apperror.MapToHTTPStatus(err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, msg, "telefone")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRequestRecovery_DeliveryFailureIsNotSurfaced(t *testing.T) {
	res, repo, notifier := new(MockResolver), new(MockTokenRepository), new(MockNotifier)
	res.On("Resolve", mock.Anything, cpfTeste).Return(domain.Account{ID: "c1", Kind: domain.KindClient, Phone: "11988887777"}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.RecoveryToken{}, nil)
	notifier.On("RecoveryCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("timeout"))

	err := newTestService(res, repo, notifier).RequestRecovery(context.Background(), domain.RecoveryRequest{CPF: cpfTeste})

	assert.NoError(t, err)
}

func TestRequestRecovery_InvalidCPF(t *testing.T) {
	res, repo, notifier := new(MockResolver), new(MockTokenRepository), new(MockNotifier)

	err := newTestService(res, repo, notifier).RequestRecovery(context.Background(), domain.RecoveryRequest{CPF: "123"})

	var validationErr *apperror.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestNewCode_IsSixUpperHexChars(t *testing.T) {
	svc := NewService(nil, nil, nil, time.Minute, logger.NewNop())
	for i := 0; i < 20; i++ {
		code, err := svc.newCode()
		require.NoError(t, err)
		assert.Regexp(t, `^[0-9A-F]{6}$`, code)
	}
}

func TestConfirmRecovery_UppercasesCodeAndHashesPassword(t *testing.T) {
	res, repo, notifier := new(MockResolver), new(MockTokenRepository), new(MockNotifier)
	repo.On("Redeem", mock.Anything, cpfTeste, "AB0C1F", fixedNow, mock.MatchedBy(func(h string) bool {
		return bcrypt.CompareHashAndPassword([]byte(h), []byte("novasenha")) == nil
	})).Return(domain.RecoveryToken{AccountID: "c1", AccountKind: domain.KindClient, Used: true}, nil)

	err := newTestService(res, repo, notifier).ConfirmRecovery(context.Background(),
		domain.RecoveryConfirm{CPF: cpfTeste, Code: " ab0c1f ", NewPassword: "novasenha"})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestConfirmRecovery_InvalidOrExpired(t *testing.T) {
	res, repo, notifier := new(MockResolver), new(MockTokenRepository), new(MockNotifier)
	repo.On("Redeem", mock.Anything, cpfTeste, "AB0C1F", fixedNow, mock.Anything).
		Return(domain.RecoveryToken{}, apperror.NewInvalidOrExpiredTokenError())

	err := newTestService(res, repo, notifier).ConfirmRecovery(context.Background(),
		domain.RecoveryConfirm{CPF: cpfTeste, Code: "AB0C1F", NewPassword: "novasenha"})

	status, _, msg := apperror.MapToHTTPStatus(err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, msg, "Token inválido ou expirado")
}

func TestConfirmRecovery_ShortPasswordNeverReachesStorage(t *testing.T) {
	res, repo, notifier := new(MockResolver), new(MockTokenRepository), new(MockNotifier)

	err := newTestService(res, repo, notifier).ConfirmRecovery(context.Background(),
		domain.RecoveryConfirm{CPF: cpfTeste, Code: "AB0C1F", NewPassword: "123"})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Redeem", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
