package router_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"barbearia/internal/api/account"
	"barbearia/internal/api/appointment"
	"barbearia/internal/api/auth"
	"barbearia/internal/api/catalog"
	"barbearia/internal/api/notification"
	"barbearia/internal/api/payment"
	"barbearia/internal/api/report"
	"barbearia/internal/api/router"
	"barbearia/internal/api/sale"
	"barbearia/internal/api/unit"
	"barbearia/internal/domain"
	"barbearia/internal/pkg/logger"
	"barbearia/internal/pkg/token"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Incr(ctx context.Context, key string, exp time.Duration) (int64, error) {
	args := m.Called(ctx, key, exp)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCache) SetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}
func (m *MockCache) Close() error { return nil }

var tokens = token.NewService("segredo", time.Hour)

// Os serviços ficam nil: os casos abaixo nunca chegam à camada de serviço.
func newRouter(c *MockCache) http.Handler {
	log := logger.NewNop()
	return router.NewRouter(router.Handlers{
		Auth:         auth.NewHandler(nil, nil, log),
		Account:      account.NewHandler(nil, log),
		Unit:         unit.NewHandler(nil, log),
		Catalog:      catalog.NewHandler(nil, log),
		Appointment:  appointment.NewHandler(nil, log),
		Payment:      payment.NewHandler(nil, log),
		Sale:         sale.NewHandler(nil, log),
		Notification: notification.NewHandler(nil, log),
		Report:       report.NewHandler(nil, log),
	}, tokens, c, router.RateLimit{MaxRequests: 5, Period: time.Minute, CacheTimeout: time.Second}, log)
}

func bearer(t *testing.T, s domain.Session) string {
	t.Helper()
	tk, err := tokens.GenerateToken(s)
	require.NoError(t, err)
	return "Bearer " + tk
}

func TestPing(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(new(MockCache)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestSwaggerDoc(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(new(MockCache)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/agendamentos")
}

func TestProtectedRoute_WithoutToken(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(new(MockCache)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/servicos", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestManagerRoute_BarberForbidden(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/clientes", nil)
	req.Header.Set("Authorization", bearer(t, domain.Session{AccountID: "b1", CPF: "52998224725", Kind: domain.KindBarber}))

	rec := httptest.NewRecorder()
	newRouter(new(MockCache)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRoute_ManagerForbidden(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/usuarios/registrar", strings.NewReader(`{}`))
	req.Header.Set("Authorization", bearer(t, domain.Session{
		AccountID: "u1", CPF: "52998224725", Kind: domain.KindStaff, Role: domain.RoleManager,
	}))

	rec := httptest.NewRecorder()
	newRouter(new(MockCache)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestVerify_WithToken(t *testing.T) {
	session := domain.Session{AccountID: "c1", CPF: "52998224725", Kind: domain.KindClient}
	req := httptest.NewRequest(http.MethodGet, "/api/auth/verificar", nil)
	req.Header.Set("Authorization", bearer(t, session))

	rec := httptest.NewRecorder()
	newRouter(new(MockCache)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body auth.VerifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, session.AccountID, body.Session.AccountID)
}

func TestClientRegistration_IsPublic(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(new(MockCache)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/clientes/registrar", strings.NewReader(`{"nome":"Ana"}`)))

	// Chega ao handler sem token: a validação do corpo responde antes do serviço.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_RateLimited(t *testing.T) {
	c := new(MockCache)
	c.On("Incr", mock.Anything, mock.MatchedBy(func(k string) bool {
		return strings.HasPrefix(k, "rate-limit:/api/auth/login:")
	}), time.Minute).Return(int64(6), nil)

	rec := httptest.NewRecorder()
	newRouter(c).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"cpf":"1","senha":"x"}`)))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	c.AssertExpectations(t)
}

func TestRecovery_RateLimiterFailsOpen(t *testing.T) {
	c := new(MockCache)
	c.On("Incr", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), errors.New("redis fora"))

	rec := httptest.NewRecorder()
	newRouter(c).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/recuperar-senha/solicitar", strings.NewReader(`{}`)))

	// O limitador libera e o handler rejeita o CPF ausente.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownMethod(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(new(MockCache)).ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/agendamentos", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
