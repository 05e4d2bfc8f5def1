package sale_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"barbearia/internal/api/sale"
	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/logger"
	"barbearia/internal/pkg/middleware"
)

type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) Create(ctx context.Context, s domain.Session, in domain.SaleInput) (domain.SaleResult, error) {
	args := m.Called(ctx, s, in)
	return args.Get(0).(domain.SaleResult), args.Error(1)
}

func (m *MockSaleService) List(ctx context.Context, s domain.Session, f domain.SaleFilter) ([]domain.Sale, error) {
	args := m.Called(ctx, s, f)
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleService) Get(ctx context.Context, s domain.Session, id string) (domain.Sale, error) {
	args := m.Called(ctx, s, id)
	return args.Get(0).(domain.Sale), args.Error(1)
}

var staff = domain.Session{AccountID: "u1", CPF: "52998224725", Kind: domain.KindStaff, Role: domain.RoleEmployee}

const saleBody = `{"unidade_id":"8a109f0c-1c2e-4c1a-9a57-2b1f0e6d4f3e",
  "itens":[{"produto_id":"4f3e9a57-2b1f-4e6d-8a10-9f0c1c2e5c1a","quantidade":2}],
  "forma_pagamento":"pix"}`

func post(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/vendas", strings.NewReader(body))
	return req.WithContext(middleware.WithSession(req.Context(), staff))
}

func TestCreateSaleHandler_Success(t *testing.T) {
	svc := new(MockSaleService)
	h := sale.NewHandler(svc, logger.NewNop())
	svc.On("Create", mock.Anything, staff, mock.MatchedBy(func(in domain.SaleInput) bool {
		return len(in.Items) == 1 && in.Items[0].Quantity == 2 && in.PaymentMethod != nil && *in.PaymentMethod == "pix"
	})).Return(domain.SaleResult{ID: "v1", Total: decimal.RequireFromString("71.80")}, nil)

	rec := httptest.NewRecorder()
	h.CreateSaleHandler(rec, post(saleBody))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "v1", got["id"])
	assert.Equal(t, "71.8", got["total"])
	svc.AssertExpectations(t)
}

func TestCreateSaleHandler_NoItems(t *testing.T) {
	svc := new(MockSaleService)
	h := sale.NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.CreateSaleHandler(rec, post(`{"unidade_id":"8a109f0c-1c2e-4c1a-9a57-2b1f0e6d4f3e","itens":[]}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateSaleHandler_InsufficientStock(t *testing.T) {
	svc := new(MockSaleService)
	h := sale.NewHandler(svc, logger.NewNop())
	svc.On("Create", mock.Anything, staff, mock.Anything).
		Return(domain.SaleResult{}, apperror.NewInsufficientStockError("4f3e9a57-2b1f-4e6d-8a10-9f0c1c2e5c1a"))

	rec := httptest.NewRecorder()
	h.CreateSaleHandler(rec, post(saleBody))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Category)
}
