// Package saleservice implementa o motor de vendas de balcão: valida, precifica e grava
// venda, itens, baixa de estoque e pagamento como uma unidade atômica.
package saleservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/logger"
)

// PriceReader lê o preço atual (e o estoque, para produtos) de itens ativos.
type PriceReader interface {
	ProductPrice(ctx context.Context, id string) (domain.PricedItem, error)
	ServicePrice(ctx context.Context, id string) (domain.PricedItem, error)
}

// SaleRepository grava a venda numa única transação e consulta vendas gravadas.
type SaleRepository interface {
	Commit(ctx context.Context, rec domain.SaleRecord) error
	List(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error)
	GetByID(ctx context.Context, id string) (domain.Sale, error)
}

type Service struct {
	prices PriceReader
	repo   SaleRepository
	now    func() time.Time
	logger logger.Logger
}

func NewService(prices PriceReader, repo SaleRepository, logger logger.Logger) *Service {
	return &Service{prices: prices, repo: repo, now: time.Now, logger: logger}
}

// validate roda antes de qualquer acesso ao banco.
func validate(in domain.SaleInput) error {
	if in.UnitID == "" {
		return apperror.NewValidationError("A unidade é obrigatória.")
	}
	if len(in.Items) == 0 {
		return apperror.NewValidationError("A venda precisa de pelo menos um item.")
	}
	for i, it := range in.Items {
		if it.IsProduct() == it.IsService() {
			return apperror.NewValidationError(fmt.Sprintf("Item %d: informe exatamente um entre produto_id e servico_id.", i+1))
		}
		if it.Quantity <= 0 {
			return apperror.NewValidationError(fmt.Sprintf("Item %d: a quantidade deve ser maior que zero.", i+1))
		}
	}
	if in.PaymentMethod != nil && strings.TrimSpace(*in.PaymentMethod) == "" {
		return apperror.NewValidationError("Forma de pagamento inválida.")
	}
	return nil
}

// Create registra a venda. Clientes só vendem para si mesmos.
//
// A precificação lê todos os itens antes de qualquer escrita: item inexistente ou inativo aborta com 404
// e estoque insuficiente (somando as linhas do mesmo produto) aborta com 400. A baixa definitiva é
// condicional dentro da transação, o que impede duas vendas concorrentes de passarem do saldo.
func (s *Service) Create(ctx context.Context, session domain.Session, in domain.SaleInput) (domain.SaleResult, error) {
	if err := validate(in); err != nil {
		return domain.SaleResult{}, err
	}
	if session.Kind == domain.KindClient {
		self := session.AccountID
		in.ClientID = &self
	}
	if in.ClientID != nil && *in.ClientID == "" {
		in.ClientID = nil
	}

	// 1. Precificação
	now := s.now()
	sale := domain.Sale{
		ID:        uuid.NewString(),
		ClientID:  in.ClientID,
		UnitID:    in.UnitID,
		Total:     decimal.Zero,
		CreatedAt: now,
	}

	items := make([]domain.SaleItem, 0, len(in.Items))
	requested := map[string]int{}
	for _, it := range in.Items {
		var (
			priced domain.PricedItem
			err    error
		)
		if it.IsProduct() {
			priced, err = s.prices.ProductPrice(ctx, *it.ProductID)
			if err != nil {
				return domain.SaleResult{}, err
			}
			requested[priced.ID] += it.Quantity
			if requested[priced.ID] > priced.Stock {
				s.logger.Warn("Venda recusada por estoque insuficiente.", map[string]interface{}{
					"produto_id": priced.ID, "solicitado": requested[priced.ID], "estoque": priced.Stock,
				})
				return domain.SaleResult{}, apperror.NewInsufficientStockError(priced.ID)
			}
		} else {
			priced, err = s.prices.ServicePrice(ctx, *it.ServiceID)
			if err != nil {
				return domain.SaleResult{}, err
			}
		}

		items = append(items, domain.SaleItem{
			ID:        uuid.NewString(),
			SaleID:    sale.ID,
			ProductID: it.ProductID,
			ServiceID: it.ServiceID,
			Quantity:  it.Quantity,
			UnitPrice: priced.Price,
		})
		sale.Total = sale.Total.Add(priced.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	// 2. Pagamento opcional, já quitado
	var payment *domain.Payment
	if in.PaymentMethod != nil {
		saleID := sale.ID
		paidAt := now
		payment = &domain.Payment{
			ID:     uuid.NewString(),
			SaleID: &saleID,
			Method: strings.TrimSpace(*in.PaymentMethod),
			Amount: sale.Total,
			Status: domain.PaymentPaid,
			PaidAt: &paidAt,
		}
		sale.PaymentID = &payment.ID
	}

	// 3. Gravação atômica
	if err := s.repo.Commit(ctx, domain.SaleRecord{Sale: sale, Items: items, Payment: payment}); err != nil {
		return domain.SaleResult{}, err
	}

	return domain.SaleResult{ID: sale.ID, Total: sale.Total, PaymentID: sale.PaymentID}, nil
}

// List devolve vendas; clientes veem apenas as próprias.
func (s *Service) List(ctx context.Context, session domain.Session, filter domain.SaleFilter) ([]domain.Sale, error) {
	if session.Kind == domain.KindClient {
		filter.ClientID = session.AccountID
	}
	return s.repo.List(ctx, filter)
}

// Get devolve a venda com seus itens. Venda de outro cliente responde 404.
func (s *Service) Get(ctx context.Context, session domain.Session, id string) (domain.Sale, error) {
	sale, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Sale{}, err
	}
	if session.Kind == domain.KindClient && (sale.ClientID == nil || *sale.ClientID != session.AccountID) {
		return domain.Sale{}, apperror.NewNotFoundError("Venda não encontrada.")
	}
	return sale, nil
}
