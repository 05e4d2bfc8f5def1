// Package identity localiza a conta dona de um CPF entre as três categorias.
package identity

import (
	"context"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
)

// AccountFinder é o contrato mínimo da camada de persistência usado pelo Resolver.
type AccountFinder interface {
	FindActiveByCPF(ctx context.Context, kind domain.AccountKind, cpf string) (domain.Account, error)
}

// Resolver percorre domain.ProbeOrder (equipe, barbeiro, cliente) e devolve a primeira conta ativa encontrada.
type Resolver struct {
	finder AccountFinder
}

func NewResolver(finder AccountFinder) *Resolver {
	return &Resolver{finder: finder}
}

// Resolve espera o CPF já normalizado. Quando nenhuma categoria possui o CPF, retorna NotFoundError;
// qualquer outro erro interrompe a busca imediatamente.
func (r *Resolver) Resolve(ctx context.Context, cpf string) (domain.Account, error) {
	for _, kind := range domain.ProbeOrder {
		acc, err := r.finder.FindActiveByCPF(ctx, kind, cpf)
		if err == nil {
			return acc, nil
		}
		if !apperror.IsNotFound(err) {
			return domain.Account{}, err
		}
	}
	return domain.Account{}, apperror.NewNotFoundError("Nenhuma conta ativa com este CPF.")
}
