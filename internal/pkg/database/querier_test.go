package database

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	apperror "barbearia/internal/errors"
)

func TestFilter_NumbersPlaceholdersInOrder(t *testing.T) {
	var f Filter
	assert.Equal(t, "", f.Where())

	f.Add("unidade_id = ?", "u-1")
	f.AddRaw("ativo = TRUE")
	f.Add("cliente_id = ?", "c-1")
	limit := f.Arg(50)

	assert.Equal(t, " WHERE unidade_id = $1 AND ativo = TRUE AND cliente_id = $2", f.Where())
	assert.Equal(t, "$3", limit)
	assert.Len(t, f.Args(), 3)
}

func TestFilter_BetweenNeedsTwoAdds(t *testing.T) {
	var f Filter
	f.Add("criado_em::date >= ?", "2025-01-01")
	f.Add("criado_em::date <= ?", "2025-01-31")
	assert.Equal(t, " WHERE criado_em::date >= $1 AND criado_em::date <= $2", f.Where())
}

func TestMapError(t *testing.T) {
	status := func(err error) int {
		s, _, _ := apperror.MapToHTTPStatus(err)
		return s
	}

	assert.Nil(t, MapError("x", nil))

	dup := MapError("x", &pq.Error{Code: "23505", Constraint: "clientes_cpf_key"})
	assert.Equal(t, 400, status(dup))
	assert.Contains(t, dup.Error(), "CPF já cadastrado")

	fk := MapError("x", &pq.Error{Code: "23503"})
	_, category, _ := apperror.MapToHTTPStatus(fk)
	assert.Equal(t, "VALIDATION_ERROR", category)

	malformed := MapError("x", &pq.Error{Code: "22P02"})
	assert.Equal(t, 400, status(malformed))

	other := MapError("Falha ao salvar", errors.New("connection reset"))
	assert.Equal(t, 500, status(other))

	typed := apperror.NewNotFoundError("x")
	assert.Same(t, typed, MapError("y", typed))
}
