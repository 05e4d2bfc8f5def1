package respond

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
)

// PathID lê o segmento {name} da rota e exige um UUID.
// Identificador malformado vira 404, como um registro inexistente.
func PathID(r *http.Request, name string) (string, error) {
	raw := r.PathValue(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", apperror.NewNotFoundError("Registro não encontrado.")
	}
	return id.String(), nil
}

// QueryBool interpreta ?name=true|false. Ausente devolve nil.
func QueryBool(r *http.Request, name string) (*bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperror.NewValidationError("O parâmetro " + name + " deve ser true ou false.")
	}
	return &v, nil
}

// QueryInt interpreta ?name=N (inteiro não negativo). Ausente devolve 0.
func QueryInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, apperror.NewValidationError("O parâmetro " + name + " deve ser um número inteiro positivo.")
	}
	return v, nil
}

// Query devolve o valor do parâmetro sem espaços nas pontas.
func Query(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// QueryDate lê ?name=AAAA-MM-DD. Ausente devolve "".
func QueryDate(r *http.Request, name string) (string, error) {
	raw := Query(r, name)
	if raw == "" {
		return "", nil
	}
	if _, err := time.Parse(domain.DateLayout, raw); err != nil {
		return "", apperror.NewValidationError("O parâmetro " + name + " deve estar no formato AAAA-MM-DD.")
	}
	return raw, nil
}
