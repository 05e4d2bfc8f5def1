// Package respond concentra o que antes cada handler repetia em handleServiceResponse:
// serialização JSON, tradução de erros de serviço em status HTTP e decodificação validada.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"barbearia/internal/domain"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/logger"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// maxBodyBytes limita o corpo das requisições; fotos em base64 cabem folgadamente.
const maxBodyBytes = 8 << 20

// Write envia data com successStatus quando err é nil; caso contrário traduz err
// via apperror.MapToHTTPStatus para {code, category, message}.
func Write(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	if err == nil {
		JSON(w, log, successStatus, data)
		return
	}
	Error(w, r, log, err)
}

// JSON serializa data com o status informado. data nil gera corpo vazio.
func JSON(w http.ResponseWriter, log logger.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("Falha ao codificar JSON de resposta", err)
	}
}

// Error escreve a resposta padronizada de erro.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		log.Error(fmt.Sprintf("Erro de Servidor: %s %s", r.Method, r.URL.Path), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
		})
	}

	JSON(w, log, status, domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
}

// Decode lê o corpo JSON em dst e aplica as tags `validate`.
// Erros de formato e de validação viram apperror.ValidationError.
func Decode(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperror.NewValidationError("Corpo da requisição vazio.")
		}
		return apperror.NewValidationError("Payload JSON inválido.")
	}
	return Validate(dst)
}

// Validate aplica as regras `validate` a uma struct já preenchida.
func Validate(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return apperror.NewValidationError(describe(verrs))
		}
		return apperror.NewValidationError("Payload inválido.")
	}
	return nil
}

func describe(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("o campo %s é obrigatório", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("o campo %s deve ser um de: %s", field, fe.Param()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("o campo %s deve ser maior que %s", field, fe.Param()))
		case "gte", "min":
			msgs = append(msgs, fmt.Sprintf("o campo %s deve ser no mínimo %s", field, fe.Param()))
		case "lte", "max":
			msgs = append(msgs, fmt.Sprintf("o campo %s deve ser no máximo %s", field, fe.Param()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("o campo %s deve ser um e-mail válido", field))
		case "uuid":
			msgs = append(msgs, fmt.Sprintf("o campo %s deve ser um identificador válido", field))
		case "datetime":
			msgs = append(msgs, fmt.Sprintf("o campo %s deve seguir o formato %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("o campo %s é inválido", field))
		}
	}
	return strings.Join(msgs, "; ")
}

func init() {
	// Mensagens usam o nome da tag json (ex.: "unidade_id" em vez de "UnitID").
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
}
