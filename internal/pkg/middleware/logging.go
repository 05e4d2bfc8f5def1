package middleware

import (
	"fmt"
	"net/http"
	"time"

	"barbearia/internal/api/respond"
	apperror "barbearia/internal/errors"
	"barbearia/internal/pkg/logger"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestLogger registra método, caminho, status e duração de cada requisição
// e converte panics em 500 padronizado.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			defer func() {
				if p := recover(); p != nil {
					log.Error("Panic ao processar requisição", fmt.Errorf("panic: %v", p))
					respond.Error(rec, r, log, apperror.NewInternalError("Falha inesperada.", nil))
				}
				log.Info("Requisição concluída", map[string]interface{}{
					"method":      r.Method,
					"path":        r.URL.Path,
					"status":      rec.status,
					"duration_ms": time.Since(start).Milliseconds(),
				})
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
