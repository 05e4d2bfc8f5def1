package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"barbearia/internal/api/respond"
	"barbearia/internal/domain"
	"barbearia/internal/pkg/cache"
	"barbearia/internal/pkg/logger"
)

// RateLimiter limita requisições por IP numa janela fixa usando um contador no Redis.
// Se o Redis falhar a requisição segue (fail-open) para não derrubar o login.
func RateLimiter(client cache.Client, log logger.Logger, limit int, window time.Duration, timeout time.Duration) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + r.URL.Path + ":" + ip

			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			count, err := client.Incr(ctx, key, window)
			if err != nil {
				log.Warn("Rate limiter indisponível, requisição liberada.", map[string]interface{}{"erro": err.Error()})
				next.ServeHTTP(w, r)
				return
			}

			remaining := int64(limit) - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(limit) {
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				respond.JSON(w, log, http.StatusTooManyRequests, domain.ErrorResponse{
					Code:     http.StatusTooManyRequests,
					Category: "RATE_LIMITED",
					Message:  "Muitas requisições. Tente novamente mais tarde.",
				})
				return
			}

			next.ServeHTTP(w, r)
		}
	}
}
