package router

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "barbearia/docs"
	"barbearia/internal/api/account"
	"barbearia/internal/api/appointment"
	"barbearia/internal/api/auth"
	"barbearia/internal/api/catalog"
	"barbearia/internal/api/notification"
	"barbearia/internal/api/payment"
	"barbearia/internal/api/report"
	"barbearia/internal/api/sale"
	"barbearia/internal/api/unit"
	"barbearia/internal/domain"
	"barbearia/internal/pkg/cache"
	"barbearia/internal/pkg/logger"
	"barbearia/internal/pkg/middleware"
)

// Handlers reúne os handlers já inicializados por injeção de dependências.
type Handlers struct {
	Auth         *auth.Handler
	Account      *account.Handler
	Unit         *unit.Handler
	Catalog      *catalog.Handler
	Appointment  *appointment.Handler
	Payment      *payment.Handler
	Sale         *sale.Handler
	Notification *notification.Handler
	Report       *report.Handler
}

// RateLimit configura o limitador das rotas públicas de autenticação.
type RateLimit struct {
	MaxRequests  int
	Period       time.Duration
	CacheTimeout time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(h Handlers, tokenSvc middleware.TokenService, cacheClient cache.Client, rl RateLimit, log logger.Logger) http.Handler {
	mux := http.NewServeMux()

	authMW := middleware.NewAuthMiddleware(tokenSvc, log)
	limited := middleware.RateLimiter(cacheClient, log, rl.MaxRequests, rl.Period, rl.CacheTimeout)
	admin := middleware.RequireRoles(log, domain.RoleAdmin)
	management := middleware.RequireRoles(log, domain.RoleAdmin, domain.RoleManager)

	authed := func(f http.HandlerFunc) http.HandlerFunc { return middleware.Chain(f, authMW) }
	adminOnly := func(f http.HandlerFunc) http.HandlerFunc { return middleware.Chain(f, authMW, admin) }
	managers := func(f http.HandlerFunc) http.HandlerFunc { return middleware.Chain(f, authMW, management) }

	// --- 1. Health Check e documentação ---
	mux.HandleFunc("GET /ping", PingHandler)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// --- 2. Autenticação ---
	mux.HandleFunc("POST /api/auth/login", middleware.Chain(h.Auth.LoginHandler, limited))
	mux.HandleFunc("GET /api/auth/verificar", authed(h.Auth.VerifyHandler))
	mux.HandleFunc("PUT /api/auth/alterar-senha", authed(h.Auth.ChangePasswordHandler))
	mux.HandleFunc("POST /api/auth/recuperar-senha/solicitar", middleware.Chain(h.Auth.RequestRecoveryHandler, limited))
	mux.HandleFunc("POST /api/auth/recuperar-senha/confirmar", middleware.Chain(h.Auth.ConfirmRecoveryHandler, limited))

	// --- 3. Contas ---
	mux.HandleFunc("POST /api/auth/usuarios/registrar", adminOnly(h.Account.RegisterStaffHandler))
	mux.HandleFunc("POST /api/auth/barbeiros/registrar", managers(h.Account.RegisterBarberHandler))
	mux.HandleFunc("POST /api/auth/clientes/registrar", h.Account.RegisterClientHandler)
	mux.HandleFunc("GET /api/perfil", authed(h.Account.ProfileHandler))
	mux.HandleFunc("PUT /api/perfil", authed(h.Account.UpdateProfileHandler))
	mux.HandleFunc("DELETE /api/usuarios/{id}", managers(h.Account.DeactivateStaffHandler))
	mux.HandleFunc("DELETE /api/barbeiros/{id}", managers(h.Account.DeactivateBarberHandler))
	mux.HandleFunc("GET /api/barbeiros", authed(h.Account.ListBarbersHandler))
	mux.HandleFunc("GET /api/barbeiros/{id}", authed(h.Account.GetBarberHandler))
	mux.HandleFunc("GET /api/clientes", managers(h.Account.ListClientsHandler))
	mux.HandleFunc("GET /api/clientes/{id}", managers(h.Account.GetClientHandler))

	// --- 4. Unidades ---
	mux.HandleFunc("POST /api/unidades", managers(h.Unit.CreateUnitHandler))
	mux.HandleFunc("GET /api/unidades", authed(h.Unit.ListUnitsHandler))
	mux.HandleFunc("GET /api/unidades/{id}", authed(h.Unit.GetUnitHandler))
	mux.HandleFunc("PUT /api/unidades/{id}", managers(h.Unit.UpdateUnitHandler))
	mux.HandleFunc("DELETE /api/unidades/{id}", managers(h.Unit.DeactivateUnitHandler))

	// --- 5. Catálogo ---
	mux.HandleFunc("POST /api/categorias-servicos", managers(h.Catalog.CreateCategoryHandler))
	mux.HandleFunc("GET /api/categorias-servicos", authed(h.Catalog.ListCategoriesHandler))
	mux.HandleFunc("GET /api/categorias-servicos/{id}", authed(h.Catalog.GetCategoryHandler))
	mux.HandleFunc("PUT /api/categorias-servicos/{id}", managers(h.Catalog.UpdateCategoryHandler))
	mux.HandleFunc("DELETE /api/categorias-servicos/{id}", managers(h.Catalog.DeleteCategoryHandler))

	mux.HandleFunc("POST /api/servicos", managers(h.Catalog.CreateServiceHandler))
	mux.HandleFunc("GET /api/servicos", authed(h.Catalog.ListServicesHandler))
	mux.HandleFunc("GET /api/servicos/{id}", authed(h.Catalog.GetServiceHandler))
	mux.HandleFunc("PUT /api/servicos/{id}", managers(h.Catalog.UpdateServiceHandler))
	mux.HandleFunc("DELETE /api/servicos/{id}", managers(h.Catalog.DeactivateServiceHandler))

	mux.HandleFunc("POST /api/produtos", managers(h.Catalog.CreateProductHandler))
	mux.HandleFunc("GET /api/produtos", authed(h.Catalog.ListProductsHandler))
	mux.HandleFunc("GET /api/produtos/{id}", authed(h.Catalog.GetProductHandler))
	mux.HandleFunc("PUT /api/produtos/{id}", managers(h.Catalog.UpdateProductHandler))
	mux.HandleFunc("DELETE /api/produtos/{id}", managers(h.Catalog.DeactivateProductHandler))
	mux.HandleFunc("POST /api/produtos/{id}/ajustar-estoque", managers(h.Catalog.AdjustStockHandler))

	// --- 6. Agendamentos ---
	mux.HandleFunc("POST /api/agendamentos", authed(h.Appointment.CreateAppointmentHandler))
	mux.HandleFunc("GET /api/agendamentos", authed(h.Appointment.ListAppointmentsHandler))
	mux.HandleFunc("PUT /api/agendamentos/{id}/status", authed(h.Appointment.UpdateStatusHandler))
	mux.HandleFunc("GET /api/agendamentos/{id}/historico", authed(h.Appointment.HistoryHandler))

	// --- 7. Pagamentos e vendas ---
	mux.HandleFunc("POST /api/pagamentos", managers(h.Payment.CreatePaymentHandler))
	mux.HandleFunc("GET /api/pagamentos", managers(h.Payment.ListPaymentsHandler))
	mux.HandleFunc("GET /api/pagamentos/{id}", managers(h.Payment.GetPaymentHandler))
	mux.HandleFunc("PUT /api/pagamentos/{id}", managers(h.Payment.UpdatePaymentHandler))

	mux.HandleFunc("POST /api/vendas", authed(h.Sale.CreateSaleHandler))
	mux.HandleFunc("GET /api/vendas", authed(h.Sale.ListSalesHandler))
	mux.HandleFunc("GET /api/vendas/{id}", authed(h.Sale.GetSaleHandler))

	// --- 8. Notificações ---
	mux.HandleFunc("GET /api/notificacoes", authed(h.Notification.ListNotificationsHandler))
	mux.HandleFunc("GET /api/notificacoes/nao-lidas/count", authed(h.Notification.CountUnreadHandler))
	mux.HandleFunc("PUT /api/notificacoes/{id}/marcar-lida", authed(h.Notification.MarkReadHandler))
	mux.HandleFunc("POST /api/webhook/teste", adminOnly(h.Notification.SendTestHandler))

	// --- 9. Relatórios ---
	mux.HandleFunc("GET /api/relatorios/vendas", managers(h.Report.SalesReportHandler))
	mux.HandleFunc("GET /api/relatorios/agendamentos", managers(h.Report.AppointmentsReportHandler))
	mux.HandleFunc("GET /api/relatorios/comissoes", managers(h.Report.CommissionsReportHandler))

	return middleware.RequestLogger(log)(mux)
}

// PingHandler é o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
