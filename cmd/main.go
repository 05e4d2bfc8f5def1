package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Infraestrutura e utilitários
	"barbearia/config"
	"barbearia/internal/pkg/cache"
	"barbearia/internal/pkg/database"
	"barbearia/internal/pkg/logger"
	"barbearia/internal/pkg/token"
	"barbearia/internal/pkg/whatsapp"
	"barbearia/internal/scheduler"

	// Handlers
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

	// Acesso a dados
	"barbearia/internal/repository/accountrepo"
	"barbearia/internal/repository/appointmentrepo"
	"barbearia/internal/repository/catalogrepo"
	"barbearia/internal/repository/notificationrepo"
	"barbearia/internal/repository/paymentrepo"
	"barbearia/internal/repository/recoveryrepo"
	"barbearia/internal/repository/reportrepo"
	"barbearia/internal/repository/salerepo"
	"barbearia/internal/repository/unitrepo"

	// Lógica de negócio
	"barbearia/internal/service/accountservice"
	"barbearia/internal/service/appointmentservice"
	"barbearia/internal/service/authservice"
	"barbearia/internal/service/catalogservice"
	"barbearia/internal/service/identity"
	"barbearia/internal/service/notificationservice"
	"barbearia/internal/service/paymentservice"
	"barbearia/internal/service/recoveryservice"
	"barbearia/internal/service/reportservice"
	"barbearia/internal/service/saleservice"
	"barbearia/internal/service/unitservice"
)

// @title Barbearia API
// @version 1.0
// @description API de gestão de barbearias: contas, agendamentos, catálogo, vendas e notificações por WhatsApp.
// @host localhost:40003
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e Inicialização
	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	loc := cfg.Location()
	log.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment, "timezone": loc.String()})

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	log.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Cache (Redis). Sem Redis a API sobe: o rate limit libera e os lembretes perdem a de-duplicação.
	cacheClient, err := cache.NewRedisClient(cfg.RedisAddr)
	redisOK := err == nil
	if redisOK {
		log.Info("Conexão Redis estabelecida.", nil)
	} else {
		log.Warn("Redis indisponível. Seguindo sem cache.", map[string]interface{}{"addr": cfg.RedisAddr, "erro": err.Error()})
	}
	defer cacheClient.Close()

	// C. WhatsApp
	var sender whatsapp.Sender
	switch cfg.WhatsAppProvider {
	case "twilio":
		sender = whatsapp.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppNumber, cfg.WhatsAppTimeout)
	default:
		sender = whatsapp.NewWebhookSender(cfg.WebhookAPIURL, cfg.WhatsAppTimeout)
	}
	log.Info("Provedor de WhatsApp configurado.", map[string]interface{}{"provider": cfg.WhatsAppProvider})

	// D. Tokens (JWT)
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler

	// A. Repositórios
	accountRepo := accountrepo.NewAccountRepository(db, cfg.DBTimeout, log)
	recoveryRepo := recoveryrepo.NewRecoveryRepository(db, cfg.DBTimeout, accountRepo, log)
	unitRepo := unitrepo.NewUnitRepository(db, cfg.DBTimeout, log)
	catalogRepo := catalogrepo.NewCatalogRepository(db, cfg.DBTimeout, log)
	appointmentRepo := appointmentrepo.NewAppointmentRepository(db, cfg.DBTimeout, log)
	paymentRepo := paymentrepo.NewPaymentRepository(db, cfg.DBTimeout, log)
	saleRepo := salerepo.NewSaleRepository(db, cfg.DBTimeout, log)
	notificationRepo := notificationrepo.NewNotificationRepository(db, cfg.DBTimeout, log)
	reportRepo := reportrepo.NewReportRepository(db, cfg.DBTimeout, log)
	log.Debug("Repositórios inicializados.", nil)

	// B. Serviços
	resolver := identity.NewResolver(accountRepo)
	notifier := notificationservice.NewService(sender, notificationRepo, accountRepo, cfg.WhatsAppTimeout, log)

	authSvc := authservice.NewService(resolver, accountRepo, tokenSvc, log)
	recoverySvc := recoveryservice.NewService(resolver, recoveryRepo, notifier, cfg.RecoveryTokenTTL, log)
	accountSvc := accountservice.NewService(accountRepo, unitRepo, notifier, log)
	unitSvc := unitservice.NewService(unitRepo, log)
	catalogSvc := catalogservice.NewService(catalogRepo, log)
	appointmentSvc := appointmentservice.NewService(appointmentRepo, catalogRepo, notifier, log)
	paymentSvc := paymentservice.NewService(paymentRepo, log)
	saleSvc := saleservice.NewService(catalogRepo, saleRepo, log)
	reportSvc := reportservice.NewService(reportRepo, log)
	log.Debug("Serviços inicializados.", nil)

	// C. Lembretes agendados
	var dedup notificationservice.DedupStore
	if redisOK {
		dedup = cacheClient
	}
	reminders := notificationservice.NewReminders(notifier, appointmentRepo, dedup, loc, log)
	sched, err := scheduler.New(reminders, cfg.DailyReminderCron, cfg.UpcomingReminderCron, loc, log)
	if err != nil {
		log.Fatal("Expressão cron inválida.", err)
	}

	// D. Handlers
	handlers := router.Handlers{
		Auth:         auth.NewHandler(authSvc, recoverySvc, log),
		Account:      account.NewHandler(accountSvc, log),
		Unit:         unit.NewHandler(unitSvc, log),
		Catalog:      catalog.NewHandler(catalogSvc, log),
		Appointment:  appointment.NewHandler(appointmentSvc, log),
		Payment:      payment.NewHandler(paymentSvc, log),
		Sale:         sale.NewHandler(saleSvc, log),
		Notification: notification.NewHandler(notifier, log),
		Report:       report.NewHandler(reportSvc, log),
	}

	// 4. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(handlers, tokenSvc, cacheClient, router.RateLimit{
		MaxRequests:  cfg.RateLimitMaxRequests,
		Period:       cfg.RateLimitPeriod,
		CacheTimeout: cfg.CacheTimeout,
	}, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	sched.Start()

	go func() {
		log.Info("Servidor Barbearia ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}
	sched.Stop(ctx)

	log.Info("Servidor encerrado com sucesso.", nil)
}
