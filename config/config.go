package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config armazena todas as configurações do backend da Barbearia.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string
	Timezone    string

	// Banco de Dados (PostgreSQL)
	DatabaseURL string
	DBTimeout   time.Duration

	// Cache (Redis): rate limit e de-duplicação de lembretes
	RedisAddr    string
	CacheTimeout time.Duration

	// Segurança (JWT)
	JWTSecretKey     string
	TokenExpiry      time.Duration
	RecoveryTokenTTL time.Duration

	// Rate Limiting das rotas públicas de autenticação
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// WhatsApp
	WhatsAppProvider     string // "webhook" ou "twilio"
	WebhookAPIURL        string
	WhatsAppTimeout      time.Duration
	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioWhatsAppNumber string

	// Lembretes (expressões cron)
	DailyReminderCron    string
	UpcomingReminderCron string
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
func LoadConfig() *Config {
	cfg := &Config{
		// 1. Geral
		Port:        getEnv("PORT", "40003"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Timezone:    getEnv("TIMEZONE", "America/Sao_Paulo"),

		// 2. Banco de Dados (PostgreSQL)
		// mustGetEnv garante que a aplicação não inicie se não houver credenciais de DB
		DatabaseURL: mustGetEnv("DATABASE_URL"),
		DBTimeout:   getDurationEnv("DB_TIMEOUT_SEC", 5) * time.Second,

		// 3. Cache (Redis)
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		CacheTimeout: getDurationEnv("CACHE_TIMEOUT_SEC", 2) * time.Second,

		// 4. Segurança (JWT)
		JWTSecretKey:     mustGetEnv("JWT_SECRET_KEY"),
		TokenExpiry:      getDurationEnv("JWT_EXPIRY_HOURS", 24) * time.Hour,
		RecoveryTokenTTL: getDurationEnv("RECOVERY_TOKEN_TTL_MIN", 15) * time.Minute,

		// 5. Rate Limiting
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 10),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute,

		// 6. WhatsApp
		WhatsAppProvider:     getEnv("WHATSAPP_PROVIDER", "webhook"),
		WebhookAPIURL:        getEnv("WEBHOOK_API_URL", "https://apiszap.appguardiaomais.com.br"),
		WhatsAppTimeout:      getDurationEnv("WHATSAPP_TIMEOUT_SEC", 30) * time.Second,
		TwilioAccountSID:     getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:      getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioWhatsAppNumber: getEnv("TWILIO_WHATSAPP_NUMBER", ""),

		// 7. Lembretes
		DailyReminderCron:    getEnv("DAILY_REMINDER_CRON", "0 8 * * *"),
		UpcomingReminderCron: getEnv("UPCOMING_REMINDER_CRON", "*/10 * * * *"),
	}

	return cfg
}

// Location resolve o fuso horário configurado; em caso de erro usa UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("⚠️ Aviso: TIMEZONE '%s' inválido. Usando UTC.", c.Timezone)
		return time.UTC
	}
	return loc
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// mustGetEnv lê a variável de ambiente, fatal se não estiver presente.
func mustGetEnv(key string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Fatalf("❌ Erro de Configuração: A variável de ambiente %s deve ser definida.", key)
	return ""
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration.
func getDurationEnv(key string, defaultValue int) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return time.Duration(defaultValue)
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return time.Duration(defaultValue)
	}
	return time.Duration(value)
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
