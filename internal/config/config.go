package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// Provedores de e-mail suportados
const (
	MailProviderLog    = "log"
	MailProviderResend = "resend"
	MailProviderSMTP   = "smtp"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Chart      Chart      `mapstructure:",squash"`
	Mail       Mail       `mapstructure:",squash"`
	RankDigest RankDigest `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Catalog    Catalog    `mapstructure:",squash"`
}

type Server struct {
	Host               string        `mapstructure:"host"`
	Port               string        `mapstructure:"port"`
	CorsAllowedOrigins []string      `mapstructure:"cors_allowed_origins"`
	ShutdownTimeout    time.Duration `mapstructure:"server_shutdown_timeout"`
}

type Database struct {
	DSN         string `mapstructure:"-"`
	Driver      string `mapstructure:"database_driver"`
	Password    string `mapstructure:"database_password"`
	URL         string `mapstructure:"database_url"`
	User        string `mapstructure:"database_user"`
	AutoMigrate bool   `mapstructure:"database_auto_migrate"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

// Chart agrupa a configuração do ranking consultado na SerpApi (uma categoria e um país por deploy)
type Chart struct {
	APIKey       string        `mapstructure:"serpapi_api_key"`
	BaseURL      string        `mapstructure:"serpapi_base_url"`
	Engine       string        `mapstructure:"chart_engine"`
	Name         string        `mapstructure:"chart_name"`
	Category     string        `mapstructure:"chart_category"`
	CategoryName string        `mapstructure:"chart_category_name"`
	Country      string        `mapstructure:"chart_country"`
	Depth        int           `mapstructure:"chart_depth"`
	ResultsPath  string        `mapstructure:"chart_results_path"`
	Timeout      time.Duration `mapstructure:"chart_timeout"`
}

type Mail struct {
	Provider                string        `mapstructure:"mail_provider"`
	FromAddress             string        `mapstructure:"email_from_address"`
	ResendAPIKey            string        `mapstructure:"resend_api_key"`
	ResendBaseURL           string        `mapstructure:"resend_base_url"`
	SMTPHost                string        `mapstructure:"smtp_host"`
	SMTPPort                int           `mapstructure:"smtp_port"`
	SMTPUser                string        `mapstructure:"smtp_user"`
	SMTPPassword            string        `mapstructure:"smtp_password"`
	SMTPUseTLS              bool          `mapstructure:"smtp_use_tls"`
	SendTimeout             time.Duration `mapstructure:"mail_send_timeout"`
	MaxConcurrent           int           `mapstructure:"mail_max_concurrent"`
	RatePerSecond           float64       `mapstructure:"mail_rate_per_second"`
	BreakerFailureThreshold uint32        `mapstructure:"mail_breaker_failure_threshold"`
	BreakerTimeout          time.Duration `mapstructure:"mail_breaker_timeout"`
}

type RankDigest struct {
	CronSchedule  string `mapstructure:"rank_digest_cron"`
	Enabled       bool   `mapstructure:"rank_digest_enabled"`
	SiteURL       string `mapstructure:"site_base_url"`
	RequestAppURL string `mapstructure:"request_app_url"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

// Catalog contém entradas no formato app_id=chart_id:Nome separadas por vírgula
type Catalog struct {
	Entries []string `mapstructure:"app_catalog"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "60s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://appstoreposition.com")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/rank_notifier?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 5)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 2)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("SERPAPI_API_KEY", "")
	viper.SetDefault("SERPAPI_BASE_URL", "https://serpapi.com")
	viper.SetDefault("CHART_ENGINE", "apple_app_store_charts")
	viper.SetDefault("CHART_NAME", "top_free_applications")
	viper.SetDefault("CHART_CATEGORY", "6015") // Finance
	viper.SetDefault("CHART_CATEGORY_NAME", "Finance")
	viper.SetDefault("CHART_COUNTRY", "us")
	viper.SetDefault("CHART_DEPTH", 200)
	viper.SetDefault("CHART_RESULTS_PATH", "charts.free_applications.results")
	viper.SetDefault("CHART_TIMEOUT", "45s")

	viper.SetDefault("MAIL_PROVIDER", MailProviderLog)
	viper.SetDefault("EMAIL_FROM_ADDRESS", "")
	viper.SetDefault("RESEND_API_KEY", "")
	viper.SetDefault("RESEND_BASE_URL", "https://api.resend.com")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_USE_TLS", true)
	viper.SetDefault("MAIL_SEND_TIMEOUT", "30s")
	viper.SetDefault("MAIL_MAX_CONCURRENT", 1)         // 1 = envio sequencial
	viper.SetDefault("MAIL_RATE_PER_SECOND", 2)        // limite da Resend
	viper.SetDefault("MAIL_BREAKER_FAILURE_THRESHOLD", 5)
	viper.SetDefault("MAIL_BREAKER_TIMEOUT", "60s")

	viper.SetDefault("RANK_DIGEST_CRON", "0 13 * * *") // Todos os dias às 13h
	viper.SetDefault("RANK_DIGEST_ENABLED", false)
	viper.SetDefault("SITE_BASE_URL", "https://appstoreposition.com")
	viper.SetDefault("REQUEST_APP_URL", "https://forms.gle/1tsh2DwPZP261ZQs8")

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "720h")

	viper.SetDefault("APP_CATALOG", "")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_TIMEZONE", "UTC")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func (m Mail) requireFromAddress() error {
	if m.FromAddress == "" {
		return fmt.Errorf("EMAIL_FROM_ADDRESS é obrigatório")
	}
	return nil
}

// Validate verifica os campos obrigatórios antes de qualquer execução
func (c *Config) Validate() error {
	var err error

	if c.Database.URL == "" {
		err = multierr.Append(err, fmt.Errorf("DATABASE_URL é obrigatório"))
	}

	if c.Chart.APIKey == "" {
		err = multierr.Append(err, fmt.Errorf("SERPAPI_API_KEY é obrigatório"))
	}
	if c.Chart.BaseURL == "" {
		err = multierr.Append(err, fmt.Errorf("SERPAPI_BASE_URL é obrigatório"))
	}
	if c.Chart.Category == "" {
		err = multierr.Append(err, fmt.Errorf("CHART_CATEGORY é obrigatório"))
	}
	if c.Chart.Country == "" {
		err = multierr.Append(err, fmt.Errorf("CHART_COUNTRY é obrigatório"))
	}
	if c.Chart.Depth <= 0 {
		err = multierr.Append(err, fmt.Errorf("CHART_DEPTH deve ser maior que zero"))
	}

	switch c.Mail.Provider {
	case MailProviderLog, "":
		// vazio equivale ao provedor de log
	case MailProviderResend:
		if c.Mail.ResendAPIKey == "" {
			err = multierr.Append(err, fmt.Errorf("RESEND_API_KEY é obrigatório para o provedor resend"))
		}
		err = multierr.Append(err, c.Mail.requireFromAddress())
	case MailProviderSMTP:
		if c.Mail.SMTPHost == "" || c.Mail.SMTPPort <= 0 {
			err = multierr.Append(err, fmt.Errorf("SMTP_HOST e SMTP_PORT são obrigatórios para o provedor smtp"))
		}
		err = multierr.Append(err, c.Mail.requireFromAddress())
	default:
		err = multierr.Append(err, fmt.Errorf("MAIL_PROVIDER inválido: %q", c.Mail.Provider))
	}

	if c.Mail.SendTimeout <= 0 {
		err = multierr.Append(err, fmt.Errorf("MAIL_SEND_TIMEOUT deve ser maior que zero"))
	}

	if c.RankDigest.Enabled && c.RankDigest.CronSchedule == "" {
		err = multierr.Append(err, fmt.Errorf("RANK_DIGEST_CRON é obrigatório quando o agendamento está habilitado"))
	}

	if c.Auth.Secret == "" {
		err = multierr.Append(err, fmt.Errorf("AUTH_SECRET é obrigatório"))
	}

	if _, locErr := time.LoadLocation(c.App.Timezone); locErr != nil {
		err = multierr.Append(err, fmt.Errorf("APP_TIMEZONE inválido: %w", locErr))
	}

	return err
}

// Location retorna o fuso horário usado para definir o "dia" de cada execução
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// CountryLabel retorna o país em maiúsculas, como exibido nos e-mails (ex: US)
func (c Chart) CountryLabel() string {
	return strings.ToUpper(c.Country)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
