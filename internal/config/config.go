package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	API          API          `mapstructure:",squash"`
	DailyKPISync DailyKPISync `mapstructure:",squash"`
}

type App struct {
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	SecretKey          string   `mapstructure:"secret_key"`
	AccessTokenMinutes int      `mapstructure:"jwt_access_lifetime_minutes"`
	RefreshTokenDays   int      `mapstructure:"jwt_refresh_lifetime_days"`
	AccessCookieName   string   `mapstructure:"jwt_access_cookie_name"`
	RefreshCookieName  string   `mapstructure:"jwt_refresh_cookie_name"`
	CookieSecure       bool     `mapstructure:"jwt_cookie_secure"`
	CookieSameSite     string   `mapstructure:"jwt_cookie_samesite"`
	CookiePath         string   `mapstructure:"jwt_cookie_path"`
	CookieDomain       string   `mapstructure:"jwt_cookie_domain"`
	CookieAllowedHosts []string `mapstructure:"jwt_cookie_allowed_hosts"`
}

type API struct {
	PageSize int `mapstructure:"api_page_size"`
}

type DailyKPISync struct {
	CronSchedule     string  `mapstructure:"daily_kpi_sync_cron"`
	Timezone         string  `mapstructure:"daily_kpi_sync_timezone"`
	Enabled          bool    `mapstructure:"daily_kpi_sync_enabled"`
	MaxRetries       int     `mapstructure:"daily_kpi_sync_max_retries"`
	RetryBaseSeconds int     `mapstructure:"daily_kpi_sync_retry_base_seconds"`
	RetryMaxSeconds  int     `mapstructure:"daily_kpi_sync_retry_max_seconds"`
	RetryJitter      float64 `mapstructure:"daily_kpi_sync_retry_jitter"`
}

func SetDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/revalyt")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("JWT_ACCESS_LIFETIME_MINUTES", 5)
	viper.SetDefault("JWT_REFRESH_LIFETIME_DAYS", 7)
	viper.SetDefault("JWT_ACCESS_COOKIE_NAME", "revalyt_access")
	viper.SetDefault("JWT_REFRESH_COOKIE_NAME", "revalyt_refresh")
	viper.SetDefault("JWT_COOKIE_SECURE", true)
	viper.SetDefault("JWT_COOKIE_SAMESITE", "none")
	viper.SetDefault("JWT_COOKIE_PATH", "/")
	viper.SetDefault("JWT_COOKIE_DOMAIN", "")
	viper.SetDefault("JWT_COOKIE_ALLOWED_HOSTS", "")

	viper.SetDefault("API_PAGE_SIZE", 50)

	// Defaults do job de rollup diário de KPIs
	viper.SetDefault("DAILY_KPI_SYNC_CRON", "0 0 * * *") // Todos os dias à meia-noite UTC
	viper.SetDefault("DAILY_KPI_SYNC_TIMEZONE", "UTC")
	viper.SetDefault("DAILY_KPI_SYNC_ENABLED", true)
	viper.SetDefault("DAILY_KPI_SYNC_MAX_RETRIES", 5)
	viper.SetDefault("DAILY_KPI_SYNC_RETRY_BASE_SECONDS", 1)
	viper.SetDefault("DAILY_KPI_SYNC_RETRY_MAX_SECONDS", 3600) // Backoff limitado a 1 hora
	viper.SetDefault("DAILY_KPI_SYNC_RETRY_JITTER", 0.5)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	hosts := make([]string, 0, len(config.Auth.CookieAllowedHosts))
	for _, host := range config.Auth.CookieAllowedHosts {
		if trimmed := strings.TrimSpace(host); trimmed != "" {
			hosts = append(hosts, trimmed)
		}
	}
	config.Auth.CookieAllowedHosts = hosts

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile tenta carregar o arquivo .env das localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
