package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Environment string
	LogLevel    string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Auth        AuthConfig
	RabbitMQ    RabbitMQConfig
	Transaction TransactionConfig
	Internal    InternalConfig
	OAuth       map[string]OAuthProvider
}

type ServerConfig struct {
	Port         string
	BaseURL      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	AllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host         string
	Port         int
	Password     string
	DB           int
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type AuthConfig struct {
	JWTSecret      string
	JWTExpiration  time.Duration
	SessionExpTime time.Duration
	CookieName     string
	OAuthStateTTL  time.Duration
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type TransactionConfig struct {
	// PaymentExpiration is how long a pending transaction waits for payment
	// before the expiration consumer cancels it.
	PaymentExpiration time.Duration
}

type InternalConfig struct {
	APIKey string
	APIURL string
}

// OAuthProvider describes one third-party login provider.
type OAuthProvider struct {
	ClientID     string
	ClientSecret string
	AuthorizeURL string
	TokenURL     string
	UserInfoURL  string
	RedirectURL  string
	Scopes       []string
}

// Load reads configuration from the environment. A .env file in the working
// directory is honoured without overriding variables that are already set.
func Load() *Config {
	if envMap, err := godotenv.Read(); err == nil {
		for k, v := range envMap {
			if os.Getenv(k) == "" {
				_ = os.Setenv(k, v)
			}
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Server: ServerConfig{
			Port:         v.GetString("SERVER_PORT"),
			BaseURL:      strings.TrimRight(v.GetString("SERVER_BASE_URL"), "/"),
			ReadTimeout:  v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("SERVER_WRITE_TIMEOUT"),
			IdleTimeout:  v.GetDuration("SERVER_IDLE_TIMEOUT"),
			AllowOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Redis: RedisConfig{
			Host:         v.GetString("REDIS_HOST"),
			Port:         v.GetInt("REDIS_PORT"),
			Password:     v.GetString("REDIS_PASSWORD"),
			DB:           v.GetInt("REDIS_DB"),
			PoolSize:     v.GetInt("REDIS_POOL_SIZE"),
			DialTimeout:  v.GetDuration("REDIS_DIAL_TIMEOUT"),
			ReadTimeout:  v.GetDuration("REDIS_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("REDIS_WRITE_TIMEOUT"),
		},
		Auth: AuthConfig{
			JWTSecret:      v.GetString("JWT_SECRET"),
			JWTExpiration:  v.GetDuration("JWT_EXPIRATION"),
			SessionExpTime: v.GetDuration("SESSION_EXPIRATION"),
			CookieName:     v.GetString("SESSION_COOKIE_NAME"),
			OAuthStateTTL:  v.GetDuration("OAUTH_STATE_TTL"),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     v.GetString("RABBITMQ_HOST"),
			Port:     v.GetInt("RABBITMQ_PORT"),
			User:     v.GetString("RABBITMQ_USER"),
			Password: v.GetString("RABBITMQ_PASSWORD"),
		},
		Transaction: TransactionConfig{
			PaymentExpiration: v.GetDuration("TRANSACTION_PAYMENT_EXPIRATION"),
		},
		Internal: InternalConfig{
			APIKey: v.GetString("INTERNAL_API_KEY"),
			APIURL: v.GetString("INTERNAL_API_URL"),
		},
		OAuth: loadOAuthProviders(v),
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_BASE_URL", "http://127.0.0.1:8080")
	v.SetDefault("SERVER_READ_TIMEOUT", 15*time.Second)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15*time.Second)
	v.SetDefault("SERVER_IDLE_TIMEOUT", 60*time.Second)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:8000")

	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_PORT", 3306)
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_NAME", "showroom")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute)

	v.SetDefault("REDIS_HOST", "127.0.0.1")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 20)
	v.SetDefault("REDIS_DIAL_TIMEOUT", 2*time.Second)
	v.SetDefault("REDIS_READ_TIMEOUT", 500*time.Millisecond)
	v.SetDefault("REDIS_WRITE_TIMEOUT", 500*time.Millisecond)

	v.SetDefault("JWT_EXPIRATION", 24*time.Hour)
	v.SetDefault("SESSION_EXPIRATION", 24*time.Hour)
	v.SetDefault("SESSION_COOKIE_NAME", "showroom_session")
	v.SetDefault("OAUTH_STATE_TTL", 10*time.Minute)

	v.SetDefault("RABBITMQ_HOST", "127.0.0.1")
	v.SetDefault("RABBITMQ_PORT", 5672)
	v.SetDefault("RABBITMQ_USER", "guest")
	v.SetDefault("RABBITMQ_PASSWORD", "guest")

	v.SetDefault("TRANSACTION_PAYMENT_EXPIRATION", 24*time.Hour)
	v.SetDefault("INTERNAL_API_URL", "http://127.0.0.1:8080")
}

// loadOAuthProviders reads OAUTH_PROVIDERS=google,github and the matching
// OAUTH_<NAME>_* variables.
func loadOAuthProviders(v *viper.Viper) map[string]OAuthProvider {
	providers := make(map[string]OAuthProvider)
	for _, name := range splitList(v.GetString("OAUTH_PROVIDERS")) {
		name = strings.ToLower(name)
		prefix := "OAUTH_" + strings.ToUpper(name) + "_"
		providers[name] = OAuthProvider{
			ClientID:     v.GetString(prefix + "CLIENT_ID"),
			ClientSecret: v.GetString(prefix + "CLIENT_SECRET"),
			AuthorizeURL: v.GetString(prefix + "AUTHORIZE_URL"),
			TokenURL:     v.GetString(prefix + "TOKEN_URL"),
			UserInfoURL:  v.GetString(prefix + "USERINFO_URL"),
			RedirectURL:  v.GetString(prefix + "REDIRECT_URL"),
			Scopes:       splitList(v.GetString(prefix + "SCOPES")),
		}
	}
	return providers
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetDSN returns the go-sql-driver/mysql data source name.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=%s&charset=utf8mb4",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		url.QueryEscape("Asia/Jakarta"),
	)
}
