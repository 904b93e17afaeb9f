package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"household-hub-go/pkg/logger"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	Env      string `env:"ENV" envDefault:"development"`

	DB      DBConfig      `envPrefix:"DB_"`
	Auth    AuthConfig    `envPrefix:"AUTH_"`
	Weather WeatherConfig `envPrefix:"WEATHER_"`
	OpenAI  OpenAIConfig  `envPrefix:"OPENAI_"`
	Redis   RedisConfig   `envPrefix:"REDIS_"`
}

type DBConfig struct {
	DSN             string        `env:"DSN"`
	Host            string        `env:"HOST" envDefault:"localhost"`
	Port            string        `env:"PORT" envDefault:"5432"`
	User            string        `env:"USER" envDefault:"postgres"`
	Password        string        `env:"PASSWORD" envDefault:"postgres"`
	Name            string        `env:"NAME" envDefault:"household_hub"`
	SSLMode         string        `env:"SSLMODE" envDefault:"disable"`
	TimeZone        string        `env:"TIMEZONE" envDefault:"UTC"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"30m"`
}

type AuthConfig struct {
	// JWTSecret verifies session tokens minted by the external identity
	// provider. The service never issues tokens itself.
	JWTSecret  string `env:"JWT_SECRET"`
	Skip       bool   `env:"SKIP" envDefault:"false"`
	MockUserID string `env:"MOCK_USER_ID" envDefault:"00000000-0000-0000-0000-000000000001"`
}

type WeatherConfig struct {
	BaseURL    string        `env:"BASE_URL" envDefault:"https://api.openweathermap.org"`
	APIKey     string        `env:"API_KEY"`
	DefaultLat float64       `env:"DEFAULT_LAT" envDefault:"35.6895"`
	DefaultLon float64       `env:"DEFAULT_LON" envDefault:"139.6917"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"10s"`
	CacheTTL   time.Duration `env:"CACHE_TTL" envDefault:"30m"`
}

type OpenAIConfig struct {
	BaseURL   string        `env:"BASE_URL" envDefault:"https://api.openai.com"`
	APIKey    string        `env:"API_KEY"`
	TextModel string        `env:"TEXT_MODEL" envDefault:"gpt-3.5-turbo"`
	PlanModel string        `env:"PLAN_MODEL" envDefault:"gpt-4o"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"60s"`
}

type RedisConfig struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// Load reads .env (if present) into the environment, then parses the
// configuration. Variables already set in the environment win over .env.
func Load(log logger.Logger) (Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	} else {
		log.Info("config: loaded .env")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.TimeZone
}
