package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string `env:"APP_PORT" env-default:"8080"`

	DBDriver    string `env:"DB_DRIVER" env-default:"mysql"`
	MySQLHost   string `env:"MYSQL_HOST" env-default:"mysql"`
	MySQLPort   string `env:"MYSQL_PORT" env-default:"3306"`
	MySQLDB     string `env:"MYSQL_DB" env-default:"aquaria"`
	MySQLUser   string `env:"MYSQL_USER" env-default:"aquaria"`
	MySQLPass   string `env:"MYSQL_PASS" env-default:"aquaria"`
	PostgresDSN string `env:"POSTGRES_DSN"`

	RedisAddr     string `env:"REDIS_ADDR" env-default:"redis:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" env-default:"0"`

	IdempTTLSecs int `env:"IDEMPOTENCY_TTL_SECONDS" env-default:"300"`

	JWTSecret         string `env:"JWT_SECRET"`
	SessionTTLMinutes int    `env:"SESSION_TTL_MINUTES" env-default:"720"`

	HousePartnerCode string `env:"HOUSE_PARTNER_CODE" env-default:"AQUARIA_HQ"`

	KafkaBrokers    []string `env:"KAFKA_BROKERS" env-separator:","`
	KafkaQuoteTopic string   `env:"KAFKA_QUOTE_TOPIC" env-default:"quote-events"`

	RunMigrations bool `env:"RUN_MIGRATIONS" env-default:"true"`

	BootstrapAdminEmail    string `env:"BOOTSTRAP_ADMIN_EMAIL"`
	BootstrapAdminPassword string `env:"BOOTSTRAP_ADMIN_PASSWORD"`
}

// Load reads an optional .env file, then the environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// a missing file is fine, real env vars still apply
		_ = godotenv.Load(f)
	}
	var c Config
	if err := cleanenv.ReadEnv(&c); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	c.KafkaBrokers = compact(c.KafkaBrokers)
	return &c, nil
}

func compact(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case "mysql":
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("missing POSTGRES_DSN")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	if c.SessionTTLMinutes <= 0 {
		return errors.New("SESSION_TTL_MINUTES must be positive")
	}
	if (c.BootstrapAdminEmail == "") != (c.BootstrapAdminPassword == "") {
		return errors.New("BOOTSTRAP_ADMIN_EMAIL and BOOTSTRAP_ADMIN_PASSWORD go together")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is needed by migrations; parseTime for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == "postgres" {
		return c.PostgresDSN
	}
	return c.MySQLDSN()
}

func (c *Config) IdempotencyTTL() time.Duration { return time.Duration(c.IdempTTLSecs) * time.Second }

func (c *Config) SessionTTL() time.Duration { return time.Duration(c.SessionTTLMinutes) * time.Minute }
